package model

// Category 分類模型
type Category struct {
	ID   int    `json:"id" db:"id"`
	Type string `json:"type" db:"type"`
}
