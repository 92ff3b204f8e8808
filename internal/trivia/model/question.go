package model

// Question 題目模型，category 以字串存放 Category.ID（沿用原資料格式，未加外鍵）
type Question struct {
	ID         int    `json:"id" db:"id"`
	Question   string `json:"question" db:"question"`
	Answer     string `json:"answer" db:"answer"`
	Category   string `json:"category" db:"category"`
	Difficulty int    `json:"difficulty" db:"difficulty"`
}

// CreateQuestionRequest 建立題目請求
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

// SearchRequest POST /questions/search 的 body，欄位名沿用前端既有格式
type SearchRequest struct {
	SearchTerm      string `json:"searchTerm"`
	CurrentCategory string `json:"currentCategory"`
}

// QuizRequest POST /quizzes 的 body；quiz_category.id 為 0 代表不限分類
type QuizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      struct {
		ID int `json:"id"`
	} `json:"quiz_category"`
}
