package model

import "strings"

// JoinGenres 將多選的 genres 串成單一欄位儲存
func JoinGenres(genres []string) string {
	return strings.Join(genres, ", ")
}

// SplitGenres 還原儲存字串為列表，順序不變
func SplitGenres(genres string) []string {
	if genres == "" {
		return []string{}
	}
	parts := strings.Split(genres, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
