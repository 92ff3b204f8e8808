package service

import (
	"context"
	"math/rand"
	"strconv"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/repository"
)

type QuizService interface {
	// NextQuestion 從還沒問過的題目裡均勻抽一題，抽完了回 (nil, nil)
	NextQuestion(ctx context.Context, previous []int, categoryID int) (*model.Question, error)
}

type QuizServiceImpl struct {
	repo repository.QuestionRepository
	pick func(n int) int
}

// NewQuizService 的 pick 參數讓測試注入固定抽法，傳 nil 用預設的均勻亂數
func NewQuizService(repo repository.QuestionRepository, pick func(n int) int) QuizService {
	if pick == nil {
		pick = rand.Intn
	}
	return &QuizServiceImpl{repo: repo, pick: pick}
}

func (s *QuizServiceImpl) NextQuestion(ctx context.Context, previous []int, categoryID int) (*model.Question, error) {
	category := ""
	if categoryID != 0 {
		category = strconv.Itoa(categoryID)
	}

	ids, err := s.repo.ListIDsExcluding(ctx, previous, category)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return s.repo.FindByID(ctx, ids[s.pick(len(ids))])
}
