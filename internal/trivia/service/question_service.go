package service

import (
	"context"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/repository"
	apperrors "fyyur-trivia/pkg/app_errors"
)

// QuestionsPerPage 固定頁大小
const QuestionsPerPage = 10

type QuestionService interface {
	Paginated(ctx context.Context, term, category string, page int) ([]*model.Question, int, error)
	FirstPage(ctx context.Context, term, category string) ([]*model.Question, int, error)
	Create(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error)
	DeleteByID(ctx context.Context, id int) error
}

type QuestionServiceImpl struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &QuestionServiceImpl{repo: repo}
}

// Paginated 先套過濾條件再切頁，total 是切頁前的總數
func (s *QuestionServiceImpl) Paginated(ctx context.Context, term, category string, page int) ([]*model.Question, int, error) {
	questions, err := s.repo.Search(ctx, term, category)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage

	// 超出範圍回空頁，不當錯誤
	if start > len(questions) {
		start = len(questions)
	}
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end], len(questions), nil
}

// FirstPage 同樣的過濾條件，固定只取前一頁
func (s *QuestionServiceImpl) FirstPage(ctx context.Context, term, category string) ([]*model.Question, int, error) {
	questions, err := s.repo.Search(ctx, term, category)
	if err != nil {
		return nil, 0, err
	}

	total := len(questions)
	if total > QuestionsPerPage {
		return questions[:QuestionsPerPage], total, nil
	}
	return questions, total, nil
}

func (s *QuestionServiceImpl) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error) {
	if req.Question == "" || req.Answer == "" {
		return nil, apperrors.ErrInvalidInput
	}

	question := &model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	return s.repo.Create(ctx, question)
}

// DeleteByID 先確認存在再刪，missing 與刪除失敗因此互斥
func (s *QuestionServiceImpl) DeleteByID(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
