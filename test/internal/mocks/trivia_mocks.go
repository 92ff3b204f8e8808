package mocks

import (
	"context"

	"fyyur-trivia/internal/trivia/model"

	"github.com/stretchr/testify/mock"
)

type QuestionServiceMock struct {
	mock.Mock
}

func NewQuestionServiceMock() *QuestionServiceMock {
	return &QuestionServiceMock{}
}

func (m *QuestionServiceMock) Paginated(ctx context.Context, term, category string, page int) ([]*model.Question, int, error) {
	args := m.Called(ctx, term, category, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Question), args.Int(1), args.Error(2)
}

func (m *QuestionServiceMock) FirstPage(ctx context.Context, term, category string) ([]*model.Question, int, error) {
	args := m.Called(ctx, term, category)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Question), args.Int(1), args.Error(2)
}

func (m *QuestionServiceMock) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *QuestionServiceMock) DeleteByID(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CategoryServiceMock struct {
	mock.Mock
}

func NewCategoryServiceMock() *CategoryServiceMock {
	return &CategoryServiceMock{}
}

func (m *CategoryServiceMock) Map(ctx context.Context) (map[int]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

func (m *CategoryServiceMock) MapAllowEmpty(ctx context.Context) (map[int]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

type QuizServiceMock struct {
	mock.Mock
}

func NewQuizServiceMock() *QuizServiceMock {
	return &QuizServiceMock{}
}

func (m *QuizServiceMock) NextQuestion(ctx context.Context, previous []int, categoryID int) (*model.Question, error) {
	args := m.Called(ctx, previous, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

type QuestionRepositoryMock struct {
	mock.Mock
}

func NewQuestionRepositoryMock() *QuestionRepositoryMock {
	return &QuestionRepositoryMock{}
}

func (m *QuestionRepositoryMock) Search(ctx context.Context, term string, category string) ([]*model.Question, error) {
	args := m.Called(ctx, term, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Question), args.Error(1)
}

func (m *QuestionRepositoryMock) FindByID(ctx context.Context, id int) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *QuestionRepositoryMock) Create(ctx context.Context, question *model.Question) (*model.Question, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *QuestionRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *QuestionRepositoryMock) ListIDsExcluding(ctx context.Context, previous []int, category string) ([]int, error) {
	args := m.Called(ctx, previous, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type CategoryRepositoryMock struct {
	mock.Mock
}

func NewCategoryRepositoryMock() *CategoryRepositoryMock {
	return &CategoryRepositoryMock{}
}

func (m *CategoryRepositoryMock) List(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}
