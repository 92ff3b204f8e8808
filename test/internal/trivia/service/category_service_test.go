package service

import (
	"context"
	"testing"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/service"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/test/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_Map(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(mockRepo)

		mockRepo.On("List", mock.Anything).Return([]*model.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
		}, nil).Once()

		categories, err := svc.Map(ctx)
		assert.NoError(t, err)
		assert.Equal(t, map[int]string{1: "Science", 2: "Art"}, categories)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyTableIsAnError", func(t *testing.T) {
		mockRepo := mocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(mockRepo)

		mockRepo.On("List", mock.Anything).Return([]*model.Category{}, nil).Once()

		_, err := svc.Map(ctx)
		assert.ErrorIs(t, err, apperrors.ErrNoCategories)
		mockRepo.AssertExpectations(t)
	})
}

func TestCategoryService_MapAllowEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyTableIsFine", func(t *testing.T) {
		mockRepo := mocks.NewCategoryRepositoryMock()
		svc := service.NewCategoryService(mockRepo)

		mockRepo.On("List", mock.Anything).Return([]*model.Category{}, nil).Once()

		categories, err := svc.MapAllowEmpty(ctx)
		assert.NoError(t, err)
		assert.Empty(t, categories)
		mockRepo.AssertExpectations(t)
	})
}
