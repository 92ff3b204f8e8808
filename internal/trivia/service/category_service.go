package service

import (
	"context"

	"fyyur-trivia/internal/trivia/repository"
	apperrors "fyyur-trivia/pkg/app_errors"
)

type CategoryService interface {
	// Map 回傳 {id: type}；分類表必須先 seed，空表視為伺服器錯誤
	Map(ctx context.Context) (map[int]string, error)
	// MapAllowEmpty 題目相關端點附帶的分類對照，空表不算錯
	MapAllowEmpty(ctx context.Context) (map[int]string, error)
}

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) Map(ctx context.Context) (map[int]string, error) {
	categories, err := s.MapAllowEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNoCategories
	}
	return categories, nil
}

func (s *CategoryServiceImpl) MapAllowEmpty(ctx context.Context) (map[int]string, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[int]string, len(categories))
	for _, category := range categories {
		data[category.ID] = category.Type
	}
	return data, nil
}
