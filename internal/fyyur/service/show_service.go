package service

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/repository"
)

type ShowService interface {
	List(ctx context.Context) ([]*model.ShowDetail, error)
	Create(ctx context.Context, artistID, venueID int, startTime time.Time) (*model.Show, error)
}

type ShowServiceImpl struct {
	repo repository.ShowRepository
}

func NewShowService(repo repository.ShowRepository) ShowService {
	return &ShowServiceImpl{repo: repo}
}

func (s *ShowServiceImpl) List(ctx context.Context) ([]*model.ShowDetail, error) {
	return s.repo.ListWithDetails(ctx)
}

// Create 沿用原站行為：送出的 artist_id 存進 venue_id、venue_id 存進 artist_id。
// 這是文件化的既有缺陷，修掉會破壞與既有資料的相容性。
func (s *ShowServiceImpl) Create(ctx context.Context, artistID, venueID int, startTime time.Time) (*model.Show, error) {
	show := &model.Show{
		VenueID:   artistID,
		ArtistID:  venueID,
		StartTime: startTime,
	}
	return s.repo.Create(ctx, show)
}
