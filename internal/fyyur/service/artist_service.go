package service

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/repository"
)

type ArtistService interface {
	List(ctx context.Context) ([]*model.Artist, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	GetPage(ctx context.Context, id int) (*model.ArtistPage, error)
	GetByID(ctx context.Context, id int) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error)
}

type ArtistServiceImpl struct {
	repo     repository.ArtistRepository
	showRepo repository.ShowRepository
}

func NewArtistService(repo repository.ArtistRepository, showRepo repository.ShowRepository) ArtistService {
	return &ArtistServiceImpl{repo: repo, showRepo: showRepo}
}

func (s *ArtistServiceImpl) List(ctx context.Context) ([]*model.Artist, error) {
	return s.repo.List(ctx)
}

func (s *ArtistServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	data := make([]model.VenueSummary, 0, len(artists))
	for _, artist := range artists {
		upcoming, err := s.showRepo.CountByArtist(ctx, artist.ID, now, true)
		if err != nil {
			return nil, err
		}
		data = append(data, model.VenueSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: upcoming,
		})
	}

	return &model.SearchResult{Count: len(artists), Data: data}, nil
}

// GetPage 與場地詳細頁同樣的規則：先信任 count，大於零才撈列表
func (s *ArtistServiceImpl) GetPage(ctx context.Context, id int) (*model.ArtistPage, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	page := &model.ArtistPage{
		Artist:        *artist,
		GenreList:     model.SplitGenres(artist.Genres),
		PastShows:     []model.ShowAttachment{},
		UpcomingShows: []model.ShowAttachment{},
	}

	page.PastShowsCount, err = s.showRepo.CountByArtist(ctx, id, now, false)
	if err != nil {
		return nil, err
	}
	page.UpcomingShowsCount, err = s.showRepo.CountByArtist(ctx, id, now, true)
	if err != nil {
		return nil, err
	}

	if page.PastShowsCount > 0 {
		page.PastShows, err = s.showRepo.ListByArtist(ctx, id, now, false)
		if err != nil {
			return nil, err
		}
	}
	if page.UpcomingShowsCount > 0 {
		page.UpcomingShows, err = s.showRepo.ListByArtist(ctx, id, now, true)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

func (s *ArtistServiceImpl) GetByID(ctx context.Context, id int) (*model.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	return s.repo.Create(ctx, artist)
}

func (s *ArtistServiceImpl) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	return s.repo.Update(ctx, id, params)
}
