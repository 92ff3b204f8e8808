package service

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/repository"
)

type VenueService interface {
	ListGroupedByCity(ctx context.Context) ([]model.CityGroup, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	GetPage(ctx context.Context, id int) (*model.VenuePage, error)
	GetByID(ctx context.Context, id int) (*model.Venue, error)
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueServiceImpl struct {
	repo     repository.VenueRepository
	showRepo repository.ShowRepository
}

func NewVenueService(repo repository.VenueRepository, showRepo repository.ShowRepository) VenueService {
	return &VenueServiceImpl{repo: repo, showRepo: showRepo}
}

// ListGroupedByCity 依 (city, state) 分組，state 升冪、組內 id 升冪
func (s *VenueServiceImpl) ListGroupedByCity(ctx context.Context) ([]model.CityGroup, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	groups := make([]model.CityGroup, 0)

	for _, venue := range venues {
		upcoming, err := s.showRepo.CountByVenue(ctx, venue.ID, now, true)
		if err != nil {
			return nil, err
		}
		summary := model.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming,
		}

		// repo 已排序，同組的列一定相鄰
		if n := len(groups); n > 0 && groups[n-1].City == venue.City && groups[n-1].State == venue.State {
			groups[n-1].Venues = append(groups[n-1].Venues, summary)
			continue
		}
		groups = append(groups, model.CityGroup{
			City:   venue.City,
			State:  venue.State,
			Venues: []model.VenueSummary{summary},
		})
	}

	return groups, nil
}

func (s *VenueServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	data := make([]model.VenueSummary, 0, len(venues))
	for _, venue := range venues {
		upcoming, err := s.showRepo.CountByVenue(ctx, venue.ID, now, true)
		if err != nil {
			return nil, err
		}
		data = append(data, model.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming,
		})
	}

	return &model.SearchResult{Count: len(venues), Data: data}, nil
}

// GetPage 先算過去與即將到來的場次數，數量大於零才撈對應列表
func (s *VenueServiceImpl) GetPage(ctx context.Context, id int) (*model.VenuePage, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	page := &model.VenuePage{
		Venue:         *venue,
		GenreList:     model.SplitGenres(venue.Genres),
		PastShows:     []model.ShowAttachment{},
		UpcomingShows: []model.ShowAttachment{},
	}

	page.PastShowsCount, err = s.showRepo.CountByVenue(ctx, id, now, false)
	if err != nil {
		return nil, err
	}
	page.UpcomingShowsCount, err = s.showRepo.CountByVenue(ctx, id, now, true)
	if err != nil {
		return nil, err
	}

	if page.PastShowsCount > 0 {
		page.PastShows, err = s.showRepo.ListByVenue(ctx, id, now, false)
		if err != nil {
			return nil, err
		}
	}
	if page.UpcomingShowsCount > 0 {
		page.UpcomingShows, err = s.showRepo.ListByVenue(ctx, id, now, true)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

func (s *VenueServiceImpl) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	return s.repo.Create(ctx, venue)
}

func (s *VenueServiceImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *VenueServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
