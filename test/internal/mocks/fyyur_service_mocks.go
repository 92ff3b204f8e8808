package mocks

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"

	"github.com/stretchr/testify/mock"
)

type VenueServiceMock struct {
	mock.Mock
}

func NewVenueServiceMock() *VenueServiceMock {
	return &VenueServiceMock{}
}

func (m *VenueServiceMock) ListGroupedByCity(ctx context.Context) ([]model.CityGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CityGroup), args.Error(1)
}

func (m *VenueServiceMock) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResult), args.Error(1)
}

func (m *VenueServiceMock) GetPage(ctx context.Context, id int) (*model.VenuePage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VenuePage), args.Error(1)
}

func (m *VenueServiceMock) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ArtistServiceMock struct {
	mock.Mock
}

func NewArtistServiceMock() *ArtistServiceMock {
	return &ArtistServiceMock{}
}

func (m *ArtistServiceMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResult), args.Error(1)
}

func (m *ArtistServiceMock) GetPage(ctx context.Context, id int) (*model.ArtistPage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtistPage), args.Error(1)
}

func (m *ArtistServiceMock) GetByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistServiceMock) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

type ShowServiceMock struct {
	mock.Mock
}

func NewShowServiceMock() *ShowServiceMock {
	return &ShowServiceMock{}
}

func (m *ShowServiceMock) List(ctx context.Context) ([]*model.ShowDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowDetail), args.Error(1)
}

func (m *ShowServiceMock) Create(ctx context.Context, artistID, venueID int, startTime time.Time) (*model.Show, error) {
	args := m.Called(ctx, artistID, venueID, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}
