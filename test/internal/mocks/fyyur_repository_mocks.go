package mocks

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"

	"github.com/stretchr/testify/mock"
)

type VenueRepositoryMock struct {
	mock.Mock
}

func NewVenueRepositoryMock() *VenueRepositoryMock {
	return &VenueRepositoryMock{}
}

func (m *VenueRepositoryMock) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) List(ctx context.Context) ([]*model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *VenueRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ArtistRepositoryMock struct {
	mock.Mock
}

func NewArtistRepositoryMock() *ArtistRepositoryMock {
	return &ArtistRepositoryMock{}
}

func (m *ArtistRepositoryMock) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *ArtistRepositoryMock) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

type ShowRepositoryMock struct {
	mock.Mock
}

func NewShowRepositoryMock() *ShowRepositoryMock {
	return &ShowRepositoryMock{}
}

func (m *ShowRepositoryMock) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *ShowRepositoryMock) ListWithDetails(ctx context.Context) ([]*model.ShowDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowDetail), args.Error(1)
}

func (m *ShowRepositoryMock) CountByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) (int, error) {
	args := m.Called(ctx, venueID, now, upcoming)
	return args.Int(0), args.Error(1)
}

func (m *ShowRepositoryMock) ListByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error) {
	args := m.Called(ctx, venueID, now, upcoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShowAttachment), args.Error(1)
}

func (m *ShowRepositoryMock) CountByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) (int, error) {
	args := m.Called(ctx, artistID, now, upcoming)
	return args.Int(0), args.Error(1)
}

func (m *ShowRepositoryMock) ListByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error) {
	args := m.Called(ctx, artistID, now, upcoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShowAttachment), args.Error(1)
}
