package service

import (
	"context"
	"errors"
	"testing"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/service"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/test/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVenueService_ListGroupedByCity(t *testing.T) {
	ctx := context.Background()

	t.Run("GroupsAdjacentRows", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("List", ctx).Return([]*model.Venue{
			{ID: 1, Name: "Hop", City: "San Francisco", State: "CA"},
			{ID: 3, Name: "Park Square", City: "San Francisco", State: "CA"},
			{ID: 2, Name: "Gaslight", City: "New York", State: "NY"},
		}, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, true).Return(2, nil).Once()
		showRepo.On("CountByVenue", ctx, 3, mock.Anything, true).Return(0, nil).Once()
		showRepo.On("CountByVenue", ctx, 2, mock.Anything, true).Return(1, nil).Once()

		groups, err := venueService.ListGroupedByCity(ctx)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "San Francisco", groups[0].City)
		require.Len(t, groups[0].Venues, 2)
		assert.Equal(t, 1, groups[0].Venues[0].ID)
		assert.Equal(t, 2, groups[0].Venues[0].NumUpcomingShows)
		assert.Equal(t, 3, groups[0].Venues[1].ID)
		assert.Equal(t, "New York", groups[1].City)
		venueRepo.AssertExpectations(t)
		showRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("List", ctx).Return(nil, errors.New("db error")).Once()

		_, err := venueService.ListGroupedByCity(ctx)

		require.Error(t, err)
		showRepo.AssertNotCalled(t, "CountByVenue")
	})
}

func TestVenueService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("CountAndPerResultUpcoming", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("SearchByName", ctx, "music").Return([]*model.Venue{
			{ID: 1, Name: "The Musical Hop"},
			{ID: 3, Name: "Park Square Live Music & Coffee"},
		}, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, true).Return(1, nil).Once()
		showRepo.On("CountByVenue", ctx, 3, mock.Anything, true).Return(0, nil).Once()

		result, err := venueService.Search(ctx, "music")

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		require.Len(t, result.Data, 2)
		assert.Equal(t, 1, result.Data[0].NumUpcomingShows)
		venueRepo.AssertExpectations(t)
	})
}

func TestVenueService_GetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("SplitsGenresAndFetchesLists", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("FindByID", ctx, 1).Return(&model.Venue{
			ID: 1, Name: "Hop", Genres: "Jazz, Reggae, Swing",
		}, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, false).Return(1, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, true).Return(2, nil).Once()
		showRepo.On("ListByVenue", ctx, 1, mock.Anything, false).Return([]model.ShowAttachment{
			{ID: 4, Name: "Guns N Petals"},
		}, nil).Once()
		showRepo.On("ListByVenue", ctx, 1, mock.Anything, true).Return([]model.ShowAttachment{
			{ID: 5, Name: "Matt Quevedo"},
			{ID: 6, Name: "The Wild Sax Band"},
		}, nil).Once()

		page, err := venueService.GetPage(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, page.GenreList)
		assert.Equal(t, 1, page.PastShowsCount)
		assert.Equal(t, 2, page.UpcomingShowsCount)
		assert.Len(t, page.PastShows, 1)
		assert.Len(t, page.UpcomingShows, 2)
		showRepo.AssertExpectations(t)
	})

	t.Run("ZeroCountSkipsListQuery", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("FindByID", ctx, 1).Return(&model.Venue{ID: 1, Genres: ""}, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, false).Return(0, nil).Once()
		showRepo.On("CountByVenue", ctx, 1, mock.Anything, true).Return(0, nil).Once()

		page, err := venueService.GetPage(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, page.PastShows)
		assert.Empty(t, page.UpcomingShows)
		assert.Empty(t, page.GenreList)
		showRepo.AssertNotCalled(t, "ListByVenue")
	})

	t.Run("NotFound", func(t *testing.T) {
		venueRepo := mocks.NewVenueRepositoryMock()
		showRepo := mocks.NewShowRepositoryMock()
		venueService := service.NewVenueService(venueRepo, showRepo)

		venueRepo.On("FindByID", ctx, 99999).Return(nil, apperrors.ErrVenueNotFound).Once()

		_, err := venueService.GetPage(ctx, 99999)

		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		showRepo.AssertNotCalled(t, "CountByVenue")
	})
}
