package service

import (
	"context"
	"testing"
	"time"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/service"
	"fyyur-trivia/test/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowService_Create(t *testing.T) {
	ctx := context.Background()

	// 迴歸測試：送出的 artist_id 與 venue_id 在寫入時互換，這是沿用下來的既有行為
	t.Run("PreservesFieldSwap", func(t *testing.T) {
		showRepo := mocks.NewShowRepositoryMock()
		showService := service.NewShowService(showRepo)

		startTime := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

		showRepo.On("Create", ctx, mock.MatchedBy(func(show *model.Show) bool {
			return show.VenueID == 5 && show.ArtistID == 9
		})).Return(&model.Show{ID: 1, VenueID: 5, ArtistID: 9, StartTime: startTime}, nil).Once()

		created, err := showService.Create(ctx, 5, 9, startTime)

		require.NoError(t, err)
		assert.Equal(t, 5, created.VenueID)
		assert.Equal(t, 9, created.ArtistID)
		showRepo.AssertExpectations(t)
	})
}

func TestShowService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("PassesThrough", func(t *testing.T) {
		showRepo := mocks.NewShowRepositoryMock()
		showService := service.NewShowService(showRepo)

		showRepo.On("ListWithDetails", ctx).Return([]*model.ShowDetail{
			{VenueID: 1, VenueName: "Hop", ArtistID: 4, ArtistName: "Guns N Petals"},
		}, nil).Once()

		shows, err := showService.List(ctx)

		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, "Hop", shows[0].VenueName)
	})
}
