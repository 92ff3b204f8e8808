package repository

import (
	"context"
	"testing"
	"time"

	"fyyur-trivia/internal/fyyur/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowRepository_CountByVenue(t *testing.T) {
	repo := repository.NewShowRepository(getTestDB())
	ctx := context.Background()

	t.Run("UpcomingIsStrictlyAfterNow", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		venueID := createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
		artistID := createTestArtist(t, "Guns N Petals")

		now := time.Now().UTC().Truncate(time.Microsecond)
		createTestShow(t, venueID, artistID, now.Add(-time.Hour)) // past
		createTestShow(t, venueID, artistID, now)                 // boundary: counts as past
		createTestShow(t, venueID, artistID, now.Add(time.Hour))  // upcoming

		upcoming, err := repo.CountByVenue(ctx, venueID, now, true)
		require.NoError(t, err)
		assert.Equal(t, 1, upcoming)

		past, err := repo.CountByVenue(ctx, venueID, now, false)
		require.NoError(t, err)
		assert.Equal(t, 2, past)
	})

	t.Run("OtherVenuesExcluded", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		venueID := createTestVenue(t, "A", "San Francisco", "CA")
		otherID := createTestVenue(t, "B", "San Francisco", "CA")
		artistID := createTestArtist(t, "Artist")

		now := time.Now().UTC()
		createTestShow(t, otherID, artistID, now.Add(time.Hour))

		upcoming, err := repo.CountByVenue(ctx, venueID, now, true)
		require.NoError(t, err)
		assert.Zero(t, upcoming)
	})
}

func TestShowRepository_ListByVenue(t *testing.T) {
	repo := repository.NewShowRepository(getTestDB())
	ctx := context.Background()

	t.Run("JoinsArtistDetails", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		venueID := createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
		artistID := createTestArtist(t, "Guns N Petals")

		now := time.Now().UTC()
		createTestShow(t, venueID, artistID, now.Add(time.Hour))

		shows, err := repo.ListByVenue(ctx, venueID, now, true)

		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, artistID, shows[0].ID)
		assert.Equal(t, "Guns N Petals", shows[0].Name)
	})
}

func TestShowRepository_ListWithDetails(t *testing.T) {
	repo := repository.NewShowRepository(getTestDB())
	ctx := context.Background()

	t.Run("DenormalizedRows", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		venueID := createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
		artistID := createTestArtist(t, "Guns N Petals")
		createTestShow(t, venueID, artistID, time.Now().UTC().Add(time.Hour))

		shows, err := repo.ListWithDetails(ctx)

		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, venueID, shows[0].VenueID)
		assert.Equal(t, "The Musical Hop", shows[0].VenueName)
		assert.Equal(t, artistID, shows[0].ArtistID)
		assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	})

	t.Run("OrphanedShowExcludedFromJoin", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		venueID := createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
		artistID := createTestArtist(t, "Guns N Petals")
		createTestShow(t, venueID, artistID, time.Now().UTC())

		// 沒有外鍵約束，刪掉場地會留下孤兒 show
		require.NoError(t, repository.NewVenueRepository(getTestDB()).Delete(ctx, venueID))

		shows, err := repo.ListWithDetails(ctx)

		require.NoError(t, err)
		assert.Empty(t, shows)
	})
}
