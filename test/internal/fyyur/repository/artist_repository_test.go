package repository

import (
	"context"
	"testing"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/repository"
	apperrors "fyyur-trivia/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewArtistRepository(testDB)

		created, err := repo.Create(context.Background(), &model.Artist{
			Name:   "Guns N Petals",
			City:   "San Francisco",
			State:  "CA",
			Genres: "Rock n Roll",
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Guns N Petals", created.Name)
	})
}

func TestArtistRepository_SearchByName(t *testing.T) {
	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewArtistRepository(testDB)

		createTestArtist(t, "Guns N Petals")
		createTestArtist(t, "The Wild Sax Band")

		artists, err := repo.SearchByName(context.Background(), "band")
		require.NoError(t, err)
		require.Len(t, artists, 1)
		assert.Equal(t, "The Wild Sax Band", artists[0].Name)
	})
}

func TestArtistRepository_FindByID(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewArtistRepository(testDB)

		_, err := repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
	})
}

func TestArtistRepository_Update(t *testing.T) {
	t.Run("OverwritesAllFields", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewArtistRepository(testDB)

		id := createTestArtist(t, "Guns N Petals")

		updated, err := repo.Update(context.Background(), id, model.UpdateArtistParams{
			Name:   "Guns N Petals",
			City:   "Oakland",
			State:  "CA",
			Genres: "Rock n Roll, Jazz",
		})
		require.NoError(t, err)
		assert.Equal(t, "Oakland", updated.City)
		assert.Equal(t, "Rock n Roll, Jazz", updated.Genres)
		// 欄位沒送值就清空，部分更新不是這裡的語意
		assert.Empty(t, updated.Phone)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := repository.NewArtistRepository(testDB)

		_, err := repo.Update(context.Background(), 9999, model.UpdateArtistParams{Name: "ghost"})
		assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
	})
}
