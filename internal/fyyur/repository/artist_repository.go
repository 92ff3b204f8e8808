package repository

import (
	"context"

	"fyyur-trivia/internal/fyyur/model"
	apperrors "fyyur-trivia/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	List(ctx context.Context) ([]*model.Artist, error)
	FindByID(ctx context.Context, id int) (*model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*model.Artist, error)
	Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error)
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

const artistColumns = `id, name, city, state, phone,
		image_link, facebook_link, website, genres, seeking_venue, seeking_description`

func scanArtist(row pgx.Row, artist *model.Artist) error {
	return row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.Website,
		&artist.Genres,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	query := `
		INSERT INTO artists (name, city, state, phone,
			image_link, facebook_link, website, genres, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + artistColumns

	row := r.pool.QueryRow(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		artist.ImageLink, artist.FacebookLink, artist.Website, artist.Genres,
		artist.SeekingVenue, artist.SeekingDescription,
	)
	if err := scanArtist(row, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (r *ArtistRepositoryImpl) List(ctx context.Context) ([]*model.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		ORDER BY state ASC, city ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		var artist model.Artist
		if err := scanArtist(rows, &artist); err != nil {
			return nil, err
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE id = $1
	`

	var artist model.Artist
	err := scanArtist(r.pool.QueryRow(ctx, query, id), &artist)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}

	return &artist, nil
}

func (r *ArtistRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		var artist model.Artist
		if err := scanArtist(rows, &artist); err != nil {
			return nil, err
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artists, nil
}

func (r *ArtistRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4,
			genres = $5, facebook_link = $6
		WHERE id = $7
		RETURNING ` + artistColumns

	var artist model.Artist
	row := r.pool.QueryRow(ctx, query,
		params.Name, params.City, params.State, params.Phone,
		params.Genres, params.FacebookLink, id,
	)
	if err := scanArtist(row, &artist); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}

	return &artist, nil
}
