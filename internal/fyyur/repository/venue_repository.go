package repository

import (
	"context"

	"fyyur-trivia/internal/fyyur/model"
	apperrors "fyyur-trivia/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	List(ctx context.Context) ([]*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*model.Venue, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `id, name, city, state, address, phone,
		image_link, facebook_link, website, genres, seeking_talent, seeking_description`

func scanVenue(row pgx.Row, venue *model.Venue) error {
	return row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.Genres,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
	)
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (name, city, state, address, phone,
			image_link, facebook_link, website, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + venueColumns

	row := r.pool.QueryRow(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website, venue.Genres,
		venue.SeekingTalent, venue.SeekingDescription,
	)
	if err := scanVenue(row, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

// List 依 state、city、id 排序，讓 service 可以線性分組
func (r *VenueRepositoryImpl) List(ctx context.Context) ([]*model.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		ORDER BY state ASC, city ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		var venue model.Venue
		if err := scanVenue(rows, &venue); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE id = $1
	`

	var venue model.Venue
	err := scanVenue(r.pool.QueryRow(ctx, query, id), &venue)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}

	return &venue, nil
}

// SearchByName 不分大小寫的子字串比對，空字串等於全部列出
func (r *VenueRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		var venue model.Venue
		if err := scanVenue(rows, &venue); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
			genres = $6, facebook_link = $7
		WHERE id = $8
		RETURNING ` + venueColumns

	var venue model.Venue
	row := r.pool.QueryRow(ctx, query,
		params.Name, params.City, params.State, params.Address, params.Phone,
		params.Genres, params.FacebookLink, id,
	)
	if err := scanVenue(row, &venue); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}

	return &venue, nil
}

// Delete 刪除不存在的 id 不算錯誤，對齊原本端點的行為
func (r *VenueRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM venues
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id)
	return err
}
