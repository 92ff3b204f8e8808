package repository

import (
	"context"
	"time"

	"fyyur-trivia/internal/fyyur/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowRepository interface {
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
	ListWithDetails(ctx context.Context) ([]*model.ShowDetail, error)

	// 場地端：過去為 start_time <= now，即將到來為 start_time > now
	CountByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) (int, error)
	ListByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error)

	// 音樂人端，join 對象換成場地
	CountByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) (int, error)
	ListByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error)
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{
		pool: pool,
	}
}

func (r *ShowRepositoryImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, venue_id, artist_id, start_time
	`
	err := r.pool.QueryRow(ctx, query,
		show.VenueID, show.ArtistID, show.StartTime,
	).Scan(
		&show.ID,
		&show.VenueID,
		&show.ArtistID,
		&show.StartTime,
	)
	if err != nil {
		return nil, err
	}
	return show, nil
}

func (r *ShowRepositoryImpl) ListWithDetails(ctx context.Context) ([]*model.ShowDetail, error) {
	query := `
		SELECT v.id, v.name, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		JOIN venues v ON v.id = s.venue_id
		ORDER BY s.id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*model.ShowDetail, 0)
	for rows.Next() {
		var show model.ShowDetail
		err := rows.Scan(
			&show.VenueID,
			&show.VenueName,
			&show.ArtistID,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.StartTime,
		)
		if err != nil {
			return nil, err
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

// timeFilter returns the comparison fragment for past/upcoming
func timeFilter(upcoming bool) string {
	if upcoming {
		return "start_time > $2"
	}
	return "start_time <= $2"
}

func (r *ShowRepositoryImpl) CountByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM shows
		WHERE venue_id = $1 AND ` + timeFilter(upcoming)

	var count int
	if err := r.pool.QueryRow(ctx, query, venueID, now).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ShowRepositoryImpl) ListByVenue(ctx context.Context, venueID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error) {
	query := `
		SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1 AND s.` + timeFilter(upcoming) + `
		ORDER BY s.start_time ASC
	`
	return r.listAttachments(ctx, query, venueID, now)
}

func (r *ShowRepositoryImpl) CountByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM shows
		WHERE artist_id = $1 AND ` + timeFilter(upcoming)

	var count int
	if err := r.pool.QueryRow(ctx, query, artistID, now).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ShowRepositoryImpl) ListByArtist(ctx context.Context, artistID int, now time.Time, upcoming bool) ([]model.ShowAttachment, error) {
	query := `
		SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1 AND s.` + timeFilter(upcoming) + `
		ORDER BY s.start_time ASC
	`
	return r.listAttachments(ctx, query, artistID, now)
}

func (r *ShowRepositoryImpl) listAttachments(ctx context.Context, query string, id int, now time.Time) ([]model.ShowAttachment, error) {
	rows, err := r.pool.Query(ctx, query, id, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := make([]model.ShowAttachment, 0)
	for rows.Next() {
		var attachment model.ShowAttachment
		err := rows.Scan(
			&attachment.ID,
			&attachment.Name,
			&attachment.ImageLink,
			&attachment.StartTime,
		)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attachments, nil
}
