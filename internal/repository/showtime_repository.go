package repository

import (
	"context"
	"database/sql"

	"github.com/filmgate/movie-booking/internal/model"
)

// ShowtimeRepo provides read access to scheduled screenings.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo constructs a ShowtimeRepo with the given DB handle.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo {
	return &ShowtimeRepo{db: db}
}

// ListByMovie returns all showtimes of a movie ordered by start time.
// An unknown movie id yields an empty slice.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID string) ([]model.Showtime, error) {
	const q = `SELECT id, movie_id, starts_at, created_at
	           FROM showtimes
	           WHERE movie_id = ?
	           ORDER BY starts_at`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Showtime
	for rows.Next() {
		var s model.Showtime
		if err := rows.Scan(&s.ID, &s.MovieID, &s.StartsAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
