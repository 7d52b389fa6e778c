package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/filmgate/movie-booking/internal/model"
)

// ErrMovieNotFound is returned when a movie lookup yields no rows.
var ErrMovieNotFound = errors.New("movie not found")

const movieColumns = `id, title, description, poster_url, release_date, created_at`

// MovieRepo provides read access to the movie catalog.  The booking
// core never mutates movies; writes happen through the seeder or
// external tooling.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// ListAll returns every movie ordered by title.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies ORDER BY title`
	return r.query(ctx, q)
}

// SearchByTitle performs a case-insensitive substring match on titles.
// An empty query matches everything.
func (r *MovieRepo) SearchByTitle(ctx context.Context, query string) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(title) LIKE LOWER(?) ORDER BY title`
	return r.query(ctx, q, "%"+query+"%")
}

// NowPlaying returns movies whose release date is on or before now.
func (r *MovieRepo) NowPlaying(ctx context.Context, now time.Time) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE release_date <= ? ORDER BY release_date DESC`
	return r.query(ctx, q, now)
}

// ComingSoon returns movies whose release date is after now.
func (r *MovieRepo) ComingSoon(ctx context.Context, now time.Time) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE release_date > ? ORDER BY release_date`
	return r.query(ctx, q, now)
}

// GetByID retrieves a single movie by its id.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	var m model.Movie
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Title, &m.Description, &m.PosterURL, &m.ReleaseDate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) query(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.PosterURL, &m.ReleaseDate, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
