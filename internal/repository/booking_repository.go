package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/filmgate/movie-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo persists bookings and their seat links.  Bookings are
// append-only from the service's perspective; DeleteByID exists solely
// so the reservation engine can compensate after losing a seat race.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts the booking row together with its booking_seats links.
// Both inserts run inside one transaction so a booking never exists
// without its seat set.  CreatedAt is populated from the stored row.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const ins = `INSERT INTO bookings (id, showtime_id, user_id, total_price_cents) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins, b.ID, b.ShowtimeID, b.UserID, b.TotalPriceCents); err != nil {
		return err
	}

	query := `INSERT INTO booking_seats (booking_id, seat_id) VALUES `
	args := make([]any, 0, len(b.SeatIDs)*2)
	for i, seatID := range b.SeatIDs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, b.ID, seatID)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByIDPopulated resolves a booking together with its showtime, the
// showtime's movie and the full seat records, ready for display.
func (r *BookingRepo) GetByIDPopulated(ctx context.Context, id string) (*model.BookingDetail, error) {
	const q = `SELECT b.id, b.showtime_id, b.user_id, b.total_price_cents, b.created_at,
	                  st.id, st.movie_id, st.starts_at, st.created_at,
	                  m.id, m.title, m.description, m.poster_url, m.release_date, m.created_at
	           FROM bookings b
	           JOIN showtimes st ON st.id = b.showtime_id
	           JOIN movies m ON m.id = st.movie_id
	           WHERE b.id = ?`
	var d model.BookingDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.Booking.ID, &d.Booking.ShowtimeID, &d.Booking.UserID, &d.Booking.TotalPriceCents, &d.Booking.CreatedAt,
		&d.Showtime.ID, &d.Showtime.MovieID, &d.Showtime.StartsAt, &d.Showtime.CreatedAt,
		&d.Movie.ID, &d.Movie.Title, &d.Movie.Description, &d.Movie.PosterURL, &d.Movie.ReleaseDate, &d.Movie.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	const seatQ = `SELECT s.id, s.showtime_id, s.row_label, s.seat_number, s.status
	               FROM booking_seats bs
	               JOIN seats s ON s.id = bs.seat_id
	               WHERE bs.booking_id = ?
	               ORDER BY s.row_label, s.seat_number`
	rows, err := r.db.QueryContext(ctx, seatQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats, err := scanSeats(rows)
	if err != nil {
		return nil, err
	}
	d.Seats = seats
	d.Booking.SeatIDs = make([]string, 0, len(seats))
	for _, s := range seats {
		d.Booking.SeatIDs = append(d.Booking.SeatIDs, s.ID)
	}
	return &d, nil
}

// DeleteByID removes a booking; booking_seats rows go with it via the
// ON DELETE CASCADE constraint.  Deleting an unknown id is not an error.
func (r *BookingRepo) DeleteByID(ctx context.Context, id string) error {
	const q = `DELETE FROM bookings WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
