package repository // repository defines data access for seats

import (
	"context"
	"database/sql"

	"github.com/filmgate/movie-booking/internal/model"
)

// SeatRepo provides methods to work with seats in the database.  The
// seat status column is the synchronization point for reservations:
// every mutation goes through the conditional update in
// ReserveAvailable, never a plain write.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByShowtime retrieves all seats of a showtime ordered by row_label
// then seat_number.  A showtime with no provisioned seats (or an
// unknown showtime id) yields an empty slice, not an error.
func (r *SeatRepo) ListByShowtime(ctx context.Context, showtimeID string) ([]model.Seat, error) {
	const q = `SELECT id, showtime_id, row_label, seat_number, status
	           FROM seats
	           WHERE showtime_id = ?
	           ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeats(rows)
}

// FindAvailable returns the seats among seatIDs that belong to the
// given showtime and are still available.  Seats that do not exist,
// belong to another showtime or are already reserved simply do not
// appear in the result; duplicate ids in seatIDs match at most once.
func (r *SeatRepo) FindAvailable(ctx context.Context, showtimeID string, seatIDs []string) ([]model.Seat, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	q := `SELECT id, showtime_id, row_label, seat_number, status
	      FROM seats
	      WHERE id IN (` + placeholders(len(seatIDs)) + `) AND showtime_id = ? AND status = ?`
	rows, err := r.db.QueryContext(ctx, q, idArgs(seatIDs, showtimeID, model.SeatStatusAvailable)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeats(rows)
}

// ReserveAvailable transitions the given seats from available to
// reserved in one conditional statement and reports how many rows were
// actually updated.  A count lower than len(seatIDs) means a concurrent
// booking won the race on one or more seats; the caller must treat that
// as a conflict and compensate.
func (r *SeatRepo) ReserveAvailable(ctx context.Context, showtimeID string, seatIDs []string) (int64, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}
	q := `UPDATE seats
	      SET status = ?
	      WHERE id IN (` + placeholders(len(seatIDs)) + `) AND showtime_id = ? AND status = ?`
	args := append([]any{model.SeatStatusReserved}, idArgs(seatIDs, showtimeID, model.SeatStatusAvailable)...)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ReleaseUnbooked flips reserved seats among seatIDs back to available
// when no booking references them.  The reservation engine calls this
// after deleting its own booking on a lost race; seats belonging to the
// winning booking still have booking_seats rows and are left untouched.
func (r *SeatRepo) ReleaseUnbooked(ctx context.Context, showtimeID string, seatIDs []string) (int64, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}
	q := `UPDATE seats s
	      LEFT JOIN booking_seats bs ON bs.seat_id = s.id
	      SET s.status = ?
	      WHERE s.id IN (` + placeholders(len(seatIDs)) + `)
	        AND s.showtime_id = ? AND s.status = ? AND bs.booking_id IS NULL`
	args := append([]any{model.SeatStatusAvailable}, idArgs(seatIDs, showtimeID, model.SeatStatusReserved)...)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanSeats(rows *sql.Rows) ([]model.Seat, error) {
	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.ShowtimeID, &s.RowLabel, &s.SeatNumber, &s.Status); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
