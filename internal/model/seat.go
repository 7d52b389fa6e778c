package model

import "strconv"

// Seat status values.  A seat only ever moves from available to
// reserved; there is no release path in this service.
const (
	SeatStatusAvailable = "available"
	SeatStatusReserved  = "reserved"
)

// Seat is a bookable unit tied to exactly one showtime.  RowLabel and
// SeatNumber identify the seat's position within the auditorium.
//
// Fields:
//  ID         – UUID primary key.
//  ShowtimeID – showtime this seat belongs to for its lifetime.
//  RowLabel   – letter or string designating the row, e.g. "A".
//  SeatNumber – 1-based position in the row.
//  Status     – available or reserved.
type Seat struct {
	ID         string `json:"id"`         // seats.id
	ShowtimeID string `json:"showtimeId"` // seats.showtime_id
	RowLabel   string `json:"row"`        // seats.row_label
	SeatNumber uint32 `json:"number"`     // seats.seat_number
	Status     string `json:"status"`     // seats.status
}

// Label renders the seat's human-readable position, e.g. "B7".
func (s Seat) Label() string {
	return s.RowLabel + strconv.FormatUint(uint64(s.SeatNumber), 10)
}
