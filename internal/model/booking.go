package model

import "time"

// Booking commits a set of seats to a requester for one showtime.
// Bookings are immutable once created; the only delete performed by
// this service is the internal rollback after a lost seat race.
//
// Fields:
//  ID              – UUID primary key.
//  ShowtimeID      – showtime the seats belong to.
//  UserID          – requester identifier; an email address validated
//                    upstream, treated as opaque here.
//  SeatIDs         – seats committed by this booking, no duplicates.
//  TotalPriceCents – seat count times the configured unit price.
//  CreatedAt       – creation timestamp.
type Booking struct {
	ID              string    `json:"id"`              // bookings.id
	ShowtimeID      string    `json:"showtimeId"`      // bookings.showtime_id
	UserID          string    `json:"userId"`          // bookings.user_id
	SeatIDs         []string  `json:"seatIds"`         // booking_seats.seat_id
	TotalPriceCents uint32    `json:"totalPriceCents"` // bookings.total_price_cents
	CreatedAt       time.Time `json:"createdAt"`       // bookings.created_at
}

// BookingDetail is a booking resolved for display: the showtime, its
// movie and the full seat records are populated alongside the raw
// booking fields.
type BookingDetail struct {
	Booking
	Showtime Showtime `json:"showtime"`
	Movie    Movie    `json:"movie"`
	Seats    []Seat   `json:"seats"`
}
