// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into confirmations.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// created.  It carries enough information for downstream consumers to
// email or log the confirmation without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID        string   `json:"booking_id"`
	UserEmail        string   `json:"user_email"`
	MovieTitle       string   `json:"movie_title"`
	ShowtimeStartsAt string   `json:"showtime_starts_at"`
	SeatLabels       []string `json:"seats"`
	TotalPriceCents  uint32   `json:"total_price_cents"`
	CreatedAt        string   `json:"created_at"`
}
