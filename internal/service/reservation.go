// Package service contains the reservation engine: the orchestration of
// availability checks, price computation, booking persistence and the
// conditional seat commit that keeps double-booking impossible.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/filmgate/movie-booking/internal/model"
)

// ErrSeatsUnavailable is returned when one or more requested seats are
// not available at decision time, or lost the race during the
// conditional update.  Clients may retry with a fresh seat selection.
var ErrSeatsUnavailable = errors.New("one or more seats are not available")

// SeatStore is the seat persistence contract consumed by the engine.
// ReserveAvailable must be conditional on the current status and report
// the number of rows actually transitioned.
type SeatStore interface {
	FindAvailable(ctx context.Context, showtimeID string, seatIDs []string) ([]model.Seat, error)
	ReserveAvailable(ctx context.Context, showtimeID string, seatIDs []string) (int64, error)
	ReleaseUnbooked(ctx context.Context, showtimeID string, seatIDs []string) (int64, error)
}

// BookingStore persists booking records.  DeleteByID is only used to
// compensate when the conditional seat update updates fewer rows than
// requested.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByIDPopulated(ctx context.Context, id string) (*model.BookingDetail, error)
	DeleteByID(ctx context.Context, id string) error
}

// Notifier delivers booking confirmations.  Implementations must not
// block the caller meaningfully and must swallow their own failures;
// notification outcome never affects booking outcome.
type Notifier interface {
	BookingCreated(detail *model.BookingDetail)
}

// ReservationService orchestrates booking creation and retrieval.
type ReservationService struct {
	seats          SeatStore
	bookings       BookingStore
	notifier       Notifier
	unitPriceCents uint32
}

// NewReservationService constructs the engine.  notifier may be nil, in
// which case confirmations are silently skipped.
func NewReservationService(seats SeatStore, bookings BookingStore, notifier Notifier, unitPriceCents uint32) *ReservationService {
	if seats == nil || bookings == nil {
		panic("nil store passed to NewReservationService")
	}
	return &ReservationService{
		seats:          seats,
		bookings:       bookings,
		notifier:       notifier,
		unitPriceCents: unitPriceCents,
	}
}

// CreateBooking reserves seatIDs for userID on the given showtime.
//
// The availability gate requires every requested id to match an
// available seat of the showtime; a mismatch (unknown seat, wrong
// showtime, already reserved, or a duplicate id in the request) aborts
// with ErrSeatsUnavailable before any write.  After the booking row is
// created, the seats are flipped available -> reserved with a single
// conditional update.  If fewer rows were updated than requested a
// concurrent booking won the race; the just-created booking is deleted
// and ErrSeatsUnavailable is returned.  The seat status column is the
// synchronization point, not the initial read.
func (s *ReservationService) CreateBooking(ctx context.Context, showtimeID, userID string, seatIDs []string) (*model.BookingDetail, error) {
	available, err := s.seats.FindAvailable(ctx, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}
	if len(available) != len(seatIDs) {
		return nil, ErrSeatsUnavailable
	}

	booking := &model.Booking{
		ID:              uuid.NewString(),
		ShowtimeID:      showtimeID,
		UserID:          userID,
		SeatIDs:         seatIDs,
		TotalPriceCents: uint32(len(available)) * s.unitPriceCents,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	updated, err := s.seats.ReserveAvailable(ctx, showtimeID, seatIDs)
	if err != nil {
		s.rollback(ctx, booking.ID)
		return nil, err
	}
	if updated != int64(len(seatIDs)) {
		// Late-detected conflict: another request reserved at least one
		// of these seats between the gate and the update.  Deleting the
		// booking first detaches this request's seat links, so the
		// release below only touches seats no booking owns; the winner's
		// seats keep their booking_seats rows and stay reserved.
		s.rollback(ctx, booking.ID)
		if _, relErr := s.seats.ReleaseUnbooked(ctx, showtimeID, seatIDs); relErr != nil {
			log.Printf("reservation: releasing unbooked seats for showtime %s failed: %v", showtimeID, relErr)
		}
		return nil, ErrSeatsUnavailable
	}

	detail, err := s.bookings.GetByIDPopulated(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		go s.notifier.BookingCreated(detail)
	}
	return detail, nil
}

// GetBooking resolves a booking with its showtime, movie and seats for
// display.  Pure read; repository.ErrBookingNotFound passes through.
func (s *ReservationService) GetBooking(ctx context.Context, id string) (*model.BookingDetail, error) {
	return s.bookings.GetByIDPopulated(ctx, id)
}

func (s *ReservationService) rollback(ctx context.Context, bookingID string) {
	if err := s.bookings.DeleteByID(ctx, bookingID); err != nil {
		// The orphaned booking references seats that were never fully
		// reserved; it must not be left behind silently.
		log.Printf("reservation: rollback of booking %s failed: %v", bookingID, err)
	}
}
