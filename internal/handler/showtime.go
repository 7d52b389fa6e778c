package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmgate/movie-booking/internal/model"
	"github.com/filmgate/movie-booking/internal/repository"
)

// ShowtimeHandler serves the seat map of a showtime.
type ShowtimeHandler struct {
	Seats *repository.SeatRepo
}

// NewShowtimeHandler constructs a ShowtimeHandler.
func NewShowtimeHandler(seats *repository.SeatRepo) *ShowtimeHandler {
	if seats == nil {
		panic("nil repository passed to NewShowtimeHandler")
	}
	return &ShowtimeHandler{Seats: seats}
}

// ListSeats handles GET /api/showtimes/:id/seats.  All seats of the
// showtime are returned regardless of status; a showtime that does not
// exist simply has zero seats.
func (h *ShowtimeHandler) ListSeats(c echo.Context) error {
	seats, err := h.Seats.ListByShowtime(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return respond(c, http.StatusOK, "Seats retrieved", echo.Map{"seats": seats})
}
