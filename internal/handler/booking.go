package handler

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/filmgate/movie-booking/internal/model"
	"github.com/filmgate/movie-booking/internal/repository"
	"github.com/filmgate/movie-booking/internal/service"
)

// ReservationService is the slice of the reservation engine the booking
// handlers consume.
type ReservationService interface {
	CreateBooking(ctx context.Context, showtimeID, userID string, seatIDs []string) (*model.BookingDetail, error)
	GetBooking(ctx context.Context, id string) (*model.BookingDetail, error)
}

// BookingHandler serves POST /api/bookings and GET /api/bookings/:id.
type BookingHandler struct {
	Service  ReservationService
	validate *validator.Validate
}

// NewBookingHandler constructs a BookingHandler.  The service must be
// non-nil.
func NewBookingHandler(svc ReservationService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	v := validator.New()
	// report errors under the JSON field names clients actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &BookingHandler{Service: svc, validate: v}
}

// createBookingRequest mirrors the POST /api/bookings body.  userId is
// the requester's email; seatIds must contain at least one id.
type createBookingRequest struct {
	ShowtimeID string   `json:"showtimeId" validate:"required"`
	UserID     string   `json:"userId" validate:"required,email"`
	SeatIDs    []string `json:"seatIds" validate:"required,min=1,dive,required"`
}

// Create handles POST /api/bookings.  Validation failures and seat
// conflicts both surface as 400; only storage trouble becomes 500.  No
// store access happens before the body validates.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return respond(c, http.StatusBadRequest, validationMessage(err), nil)
	}

	detail, err := h.Service.CreateBooking(c.Request().Context(), req.ShowtimeID, req.UserID, req.SeatIDs)
	if err != nil {
		if errors.Is(err, service.ErrSeatsUnavailable) {
			return respond(c, http.StatusBadRequest, "One or more seats are not available", nil)
		}
		return err
	}
	return respond(c, http.StatusCreated, "Booking created successfully", echo.Map{"booking": detail})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	detail, err := h.Service.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return respond(c, http.StatusNotFound, "Booking not found", nil)
		}
		return err
	}
	return respond(c, http.StatusOK, "Booking details retrieved", echo.Map{"booking": detail})
}

// validationMessage turns the first field error into a short client
// facing description, e.g. "userId must be a valid email address".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must contain at least " + fe.Param() + " item(s)"
	default:
		return field + " is invalid"
	}
}
