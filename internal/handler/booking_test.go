package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/filmgate/movie-booking/internal/model"
	"github.com/filmgate/movie-booking/internal/repository"
	"github.com/filmgate/movie-booking/internal/service"
)

// stubService records calls and returns canned results.
type stubService struct {
	createCalls int
	detail      *model.BookingDetail
	createErr   error
	getErr      error
}

func (s *stubService) CreateBooking(_ context.Context, showtimeID, userID string, seatIDs []string) (*model.BookingDetail, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	d := *s.detail
	d.ShowtimeID = showtimeID
	d.UserID = userID
	d.SeatIDs = seatIDs
	return &d, nil
}

func (s *stubService) GetBooking(context.Context, string) (*model.BookingDetail, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.detail, nil
}

func sampleDetail() *model.BookingDetail {
	return &model.BookingDetail{
		Booking: model.Booking{
			ID:              "b-1",
			ShowtimeID:      "show-1",
			UserID:          "a@x.com",
			SeatIDs:         []string{"s1", "s2"},
			TotalPriceCents: 3000,
		},
		Showtime: model.Showtime{ID: "show-1", MovieID: "m-1"},
		Movie:    model.Movie{ID: "m-1", Title: "Inception"},
		Seats: []model.Seat{
			{ID: "s1", ShowtimeID: "show-1", RowLabel: "B", SeatNumber: 1, Status: model.SeatStatusReserved},
			{ID: "s2", ShowtimeID: "show-1", RowLabel: "B", SeatNumber: 2, Status: model.SeatStatusReserved},
		},
	}
}

func doRequest(t *testing.T, h *BookingHandler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.POST("/api/bookings", h.Create)
	e.GET("/api/bookings/:id", h.Get)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestCreateBookingResponse(t *testing.T) {
	stub := &stubService{detail: sampleDetail()}
	h := NewBookingHandler(stub)

	body := `{"showtimeId":"show-1","userId":"a@x.com","seatIds":["s1","s2"]}`
	rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != http.StatusCreated {
		t.Errorf("envelope status_code = %d, want %d", env.StatusCode, http.StatusCreated)
	}
	if env.Message != "Booking created successfully" {
		t.Errorf("envelope message = %q", env.Message)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data is %T, want object", env.Data)
	}
	booking, ok := data["booking"].(map[string]any)
	if !ok {
		t.Fatalf("data.booking is %T, want object", data["booking"])
	}
	if booking["userId"] != "a@x.com" {
		t.Errorf("data.booking.userId = %v, want a@x.com", booking["userId"])
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing showtimeId",
			body:    `{"userId":"a@x.com","seatIds":["s1"]}`,
			message: "showtimeId is required",
		},
		{
			name:    "missing userId",
			body:    `{"showtimeId":"show-1","seatIds":["s1"]}`,
			message: "userId is required",
		},
		{
			name:    "userId not an email",
			body:    `{"showtimeId":"show-1","userId":"not-an-email","seatIds":["s1"]}`,
			message: "userId must be a valid email address",
		},
		{
			name:    "empty seatIds",
			body:    `{"showtimeId":"show-1","userId":"a@x.com","seatIds":[]}`,
			message: "seatIds must contain at least 1 item(s)",
		},
		{
			name:    "malformed json",
			body:    `{"showtimeId":`,
			message: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubService{detail: sampleDetail()}
			h := NewBookingHandler(stub)
			rec := doRequest(t, h, http.MethodPost, "/api/bookings", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if env.Message != tt.message {
				t.Errorf("message = %q, want %q", env.Message, tt.message)
			}
			if stub.createCalls != 0 {
				t.Errorf("service called %d times, want 0", stub.createCalls)
			}
		})
	}
}

func TestCreateBookingSeatConflict(t *testing.T) {
	stub := &stubService{detail: sampleDetail(), createErr: service.ErrSeatsUnavailable}
	h := NewBookingHandler(stub)

	body := `{"showtimeId":"show-1","userId":"a@x.com","seatIds":["s1"]}`
	rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "One or more seats are not available" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateBookingStorageError(t *testing.T) {
	stub := &stubService{detail: sampleDetail(), createErr: errors.New("db down")}
	h := NewBookingHandler(stub)

	body := `{"showtimeId":"show-1","userId":"a@x.com","seatIds":["s1"]}`
	rec := doRequest(t, h, http.MethodPost, "/api/bookings", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != http.StatusInternalServerError {
		t.Errorf("envelope status_code = %d, want 500", env.StatusCode)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || len(data) != 0 {
		t.Errorf("error envelope data = %v, want empty object", env.Data)
	}
}

func TestGetBookingResponse(t *testing.T) {
	stub := &stubService{detail: sampleDetail()}
	h := NewBookingHandler(stub)

	rec := doRequest(t, h, http.MethodGet, "/api/bookings/b-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Booking details retrieved" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	stub := &stubService{getErr: repository.ErrBookingNotFound}
	h := NewBookingHandler(stub)

	rec := doRequest(t, h, http.MethodGet, "/api/bookings/nonexistent-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Booking not found" {
		t.Errorf("message = %q", env.Message)
	}
}
