package queue

import (
	"strings"
	"testing"
)

func sampleEvent() BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:        "b-1",
		UserEmail:        "a@x.com",
		MovieTitle:       "Inception",
		ShowtimeStartsAt: "2026-09-02T18:00:00Z",
		SeatLabels:       []string{"B1", "B2"},
		TotalPriceCents:  3000,
		CreatedAt:        "2026-09-01T10:00:00Z",
	}
}

func TestBrokerURLPrecedence(t *testing.T) {
	t.Setenv("AMQP_URL", "amqp://fallback:5672/")
	if got := BrokerURL(); got != "amqp://fallback:5672/" {
		t.Errorf("BrokerURL() = %q, want AMQP_URL value", got)
	}

	t.Setenv("RABBITMQ_URL", "amqp://primary:5672/")
	if got := BrokerURL(); got != "amqp://primary:5672/" {
		t.Errorf("BrokerURL() = %q, RABBITMQ_URL must win", got)
	}
}

func TestConfirmationText(t *testing.T) {
	text := ConfirmationText(sampleEvent())
	for _, want := range []string{"b-1", "Inception", "B1, B2", "$30.00", "Enjoy your movie!"} {
		if !strings.Contains(text, want) {
			t.Errorf("confirmation text missing %q:\n%s", want, text)
		}
	}
}

func TestFormatBookingLine(t *testing.T) {
	line := FormatBookingLine(sampleEvent())
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line must end with a newline")
	}
	for _, want := range []string{"booking_id=b-1", "user=a@x.com", `movie="Inception"`, "total=3000 cents", "seats=[B1,B2]"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}
}

func TestFormatBookingLineNoSeats(t *testing.T) {
	ev := sampleEvent()
	ev.SeatLabels = nil
	if line := FormatBookingLine(ev); !strings.Contains(line, "seats=[]") {
		t.Errorf("log line should render empty seats as []: %s", line)
	}
}
