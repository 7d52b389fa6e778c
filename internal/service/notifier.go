package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/filmgate/movie-booking/internal/model"
	q "github.com/filmgate/movie-booking/internal/queue"
)

// BookingQueueName is the durable queue carrying confirmation events.
const BookingQueueName = "booking.confirmed"

// AMQPNotifier publishes booking confirmations to RabbitMQ.  It is
// strictly best-effort: every failure is logged and swallowed so the
// booking response is never delayed or unwound by broker trouble.
type AMQPNotifier struct{}

// BookingCreated publishes a BookingConfirmedEvent for the booking.
// Callers run it in a goroutine; it never panics and never reports
// errors upward.
func (AMQPNotifier) BookingCreated(detail *model.BookingDetail) {
	if detail == nil {
		return
	}
	labels := make([]string, 0, len(detail.Seats))
	for _, s := range detail.Seats {
		labels = append(labels, s.Label())
	}
	event := q.BookingConfirmedEvent{
		BookingID:        detail.Booking.ID,
		UserEmail:        detail.Booking.UserID,
		MovieTitle:       detail.Movie.Title,
		ShowtimeStartsAt: detail.Showtime.StartsAt.UTC().Format(time.RFC3339),
		SeatLabels:       labels,
		TotalPriceCents:  detail.Booking.TotalPriceCents,
		CreatedAt:        detail.Booking.CreatedAt.UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := publishBookingConfirmed(ctx, event); err != nil {
		log.Printf("notifier: booking %s confirmation not published: %v", event.BookingID, err)
	}
}

// publishBookingConfirmed dials the broker, declares the durable queue
// (idempotent) and publishes one persistent JSON message.
func publishBookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		BookingQueueName, // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx,
		"",               // default exchange
		BookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
