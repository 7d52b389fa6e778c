package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/filmgate/movie-booking/internal/config"
	"github.com/filmgate/movie-booking/internal/database"
	"github.com/filmgate/movie-booking/internal/handler"
	"github.com/filmgate/movie-booking/internal/queue"
	"github.com/filmgate/movie-booking/internal/repository"
	"github.com/filmgate/movie-booking/internal/router"
	"github.com/filmgate/movie-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}
	if cfg.SeedData {
		if err := database.Seed(ctx, db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// Confirmation consumer; reconnects on its own, never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	showtimeRepo := repository.NewShowtimeRepo(db)

	reservations := service.NewReservationService(seatRepo, bookingRepo, service.AMQPNotifier{}, uint32(cfg.TicketPriceCents))

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e,
		handler.NewBookingHandler(reservations),
		handler.NewMovieHandler(movieRepo, showtimeRepo),
		handler.NewShowtimeHandler(seatRepo),
		rdb,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
