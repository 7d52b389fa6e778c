// Package router wires HTTP routes to handlers and installs the global
// error handler that keeps the response envelope uniform.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/filmgate/movie-booking/internal/config"
	"github.com/filmgate/movie-booking/internal/handler"
	"github.com/filmgate/movie-booking/internal/middleware"
)

// RegisterRoutes registers every route of the API.  Catalog reads run
// behind the Redis response cache; the token bucket applies to all
// routes.  rdb may be nil, in which case both middlewares pass through.
func RegisterRoutes(e *echo.Echo, b *handler.BookingHandler, m *handler.MovieHandler, s *handler.ShowtimeHandler, rdb *redis.Client) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.POST("/bookings", b.Create)
	api.GET("/bookings/:id", b.Get)
	api.GET("/showtimes/:id/seats", s.ListSeats)

	// Read-mostly catalog; safe to serve from cache.
	catalog := api.Group("", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	catalog.GET("/movies", m.List)
	catalog.GET("/movies/search", m.Search)
	catalog.GET("/movies/now-playing", m.NowPlaying)
	catalog.GET("/movies/coming-soon", m.ComingSoon)
	catalog.GET("/movies/:id", m.Get)
	catalog.GET("/movies/:id/showtimes", m.ListShowtimes)
}
