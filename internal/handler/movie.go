package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmgate/movie-booking/internal/model"
	"github.com/filmgate/movie-booking/internal/repository"
)

// MovieHandler serves the read-only movie catalog: listings, title
// search, now-playing and coming-soon filters, details and showtimes.
type MovieHandler struct {
	Movies    *repository.MovieRepo
	Showtimes *repository.ShowtimeRepo
}

// NewMovieHandler constructs a MovieHandler with the given repositories.
func NewMovieHandler(movies *repository.MovieRepo, showtimes *repository.ShowtimeRepo) *MovieHandler {
	if movies == nil || showtimes == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Showtimes: showtimes}
}

// List handles GET /api/movies.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Movies retrieved successfully", echo.Map{"movies": emptyIfNilMovies(movies)})
}

// Search handles GET /api/movies/search?query=.  Missing or empty
// query matches every movie, like the catalog listing.
func (h *MovieHandler) Search(c echo.Context) error {
	movies, err := h.Movies.SearchByTitle(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Search results", echo.Map{"movies": emptyIfNilMovies(movies)})
}

// NowPlaying handles GET /api/movies/now-playing: released on or
// before today.
func (h *MovieHandler) NowPlaying(c echo.Context) error {
	movies, err := h.Movies.NowPlaying(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Now playing movies", echo.Map{"movies": emptyIfNilMovies(movies)})
}

// ComingSoon handles GET /api/movies/coming-soon: released after today.
func (h *MovieHandler) ComingSoon(c echo.Context) error {
	movies, err := h.Movies.ComingSoon(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Coming soon movies", echo.Map{"movies": emptyIfNilMovies(movies)})
}

// Get handles GET /api/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.Movies.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respond(c, http.StatusNotFound, "Movie not found", nil)
		}
		return err
	}
	return respond(c, http.StatusOK, "Movie details", echo.Map{"movie": movie})
}

// ListShowtimes handles GET /api/movies/:id/showtimes.  An unknown
// movie id yields an empty list rather than 404, matching the seat
// listing behavior.
func (h *MovieHandler) ListShowtimes(c echo.Context) error {
	showtimes, err := h.Showtimes.ListByMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if showtimes == nil {
		showtimes = []model.Showtime{}
	}
	return respond(c, http.StatusOK, "Showtimes retrieved", echo.Map{"showtimes": showtimes})
}

func emptyIfNilMovies(movies []model.Movie) []model.Movie {
	if movies == nil {
		return []model.Movie{}
	}
	return movies
}
