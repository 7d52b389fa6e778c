package model

import "time"

// Showtime is a scheduled screening of a movie.  Each showtime owns
// its seat map; seats never move between showtimes.
//
// Fields:
//  ID        – UUID primary key.
//  MovieID   – movie being screened.
//  StartsAt  – when the screening begins.
//  CreatedAt – creation timestamp.
type Showtime struct {
	ID        string    `json:"id"`        // showtimes.id
	MovieID   string    `json:"movieId"`   // showtimes.movie_id
	StartsAt  time.Time `json:"startsAt"`  // showtimes.starts_at
	CreatedAt time.Time `json:"createdAt"` // showtimes.created_at
}
