package model

import "time"

// Movie is a catalog entry that clients browse before picking a
// showtime.  The booking core treats movies as read-only reference
// data; rows are created by the seeder or by external tooling.
//
// Fields:
//  ID          – UUID primary key.
//  Title       – display title.
//  Description – optional synopsis.
//  PosterURL   – optional link to poster artwork.
//  ReleaseDate – theatrical release date; drives the now-playing and
//                coming-soon listings.
//  CreatedAt   – creation timestamp.
type Movie struct {
	ID          string    `json:"id"`          // movies.id
	Title       string    `json:"title"`       // movies.title
	Description string    `json:"description"` // movies.description
	PosterURL   string    `json:"posterUrl"`   // movies.poster_url
	ReleaseDate time.Time `json:"releaseDate"` // movies.release_date
	CreatedAt   time.Time `json:"createdAt"`   // movies.created_at
}
