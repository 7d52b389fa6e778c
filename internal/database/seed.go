package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

type seedMovie struct {
	Title       string
	Description string
	ReleaseDate time.Time
}

var seedMovies = []seedMovie{
	{
		Title:       "Inception",
		Description: "A mind-bending thriller by Christopher Nolan where dreams become reality.",
		ReleaseDate: parseDate("2010-07-16"),
	},
	{
		Title:       "The Dark Knight",
		Description: "Batman battles the Joker in this iconic superhero film that redefined the genre.",
		ReleaseDate: parseDate("2008-07-18"),
	},
	{
		Title:       "Black Panther: Wakanda Forever",
		Description: "Wakanda faces new challenges as the legacy of the Black Panther endures.",
		ReleaseDate: parseDate("2022-11-11"),
	},
	{
		Title:       "The Godfather",
		Description: "A gripping tale of power and family, The Godfather defines a genre of its own.",
		ReleaseDate: parseDate("1972-03-24"),
	},
	{
		Title:       "Interstellar",
		Description: "A visually stunning journey through space and time, as humanity fights for survival.",
		ReleaseDate: parseDate("2014-11-07"),
	},
}

// Seed inserts a demo catalog: five movies, two showtimes per movie and
// an A1..E10 seat grid per showtime.  It is a no-op when any movie
// already exists, so running it on every startup is safe.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []string{"A", "B", "C", "D", "E"}
	for _, m := range seedMovies {
		movieID := uuid.NewString()
		if _, err := db.ExecContext(ctx,
			`INSERT INTO movies (id, title, description, release_date) VALUES (?, ?, ?, ?)`,
			movieID, m.Title, m.Description, m.ReleaseDate,
		); err != nil {
			log.Println("failed to seed movie:", m.Title, "error:", err)
			return err
		}
		for _, offset := range []time.Duration{24 * time.Hour, 48 * time.Hour} {
			showtimeID := uuid.NewString()
			startsAt := time.Now().UTC().Add(offset).Truncate(time.Hour)
			if _, err := db.ExecContext(ctx,
				`INSERT INTO showtimes (id, movie_id, starts_at) VALUES (?, ?, ?)`,
				showtimeID, movieID, startsAt,
			); err != nil {
				return err
			}
			for _, row := range rows {
				for n := 1; n <= 10; n++ {
					if _, err := db.ExecContext(ctx,
						`INSERT INTO seats (id, showtime_id, row_label, seat_number) VALUES (?, ?, ?, ?)`,
						uuid.NewString(), showtimeID, row, n,
					); err != nil {
						return err
					}
				}
			}
		}
	}
	log.Println("seeded demo catalog:", len(seedMovies), "movies")
	return nil
}
