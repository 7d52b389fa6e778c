package database

import (
	"context"
	"database/sql"
)

// Table definitions executed in dependency order.  Statements are
// idempotent so EnsureSchema is safe to run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id           CHAR(36)     NOT NULL,
		title        VARCHAR(255) NOT NULL,
		description  TEXT         NOT NULL,
		poster_url   VARCHAR(512) NOT NULL DEFAULT '',
		release_date DATE         NOT NULL,
		created_at   TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id         CHAR(36)  NOT NULL,
		movie_id   CHAR(36)  NOT NULL,
		starts_at  DATETIME  NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		CONSTRAINT fk_showtimes_movie FOREIGN KEY (movie_id) REFERENCES movies (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS seats (
		id          CHAR(36)    NOT NULL,
		showtime_id CHAR(36)    NOT NULL,
		row_label   VARCHAR(8)  NOT NULL,
		seat_number INT UNSIGNED NOT NULL,
		status      ENUM('available','reserved') NOT NULL DEFAULT 'available',
		PRIMARY KEY (id),
		UNIQUE KEY uq_seats_position (showtime_id, row_label, seat_number),
		CONSTRAINT fk_seats_showtime FOREIGN KEY (showtime_id) REFERENCES showtimes (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id                CHAR(36)     NOT NULL,
		showtime_id       CHAR(36)     NOT NULL,
		user_id           VARCHAR(255) NOT NULL,
		total_price_cents INT UNSIGNED NOT NULL DEFAULT 0,
		created_at        TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		CONSTRAINT fk_bookings_showtime FOREIGN KEY (showtime_id) REFERENCES showtimes (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS booking_seats (
		booking_id CHAR(36) NOT NULL,
		seat_id    CHAR(36) NOT NULL,
		PRIMARY KEY (booking_id, seat_id),
		CONSTRAINT fk_booking_seats_booking FOREIGN KEY (booking_id) REFERENCES bookings (id) ON DELETE CASCADE,
		CONSTRAINT fk_booking_seats_seat FOREIGN KEY (seat_id) REFERENCES seats (id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the application's tables when they do not exist.
// booking_seats cascades on booking deletion so the engine's rollback
// delete removes the seat links in the same statement.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
