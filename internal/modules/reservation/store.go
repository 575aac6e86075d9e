// README: Reservation store backed by PostgreSQL.
package reservation

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"concierge/internal/modules/dialogue"
)

// Store archives confirmed bookings.
//
// Expected schema:
//
//	CREATE TABLE bookings (
//	    reference     TEXT PRIMARY KEY,
//	    hotel_id      INT NOT NULL,
//	    hotel_name    TEXT NOT NULL,
//	    destination   TEXT NOT NULL,
//	    check_in      TEXT NOT NULL,
//	    check_out     TEXT NOT NULL,
//	    guests        INT NOT NULL,
//	    rooms         INT NOT NULL,
//	    total_amount  BIGINT NOT NULL,
//	    currency      TEXT NOT NULL,
//	    confirmed_at  TIMESTAMPTZ NOT NULL
//	);
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateBooking inserts the receipt row. Re-sent references are silently
// skipped so a retried confirmation cannot double-archive.
func (s *Store) CreateBooking(ctx context.Context, c Confirmation, state dialogue.BookingState) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (reference, hotel_id, hotel_name, destination, check_in, check_out,
			guests, rooms, total_amount, currency, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (reference) DO NOTHING
	`, c.BookingReference, c.Hotel.ID, c.Hotel.Name, state.Destination, c.CheckIn, c.CheckOut,
		c.Guests, c.Rooms, c.TotalPrice.Amount, c.TotalPrice.Currency, c.ConfirmationDate)
	return err
}

// CountByDestination reports how many bookings have been archived for a city.
func (s *Store) CountByDestination(ctx context.Context, destination string) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE destination = $1`, destination).Scan(&n)
	return n, err
}
