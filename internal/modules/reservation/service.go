// README: Reservation service; finalizes bookings and persists the receipt.
package reservation

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"concierge/internal/modules/dialogue"
)

var (
	ErrNoHotelSelected = errors.New("no hotel selected")
	ErrMissingStay     = errors.New("missing stay dates")
	ErrNotReady        = errors.New("booking is not awaiting confirmation")
)

const (
	paymentStatusConfirmed = "Confirmed"
	cancellationPolicy     = "Free cancellation until 24 hours before check-in"
)

type Service struct {
	store   *Store
	latency time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewService builds the reservation collaborator. store may be nil, in which
// case confirmations are not persisted.
func NewService(store *Store, latency time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, latency: latency, logger: logger, now: time.Now}
}

// Confirm finalizes the booking described by state: validates it, prices the
// stay, generates a reference, and best-effort persists the receipt. The
// state must have reached the confirming status; the caller owns flipping
// its own snapshot to confirmed afterwards.
func (s *Service) Confirm(ctx context.Context, state dialogue.BookingState) (Confirmation, error) {
	if err := wait(ctx, s.latency); err != nil {
		return Confirmation{}, err
	}

	if state.SelectedHotel == nil {
		return Confirmation{}, ErrNoHotelSelected
	}
	if state.CheckIn == "" || state.CheckOut == "" {
		return Confirmation{}, ErrMissingStay
	}
	if !dialogue.CanTransition(state.Status, dialogue.StatusConfirmed) {
		return Confirmation{}, ErrNotReady
	}

	c := Confirmation{
		Success:            true,
		BookingReference:   newReference(),
		Hotel:              state.SelectedHotel,
		CheckIn:            state.CheckIn,
		CheckOut:           state.CheckOut,
		Guests:             state.Guests,
		Rooms:              state.Rooms,
		TotalPrice:         state.SelectedHotel.PricePerNight.Mul(stayNights(state.CheckIn, state.CheckOut)),
		ConfirmationDate:   s.now().UTC(),
		PaymentStatus:      paymentStatusConfirmed,
		CancellationPolicy: cancellationPolicy,
	}

	if s.store != nil {
		if err := s.store.CreateBooking(ctx, c, state); err != nil {
			// The confirmation already happened from the user's point of
			// view; losing the archive row is not worth failing the turn.
			s.logger.Warn("failed to persist booking", zap.String("reference", c.BookingReference), zap.Error(err))
		}
	}
	return c, nil
}

// BookingsFor reports how many bookings have been archived for a
// destination. Always zero when persistence is disabled.
func (s *Service) BookingsFor(ctx context.Context, destination string) (int64, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.CountByDestination(ctx, destination)
}

// stayNights is a fixed placeholder: the display-formatted dates are never
// parsed back, so the stay is always billed as the three nights the date
// synthesizer produces.
func stayNights(_, _ string) int64 {
	return 3
}

// newReference generates a BOK-prefixed six-digit booking reference.
func newReference() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("BOK%06d", binary.BigEndian.Uint64(b[:])%1000000)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
