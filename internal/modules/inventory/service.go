// README: Mock inventory service; canned offers behind a simulated API delay.
package inventory

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("hotel not found")

// Latency configures the artificial delays that stand in for upstream API
// round-trips. Zero values disable the delay, which is what tests use.
type Latency struct {
	Search time.Duration
	Detail time.Duration
}

type Service struct {
	latency Latency
}

func NewService(latency Latency) *Service {
	return &Service{latency: latency}
}

// Search returns the offers for the query's destination. With no preference
// tags every offer qualifies; otherwise an offer stays in when any requested
// tag is a case-insensitive substring of any of its amenities.
func (s *Service) Search(ctx context.Context, q Query) ([]Hotel, error) {
	if err := wait(ctx, s.latency.Search); err != nil {
		return nil, err
	}

	hotels := catalog(q.Destination)
	if len(q.Preferences) == 0 {
		return hotels, nil
	}

	matched := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if matchesAnyPreference(h.Amenities, q.Preferences) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// Details returns the expanded record for one offer, or ErrNotFound when the
// id is not in the catalog.
func (s *Service) Details(ctx context.Context, id int, destination string) (HotelDetail, error) {
	if err := wait(ctx, s.latency.Detail); err != nil {
		return HotelDetail{}, err
	}

	d, ok := detailExtras(id, destination)
	if !ok {
		return HotelDetail{}, ErrNotFound
	}
	return d, nil
}

func matchesAnyPreference(amenities, preferences []string) bool {
	for _, pref := range preferences {
		p := strings.ToLower(pref)
		for _, a := range amenities {
			if strings.Contains(strings.ToLower(a), p) {
				return true
			}
		}
	}
	return false
}

// wait blocks for the configured delay, honoring ctx cancellation.
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
