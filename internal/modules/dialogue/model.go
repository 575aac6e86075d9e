// README: Booking state snapshot, status lifecycle, and reply envelope.
package dialogue

import "concierge/internal/types"

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusConfirming Status = "confirming"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
)

// SelectedHotel is the slice of an inventory offer the dialogue needs:
// a display name and a per-night price. Everything else stays opaque.
type SelectedHotel struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	PricePerNight types.Money `json:"pricePerNight"`
}

// BookingState is the accumulated record of one conversation. It is a value:
// the service never mutates the snapshot it receives and always hands back a
// fresh one, so callers can persist or roll back per turn.
type BookingState struct {
	Destination           string         `json:"destination,omitempty"`
	CheckIn               string         `json:"checkIn,omitempty"`
	CheckOut              string         `json:"checkOut,omitempty"`
	Guests                int            `json:"guests,omitempty"`
	Rooms                 int            `json:"rooms,omitempty"`
	Preferences           []string       `json:"preferences,omitempty"`
	SelectedHotel         *SelectedHotel `json:"selectedHotel,omitempty"`
	ConfirmationRequested bool           `json:"confirmationRequested,omitempty"`
	Status                Status         `json:"status"`
}

// NewBookingState returns a fresh, empty conversation record.
func NewBookingState() BookingState {
	return BookingState{Status: StatusNotStarted}
}

// withPreferences returns a copy of s with tags appended to its preference
// list. The original backing array is never shared, so earlier snapshots
// keep their own view.
func (s BookingState) withPreferences(tags []string) BookingState {
	prefs := make([]string, 0, len(s.Preferences)+len(tags))
	prefs = append(prefs, s.Preferences...)
	prefs = append(prefs, tags...)
	s.Preferences = prefs
	return s
}

// Reply is the per-turn envelope handed back to the transport layer.
// Hotels stays empty here; the caller populates it from the inventory
// collaborator when ShowHotels is set.
type Reply struct {
	Text               string       `json:"text"`
	UpdateBookingState bool         `json:"updateBookingState"`
	BookingState       BookingState `json:"bookingState"`
	ShowHotels         bool         `json:"showHotels"`
	Hotels             []any        `json:"hotels"`
}

// AllowedTransitions represents the booking lifecycle as code. The dialogue
// service itself only ever produces not_started, in_progress, and confirming;
// confirmed and cancelled belong to the reservation collaborator.
var AllowedTransitions = map[Status][]Status{
	StatusNotStarted: {StatusInProgress},
	StatusInProgress: {StatusConfirming, StatusNotStarted, StatusCancelled},
	StatusConfirming: {StatusConfirmed, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
