// README: Dialogue service; ordered keyword intent rules drive the booking state machine.
package dialogue

import (
	"fmt"
	"strings"
	"time"
)

// Service classifies each utterance into one of the ordered intent rules
// below and advances the booking state accordingly. It is pure: no I/O, no
// shared state, never an error for any input string. Callers serialize
// access to whatever they persist the snapshots in.
type Service struct {
	vocab Vocabulary
	now   func() time.Time
	rules []rule
}

type rule struct {
	name     string
	keywords []string
	handle   func(msg string, prior BookingState) Reply
}

func NewService(vocab Vocabulary) *Service {
	s := &Service{vocab: vocab, now: time.Now}
	// Rules are evaluated top to bottom, first keyword match wins. The order
	// carries semantics: "looking for" appears under both destination and
	// preferences, so preference phrasings containing it always route to
	// destination; "confirm" appears under both booking and affirmation, so
	// it always reads as a booking request. Both quirks are inherited
	// behavior and covered by tests.
	s.rules = []rule{
		{"destination", []string{"looking for", "want to stay", "hotel in"}, s.handleDestination},
		{"dates", []string{"check in", "stay from", "arrive on"}, s.handleDates},
		{"accommodation", []string{"guest", "people", "room"}, s.handleAccommodation},
		{"preferences", []string{"prefer", "looking for", "want"}, s.handlePreferences},
		{"book", []string{"book", "confirm", "reserve"}, s.handleBook},
		{"affirm", []string{"yes", "correct", "confirm"}, s.handleAffirm},
		{"cancel", []string{"cancel", "no", "stop"}, s.handleCancel},
		{"greeting", []string{"hello", "hi", "hey"}, s.handleGreeting},
		{"thanks", []string{"thank", "thanks"}, s.handleThanks},
		{"farewell", []string{"bye", "goodbye"}, s.handleFarewell},
	}
	return s
}

// WithClock substitutes the time source used for synthetic stay dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Fixed reply texts.
const (
	fallbackText = "I'm here to help you book a hotel. Can you tell me where you'd like to stay?"
	greetingText = "Hello! I'm your AI booking assistant. I can help you find and book the perfect hotel on Booking.com. What kind of accommodation are you looking for?"
	thanksText   = "You're welcome! I'm happy to help with your hotel booking needs. Is there anything else you'd like assistance with?"
	farewellText = "Goodbye! Feel free to come back anytime you need help with hotel bookings."

	notEnoughInfoText   = "I don't have enough information to make a booking yet. Can you tell me where you'd like to stay?"
	cancelledText       = "I've cancelled the booking process. Is there anything else you'd like to search for?"
	resetText           = "I've reset your search. What kind of hotel are you looking for?"
	idleHelpText        = "I'm here to help you book a hotel. Just let me know what you're looking for."
	processingText      = "Great! I'm processing your booking now."
	stillNeedPrefix     = "I still need to know "
	thanksForInfoPrefix = "Thanks for the information. "
)

// ProcessMessage runs one turn: classify the message, extract fields, and
// return the reply envelope with the (possibly unchanged) next snapshot.
func (s *Service) ProcessMessage(message string, prior BookingState) Reply {
	lower := strings.ToLower(message)
	for _, r := range s.rules {
		if containsAny(lower, r.keywords) {
			return r.handle(message, prior)
		}
	}
	return echo(prior)
}

// echo is the no-op envelope: fallback prompt, input state untouched.
func echo(prior BookingState) Reply {
	return Reply{
		Text:         fallbackText,
		BookingState: prior,
		Hotels:       []any{},
	}
}

func update(prior BookingState, text string, next BookingState) Reply {
	r := echo(prior)
	r.Text = text
	r.UpdateBookingState = true
	r.BookingState = next
	return r
}

func say(prior BookingState, text string) Reply {
	r := echo(prior)
	r.Text = text
	return r
}

func (s *Service) handleDestination(msg string, prior BookingState) Reply {
	city, ok := ExtractDestination(s.vocab, msg)
	if !ok {
		return echo(prior)
	}
	next := prior
	next.Destination = city
	next.Status = StatusInProgress
	text := fmt.Sprintf("Great! I'll help you find hotels in %s. When are you planning to check in and check out?", city)
	return update(prior, text, next)
}

func (s *Service) handleDates(msg string, prior BookingState) Reply {
	checkIn, checkOut := ExtractStayDates(msg, s.now())
	next := prior
	next.CheckIn = checkIn
	next.CheckOut = checkOut
	text := fmt.Sprintf("I've noted your stay from %s to %s. How many guests and rooms do you need?", checkIn, checkOut)
	return update(prior, text, next)
}

func (s *Service) handleAccommodation(msg string, prior BookingState) Reply {
	guests, rooms, ok := ExtractAccommodationInfo(msg)
	if !ok {
		return echo(prior)
	}
	next := prior
	next.Guests = guests
	next.Rooms = rooms

	// Readiness is judged on the prior snapshot: the guest count from this
	// very turn does not count toward it, only destination and dates do.
	if prior.Destination != "" && prior.CheckIn != "" && prior.CheckOut != "" {
		r := update(prior, fmt.Sprintf("Great! Let me find some hotels in %s for %d guests.", prior.Destination, guests), next)
		r.ShowHotels = true
		return r
	}
	text := thanksForInfoPrefix + stillNeedPrefix + missingFields(prior, false)
	return update(prior, text, next)
}

func (s *Service) handlePreferences(msg string, prior BookingState) Reply {
	tags := ExtractPreferences(s.vocab, msg)
	if len(tags) == 0 {
		return echo(prior)
	}
	next := prior.withPreferences(tags)
	text := fmt.Sprintf("I've noted your preferences for %s. ", strings.Join(tags, ", "))

	if prior.Destination != "" && prior.CheckIn != "" && prior.CheckOut != "" && prior.Guests > 0 {
		r := update(prior, text+"Let me find some suitable hotels for you.", next)
		r.ShowHotels = true
		return r
	}
	return update(prior, text+stillNeedPrefix+missingFields(prior, true), next)
}

func (s *Service) handleBook(_ string, prior BookingState) Reply {
	if prior.SelectedHotel == nil {
		return say(prior, notEnoughInfoText)
	}
	next := prior
	next.ConfirmationRequested = true
	text := fmt.Sprintf("I'll process your booking at %s. Please confirm this is correct.", prior.SelectedHotel.Name)
	return update(prior, text, next)
}

func (s *Service) handleAffirm(_ string, prior BookingState) Reply {
	if !prior.ConfirmationRequested {
		return echo(prior)
	}
	next := prior
	next.Status = StatusConfirming
	return update(prior, processingText, next)
}

func (s *Service) handleCancel(_ string, prior BookingState) Reply {
	switch {
	case prior.ConfirmationRequested:
		next := prior
		next.ConfirmationRequested = false
		return update(prior, cancelledText, next)
	case prior.Status == StatusInProgress:
		// Full reset: everything gathered so far is discarded.
		return update(prior, resetText, NewBookingState())
	default:
		return say(prior, idleHelpText)
	}
}

func (s *Service) handleGreeting(_ string, prior BookingState) Reply {
	return say(prior, greetingText)
}

func (s *Service) handleThanks(_ string, prior BookingState) Reply {
	return say(prior, thanksText)
}

func (s *Service) handleFarewell(_ string, prior BookingState) Reply {
	return say(prior, farewellText)
}

// missingFields names whatever the prior snapshot still lacks, as a comma
// list with a closing period. Dates are reported as one item keyed off
// check-in alone.
func missingFields(prior BookingState, includeGuests bool) string {
	var parts []string
	if prior.Destination == "" {
		parts = append(parts, "your destination")
	}
	if prior.CheckIn == "" {
		parts = append(parts, "your check-in and check-out dates")
	}
	if includeGuests && prior.Guests == 0 {
		parts = append(parts, "the number of guests and rooms")
	}
	return strings.Join(parts, ", ") + "."
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
