// README: Extractor unit tests.
package dialogue

import (
	"reflect"
	"testing"
	"time"
)

func TestExtractDestination(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{"exact case", "I'm looking for a hotel in Paris", "Paris", true},
		{"lower case", "somewhere in paris please", "Paris", true},
		{"upper case", "LONDON!", "London", true},
		{"embedded", "thinking about las vegas next month", "Las Vegas", true},
		{"no city", "somewhere warm", "", false},
		{"empty", "", "", false},
		// Two cities in one message: vocabulary order decides, not text
		// order. New York precedes Paris in the list, so it wins even when
		// Paris comes first in the sentence.
		{"two cities, list order wins", "Paris or New York, not sure yet", "New York", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDestination(vocab, tc.text)
			if ok != tc.wantHit || got != tc.want {
				t.Errorf("ExtractDestination(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.wantHit)
			}
		})
	}
}

func TestExtractStayDates(t *testing.T) {
	// The dates are synthesized from the clock, never parsed from the text.
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	in, out := ExtractStayDates("check in on the 14th of June", now)
	if in != "Mar 9, 2026" {
		t.Errorf("check-in = %q, want %q", in, "Mar 9, 2026")
	}
	if out != "Mar 12, 2026" {
		t.Errorf("check-out = %q, want %q", out, "Mar 12, 2026")
	}

	// Same result for any text, including empty.
	in2, out2 := ExtractStayDates("", now)
	if in2 != in || out2 != out {
		t.Errorf("dates depend on input text: (%q, %q) vs (%q, %q)", in2, out2, in, out)
	}
}

func TestExtractAccommodationInfo(t *testing.T) {
	tests := []struct {
		name                  string
		text                  string
		wantGuests, wantRooms int
		wantOK                bool
	}{
		{"guests and rooms", "2 guests 1 room", 2, 1, true},
		{"guests only defaults one room", "4 people", 4, 1, true},
		{"multi digit", "12 guests in 3 rooms", 12, 3, true},
		{"digits inside words", "party of 6, say 2x rooms", 6, 2, true},
		{"no numbers", "a few of us", 0, 0, false},
		{"empty", "", 0, 0, false},
		// A zero count is treated the same as no count at all, and a zero
		// room count falls back to the single-room default.
		{"zero guests reads as absent", "0 guests", 0, 0, false},
		{"zero guests with rooms", "0 guests 2 rooms", 0, 0, false},
		{"zero rooms defaults to one", "4 guests 0 rooms", 4, 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			guests, rooms, ok := ExtractAccommodationInfo(tc.text)
			if guests != tc.wantGuests || rooms != tc.wantRooms || ok != tc.wantOK {
				t.Errorf("ExtractAccommodationInfo(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tc.text, guests, rooms, ok, tc.wantGuests, tc.wantRooms, tc.wantOK)
			}
		})
	}
}

func TestExtractPreferences(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "a pool would be nice", []string{"pool"}},
		{"vocabulary order, not text order", "spa first then pool", []string{"pool", "spa"}},
		{"multi word tag", "needs to be pet friendly near the beach", []string{"pet friendly", "beach"}},
		{"case insensitive", "FREE WIFI and PARKING", []string{"wifi", "parking"}},
		{"nothing known", "quiet and green", nil},
		{"empty", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPreferences(vocab, tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractPreferences(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractPreferencesNeverInventsTags(t *testing.T) {
	vocab := DefaultVocabulary()
	known := make(map[string]bool, len(vocab.Amenities))
	for _, tag := range vocab.Amenities {
		known[tag] = true
	}
	for _, text := range []string{
		"pool spa gym breakfast wifi parking luxury budget business",
		"pet friendly beach city center airport shuttle family friendly",
	} {
		for _, tag := range ExtractPreferences(vocab, text) {
			if !known[tag] {
				t.Errorf("unknown tag %q extracted from %q", tag, text)
			}
		}
	}
}
