// README: Stateless field extractors over free-text utterances.
package dialogue

import (
	"strings"
	"time"
)

// ExtractDestination scans text for the first vocabulary city it contains,
// case-insensitive. "First" means first in the vocabulary, not first in the
// text; a message naming both Paris and Berlin always resolves to Paris.
func ExtractDestination(vocab Vocabulary, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, city := range vocab.Destinations {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city, true
		}
	}
	return "", false
}

// ExtractStayDates synthesizes a stay one week out with a three-night
// duration, ignoring the text entirely. Real date parsing is a known gap:
// the demo flow only needs a plausible pair of display dates.
func ExtractStayDates(_ string, now time.Time) (checkIn, checkOut string) {
	in := now.AddDate(0, 0, 7)
	out := in.AddDate(0, 0, 3)
	return in.Format("Jan 2, 2006"), out.Format("Jan 2, 2006")
}

// ExtractAccommodationInfo pulls guest and room counts out of the text.
// The first run of digits is the guest count, the second the room count.
// A zero guest count reads as absent (ok=false, nothing extracted), and a
// zero or missing room count coerces to 1; zero is never a valid value for
// either field downstream.
func ExtractAccommodationInfo(text string) (guests, rooms int, ok bool) {
	nums := scanNumbers(text)
	if len(nums) == 0 || nums[0] == 0 {
		return 0, 0, false
	}
	guests = nums[0]
	rooms = 1
	if len(nums) > 1 && nums[1] > 0 {
		rooms = nums[1]
	}
	return guests, rooms, true
}

// ExtractPreferences returns every vocabulary amenity the text mentions,
// in vocabulary order rather than text order.
func ExtractPreferences(vocab Vocabulary, text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, tag := range vocab.Amenities {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// scanNumbers collects each contiguous digit run in text as an integer.
func scanNumbers(text string) []int {
	var nums []int
	n, in := 0, false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			in = true
			continue
		}
		if in {
			nums = append(nums, n)
			n, in = 0, false
		}
	}
	if in {
		nums = append(nums, n)
	}
	return nums
}
