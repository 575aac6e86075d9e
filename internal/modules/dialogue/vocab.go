// README: Closed vocabularies the extractors match against.
package dialogue

// Vocabulary holds the closed term lists the extractors scan for. It is
// injected into the service so tests can substitute a smaller set and new
// terms can be added without touching control logic. Order matters: when a
// message mentions two cities, the one listed first wins regardless of where
// it appears in the text.
type Vocabulary struct {
	Destinations []string
	Amenities    []string
}

// DefaultVocabulary returns the stock city and amenity lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Destinations: []string{
			"New York", "Paris", "London", "Tokyo", "Sydney", "Rome", "Barcelona",
			"Amsterdam", "Berlin", "Dubai", "Singapore", "Hong Kong", "Los Angeles",
			"San Francisco", "Chicago", "Miami", "Las Vegas", "Toronto", "Vancouver",
		},
		Amenities: []string{
			"pool", "spa", "gym", "breakfast", "wifi", "parking",
			"pet friendly", "beach", "city center", "airport shuttle",
			"luxury", "budget", "family friendly", "business",
		},
	}
}
