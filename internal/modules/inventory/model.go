// README: Offer records served by the mock inventory.
package inventory

import "concierge/internal/types"

type Hotel struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	PricePerNight types.Money `json:"pricePerNight"`
	Price         string      `json:"price"` // display tag rendered by the web client, e.g. "$199"
	Rating        float64     `json:"rating"`
	Image         string      `json:"image"`
	Amenities     []string    `json:"amenities"`
}

type RoomOption struct {
	Type      string      `json:"type"`
	Price     types.Money `json:"price"`
	Available bool        `json:"available"`
}

type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HotelDetail is the expanded record behind a single offer.
type HotelDetail struct {
	Hotel
	Address     string       `json:"address"`
	Coordinates Coordinates  `json:"coordinates"`
	Rooms       []RoomOption `json:"rooms"`
	Reviews     []Review     `json:"reviews"`
}

// Query carries the search criteria assembled from the booking state.
type Query struct {
	Destination string   `json:"destination"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	Guests      int      `json:"guests"`
	Rooms       int      `json:"rooms"`
	Preferences []string `json:"preferences"`
}
