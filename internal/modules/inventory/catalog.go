// README: Static offer catalog templated per destination.
package inventory

import (
	"fmt"

	"concierge/internal/types"
)

// catalog returns the five canned offers for a destination. Names and
// descriptions are templated with the city so every search looks local;
// everything else is fixed demo data.
func catalog(destination string) []Hotel {
	hotels := []Hotel{
		{
			ID:            1,
			Name:          "Grand Hotel " + destination,
			Description:   "Luxury hotel in the heart of " + destination,
			PricePerNight: types.USD(199),
			Rating:        4.7,
			Image:         imageRef("Grand+Hotel"),
			Amenities:     []string{"Pool", "Spa", "Gym", "Free WiFi", "Restaurant"},
		},
		{
			ID:            2,
			Name:          destination + " Plaza Hotel",
			Description:   "Modern comfort with stunning city views",
			PricePerNight: types.USD(149),
			Rating:        4.5,
			Image:         imageRef("Plaza+Hotel"),
			Amenities:     []string{"Free WiFi", "Gym", "Restaurant", "Bar", "Business Center"},
		},
		{
			ID:            3,
			Name:          "Boutique Hotel " + destination,
			Description:   "Charming boutique hotel with personalized service",
			PricePerNight: types.USD(179),
			Rating:        4.8,
			Image:         imageRef("Boutique+Hotel"),
			Amenities:     []string{"Free WiFi", "Breakfast Included", "Concierge", "Bar"},
		},
		{
			ID:            4,
			Name:          "Budget Inn " + destination,
			Description:   "Affordable comfort for budget travelers",
			PricePerNight: types.USD(99),
			Rating:        4.0,
			Image:         imageRef("Budget+Inn"),
			Amenities:     []string{"Free WiFi", "Breakfast Available", "Parking"},
		},
		{
			ID:            5,
			Name:          "Luxury Suites " + destination,
			Description:   "Exclusive luxury suites with premium amenities",
			PricePerNight: types.USD(299),
			Rating:        4.9,
			Image:         imageRef("Luxury+Suites"),
			Amenities:     []string{"Pool", "Spa", "Gym", "Free WiFi", "Restaurant", "Bar", "Concierge", "Room Service"},
		},
	}
	for i := range hotels {
		hotels[i].Price = hotels[i].PricePerNight.Display()
	}
	return hotels
}

// detailExtras holds the per-offer fields that only show up on the detail
// view. Keyed by offer ID; addresses are templated with the destination.
func detailExtras(id int, destination string) (HotelDetail, bool) {
	base := catalog(destination)
	if id < 1 || id > len(base) {
		return HotelDetail{}, false
	}
	d := HotelDetail{Hotel: base[id-1]}
	switch id {
	case 1:
		d.Address = "123 Main Street, " + destination
		d.Coordinates = Coordinates{Lat: 40.7128, Lng: -74.0060}
		d.Rooms = []RoomOption{
			{Type: "Standard", Price: types.USD(199), Available: true},
			{Type: "Deluxe", Price: types.USD(249), Available: true},
			{Type: "Suite", Price: types.USD(349), Available: true},
		}
		d.Reviews = []Review{
			{User: "John D.", Rating: 5, Comment: "Excellent service and amenities!"},
			{User: "Sarah M.", Rating: 4, Comment: "Great location, comfortable rooms."},
			{User: "Robert L.", Rating: 5, Comment: "Luxurious experience, will definitely return."},
		}
	case 2:
		d.Address = "456 Broadway, " + destination
		d.Coordinates = Coordinates{Lat: 40.7580, Lng: -73.9855}
		d.Rooms = []RoomOption{
			{Type: "Standard", Price: types.USD(149), Available: true},
			{Type: "Business", Price: types.USD(189), Available: true},
			{Type: "Executive", Price: types.USD(249), Available: true},
		}
		d.Reviews = []Review{
			{User: "Michael P.", Rating: 4, Comment: "Great business hotel with excellent facilities."},
			{User: "Emily R.", Rating: 5, Comment: "Amazing views and friendly staff."},
			{User: "David K.", Rating: 4, Comment: "Comfortable rooms and good location."},
		}
	case 3:
		d.Address = "789 Park Avenue, " + destination
		d.Coordinates = Coordinates{Lat: 40.7736, Lng: -73.9566}
		d.Rooms = []RoomOption{
			{Type: "Classic", Price: types.USD(179), Available: true},
			{Type: "Deluxe", Price: types.USD(219), Available: true},
			{Type: "Junior Suite", Price: types.USD(279), Available: true},
		}
		d.Reviews = []Review{
			{User: "Jessica T.", Rating: 5, Comment: "Charming hotel with incredible attention to detail."},
			{User: "Thomas B.", Rating: 5, Comment: "Personalized service made our stay special."},
			{User: "Laura M.", Rating: 4, Comment: "Beautiful decor and excellent breakfast."},
		}
	case 4:
		d.Address = "101 Budget Street, " + destination
		d.Coordinates = Coordinates{Lat: 40.7305, Lng: -73.9352}
		d.Rooms = []RoomOption{
			{Type: "Standard", Price: types.USD(99), Available: true},
			{Type: "Double", Price: types.USD(119), Available: true},
			{Type: "Family", Price: types.USD(149), Available: true},
		}
		d.Reviews = []Review{
			{User: "Mark S.", Rating: 4, Comment: "Great value for money."},
			{User: "Anna P.", Rating: 3, Comment: "Basic but clean and comfortable."},
			{User: "Kevin R.", Rating: 4, Comment: "Friendly staff and good location for the price."},
		}
	case 5:
		d.Address = "555 Luxury Avenue, " + destination
		d.Coordinates = Coordinates{Lat: 40.7629, Lng: -73.9712}
		d.Rooms = []RoomOption{
			{Type: "Junior Suite", Price: types.USD(299), Available: true},
			{Type: "Executive Suite", Price: types.USD(399), Available: true},
			{Type: "Presidential Suite", Price: types.USD(599), Available: true},
		}
		d.Reviews = []Review{
			{User: "William J.", Rating: 5, Comment: "Absolutely stunning property with impeccable service."},
			{User: "Catherine D.", Rating: 5, Comment: "The epitome of luxury. Worth every penny."},
			{User: "Richard M.", Rating: 5, Comment: "Exceptional experience from start to finish."},
		}
	}
	return d, true
}

func imageRef(label string) string {
	return fmt.Sprintf("https://placehold.co/600x400?text=%s", label)
}
