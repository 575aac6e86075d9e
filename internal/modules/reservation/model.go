// README: Booking confirmation record.
package reservation

import (
	"time"

	"concierge/internal/modules/dialogue"
	"concierge/internal/types"
)

// Confirmation is the receipt handed back once a booking goes through.
type Confirmation struct {
	Success            bool                    `json:"success"`
	BookingReference   string                  `json:"bookingReference"`
	Hotel              *dialogue.SelectedHotel `json:"hotel"`
	CheckIn            string                  `json:"checkIn"`
	CheckOut           string                  `json:"checkOut"`
	Guests             int                     `json:"guests"`
	Rooms              int                     `json:"rooms"`
	TotalPrice         types.Money             `json:"totalPrice"`
	ConfirmationDate   time.Time               `json:"confirmationDate"`
	PaymentStatus      string                  `json:"paymentStatus"`
	CancellationPolicy string                  `json:"cancellationPolicy"`
}
