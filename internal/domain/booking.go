package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// BaggageItem is a priced line item supplied with a booking request.
type BaggageItem struct {
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"price"`
	Insured   bool   `json:"insurance"`
}

type Booking struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	RouteID            string        `json:"route_id"`
	Origin             string        `json:"origin"`
	Destination        string        `json:"destination"`
	PassengerCount     int           `json:"passenger_count"`
	SeatNumbers        []string      `json:"seat_numbers"`
	ServiceClass       string        `json:"service_class"`
	Baggage            []BaggageItem `json:"baggage"`
	PromoCode          string        `json:"promo_code,omitempty"`
	CarbonOffset       bool          `json:"carbon_offset"`
	Insurance          bool          `json:"insurance"`
	TotalPrice         int           `json:"total_price"`
	Status             BookingStatus `json:"status"`
	Reference          string        `json:"booking_reference"`
	QRCode             string        `json:"qr_code"`
	ScheduledDeparture *time.Time    `json:"scheduled_departure,omitempty"`
	IsAdvanceBooking   bool          `json:"is_advance_booking"`
	SpecialRequests    string        `json:"special_requests,omitempty"`
	Rating             int           `json:"rating,omitempty"`
	Review             string        `json:"review,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// TrackingInfo is a derived snapshot, never persisted.
type TrackingInfo struct {
	Reference           string    `json:"booking_reference"`
	Status              string    `json:"status"`
	CurrentLocation     string    `json:"current_location"`
	NextStops           []string  `json:"next_stops"`
	EstimatedArrival    time.Time `json:"estimated_arrival"`
	DistanceRemainingKm int       `json:"distance_remaining_km"`
	LastUpdated         time.Time `json:"last_updated"`
}
