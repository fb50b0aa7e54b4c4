package domain

import "time"

// BusStop is an intermediate halt on a generated route.
type BusStop struct {
	City      string  `json:"city"`
	StopName  string  `json:"stop_name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	StopOrder int     `json:"stop_order"`
}

// Route is a bookable departure between two cities. Routes are derived
// deterministically from the catalog and the timetable, not persisted.
type Route struct {
	ID                string       `json:"id"`
	Origin            string       `json:"origin"`
	Destination       string       `json:"destination"`
	DepartureTime     string       `json:"departure_time"`
	ArrivalTime       string       `json:"arrival_time"`
	Duration          string       `json:"duration"`
	Price             int          `json:"price"`
	Company           string       `json:"company"`
	ServiceClass      ServiceClass `json:"service_class"`
	TotalSeats        int          `json:"total_seats"`
	DistanceKm        int          `json:"distance_km"`
	IntermediateStops []BusStop    `json:"intermediate_stops"`
}

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LoyaltyPoints int       `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}

// RouteStat is an aggregate over persisted bookings.
type RouteStat struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Bookings    int    `json:"bookings"`
	Revenue     int64  `json:"revenue"`
}
