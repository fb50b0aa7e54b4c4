package domain

import "time"

// City is immutable reference data loaded at process start.
type City struct {
	Name       string  `json:"name"`
	Region     string  `json:"region"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Major      bool    `json:"major"`
	HasAirport bool    `json:"airport"`
}

type Company struct {
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	SafetyRating float64  `json:"safety_rating"`
	FleetSize    int      `json:"fleet_size"`
	Specialties  []string `json:"specialties"`
}

// ServiceClass is a named fare tier. Multiplier is always >= 1.0.
type ServiceClass struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	Multiplier    float64  `json:"price_multiplier"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	MaxPassengers int      `json:"max_passengers"`
}

// PromoCode grants a conditional discount. Exactly one of DiscountPercent or
// DiscountAmount is honored per code; percent takes precedence if both are set.
// UsageLimit is carried from the reference data but not enforced against
// redemption history.
type PromoCode struct {
	Code              string    `json:"code"`
	DiscountPercent   int       `json:"discount_percent"`
	DiscountAmount    int       `json:"discount_amount"`
	ValidUntil        time.Time `json:"valid_until"`
	Description       string    `json:"description"`
	UsageLimit        int       `json:"usage_limit"`
	MinAmount         int       `json:"min_amount"`
	ApplicableClasses []string  `json:"applicable_classes"`
}

type BaggageOption struct {
	Type               string `json:"type"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              int    `json:"price"`
	Included           bool   `json:"included"`
	InsuranceAvailable bool   `json:"insurance_available"`
	InsurancePrice     int    `json:"insurance_price"`
}
