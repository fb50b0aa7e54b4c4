// Package pricing implements fare quotation: base fare from distance, service
// class multiplier, additive line items and promo code resolution. Everything
// here is pure computation over the injected catalog, callers persist the
// result themselves.
package pricing

import (
	"math"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
)

// Config carries the deterministic pricing constants. Rates are fixed by
// configuration: a quote for the same trip must always come out the same.
type Config struct {
	// PerKmRate is the fare per kilometre in FCFA.
	PerKmRate int `yaml:"per_km_rate" validate:"gt=0"`
	// FloorPrice is the minimum base fare regardless of distance.
	FloorPrice int `yaml:"floor_price" validate:"gte=0"`
	// CarbonOffsetFee is the flat fee added when the passenger opts in.
	CarbonOffsetFee int `yaml:"carbon_offset_fee" validate:"gte=0"`
	// InsuranceFlatFee is the flat trip insurance fee for passenger bookings.
	InsuranceFlatFee int `yaml:"insurance_flat_fee" validate:"gte=0"`
	// InsuranceValuePercent prices insurance as a percentage of declared
	// value; used for parcel-type quotes instead of the flat fee.
	InsuranceValuePercent float64 `yaml:"insurance_value_percent" validate:"gte=0"`
}

// DefaultConfig matches the rates the platform has always charged.
func DefaultConfig() Config {
	return Config{
		PerKmRate:             50,
		FloorPrice:            3000,
		CarbonOffsetFee:       500,
		InsuranceFlatFee:      1500,
		InsuranceValuePercent: 2.0,
	}
}

type QuoteInput struct {
	Origin       string
	Destination  string
	ServiceClass string
	Passengers   int
	Baggage      []domain.BaggageItem
	CarbonOffset bool
	Insurance    bool
	PromoCode    string
	// Now is the quote time used for promo validity checks.
	Now time.Time
}

// Quote is the full price breakdown for a prospective booking. Total is the
// final payable amount in FCFA and is never negative.
type Quote struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	ServiceClass string `json:"service_class"`
	Passengers   int    `json:"passengers"`

	DistanceKm   int `json:"distance_km"`
	BaseFare     int `json:"base_fare"`
	ServiceFare  int `json:"service_fare"`
	Subtotal     int `json:"subtotal"`
	BaggageTotal int `json:"baggage_total"`
	CarbonOffset int `json:"carbon_offset"`
	Insurance    int `json:"insurance"`

	PromoCode    string           `json:"promo_code,omitempty"`
	PromoApplied bool             `json:"promo_applied"`
	PromoReason  IneligibleReason `json:"promo_reason,omitempty"`
	Discount     int              `json:"discount"`

	Total int `json:"total"`
}

type Quoter struct {
	catalog *catalog.Catalog
	cfg     Config
}

func NewQuoter(cat *catalog.Catalog, cfg Config) *Quoter {
	return &Quoter{catalog: cat, cfg: cfg}
}

// Quote computes the payable amount for a trip. Unknown cities fail with
// ErrNotFound, an unknown service class or a non-positive passenger count
// with ErrValidation. A promo code never fails the quote: ineligibility is
// reported through PromoApplied/PromoReason and the trip stays at full price.
func (q *Quoter) Quote(in QuoteInput) (*Quote, error) {
	if in.Passengers < 1 {
		return nil, domain.Validationf("passenger count must be at least 1, got %d", in.Passengers)
	}

	class, err := q.catalog.ServiceClass(in.ServiceClass)
	if err != nil {
		return nil, err
	}

	distance, err := q.catalog.DistanceKm(in.Origin, in.Destination)
	if err != nil {
		return nil, err
	}

	base := distance * q.cfg.PerKmRate
	if base < q.cfg.FloorPrice {
		base = q.cfg.FloorPrice
	}
	serviceFare := int(math.Round(float64(base) * class.Multiplier))
	subtotal := serviceFare * in.Passengers

	baggageTotal, err := q.priceBaggage(in.Baggage)
	if err != nil {
		return nil, err
	}

	carbon := 0
	if in.CarbonOffset {
		carbon = q.cfg.CarbonOffsetFee
	}
	insurance := 0
	if in.Insurance {
		insurance = q.cfg.InsuranceFlatFee
	}

	quote := &Quote{
		Origin:       in.Origin,
		Destination:  in.Destination,
		ServiceClass: class.Name,
		Passengers:   in.Passengers,
		DistanceKm:   distance,
		BaseFare:     base,
		ServiceFare:  serviceFare,
		Subtotal:     subtotal,
		BaggageTotal: baggageTotal,
		CarbonOffset: carbon,
		Insurance:    insurance,
	}

	payable := subtotal + baggageTotal + carbon + insurance

	if in.PromoCode != "" {
		result := ResolvePromo(q.catalog, in.PromoCode, payable, class.Name, in.Now)
		quote.PromoCode = in.PromoCode
		quote.PromoApplied = result.Applied
		quote.PromoReason = result.Reason
		quote.Discount = result.Discount
		payable -= result.Discount
	}

	if payable < 0 {
		payable = 0
	}
	quote.Total = payable
	return quote, nil
}

func (q *Quoter) priceBaggage(items []domain.BaggageItem) (int, error) {
	total := 0
	for _, item := range items {
		if item.Quantity < 0 {
			return 0, domain.Validationf("baggage %q has negative quantity", item.Type)
		}
		unit := item.UnitPrice
		insuranceUnit := 0
		if opt, ok := q.catalog.BaggageOption(item.Type); ok {
			// Catalog price wins over whatever the client sent.
			unit = opt.Price
			if item.Insured && opt.InsuranceAvailable {
				insuranceUnit = opt.InsurancePrice
			}
		}
		total += (unit + insuranceUnit) * item.Quantity
	}
	return total, nil
}

// ParcelPrice prices a parcel delivery: flat base, weight charge, and
// percent-of-declared-value insurance when requested.
func (q *Quoter) ParcelPrice(weightKg float64, declaredValue int, insured bool) int {
	const parcelBase = 2000
	const perKg = 500

	price := float64(parcelBase) + weightKg*perKg
	if insured {
		price += float64(declaredValue) * q.cfg.InsuranceValuePercent / 100
	}
	return int(price)
}
