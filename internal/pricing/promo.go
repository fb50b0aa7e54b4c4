package pricing

import (
	"time"

	"github.com/connect237/busconnect/internal/catalog"
)

// IneligibleReason says why a promo code did not apply. An empty reason with
// Applied=false only occurs when no code was supplied.
type IneligibleReason string

const (
	ReasonUnknownCode      IneligibleReason = "unknown_code"
	ReasonExpired          IneligibleReason = "expired"
	ReasonBelowMinimum     IneligibleReason = "below_minimum_amount"
	ReasonClassNotEligible IneligibleReason = "class_not_eligible"
)

// PromoResult is the outcome of resolving a promo code against an amount.
// Ineligibility is not an error: the booking proceeds at full price.
type PromoResult struct {
	Applied  bool             `json:"applied"`
	Reason   IneligibleReason `json:"reason,omitempty"`
	Discount int              `json:"discount"`
}

// ResolvePromo checks a code against the catalog and the eligibility rules:
// the code must exist, must not be expired at now, the amount must reach the
// code's minimum, and when the code restricts service classes the requested
// class must be among them. A discount is all-or-nothing; there are no
// partial applications.
//
// Percentage discounts are floored; fixed discounts are capped at the amount
// so the final price can never go negative. When a code carries both forms,
// the percentage wins.
func ResolvePromo(cat *catalog.Catalog, code string, amount int, serviceClass string, now time.Time) PromoResult {
	promo, ok := cat.PromoCode(code)
	if !ok {
		return PromoResult{Reason: ReasonUnknownCode}
	}
	if now.After(promo.ValidUntil) {
		return PromoResult{Reason: ReasonExpired}
	}
	if amount < promo.MinAmount {
		return PromoResult{Reason: ReasonBelowMinimum}
	}
	if len(promo.ApplicableClasses) > 0 && !containsClass(promo.ApplicableClasses, serviceClass) {
		return PromoResult{Reason: ReasonClassNotEligible}
	}

	var discount int
	switch {
	case promo.DiscountPercent > 0:
		discount = amount * promo.DiscountPercent / 100
	case promo.DiscountAmount > 0:
		discount = promo.DiscountAmount
		if discount > amount {
			discount = amount
		}
	}
	return PromoResult{Applied: true, Discount: discount}
}

func containsClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}
