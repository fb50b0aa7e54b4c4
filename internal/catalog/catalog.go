// Package catalog holds the immutable reference data the platform is priced
// against: cities with coordinates, bus companies, service classes, promo
// codes and baggage options. A Catalog is built once at startup and shared
// read-only between all callers.
package catalog

import (
	"strings"

	"github.com/connect237/busconnect/internal/domain"
)

type Catalog struct {
	cities    []domain.City
	cityIdx   map[string]int
	companies []domain.Company
	classes   []domain.ServiceClass
	classIdx  map[string]int
	promos    []domain.PromoCode
	promoIdx  map[string]int
	baggage   []domain.BaggageOption
	bagIdx    map[string]int
}

// New builds a catalog from explicit tables. Tests substitute small fixtures
// here; production uses Default().
func New(cities []domain.City, companies []domain.Company, classes []domain.ServiceClass, promos []domain.PromoCode, baggage []domain.BaggageOption) *Catalog {
	c := &Catalog{
		cities:    cities,
		cityIdx:   make(map[string]int, len(cities)),
		companies: companies,
		classes:   classes,
		classIdx:  make(map[string]int, len(classes)),
		promos:    promos,
		promoIdx:  make(map[string]int, len(promos)),
		baggage:   baggage,
		bagIdx:    make(map[string]int, len(baggage)),
	}
	for i, city := range cities {
		c.cityIdx[normalize(city.Name)] = i
	}
	for i, sc := range classes {
		c.classIdx[normalize(sc.Name)] = i
	}
	for i, p := range promos {
		c.promoIdx[strings.ToUpper(p.Code)] = i
	}
	for i, b := range baggage {
		c.bagIdx[b.Type] = i
	}
	return c
}

// Default returns the catalog with the production reference data.
func Default() *Catalog {
	return New(cameroonCities, busCompanies, serviceClasses, promoCodes, baggageOptions)
}

func (c *Catalog) Cities() []domain.City { return c.cities }

// MajorCities returns the popular destinations, capped at limit (0 means all).
func (c *Catalog) MajorCities(limit int) []domain.City {
	var major []domain.City
	for _, city := range c.cities {
		if city.Major {
			major = append(major, city)
		}
	}
	if limit > 0 && len(major) > limit {
		major = major[:limit]
	}
	return major
}

func (c *Catalog) CityByName(name string) (domain.City, error) {
	i, ok := c.cityIdx[normalize(name)]
	if !ok {
		return domain.City{}, domain.NotFoundf("city %q", name)
	}
	return c.cities[i], nil
}

func (c *Catalog) Companies() []domain.Company { return c.companies }

func (c *Catalog) ServiceClasses() []domain.ServiceClass { return c.classes }

// ServiceClass rejects unknown names. There is deliberately no fallback to
// economy: masking a bad class name hides client bugs.
func (c *Catalog) ServiceClass(name string) (domain.ServiceClass, error) {
	i, ok := c.classIdx[normalize(name)]
	if !ok {
		return domain.ServiceClass{}, domain.Validationf("unknown service class %q", name)
	}
	return c.classes[i], nil
}

// PromoCode looks up a code. Absence is not an error: an unknown code simply
// yields no discount.
func (c *Catalog) PromoCode(code string) (domain.PromoCode, bool) {
	i, ok := c.promoIdx[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.PromoCode{}, false
	}
	return c.promos[i], true
}

func (c *Catalog) PromoCodes() []domain.PromoCode { return c.promos }

func (c *Catalog) BaggageOptions() []domain.BaggageOption { return c.baggage }

func (c *Catalog) BaggageOption(typ string) (domain.BaggageOption, bool) {
	i, ok := c.bagIdx[typ]
	if !ok {
		return domain.BaggageOption{}, false
	}
	return c.baggage[i], true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
