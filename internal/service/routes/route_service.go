// Package routes derives bookable departures from the reference catalog and
// a fixed timetable. Generation is fully deterministic: the same search
// always returns the same departures, companies and fares.
package routes

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/rs/zerolog"
)

type RouteUseCase interface {
	Search(ctx context.Context, query SearchQuery) ([]domain.Route, error)
	MultiStopSearch(ctx context.Context, query MultiStopQuery) ([]domain.Route, error)
}

type Cache interface {
	GetRoutes(ctx context.Context, origin, destination, class string) ([]domain.Route, error)
	SetRoutes(ctx context.Context, origin, destination, class string, routes []domain.Route) error
}

type SearchQuery struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	ServiceClass   string `json:"service_class"`
	PreferDirect   bool   `json:"prefer_direct"`
	TimePreference string `json:"time_preference"` // morning, afternoon, evening, any
}

type MultiStopQuery struct {
	Stops        []string `json:"stops"`
	ServiceClass string   `json:"service_class"`
}

type RouteService struct {
	catalog          *catalog.Catalog
	quoter           *pricing.Quoter
	cache            Cache
	slots            []string
	cruisingSpeedKmh float64
	log              zerolog.Logger
}

func NewRouteService(cat *catalog.Catalog, quoter *pricing.Quoter, cache Cache, slots []string, cruisingSpeedKmh float64, log zerolog.Logger) *RouteService {
	return &RouteService{
		catalog:          cat,
		quoter:           quoter,
		cache:            cache,
		slots:            slots,
		cruisingSpeedKmh: cruisingSpeedKmh,
		log:              log,
	}
}

func (s *RouteService) Search(ctx context.Context, query SearchQuery) ([]domain.Route, error) {
	if query.ServiceClass == "" {
		query.ServiceClass = "economy"
	}

	routes, err := s.generate(ctx, query.Origin, query.Destination, query.ServiceClass)
	if err != nil {
		return nil, err
	}

	filtered := routes[:0:0]
	for _, r := range routes {
		if query.PreferDirect && len(r.IntermediateStops) > 1 {
			continue
		}
		if !matchesTimePreference(r.DepartureTime, query.TimePreference) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *RouteService) MultiStopSearch(ctx context.Context, query MultiStopQuery) ([]domain.Route, error) {
	if len(query.Stops) < 2 {
		return nil, domain.Validationf("multi-stop search needs at least two stops")
	}

	var all []domain.Route
	for i := 0; i < len(query.Stops)-1; i++ {
		leg, err := s.generate(ctx, query.Stops[i], query.Stops[i+1], query.ServiceClass)
		if err != nil {
			return nil, err
		}
		all = append(all, leg...)
	}
	return all, nil
}

func (s *RouteService) generate(ctx context.Context, origin, destination, className string) ([]domain.Route, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRoutes(ctx, origin, destination, className); err == nil && cached != nil {
			return cached, nil
		}
	}

	from, err := s.catalog.CityByName(origin)
	if err != nil {
		return nil, err
	}
	to, err := s.catalog.CityByName(destination)
	if err != nil {
		return nil, err
	}
	class, err := s.catalog.ServiceClass(className)
	if err != nil {
		return nil, err
	}

	distance, err := s.catalog.DistanceKm(origin, destination)
	if err != nil {
		return nil, err
	}
	stops, err := s.catalog.StopsBetween(origin, destination)
	if err != nil {
		return nil, err
	}

	// Major pairs get the full timetable, minor pairs every other slot.
	slots := s.slots
	if !from.Major || !to.Major {
		reduced := make([]string, 0, (len(slots)+1)/2)
		for i := 0; i < len(slots); i += 2 {
			reduced = append(reduced, slots[i])
		}
		slots = reduced
	}

	quote, err := s.quoter.Quote(pricing.QuoteInput{
		Origin:       origin,
		Destination:  destination,
		ServiceClass: className,
		Passengers:   1,
	})
	if err != nil {
		return nil, err
	}

	companies := s.catalog.Companies()
	routes := make([]domain.Route, 0, len(slots))
	for _, slot := range slots {
		company := companies[routeHash(origin, destination, slot)%uint32(len(companies))]
		arrival, duration := arrivalFor(slot, distance, s.cruisingSpeedKmh)

		routes = append(routes, domain.Route{
			ID:                routeID(origin, destination, class.Name, slot),
			Origin:            from.Name,
			Destination:       to.Name,
			DepartureTime:     slot,
			ArrivalTime:       arrival,
			Duration:          duration,
			Price:             quote.ServiceFare,
			Company:           company.Name,
			ServiceClass:      class,
			TotalSeats:        class.MaxPassengers,
			DistanceKm:        distance,
			IntermediateStops: stops,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetRoutes(ctx, origin, destination, className, routes); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache search results")
		}
	}
	return routes, nil
}

// routeID is stable across searches so clients can re-request the same
// departure later.
func routeID(origin, destination, class, slot string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s", origin, destination, class, slot)
	return fmt.Sprintf("RT%012x", h.Sum64()&0xffffffffffff)
}

func routeHash(origin, destination, slot string) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", origin, destination, slot)
	return h.Sum32()
}

func arrivalFor(slot string, distanceKm int, speedKmh float64) (arrival, duration string) {
	parts := strings.SplitN(slot, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute := 0
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}

	travelHours := float64(distanceKm) / speedKmh
	wholeHours := int(travelHours)
	extraMinutes := int(math.Round((travelHours - float64(wholeHours)) * 60))
	if extraMinutes == 60 {
		wholeHours++
		extraMinutes = 0
	}

	arrivalMinute := (minute + extraMinutes) % 60
	carry := (minute + extraMinutes) / 60
	arrivalHour := (hour + wholeHours + carry) % 24

	return fmt.Sprintf("%02d:%02d", arrivalHour, arrivalMinute),
		fmt.Sprintf("%dh%02dmin", wholeHours, extraMinutes)
}

func matchesTimePreference(departure, preference string) bool {
	if preference == "" || preference == "any" {
		return true
	}
	hour, err := strconv.Atoi(strings.SplitN(departure, ":", 2)[0])
	if err != nil {
		return false
	}
	switch preference {
	case "morning":
		return hour >= 5 && hour < 12
	case "afternoon":
		return hour >= 12 && hour < 18
	case "evening":
		return hour >= 18 && hour < 23
	default:
		return true
	}
}

var _ RouteUseCase = (*RouteService)(nil)
