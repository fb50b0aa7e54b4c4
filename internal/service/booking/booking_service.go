package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/kafka"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/connect237/busconnect/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type BookingUseCase interface {
	QuoteTrip(ctx context.Context, input QuoteRequest) (*pricing.Quote, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
	RateBooking(ctx context.Context, reference string, rating int, review string) error
	Track(ctx context.Context, reference string) (*domain.TrackingInfo, error)
	PopularRoutes(ctx context.Context, limit int) ([]domain.RouteStat, error)
}

type Cache interface {
	ReserveReference(ctx context.Context, reference string, ttl time.Duration) (bool, error)
	ReleaseReference(ctx context.Context, reference string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings         repository.BookingRepository
	catalog          *catalog.Catalog
	quoter           *pricing.Quoter
	cache            Cache
	producer         Producer
	eventsTopic      string
	cruisingSpeedKmh float64
	now              func() time.Time
	log              zerolog.Logger
}

type CreateBookingInput struct {
	UserID             string               `json:"user_id"`
	RouteID            string               `json:"route_id"`
	Origin             string               `json:"origin"`
	Destination        string               `json:"destination"`
	PassengerCount     int                  `json:"passenger_count"`
	SeatNumbers        []string             `json:"seat_numbers"`
	ServiceClass       string               `json:"service_class"`
	Baggage            []domain.BaggageItem `json:"baggage"`
	PromoCode          string               `json:"promo_code"`
	CarbonOffset       bool                 `json:"carbon_offset"`
	Insurance          bool                 `json:"insurance"`
	ScheduledDeparture string               `json:"scheduled_departure"`
	SpecialRequests    string               `json:"special_requests"`
}

type QuoteRequest struct {
	Origin       string               `json:"origin"`
	Destination  string               `json:"destination"`
	ServiceClass string               `json:"service_class"`
	Passengers   int                  `json:"passengers"`
	Baggage      []domain.BaggageItem `json:"baggage"`
	CarbonOffset bool                 `json:"carbon_offset"`
	Insurance    bool                 `json:"insurance"`
	PromoCode    string               `json:"promo_code"`
}

type BookingServiceOption func(*BookingService)

// WithClock substitutes the time source, used by tracking tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cat *catalog.Catalog,
	quoter *pricing.Quoter,
	cache Cache,
	producer Producer,
	eventsTopic string,
	cruisingSpeedKmh float64,
	log zerolog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:         bookings,
		catalog:          cat,
		quoter:           quoter,
		cache:            cache,
		producer:         producer,
		eventsTopic:      eventsTopic,
		cruisingSpeedKmh: cruisingSpeedKmh,
		now:              time.Now,
		log:              log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) QuoteTrip(ctx context.Context, input QuoteRequest) (*pricing.Quote, error) {
	return s.quoter.Quote(pricing.QuoteInput{
		Origin:       input.Origin,
		Destination:  input.Destination,
		ServiceClass: input.ServiceClass,
		Passengers:   input.Passengers,
		Baggage:      input.Baggage,
		CarbonOffset: input.CarbonOffset,
		Insurance:    input.Insurance,
		PromoCode:    input.PromoCode,
		Now:          s.now(),
	})
}

// CreateBooking quotes the trip and persists the booking in a single insert.
// The total price is frozen from the quote and never recomputed afterwards.
// The booking event publish is fire-and-forget: losing it costs a
// notification and a loyalty award, not the booking.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, domain.Validationf("user_id is required")
	}
	if strings.EqualFold(strings.TrimSpace(input.Origin), strings.TrimSpace(input.Destination)) {
		return nil, domain.Validationf("origin and destination must differ")
	}
	if len(input.SeatNumbers) != 0 && len(input.SeatNumbers) != input.PassengerCount {
		return nil, domain.Validationf("seat numbers do not match passenger count")
	}

	quote, err := s.QuoteTrip(ctx, QuoteRequest{
		Origin:       input.Origin,
		Destination:  input.Destination,
		ServiceClass: input.ServiceClass,
		Passengers:   input.PassengerCount,
		Baggage:      input.Baggage,
		CarbonOffset: input.CarbonOffset,
		Insurance:    input.Insurance,
		PromoCode:    input.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	reference, err := s.generateReference(ctx, "BC")
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		RouteID:         input.RouteID,
		Origin:          input.Origin,
		Destination:     input.Destination,
		PassengerCount:  input.PassengerCount,
		SeatNumbers:     input.SeatNumbers,
		ServiceClass:    quote.ServiceClass,
		Baggage:         input.Baggage,
		CarbonOffset:    input.CarbonOffset,
		Insurance:       input.Insurance,
		TotalPrice:      quote.Total,
		Status:          domain.BookingStatusConfirmed,
		Reference:       reference,
		QRCode:          "QR_" + reference,
		SpecialRequests: input.SpecialRequests,
	}
	if quote.PromoApplied {
		booking.PromoCode = input.PromoCode
	}
	if input.ScheduledDeparture != "" {
		departure, err := time.Parse(time.RFC3339, input.ScheduledDeparture)
		if err != nil {
			return nil, domain.Validationf("scheduled_departure: %v", err)
		}
		booking.ScheduledDeparture = &departure
		booking.IsAdvanceBooking = true
	}
	if booking.SeatNumbers == nil {
		booking.SeatNumbers = []string{}
	}
	if booking.Baggage == nil {
		booking.Baggage = []domain.BaggageItem{}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if s.cache != nil {
			_ = s.cache.ReleaseReference(ctx, reference)
		}
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	current, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}
	if current.Status == domain.BookingStatusCompleted {
		return nil, domain.Validationf("completed booking cannot be cancelled")
	}

	updated, err := s.bookings.UpdateStatus(ctx, reference, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_cancelled", updated)
	return updated, nil
}

func (s *BookingService) RateBooking(ctx context.Context, reference string, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return domain.Validationf("rating must be between 1 and 5")
	}
	return s.bookings.SetRating(ctx, reference, rating, review)
}

func (s *BookingService) PopularRoutes(ctx context.Context, limit int) ([]domain.RouteStat, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.bookings.PopularRoutes(ctx, limit)
}

// Track derives a tracking snapshot from the booking's scheduled departure,
// the route distance and the cruising speed. The same booking at the same
// instant always reports the same position.
func (s *BookingService) Track(ctx context.Context, reference string) (*domain.TrackingInfo, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	distance, err := s.catalog.DistanceKm(booking.Origin, booking.Destination)
	if err != nil {
		return nil, err
	}
	stops, err := s.catalog.StopsBetween(booking.Origin, booking.Destination)
	if err != nil {
		return nil, err
	}

	departure := booking.CreatedAt
	if booking.ScheduledDeparture != nil {
		departure = *booking.ScheduledDeparture
	}

	now := s.now()
	totalDuration := time.Duration(float64(distance) / s.cruisingSpeedKmh * float64(time.Hour))
	arrival := departure.Add(totalDuration)

	info := &domain.TrackingInfo{
		Reference:        reference,
		EstimatedArrival: arrival,
		LastUpdated:      now,
	}

	switch {
	case booking.Status == domain.BookingStatusCancelled:
		info.Status = "cancelled"
		info.CurrentLocation = booking.Origin
		info.DistanceRemainingKm = distance
	case now.Before(departure):
		info.Status = "boarding"
		info.CurrentLocation = booking.Origin
		info.DistanceRemainingKm = distance
		info.NextStops = stopNames(stops, booking.Destination)
	// A zero-length leg would make the progress fraction undefined, treat it
	// as already arrived.
	case now.After(arrival) || totalDuration <= 0:
		info.Status = "arrived"
		info.CurrentLocation = booking.Destination
	default:
		progress := float64(now.Sub(departure)) / float64(totalDuration)
		travelled := int(progress * float64(distance))
		info.Status = "en_route"
		info.DistanceRemainingKm = distance - travelled
		info.CurrentLocation, info.NextStops = positionOnRoute(booking, stops, progress)
	}
	return info, nil
}

// positionOnRoute maps a progress fraction onto the leg's stop sequence.
// Stops are assumed evenly spaced along the leg.
func positionOnRoute(booking *domain.Booking, stops []domain.BusStop, progress float64) (string, []string) {
	waypoints := make([]string, 0, len(stops)+2)
	waypoints = append(waypoints, booking.Origin)
	for _, stop := range stops {
		waypoints = append(waypoints, stop.City)
	}
	waypoints = append(waypoints, booking.Destination)

	segments := len(waypoints) - 1
	idx := int(progress * float64(segments))
	if idx >= segments {
		idx = segments - 1
	}
	return waypoints[idx], waypoints[idx+1:]
}

func stopNames(stops []domain.BusStop, destination string) []string {
	names := make([]string, 0, len(stops)+1)
	for _, stop := range stops {
		names = append(names, stop.City)
	}
	return append(names, destination)
}

const referenceAttempts = 5

// generateReference produces a prefix + 6 digit code. Uniqueness is enforced
// rather than assumed: a Redis reservation fences concurrent requests and the
// repository is checked for historical collisions.
func (s *BookingService) generateReference(ctx context.Context, prefix string) (string, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		reference := fmt.Sprintf("%s%06d", prefix, n.Int64()+100000)

		if s.cache != nil {
			ok, err := s.cache.ReserveReference(ctx, reference, time.Minute)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		exists, err := s.bookings.ReferenceExists(ctx, reference)
		if err != nil {
			return "", err
		}
		if exists {
			if s.cache != nil {
				_ = s.cache.ReleaseReference(ctx, reference)
			}
			continue
		}
		return reference, nil
	}
	return "", fmt.Errorf("could not generate a unique reference after %d attempts", referenceAttempts)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   booking.Reference,
		UserID:      booking.UserID,
		Origin:      booking.Origin,
		Destination: booking.Destination,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
		OccurredAt:  s.now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.Reference, event); err != nil {
		s.log.Warn().Err(err).Str("reference", booking.Reference).Str("type", eventType).
			Msg("failed to publish booking event")
	}
}

var _ BookingUseCase = (*BookingService)(nil)
