package routes

import (
	"context"
	"testing"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSlots = []string{"05:30", "07:00", "09:00", "11:30", "14:00", "16:30", "19:00", "21:30"}

func newServiceWithoutCache() *RouteService {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat, pricing.DefaultConfig())
	return NewRouteService(cat, quoter, nil, testSlots, 55, zerolog.Nop())
}

func TestSearch_MajorPairGetsFullTimetable(t *testing.T) {
	svc := newServiceWithoutCache()

	routes, err := svc.Search(context.Background(), SearchQuery{
		Origin:      "Yaoundé",
		Destination: "Douala",
	})
	require.NoError(t, err)
	require.Len(t, routes, len(testSlots))

	for i, r := range routes {
		assert.Equal(t, testSlots[i], r.DepartureTime)
		assert.Equal(t, "Yaoundé", r.Origin)
		assert.Equal(t, "Douala", r.Destination)
		assert.Equal(t, "economy", r.ServiceClass.Name)
		assert.Equal(t, 201, r.DistanceKm)
		assert.NotEmpty(t, r.Company)
		assert.Regexp(t, `^RT[0-9a-f]{12}$`, r.ID)
		// One seat fare at the economy multiplier.
		assert.Equal(t, 10050, r.Price)
	}
}

func TestSearch_MinorPairGetsReducedTimetable(t *testing.T) {
	svc := newServiceWithoutCache()

	routes, err := svc.Search(context.Background(), SearchQuery{
		Origin:      "Yaoundé",
		Destination: "Mbalmayo",
	})
	require.NoError(t, err)
	require.Len(t, routes, len(testSlots)/2)
	assert.Equal(t, "05:30", routes[0].DepartureTime)
	assert.Equal(t, "09:00", routes[1].DepartureTime)
}

func TestSearch_Deterministic(t *testing.T) {
	svc := newServiceWithoutCache()
	query := SearchQuery{Origin: "Yaoundé", Destination: "Douala", ServiceClass: "vip"}

	first, err := svc.Search(context.Background(), query)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearch_TimePreference(t *testing.T) {
	svc := newServiceWithoutCache()

	morning, err := svc.Search(context.Background(), SearchQuery{
		Origin: "Yaoundé", Destination: "Douala", TimePreference: "morning",
	})
	require.NoError(t, err)
	require.Len(t, morning, 4)
	for _, r := range morning {
		assert.Less(t, r.DepartureTime, "12:00")
	}

	evening, err := svc.Search(context.Background(), SearchQuery{
		Origin: "Yaoundé", Destination: "Douala", TimePreference: "evening",
	})
	require.NoError(t, err)
	require.Len(t, evening, 2)
}

func TestSearch_UnknownCity(t *testing.T) {
	svc := newServiceWithoutCache()

	_, err := svc.Search(context.Background(), SearchQuery{
		Origin: "Atlantis", Destination: "Douala",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_ArrivalAndDuration(t *testing.T) {
	svc := newServiceWithoutCache()

	routes, err := svc.Search(context.Background(), SearchQuery{
		Origin: "Yaoundé", Destination: "Douala",
	})
	require.NoError(t, err)

	// 201 km at 55 km/h is 3h39min on every departure.
	for _, r := range routes {
		assert.Equal(t, "3h39min", r.Duration)
	}
	assert.Equal(t, "09:09", routes[0].ArrivalTime) // 05:30 + 3h39
}

func TestMultiStopSearch(t *testing.T) {
	svc := newServiceWithoutCache()

	routes, err := svc.MultiStopSearch(context.Background(), MultiStopQuery{
		Stops:        []string{"Yaoundé", "Douala", "Bafoussam"},
		ServiceClass: "economy",
	})
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	legs := map[string]bool{}
	for _, r := range routes {
		legs[r.Origin+">"+r.Destination] = true
	}
	assert.True(t, legs["Yaoundé>Douala"])
	assert.True(t, legs["Douala>Bafoussam"])
	assert.Len(t, legs, 2)
}

func TestMultiStopSearch_TooFewStops(t *testing.T) {
	svc := newServiceWithoutCache()

	_, err := svc.MultiStopSearch(context.Background(), MultiStopQuery{Stops: []string{"Yaoundé"}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

type MockRouteCache struct {
	mock.Mock
}

func (m *MockRouteCache) GetRoutes(ctx context.Context, origin, destination, class string) ([]domain.Route, error) {
	args := m.Called(ctx, origin, destination, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteCache) SetRoutes(ctx context.Context, origin, destination, class string, routes []domain.Route) error {
	args := m.Called(ctx, origin, destination, class, routes)
	return args.Error(0)
}

func TestSearch_CacheHitSkipsGeneration(t *testing.T) {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat, pricing.DefaultConfig())
	cacheMock := &MockRouteCache{}
	svc := NewRouteService(cat, quoter, cacheMock, testSlots, 55, zerolog.Nop())

	cached := []domain.Route{{ID: "RTcafecafecafe", Origin: "Yaoundé", Destination: "Douala", DepartureTime: "07:00"}}
	cacheMock.On("GetRoutes", mock.Anything, "Yaoundé", "Douala", "economy").Return(cached, nil)

	routes, err := svc.Search(context.Background(), SearchQuery{Origin: "Yaoundé", Destination: "Douala"})
	require.NoError(t, err)
	assert.Equal(t, cached, routes)
	cacheMock.AssertNotCalled(t, "SetRoutes", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_CacheMissStoresResults(t *testing.T) {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat, pricing.DefaultConfig())
	cacheMock := &MockRouteCache{}
	svc := NewRouteService(cat, quoter, cacheMock, testSlots, 55, zerolog.Nop())

	cacheMock.On("GetRoutes", mock.Anything, "Yaoundé", "Douala", "economy").Return(nil, nil)
	cacheMock.On("SetRoutes", mock.Anything, "Yaoundé", "Douala", "economy", mock.Anything).Return(nil)

	routes, err := svc.Search(context.Background(), SearchQuery{Origin: "Yaoundé", Destination: "Douala"})
	require.NoError(t, err)
	require.Len(t, routes, len(testSlots))
	cacheMock.AssertExpectations(t)
}
