package catalog

import (
	"math"

	"github.com/connect237/busconnect/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in whole kilometres between
// two catalog cities. The result is truncated, not rounded, so a fixed
// catalog always yields the same integer. Unknown cities fail with not found.
func (c *Catalog) DistanceKm(origin, destination string) (int, error) {
	from, err := c.CityByName(origin)
	if err != nil {
		return 0, err
	}
	to, err := c.CityByName(destination)
	if err != nil {
		return 0, err
	}
	return int(haversineKm(from.Lat, from.Lng, to.Lat, to.Lng)), nil
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Midpoint returns the coordinate midway between two cities, used to place
// intermediate stops on long legs.
func Midpoint(a, b domain.City) (lat, lng float64) {
	return (a.Lat + b.Lat) / 2, (a.Lng + b.Lng) / 2
}
