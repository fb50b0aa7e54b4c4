package catalog

import (
	"fmt"

	"github.com/connect237/busconnect/internal/domain"
)

// stopDistanceThresholdKm: legs shorter than this run non-stop.
const stopDistanceThresholdKm = 200

// StopsBetween derives the intermediate halts for a leg: for trips over the
// threshold, the major cities closest to the leg's midpoint, excluding the
// endpoints. Deterministic for a fixed catalog.
func (c *Catalog) StopsBetween(origin, destination string) ([]domain.BusStop, error) {
	from, err := c.CityByName(origin)
	if err != nil {
		return nil, err
	}
	to, err := c.CityByName(destination)
	if err != nil {
		return nil, err
	}

	distance := int(haversineKm(from.Lat, from.Lng, to.Lat, to.Lng))
	if distance <= stopDistanceThresholdKm {
		return nil, nil
	}
	maxStops := distance / 150
	if maxStops > 2 {
		maxStops = 2
	}

	midLat, midLng := Midpoint(from, to)
	candidates := c.MajorCities(0)
	sortByDistance(candidates, func(city domain.City) float64 {
		return haversineKm(city.Lat, city.Lng, midLat, midLng)
	})

	var stops []domain.BusStop
	for _, city := range candidates {
		if len(stops) == maxStops {
			break
		}
		if city.Name == from.Name || city.Name == to.Name {
			continue
		}
		stops = append(stops, domain.BusStop{
			City:      city.Name,
			StopName:  fmt.Sprintf("Gare routière %s", city.Name),
			Lat:       city.Lat,
			Lng:       city.Lng,
			StopOrder: len(stops) + 1,
		})
	}
	return stops, nil
}

// sortByDistance performs an insertion sort (fine for small N) on any slice
// where each element exposes a distance via the accessor function.
func sortByDistance[T any](items []T, dist func(T) float64) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && dist(items[j]) > dist(key) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
