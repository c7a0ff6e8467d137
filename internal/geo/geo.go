// Package geo provides great-circle distance and nearest-candidate selection
// for geofence checks.
package geo

import "math"

// earthRadiusMiles is the spherical-earth approximation used throughout.
const earthRadiusMiles = 3959.0

// DistanceMiles returns the haversine great-circle distance in miles between
// two coordinates. It is symmetric and returns 0 for identical points.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// Nearest returns the candidate closest to (lat, lon) and true, or the zero
// value and false for an empty candidate set. Ties go to the candidate that
// appears first in the input.
func Nearest[T any](lat, lon float64, candidates []T, pos func(T) (float64, float64)) (T, bool) {
	var nearest T
	if len(candidates) == 0 {
		return nearest, false
	}

	minDist := math.Inf(1)
	for _, c := range candidates {
		cLat, cLon := pos(c)
		if d := DistanceMiles(lat, lon, cLat, cLon); d < minDist {
			minDist = d
			nearest = c
		}
	}
	return nearest, true
}
