// Package geo computes great-circle distances between user locations.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// MetersPerMile converts orb's meter distances to miles.
const MetersPerMile = 1609.344

// EarthRadiusMiles is the sphere radius HaversineMiles measures on.
const EarthRadiusMiles = orb.EarthRadius / MetersPerMile

// HaversineMiles returns the haversine distance in miles between two lat/lon pairs.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	// orb points are (lon, lat).
	return orbgeo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}) / MetersPerMile
}
