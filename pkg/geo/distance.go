package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/grid9geo/grid9/pkg"
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// CalculateHaversineDistance returns the great-circle distance in meters on
// a sphere of radius 6371000m. This is the ground-truth metric used to
// validate the codec's precision claims.
func CalculateHaversineDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	lonOne = degreeToRadians(lonOne)
	latTwo = degreeToRadians(latTwo)
	lonTwo = degreeToRadians(lonTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(lonOne-lonTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return pkg.EARTH_RADIUS_M * c
}

// CalculateS2Distance computes the same great-circle distance through the
// s2 geometry library. Used as an independent cross-check of the haversine
// implementation in diagnostics and tests.
func CalculateS2Distance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, lonOne)
	b := s2.LatLngFromDegrees(latTwo, lonTwo)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_M
}

// GetDestinationPoint returns the point reached by travelling dist meters
// from (lat, lon) along the given bearing in degrees.
func GetDestinationPoint(lat, lon float64, bearing float64, dist float64) (float64, float64) {
	dr := dist / pkg.EARTH_RADIUS_M

	bearing = degreeToRadians(bearing)
	lat = degreeToRadians(lat)
	lon = degreeToRadians(lon)

	destLat := math.Asin(math.Sin(lat)*math.Cos(dr) + math.Cos(lat)*math.Sin(dr)*math.Cos(bearing))

	lonPartOne := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat)
	lonPartTwo := math.Cos(dr) - math.Sin(lat)*math.Sin(destLat)

	destLon := lon + math.Atan2(lonPartOne, lonPartTwo)
	destLon = math.Mod(destLon+3*math.Pi, 2*math.Pi) - math.Pi

	return destLat * (180.0 / math.Pi), destLon * (180.0 / math.Pi)
}
