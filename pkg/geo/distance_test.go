package geo

import (
	"testing"

	"github.com/grid9geo/grid9/pkg/datastructure"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistances(t *testing.T) {
	// New York -> London, great-circle on the 6371km sphere
	distance := CalculateHaversineDistance(40.7128, -74.0060, 51.5074, -0.1278)
	require.Greater(t, distance, 5.4e6)
	require.Less(t, distance, 5.7e6)

	require.Zero(t, CalculateHaversineDistance(12.34, 56.78, 12.34, 56.78))

	// antipodal points are half the circumference apart
	half := CalculateHaversineDistance(0, 0, 0, 180)
	require.InDelta(t, 2.00151e7, half, 1e4)
}

func TestHaversineAgreesWithS2(t *testing.T) {
	pairs := [][4]float64{
		{40.7128, -74.0060, 51.5074, -0.1278},
		{35.6762, 139.6503, -33.8688, 151.2093},
		{0.001, 0.001, -0.001, -0.001},
		{89.0, 10.0, 88.0, -170.0},
	}
	for _, p := range pairs {
		hav := CalculateHaversineDistance(p[0], p[1], p[2], p[3])
		s2d := CalculateS2Distance(p[0], p[1], p[2], p[3])
		require.InEpsilon(t, s2d, hav, 1e-6)
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	for _, bearing := range []float64{0, 45, 90, 135, 180, 270} {
		destLat, destLon := GetDestinationPoint(40.7128, -74.0060, bearing, 1000)
		back := CalculateHaversineDistance(40.7128, -74.0060, destLat, destLon)
		require.InDelta(t, 1000, back, 1.0, "bearing=%v", bearing)
	}
}

func TestPolylineRoundTrip(t *testing.T) {
	path := []datastructure.Coordinate{
		datastructure.NewCoordinate(40.7128, -74.0060),
		datastructure.NewCoordinate(51.5074, -0.1278),
		datastructure.NewCoordinate(35.6762, 139.6503),
	}

	encoded := PolylineFromCoords(path)
	require.NotEmpty(t, encoded)

	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(path))
	for i := range path {
		// polyline encoding rounds to 1e-5 degrees
		require.InDelta(t, path[i].Lat(), decoded[i].Lat(), 1e-4)
		require.InDelta(t, path[i].Lon(), decoded[i].Lon(), 1e-4)
	}
}

func TestCellFeature(t *testing.T) {
	feature := CellFeature("K9Q2R5T8V", 40.0, -74.1, 40.1, -74.0)
	require.Equal(t, "K9Q2R5T8V", feature.Properties["code"])

	payload, err := FeatureCollectionJSON([]*geojson.Feature{feature})
	require.NoError(t, err)
	require.Contains(t, string(payload), "FeatureCollection")
	require.Contains(t, string(payload), "K9Q2R5T8V")
}
