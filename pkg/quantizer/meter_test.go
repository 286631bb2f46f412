package quantizer

import (
	"errors"
	"math"
	"testing"

	"github.com/grid9geo/grid9/pkg"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMeterBasedRejectsOutOfRange(t *testing.T) {
	m := NewMeterBased()

	for _, tc := range [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}} {
		_, _, err := m.Encode(tc[0], tc[1])
		require.Error(t, err)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
	}
}

func TestMeterBasedLatitudeErrorBelowThreeMetersEverywhere(t *testing.T) {
	m := NewMeterBased()

	for lat := -90.0; lat <= 90.0; lat += 1.37 {
		latIndex, lonIndex, err := m.Encode(lat, 13.5)
		require.NoError(t, err)

		decodedLat, _ := m.Decode(latIndex, lonIndex)
		latErrM := math.Abs(lat-decodedLat) * pkg.METERS_PER_DEGREE_LAT
		require.Less(t, latErrM, 3.0, "lat=%v", lat)
	}
}

func TestMeterBasedBandCenterSymmetry(t *testing.T) {
	m := NewMeterBased()
	r := rand.New(rand.NewSource(17))

	// quantizing the decoded cell center must land in the same cell:
	// encode and decode agree on the band-center longitude scale
	for i := 0; i < 5000; i++ {
		lat := r.Float64()*176 - 88
		lon := r.Float64()*360 - 180

		latIndex, lonIndex, err := m.Encode(lat, lon)
		require.NoError(t, err)

		centerLat, centerLon := m.Decode(latIndex, lonIndex)
		latAgain, lonAgain, err := m.Encode(centerLat, centerLon)
		require.NoError(t, err)
		require.Equal(t, latIndex, latAgain, "lat=%v lon=%v", lat, lon)
		require.Equal(t, lonIndex, lonAgain, "lat=%v lon=%v", lat, lon)
	}
}

func TestMeterBasedEquatorialLongitudePrecision(t *testing.T) {
	m := NewMeterBased()

	latIndex, lonIndex, err := m.Encode(0.0, 45.0)
	require.NoError(t, err)

	_, decodedLon := m.Decode(latIndex, lonIndex)
	lonErrM := math.Abs(45.0-decodedLon) * pkg.METERS_PER_DEGREE_LAT
	require.Less(t, lonErrM, 3.0)
}

func TestMeterBasedPolarBranch(t *testing.T) {
	m := NewMeterBased()

	// band centers above 89 fall back to degree quantization
	latIndex, lonIndex, err := m.Encode(89.9, 45.0)
	require.NoError(t, err)
	require.Greater(t, math.Abs(bandCenterLatitude(latIndex)), pkg.POLAR_LATITUDE_THRESHOLD)

	decodedLat, decodedLon := m.Decode(latIndex, lonIndex)
	require.InDelta(t, 89.9, decodedLat, 0.001)
	// degree-based longitude still lands in the right neighborhood
	require.InDelta(t, 45.0, decodedLon, 0.1)

	// poles themselves encode without error
	for _, tc := range [][2]float64{{90, 0}, {-90, 0}, {90, 180}, {-90, -180}} {
		_, _, err := m.Encode(tc[0], tc[1])
		require.NoError(t, err)
	}
}

func TestMeterBasedPrecisionAroundPolarThreshold(t *testing.T) {
	m := NewMeterBased()

	// the quantization rule switches at |bandCenter| = 89, but latitude
	// precision stays constant on both sides of the branch
	below, err := m.ActualPrecision(88.9, 45.0)
	require.NoError(t, err)
	above, err := m.ActualPrecision(89.5, 45.0)
	require.NoError(t, err)

	require.Less(t, below.LatErrorM, 3.0)
	require.Less(t, above.LatErrorM, 3.0)
	require.Less(t, below.TotalErrorM, 6.0)
	require.Less(t, above.TotalErrorM, 6.0)
}

func TestMeterBasedActualPrecisionRoundTrip(t *testing.T) {
	m := NewMeterBased()

	p, err := m.ActualPrecision(40.7128, -74.0060)
	require.NoError(t, err)
	require.Less(t, p.LatErrorM, 3.0)
	require.Less(t, p.LonErrorM, 3.0)
	require.Less(t, p.TotalErrorM, 5.0)

	_, err = m.ActualPrecision(91, 0)
	require.Error(t, err)
}

func TestMeterBasedTheoreticalPrecision(t *testing.T) {
	m := NewMeterBased()

	latPrecM, lonPrecM := m.TheoreticalPrecision(0)
	require.InDelta(t, 4.78, latPrecM, 0.05)
	require.InDelta(t, 4.78, lonPrecM, 0.1)

	_, lonPrecHigh := m.TheoreticalPrecision(60)
	require.InDelta(t, lonPrecM*0.5, lonPrecHigh, 0.01)
}
