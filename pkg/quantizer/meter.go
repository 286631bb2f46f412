package quantizer

import (
	"math"

	"github.com/grid9geo/grid9/pkg"
	"github.com/grid9geo/grid9/pkg/geo"
)

// MeterBased quantizes latitude in meters from the south pole, giving a
// constant ~2.4m latitude precision, and derives the longitude meter scale
// from the center latitude of the chosen latitude cell. Because the band
// center is a function of the latitude index alone, encode and decode
// recompute the identical scale factor without storing it.
//
// Above |bandCenter| = 89 the meter scale of a longitude degree collapses
// and longitude switches to plain degree quantization. The precision jump
// at that latitude is a hard branch, not smoothed.
type MeterBased struct{}

func NewMeterBased() *MeterBased {
	return &MeterBased{}
}

func (m *MeterBased) Name() string {
	return "meter"
}

// latCellSizeM is the south-to-north extent of one latitude cell in meters.
func latCellSizeM() float64 {
	return pkg.TOTAL_LAT_RANGE_M / float64(pkg.LAT_MAX+1)
}

// bandCenterLatitude recovers the midpoint latitude of a latitude cell from
// its index alone. Encode and decode must agree on this formula exactly;
// deriving the scale from the decoded latitude instead would reintroduce
// the circular dependency this design removes.
func bandCenterLatitude(latIndex uint32) float64 {
	return pkg.MIN_LATITUDE + ((float64(latIndex)+0.5)*latCellSizeM())/pkg.METERS_PER_DEGREE_LAT
}

func (m *MeterBased) Encode(lat, lon float64) (uint32, uint32, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return 0, 0, err
	}

	latMeters := (lat - pkg.MIN_LATITUDE) * pkg.METERS_PER_DEGREE_LAT
	latIndex := uint32(math.Min(math.Floor(latMeters/latCellSizeM()), float64(pkg.LAT_MAX)))

	bandCenter := bandCenterLatitude(latIndex)

	var lonIndex uint32
	if math.Abs(bandCenter) > pkg.POLAR_LATITUDE_THRESHOLD {
		// polar branch: meter scale is meaningless near meridian
		// convergence, quantize by fraction of the degree range
		lonNorm := (lon - pkg.MIN_LONGITUDE) / pkg.LONGITUDE_RANGE_DEGREE
		lonIndex = uint32(math.Min(math.Floor(lonNorm*float64(pkg.LON_MAX)), float64(pkg.LON_MAX)))
	} else {
		metersPerDegreeLon := pkg.METERS_PER_DEGREE_LAT * math.Abs(math.Cos(bandCenter*math.Pi/180.0))
		lonMeters := (lon - pkg.MIN_LONGITUDE) * metersPerDegreeLon
		lonPrecisionM := pkg.LONGITUDE_RANGE_DEGREE * metersPerDegreeLon / float64(pkg.LON_MAX+1)
		lonIndex = uint32(math.Min(math.Floor(lonMeters/lonPrecisionM), float64(pkg.LON_MAX)))
	}

	return latIndex, lonIndex, nil
}

func (m *MeterBased) Decode(latIndex, lonIndex uint32) (float64, float64) {
	latMeters := (float64(latIndex) + 0.5) * latCellSizeM()
	lat := pkg.MIN_LATITUDE + latMeters/pkg.METERS_PER_DEGREE_LAT
	lat = clampF(lat, pkg.MIN_LATITUDE, pkg.MAX_LATITUDE)

	// same band-center formula as Encode, from the index alone
	bandCenter := bandCenterLatitude(latIndex)

	var lon float64
	if math.Abs(bandCenter) > pkg.POLAR_LATITUDE_THRESHOLD {
		lonPortion := (float64(lonIndex) + 0.5) / float64(pkg.LON_MAX+1)
		lon = pkg.MIN_LONGITUDE + lonPortion*pkg.LONGITUDE_RANGE_DEGREE
	} else {
		metersPerDegreeLon := pkg.METERS_PER_DEGREE_LAT * math.Abs(math.Cos(bandCenter*math.Pi/180.0))
		lonPrecisionM := pkg.LONGITUDE_RANGE_DEGREE * metersPerDegreeLon / float64(pkg.LON_MAX+1)
		lonMeters := (float64(lonIndex) + 0.5) * lonPrecisionM
		lon = pkg.MIN_LONGITUDE + lonMeters/metersPerDegreeLon
	}

	lon = clampF(lon, pkg.MIN_LONGITUDE, pkg.MAX_LONGITUDE)
	return lat, lon
}

func (m *MeterBased) CellSpan(latIndex uint32) (float64, float64) {
	latSpan := latCellSizeM() / pkg.METERS_PER_DEGREE_LAT

	if math.Abs(bandCenterLatitude(latIndex)) > pkg.POLAR_LATITUDE_THRESHOLD {
		return latSpan, pkg.LONGITUDE_RANGE_DEGREE / float64(pkg.LON_MAX)
	}
	// in degree terms the non-polar longitude cell is uniform; only its
	// meter extent varies with the band
	return latSpan, pkg.LONGITUDE_RANGE_DEGREE / float64(pkg.LON_MAX+1)
}

// NeighborSteps uses a fixed ~3m degree step and clamps latitude to +-80,
// trading polar coverage for a scale-independent walk.
func (m *MeterBased) NeighborSteps() (float64, float64, float64) {
	return pkg.NEIGHBOR_STEP_DEGREE, pkg.NEIGHBOR_STEP_DEGREE, pkg.NEIGHBOR_LATITUDE_LIMIT
}

// ActualPrecision measures the real reconstruction error with a full
// encode/decode round trip.
func (m *MeterBased) ActualPrecision(lat, lon float64) (Precision, error) {
	latIndex, lonIndex, err := m.Encode(lat, lon)
	if err != nil {
		return Precision{}, err
	}
	decodedLat, decodedLon := m.Decode(latIndex, lonIndex)

	latErrM := math.Abs(lat-decodedLat) * pkg.METERS_PER_DEGREE_LAT
	lonErrM := math.Abs(lon-decodedLon) * pkg.METERS_PER_DEGREE_LAT * math.Abs(math.Cos(lat*math.Pi/180.0))

	return Precision{
		LatErrorM:   latErrM,
		LonErrorM:   lonErrM,
		TotalErrorM: geo.CalculateHaversineDistance(lat, lon, decodedLat, decodedLon),
	}, nil
}

// TheoreticalPrecision returns the analytic cell sizes in meters at a
// latitude: constant for latitude, cos-scaled for longitude.
func (m *MeterBased) TheoreticalPrecision(lat float64) (latPrecisionM, lonPrecisionM float64) {
	latPrecisionM = latCellSizeM()
	cosLat := math.Abs(math.Cos(lat * math.Pi / 180.0))
	lonPrecisionM = pkg.LONGITUDE_RANGE_DEGREE * pkg.METERS_PER_DEGREE_LAT * cosLat / float64(pkg.LON_MAX+1)
	return latPrecisionM, lonPrecisionM
}
