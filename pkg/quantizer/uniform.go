package quantizer

import (
	"math"

	"github.com/grid9geo/grid9/pkg"
)

// Uniform quantizes on a fixed grid in degree space. Latitude precision is
// ~2.4m everywhere; longitude precision scales with cos(lat), growing
// without bound toward the poles. That growth is intentional.
type Uniform struct{}

func NewUniform() *Uniform {
	return &Uniform{}
}

func (u *Uniform) Name() string {
	return "uniform"
}

func (u *Uniform) Encode(lat, lon float64) (uint32, uint32, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return 0, 0, err
	}

	latNorm := (lat - pkg.MIN_LATITUDE) / pkg.LATITUDE_RANGE_DEGREE
	lonNorm := (lon - pkg.MIN_LONGITUDE) / pkg.LONGITUDE_RANGE_DEGREE

	// multiply by MAX+1 so every cell gets an equal share of the range,
	// then clamp the exact upper bound back into the last cell
	latIndex := math.Min(math.Floor(latNorm*float64(pkg.LAT_MAX+1)), float64(pkg.LAT_MAX))
	lonIndex := math.Min(math.Floor(lonNorm*float64(pkg.LON_MAX+1)), float64(pkg.LON_MAX))

	return uint32(latIndex), uint32(lonIndex), nil
}

func (u *Uniform) Decode(latIndex, lonIndex uint32) (float64, float64) {
	latNorm := (float64(latIndex) + 0.5) / float64(pkg.LAT_MAX+1)
	lonNorm := (float64(lonIndex) + 0.5) / float64(pkg.LON_MAX+1)

	lat := pkg.MIN_LATITUDE + latNorm*pkg.LATITUDE_RANGE_DEGREE
	lon := pkg.MIN_LONGITUDE + lonNorm*pkg.LONGITUDE_RANGE_DEGREE

	lat = clampF(lat, pkg.MIN_LATITUDE, pkg.MAX_LATITUDE)
	lon = clampF(lon, pkg.MIN_LONGITUDE, pkg.MAX_LONGITUDE)
	return lat, lon
}

func (u *Uniform) CellSpan(latIndex uint32) (float64, float64) {
	return pkg.LATITUDE_RANGE_DEGREE / float64(pkg.LAT_MAX+1),
		pkg.LONGITUDE_RANGE_DEGREE / float64(pkg.LON_MAX+1)
}

// NeighborSteps walks exactly one grid cell and allows the full latitude
// range, unlike the meter-based strategy which clamps to +-80.
func (u *Uniform) NeighborSteps() (float64, float64, float64) {
	latStep, lonStep := u.CellSpan(0)
	return latStep, lonStep, pkg.MAX_LATITUDE
}

// ActualPrecision is analytic for the uniform grid: half a cell on each
// axis, with the longitude half-step shrunk by cos(lat).
func (u *Uniform) ActualPrecision(lat, lon float64) (Precision, error) {
	latStep, lonStep := u.CellSpan(0)

	latErrM := latStep * pkg.METERS_PER_DEGREE_LAT / 2.0
	lonErrM := lonStep * pkg.METERS_PER_DEGREE_LAT * math.Abs(math.Cos(lat*math.Pi/180.0)) / 2.0

	return Precision{
		LatErrorM:   latErrM,
		LonErrorM:   lonErrM,
		TotalErrorM: math.Sqrt(latErrM*latErrM + lonErrM*lonErrM),
	}, nil
}
