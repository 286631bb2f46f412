package quantizer

import (
	"fmt"

	"github.com/grid9geo/grid9/pkg"
)

// Strategy maps a continuous (lat, lon) pair onto a discrete cell in the
// 22-bit x 23-bit grid and back. Decode returns the center of the cell.
type Strategy interface {
	Name() string
	Encode(lat, lon float64) (latIndex, lonIndex uint32, err error)
	Decode(latIndex, lonIndex uint32) (lat, lon float64)

	// CellSpan returns the angular extent of one cell in degrees. For the
	// meter-based strategy the longitude span depends on the latitude band.
	CellSpan(latIndex uint32) (latSpanDegree, lonSpanDegree float64)

	// NeighborSteps returns the degree offsets used when walking to the 8
	// surrounding cells, plus the absolute latitude the walk clamps to.
	NeighborSteps() (latStepDegree, lonStepDegree, maxAbsLatitude float64)

	ActualPrecision(lat, lon float64) (Precision, error)
}

// Precision describes the worst-case reconstruction error at a location.
type Precision struct {
	LatErrorM   float64
	LonErrorM   float64
	TotalErrorM float64
}

// RangeError reports a coordinate outside its valid axis bounds.
type RangeError struct {
	Axis  string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v must be between %v and %v", e.Axis, e.Value, e.Min, e.Max)
}

func validateCoordinate(lat, lon float64) error {
	if lat < pkg.MIN_LATITUDE || lat > pkg.MAX_LATITUDE {
		return &RangeError{Axis: "latitude", Value: lat, Min: pkg.MIN_LATITUDE, Max: pkg.MAX_LATITUDE}
	}
	if lon < pkg.MIN_LONGITUDE || lon > pkg.MAX_LONGITUDE {
		return &RangeError{Axis: "longitude", Value: lon, Min: pkg.MIN_LONGITUDE, Max: pkg.MAX_LONGITUDE}
	}
	return nil
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
