// Package codec is the public Grid9 surface: a fixed 9-character base32
// code per coordinate, parameterized by a pluggable quantization strategy.
package codec

import (
	"math"

	"github.com/grid9geo/grid9/pkg"
	"github.com/grid9geo/grid9/pkg/base32"
	"github.com/grid9geo/grid9/pkg/geo"
	"github.com/grid9geo/grid9/pkg/quantizer"
)

type Codec struct {
	strategy quantizer.Strategy
}

func New(strategy quantizer.Strategy) *Codec {
	return &Codec{strategy: strategy}
}

// NewUniform builds a codec over the fixed degree grid: <4m error below
// 80 degrees latitude, longitude error growing toward the poles.
func NewUniform() *Codec {
	return New(quantizer.NewUniform())
}

// NewMeterBased builds a codec over the meter-scaled grid: constant ~2.4m
// latitude error, ~2.7m longitude error at the equator.
func NewMeterBased() *Codec {
	return New(quantizer.NewMeterBased())
}

func (c *Codec) StrategyName() string {
	return c.strategy.Name()
}

func pack(latIndex, lonIndex uint32) uint64 {
	return uint64(latIndex)<<pkg.LON_BITS | uint64(lonIndex)
}

func unpack(packed uint64) (latIndex, lonIndex uint32) {
	return uint32(packed >> pkg.LON_BITS), uint32(packed & pkg.LON_MAX)
}

// Encode converts a coordinate to its 9-character code, or the 11-character
// XXX-XXX-XXX form when humanReadable is set. Out-of-range input fails with
// *quantizer.RangeError.
func (c *Codec) Encode(lat, lon float64, humanReadable bool) (string, error) {
	latIndex, lonIndex, err := c.strategy.Encode(lat, lon)
	if err != nil {
		return "", err
	}

	code := base32.Encode(pack(latIndex, lonIndex))
	if humanReadable {
		return FormatForHumans(code)
	}
	return code, nil
}

// Decode converts a compact or human-readable code back to the center
// coordinate of its grid cell.
func (c *Codec) Decode(encoded string) (float64, float64, error) {
	compact, err := normalize(encoded)
	if err != nil {
		return 0, 0, err
	}

	packed, err := base32.Decode(compact)
	if err != nil {
		return 0, 0, err
	}

	latIndex, lonIndex := unpack(packed)
	lat, lon := c.strategy.Decode(latIndex, lonIndex)
	return lat, lon, nil
}

// CellBounds returns the axis-aligned bounds in degrees of the grid cell a
// code identifies.
func (c *Codec) CellBounds(encoded string) (minLat, minLon, maxLat, maxLon float64, err error) {
	compact, err := normalize(encoded)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	packed, err := base32.Decode(compact)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	latIndex, lonIndex := unpack(packed)
	centerLat, centerLon := c.strategy.Decode(latIndex, lonIndex)
	latSpan, lonSpan := c.strategy.CellSpan(latIndex)

	minLat = math.Max(centerLat-latSpan/2, pkg.MIN_LATITUDE)
	maxLat = math.Min(centerLat+latSpan/2, pkg.MAX_LATITUDE)
	minLon = math.Max(centerLon-lonSpan/2, pkg.MIN_LONGITUDE)
	maxLon = math.Min(centerLon+lonSpan/2, pkg.MAX_LONGITUDE)
	return minLat, minLon, maxLat, maxLon, nil
}

// IsValidEncoding reports whether the string is a decodable code in either
// form. It never returns an error; all failures fold into false.
func (c *Codec) IsValidEncoding(encoded string) bool {
	compact, err := normalize(encoded)
	if err != nil {
		return false
	}
	if _, err := base32.Decode(compact); err != nil {
		return false
	}
	return true
}

// CalculateDistance decodes both codes and returns the great-circle
// distance between their cell centers in meters.
func (c *Codec) CalculateDistance(encodedOne, encodedTwo string) (float64, error) {
	latOne, lonOne, err := c.Decode(encodedOne)
	if err != nil {
		return 0, err
	}
	latTwo, lonTwo, err := c.Decode(encodedTwo)
	if err != nil {
		return 0, err
	}
	return geo.CalculateHaversineDistance(latOne, lonOne, latTwo, lonTwo), nil
}

// GetNeighbors returns the codes of the up-to-8 surrounding cells. Offsets
// that clamp back onto the input cell are dropped, so fewer than 8 results
// come back near the coordinate bounds.
func (c *Codec) GetNeighbors(encoded string) []string {
	lat, lon, err := c.Decode(encoded)
	if err != nil {
		return nil
	}

	latStep, lonStep, maxAbsLat := c.strategy.NeighborSteps()

	neighbors := make([]string, 0, 8)
	for latOffset := -1; latOffset <= 1; latOffset++ {
		for lonOffset := -1; lonOffset <= 1; lonOffset++ {
			if latOffset == 0 && lonOffset == 0 {
				continue
			}

			neighborLat := clamp(lat+float64(latOffset)*latStep, -maxAbsLat, maxAbsLat)
			neighborLon := clamp(lon+float64(lonOffset)*lonStep, pkg.MIN_LONGITUDE, pkg.MAX_LONGITUDE)

			neighborCode, err := c.Encode(neighborLat, neighborLon, false)
			if err != nil || neighborCode == encoded {
				continue
			}
			neighbors = append(neighbors, neighborCode)
		}
	}
	return neighbors
}

// GetActualPrecision reports the reconstruction error at a location in
// meters, per axis and combined.
func (c *Codec) GetActualPrecision(lat, lon float64) (quantizer.Precision, error) {
	return c.strategy.ActualPrecision(lat, lon)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
