// Package ops holds the batch and search helpers layered on top of the
// codec. Everything here is a thin consumer of the core's public
// encode/decode/distance contract.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/grid9geo/grid9/pkg"
	"github.com/grid9geo/grid9/pkg/codec"
	"github.com/grid9geo/grid9/pkg/concurrent"
	"github.com/grid9geo/grid9/pkg/datastructure"
	"github.com/grid9geo/grid9/pkg/geo"
	"github.com/grid9geo/grid9/pkg/quantizer"
)

const (
	DEFAULT_MAX_RESULTS = 100

	// radius scan step, ~3 meters of latitude
	searchStepDegree = 3.0 / pkg.METERS_PER_DEGREE_LAT
)

var ErrEmptyInput = errors.New("coordinate list cannot be empty")

type Operations struct {
	codec      *codec.Codec
	numWorkers int
	logger     *zap.Logger
}

// New builds the helper set over a codec. numWorkers <= 0 means one worker
// per CPU for the parallel batch calls.
func New(c *codec.Codec, numWorkers int, logger *zap.Logger) *Operations {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Operations{
		codec:      c,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// BatchEncode encodes coordinate pairs in input order, failing on the
// first invalid coordinate.
func (o *Operations) BatchEncode(coords []datastructure.Coordinate) ([]string, error) {
	results := make([]string, len(coords))
	for i, coord := range coords {
		encoded, err := o.codec.Encode(coord.Lat(), coord.Lon(), false)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		results[i] = encoded
	}
	return results, nil
}

// BatchDecode decodes codes in input order, failing on the first invalid
// code.
func (o *Operations) BatchDecode(encoded []string) ([]datastructure.Coordinate, error) {
	results := make([]datastructure.Coordinate, len(encoded))
	for i, code := range encoded {
		lat, lon, err := o.codec.Decode(code)
		if err != nil {
			return nil, fmt.Errorf("code %d: %w", i, err)
		}
		results[i] = datastructure.NewCoordinate(lat, lon)
	}
	return results, nil
}

type encodeResult struct {
	code string
	err  error
}

type decodeResult struct {
	coord datastructure.Coordinate
	err   error
}

// ParallelBatchEncode is BatchEncode fanned out over the worker pool.
// Output order matches input order; every codec call is pure so no
// coordination is needed beyond the pool itself.
func (o *Operations) ParallelBatchEncode(coords []datastructure.Coordinate) ([]string, error) {
	results := concurrent.Map(coords, o.numWorkers, func(coord datastructure.Coordinate) encodeResult {
		code, err := o.codec.Encode(coord.Lat(), coord.Lon(), false)
		return encodeResult{code: code, err: err}
	})

	out := make([]string, len(results))
	for i, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, res.err)
		}
		out[i] = res.code
	}
	return out, nil
}

// ParallelBatchDecode is BatchDecode fanned out over the worker pool.
func (o *Operations) ParallelBatchDecode(encoded []string) ([]datastructure.Coordinate, error) {
	results := concurrent.Map(encoded, o.numWorkers, func(code string) decodeResult {
		lat, lon, err := o.codec.Decode(code)
		return decodeResult{coord: datastructure.NewCoordinate(lat, lon), err: err}
	})

	out := make([]datastructure.Coordinate, len(results))
	for i, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("code %d: %w", i, res.err)
		}
		out[i] = res.coord
	}
	return out, nil
}

// FindNearby scans a 3m grid over the bounding window of the radius and
// returns the codes of cells whose centers fall within radiusMeters of the
// center coordinate, nearest first, capped at maxResults (default 100).
// Latitude is clamped to +-80 degrees. Cells that fail to encode are
// skipped.
func (o *Operations) FindNearby(centerLat, centerLon, radiusMeters float64, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = DEFAULT_MAX_RESULTS
	}

	centerEncoded, err := o.codec.Encode(centerLat, centerLon, false)
	if err != nil {
		return nil, err
	}

	latDelta := radiusMeters / pkg.METERS_PER_DEGREE_LAT
	lonDelta := radiusMeters / (pkg.METERS_PER_DEGREE_LAT * math.Cos(centerLat*math.Pi/180.0))

	minLat := math.Max(-pkg.NEIGHBOR_LATITUDE_LIMIT, centerLat-latDelta)
	maxLat := math.Min(pkg.NEIGHBOR_LATITUDE_LIMIT, centerLat+latDelta)
	minLon := math.Max(pkg.MIN_LONGITUDE, centerLon-lonDelta)
	maxLon := math.Min(pkg.MAX_LONGITUDE, centerLon+lonDelta)

	candidates := datastructure.NewMinHeap[string]()
	scanned := 0
	for lat := minLat; lat <= maxLat; lat += searchStepDegree {
		for lon := minLon; lon <= maxLon; lon += searchStepDegree {
			scanned++
			encoded, err := o.codec.Encode(lat, lon, false)
			if err != nil {
				var rangeErr *quantizer.RangeError
				if errors.As(err, &rangeErr) {
					continue
				}
				return nil, err
			}

			distance, err := o.codec.CalculateDistance(centerEncoded, encoded)
			if err != nil {
				return nil, err
			}
			if distance <= radiusMeters {
				candidates.Insert(datastructure.NewPriorityQueueNode(distance, encoded))
			}
		}
	}

	results := make([]string, 0, maxResults)
	for len(results) < maxResults && candidates.Size() > 0 {
		node, err := candidates.ExtractMin()
		if err != nil {
			break
		}
		results = append(results, node.GetItem())
	}

	o.logger.Debug("radius search finished",
		zap.String("center", centerEncoded),
		zap.Float64("radiusMeters", radiusMeters),
		zap.Int("cellsScanned", scanned),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// GetBoundingBox returns the smallest box containing all coordinates.
func (o *Operations) GetBoundingBox(coords []datastructure.Coordinate) (datastructure.BoundingBox, error) {
	if len(coords) == 0 {
		return datastructure.BoundingBox{}, ErrEmptyInput
	}

	first := coords[0]
	box := datastructure.NewBoundingBox(first.Lat(), first.Lat(), first.Lon(), first.Lon())
	for _, coord := range coords[1:] {
		box = box.Extend(coord)
	}
	return box, nil
}

// GetCenterPoint returns the arithmetic mean of the coordinates.
func (o *Operations) GetCenterPoint(coords []datastructure.Coordinate) (datastructure.Coordinate, error) {
	if len(coords) == 0 {
		return datastructure.Coordinate{}, ErrEmptyInput
	}

	var totalLat, totalLon float64
	for _, coord := range coords {
		totalLat += coord.Lat()
		totalLon += coord.Lon()
	}
	n := float64(len(coords))
	return datastructure.NewCoordinate(totalLat/n, totalLon/n), nil
}

// GroupByCode buckets coordinates by their code, a cheap spatial index for
// points that share a grid cell.
func (o *Operations) GroupByCode(coords []datastructure.Coordinate, humanReadable bool) (map[string][]datastructure.Coordinate, error) {
	groups := make(map[string][]datastructure.Coordinate)
	for i, coord := range coords {
		code, err := o.codec.Encode(coord.Lat(), coord.Lon(), humanReadable)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		groups[code] = append(groups[code], coord)
	}
	return groups, nil
}

// PathToPolyline decodes a sequence of codes and renders the resulting
// cell-center path as a Google encoded polyline.
func (o *Operations) PathToPolyline(encoded []string) (string, error) {
	path, err := o.BatchDecode(encoded)
	if err != nil {
		return "", err
	}
	return geo.PolylineFromCoords(path), nil
}

// CellsToGeoJSON exports the grid cells of the given codes as a GeoJSON
// FeatureCollection.
func (o *Operations) CellsToGeoJSON(encoded []string) ([]byte, error) {
	features := make([]*geojson.Feature, 0, len(encoded))
	for i, code := range encoded {
		minLat, minLon, maxLat, maxLon, err := o.codec.CellBounds(code)
		if err != nil {
			return nil, fmt.Errorf("code %d: %w", i, err)
		}
		features = append(features, geo.CellFeature(code, minLat, minLon, maxLat, maxLon))
	}
	return geo.FeatureCollectionJSON(features)
}
