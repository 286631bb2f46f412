package main

import (
	"github.com/grid9geo/grid9/pkg/codec"
	"github.com/grid9geo/grid9/pkg/datastructure"
	"github.com/grid9geo/grid9/pkg/logger"
	"github.com/grid9geo/grid9/pkg/ops"
	"go.uber.org/zap"
)

type landmark struct {
	name string
	lat  float64
	lon  float64
}

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	landmarks := []landmark{
		{"new york", 40.7128, -74.0060},
		{"london", 51.5074, -0.1278},
		{"tokyo", 35.6762, 139.6503},
		{"sydney", -33.8688, 151.2093},
		{"equator", 0.0, 0.0},
	}

	uniform := codec.NewUniform()
	meter := codec.NewMeterBased()

	for _, lm := range landmarks {
		for _, c := range []*codec.Codec{uniform, meter} {
			code, err := c.Encode(lm.lat, lm.lon, false)
			if err != nil {
				log.Fatal("encode failed", zap.String("landmark", lm.name), zap.Error(err))
			}
			human, _ := codec.FormatForHumans(code)
			precision, err := c.GetActualPrecision(lm.lat, lm.lon)
			if err != nil {
				log.Fatal("precision failed", zap.String("landmark", lm.name), zap.Error(err))
			}

			log.Info("encoded landmark",
				zap.String("strategy", c.StrategyName()),
				zap.String("landmark", lm.name),
				zap.String("code", code),
				zap.String("human", human),
				zap.Float64("latErrorM", precision.LatErrorM),
				zap.Float64("lonErrorM", precision.LonErrorM),
				zap.Float64("totalErrorM", precision.TotalErrorM),
				zap.Int("neighbors", len(c.GetNeighbors(code))),
			)
		}
	}

	nyc, _ := meter.Encode(40.7128, -74.0060, false)
	midtown, _ := meter.Encode(40.7580, -73.9855, false)
	distance, err := meter.CalculateDistance(nyc, midtown)
	if err != nil {
		log.Fatal("distance failed", zap.Error(err))
	}
	log.Info("downtown to midtown", zap.Float64("meters", distance))

	operations := ops.New(uniform, 0, log)

	nearby, err := operations.FindNearby(40.7128, -74.0060, 25, 10)
	if err != nil {
		log.Fatal("radius search failed", zap.Error(err))
	}
	log.Info("nearby codes", zap.Strings("codes", nearby))

	coords := make([]datastructure.Coordinate, 0, len(landmarks))
	for _, lm := range landmarks {
		coords = append(coords, datastructure.NewCoordinate(lm.lat, lm.lon))
	}

	codes, err := operations.ParallelBatchEncode(coords)
	if err != nil {
		log.Fatal("batch encode failed", zap.Error(err))
	}

	poly, err := operations.PathToPolyline(codes)
	if err != nil {
		log.Fatal("polyline failed", zap.Error(err))
	}
	log.Info("landmark path", zap.String("polyline", poly))

	cells, err := operations.CellsToGeoJSON(codes[:2])
	if err != nil {
		log.Fatal("geojson export failed", zap.Error(err))
	}
	log.Info("cell export", zap.ByteString("geojson", cells))
}
