package geo

import (
	"github.com/grid9geo/grid9/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes a coordinate path as a Google encoded
// polyline string.
func PolylineFromCoords(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

// CoordsFromPolyline decodes a Google encoded polyline string back into a
// coordinate path.
func CoordsFromPolyline(encoded string) ([]datastructure.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	path := make([]datastructure.Coordinate, 0, len(coords))
	for _, c := range coords {
		path = append(path, datastructure.NewCoordinate(c[0], c[1]))
	}
	return path, nil
}
