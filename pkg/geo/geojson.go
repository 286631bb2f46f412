package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CellFeature builds a GeoJSON polygon feature for one grid cell, tagged
// with its code. Bounds are degree values, ring is closed lon/lat order.
func CellFeature(code string, minLat, minLon, maxLat, maxLon float64) *geojson.Feature {
	ring := orb.Ring{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}
	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["code"] = code
	return feature
}

// FeatureCollectionJSON marshals cell features into a GeoJSON
// FeatureCollection document.
func FeatureCollectionJSON(features []*geojson.Feature) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
