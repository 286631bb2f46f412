package datastructure

type Coordinate struct {
	lat float64
	lon float64
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lon() float64 {
	return c.lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: lat,
		lon: lon,
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

// BoundingBox is the smallest axis-aligned rectangle containing a set of
// coordinates.
type BoundingBox struct {
	minLat float64
	maxLat float64
	minLon float64
	maxLon float64
}

func NewBoundingBox(minLat, maxLat, minLon, maxLon float64) BoundingBox {
	return BoundingBox{
		minLat: minLat,
		maxLat: maxLat,
		minLon: minLon,
		maxLon: maxLon,
	}
}

func (b BoundingBox) MinLat() float64 { return b.minLat }
func (b BoundingBox) MaxLat() float64 { return b.maxLat }
func (b BoundingBox) MinLon() float64 { return b.minLon }
func (b BoundingBox) MaxLon() float64 { return b.maxLon }

func (b BoundingBox) Contains(c Coordinate) bool {
	return c.lat >= b.minLat && c.lat <= b.maxLat &&
		c.lon >= b.minLon && c.lon <= b.maxLon
}

// Extend grows the box to include c.
func (b BoundingBox) Extend(c Coordinate) BoundingBox {
	if c.lat < b.minLat {
		b.minLat = c.lat
	}
	if c.lat > b.maxLat {
		b.maxLat = c.lat
	}
	if c.lon < b.minLon {
		b.minLon = c.lon
	}
	if c.lon > b.maxLon {
		b.maxLon = c.lon
	}
	return b
}
