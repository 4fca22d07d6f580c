package gridmap

import "image"

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// FromPixel converts an image coordinate into a Point without changing frame.
func FromPixel(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// FlipY mirrors a row coordinate between image space (y down) and the
// path frame (y up).
func FlipY(y float64, height int) float64 {
	return float64(height) - y
}

// FlipPoints returns (x, height-y) for every point. It is its own inverse.
func FlipPoints(points []Point, height int) []Point {
	flipped := make([]Point, len(points))
	for i, p := range points {
		flipped[i] = Point{X: p.X, Y: FlipY(p.Y, height)}
	}
	return flipped
}

// ToWorld scales a path-frame pixel position by resolution and offsets it by origin.
func ToWorld(p Point, resolution float64, origin Point) Point {
	return Point{
		X: p.X*resolution + origin.X,
		Y: p.Y*resolution + origin.Y,
	}
}

func (m MapMeta) ToWorld(p Point) Point {
	return ToWorld(p, m.Resolution, m.Origin)
}
