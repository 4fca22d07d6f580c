package gridmap

import (
	"image"
	"math"

	astar "github.com/beefsack/go-astar"
)

// dx, dy, cost
var motion = [8][3]float64{
	{1, 0, 1},
	{0, 1, 1},
	{-1, 0, 1},
	{0, -1, 1},
	{-1, -1, math.Sqrt2},
	{-1, 1, math.Sqrt2},
	{1, -1, math.Sqrt2},
	{1, 1, math.Sqrt2},
}

type cell struct {
	g    *OccupancyGrid
	x, y int
}

func (c cell) PathNeighbors() []astar.Pather {
	var around []astar.Pather
	for _, m := range motion {
		ax := c.x + int(m[0])
		ay := c.y + int(m[1])
		if c.g.At(ax, ay) {
			continue
		}
		around = append(around, cell{g: c.g, x: ax, y: ay})
	}
	return around
}

func (c cell) PathNeighborCost(to astar.Pather) float64 {
	t := to.(cell)
	if t.x != c.x && t.y != c.y {
		return math.Sqrt2
	}
	return 1
}

func (c cell) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(cell)
	return math.Hypot(float64(t.x-c.x), float64(t.y-c.y))
}

// Reachable reports whether b can be reached from a through free pixels
// (8-connected) and the length of the shortest such route in pixels.
// Both points are in image space.
func (g *OccupancyGrid) Reachable(a, b image.Point) (float64, bool) {
	if g.At(a.X, a.Y) || g.At(b.X, b.Y) {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	_, distance, found := astar.Path(cell{g: g, x: a.X, y: a.Y}, cell{g: g, x: b.X, y: b.Y})
	return distance, found
}

// Leg is one consecutive waypoint pair checked by Reach.
type Leg struct {
	From, To  image.Point
	Distance  float64
	Reachable bool
}

// Reach checks every consecutive pair of a closed waypoint loop.
func (g *OccupancyGrid) Reach(points []image.Point) []Leg {
	if len(points) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(points))
	for i := range points {
		from := points[i]
		to := points[(i+1)%len(points)]
		if i == len(points)-1 && from == points[0] {
			break
		}
		d, ok := g.Reachable(from, to)
		legs = append(legs, Leg{From: from, To: to, Distance: d, Reachable: ok})
	}
	return legs
}
