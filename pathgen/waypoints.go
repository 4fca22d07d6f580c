package pathgen

import (
	"fmt"
	"image"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
)

// MinWaypoints is the smallest selection a path can be built from.
const MinWaypoints = 2

// Prepare turns clicked pixels into the closed, flipped knot sequence fed to Interpolate.
func Prepare(selected []image.Point, height int) ([]gridmap.Point, error) {
	if len(selected) < MinWaypoints {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientPoints, len(selected), MinWaypoints)
	}
	pts := make([]gridmap.Point, len(selected))
	for i, p := range selected {
		pts[i] = gridmap.FromPixel(p)
	}
	pts = DedupeConsecutive(gridmap.FlipPoints(pts, height))
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: all %d waypoints are the same point", ErrIllConditioned, len(selected))
	}
	return CloseLoop(pts), nil
}

// CloseLoop appends the first point when the sequence has at least two
// points and does not already end where it starts.
func CloseLoop(pts []gridmap.Point) []gridmap.Point {
	if len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		return append(pts, pts[0])
	}
	return pts
}

// DedupeConsecutive drops points equal to their predecessor. Order is kept.
func DedupeConsecutive(pts []gridmap.Point) []gridmap.Point {
	out := make([]gridmap.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == pts[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
