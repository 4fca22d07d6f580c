package pathgen

import (
	"fmt"
	"math"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// DefaultSamples is used when Options.NPoints is zero.
const DefaultSamples = 100

type Options struct {
	// NPoints is the number of output samples.
	NPoints int
}

func (o Options) samples() (int, error) {
	switch {
	case o.NPoints == 0:
		return DefaultSamples, nil
	case o.NPoints < 0:
		return 0, fmt.Errorf("pathgen: sample count must be positive, got %d", o.NPoints)
	}
	return o.NPoints, nil
}

// Spline is a parametric curve through a point sequence, t in [0,1].
// Each axis is a clamped cubic: first derivative zero at both ends.
type Spline struct {
	knots []float64
	x, y  interp.ClampedCubic
}

// FitSpline places the points at evenly spaced parameters over [0,1].
func FitSpline(points []gridmap.Point) (*Spline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d, need 2", ErrInsufficientPoints, len(points))
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: point %d is not finite: %v", ErrIllConditioned, i, p)
		}
		if i > 0 && p == points[i-1] {
			return nil, fmt.Errorf("%w: point %d repeats point %d at %v", ErrIllConditioned, i, i-1, p)
		}
		xs[i] = p.X
		ys[i] = p.Y
	}

	s := &Spline{knots: linspace(len(points))}
	if err := s.x.Fit(s.knots, xs); err != nil {
		return nil, fmt.Errorf("%w: x: %v", ErrIllConditioned, err)
	}
	if err := s.y.Fit(s.knots, ys); err != nil {
		return nil, fmt.Errorf("%w: y: %v", ErrIllConditioned, err)
	}
	return s, nil
}

// Knots returns the parameter of each input point.
func (s *Spline) Knots() []float64 { return s.knots }

func (s *Spline) At(t float64) gridmap.Point {
	return gridmap.Point{X: s.x.Predict(t), Y: s.y.Predict(t)}
}

// Tangent is the derivative of the curve with respect to t.
func (s *Spline) Tangent(t float64) gridmap.Point {
	return gridmap.Point{X: s.x.PredictDerivative(t), Y: s.y.PredictDerivative(t)}
}

// Sample evaluates the curve at n evenly spaced parameters over [0,1].
func (s *Spline) Sample(n int) []gridmap.Point {
	path := make([]gridmap.Point, n)
	for i, t := range linspace(n) {
		path[i] = s.At(t)
	}
	return path
}

// Interpolate fits a closed waypoint sequence and samples it densely.
// The result stays in the input frame.
func Interpolate(points []gridmap.Point, opts Options) ([]gridmap.Point, error) {
	n, err := opts.samples()
	if err != nil {
		return nil, err
	}
	s, err := FitSpline(points)
	if err != nil {
		return nil, err
	}
	return s.Sample(n), nil
}

// linspace is n evenly spaced values over [0,1]; a single value is 0.
func linspace(n int) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, 1)
}
