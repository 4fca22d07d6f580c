// Package picker collects waypoints from an operator.
//
// A Session is the accumulator for one selection: it takes pointer and key
// events, keeps accepted left clicks in order and marks each one on a copy
// of the map. Sources drive a session until the finish key arrives.
package picker

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/labstack/gommon/log"
)

const (
	// DefaultFinishKey ends a selection.
	DefaultFinishKey = 'r'

	markerRadius = 5
)

var markerColor = color.RGBA{R: 255, A: 255}

type EventKind int

const (
	LeftClick EventKind = iota
	RightClick
	Drag
	KeyPress
)

func (k EventKind) String() string {
	s := [...]string{"LeftClick", "RightClick", "Drag", "KeyPress"}
	if int(k) < len(s) {
		return s[k]
	}
	return "Unknown"
}

type Event struct {
	Kind EventKind
	X, Y int
	Key  rune
}

type Session struct {
	FinishKey rune

	canvas *image.RGBA
	points []image.Point
	done   bool
}

// NewSession starts a selection over img. img itself is never drawn on.
func NewSession(img image.Image) *Session {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return &Session{FinishKey: DefaultFinishKey, canvas: canvas}
}

// Handle applies one event and reports whether the session is finished.
// Only left clicks inside the image and the finish key are interpreted.
func (s *Session) Handle(ev Event) bool {
	if s.done {
		return true
	}
	switch ev.Kind {
	case LeftClick:
		p := image.Pt(ev.X, ev.Y)
		if !p.In(s.canvas.Bounds()) {
			log.Warnf("ignored point outside the map: (%d, %d)", ev.X, ev.Y)
			return false
		}
		s.points = append(s.points, p)
		log.Infof("Point selected: (%d, %d)", p.X, p.Y)
		s.mark(p)
	case KeyPress:
		if ev.Key == s.FinishKey {
			s.done = true
		}
	}
	return s.done
}

// Finish ends the session without the finish key.
func (s *Session) Finish() { s.done = true }

func (s *Session) Done() bool { return s.done }

// Points returns the accepted clicks in selection order.
func (s *Session) Points() []image.Point {
	return append([]image.Point(nil), s.points...)
}

// Canvas is the map with a marker at every accepted point.
func (s *Session) Canvas() image.Image { return s.canvas }

// filled disc
func (s *Session) mark(c image.Point) {
	for dy := -markerRadius; dy <= markerRadius; dy++ {
		for dx := -markerRadius; dx <= markerRadius; dx++ {
			if dx*dx+dy*dy > markerRadius*markerRadius {
				continue
			}
			p := c.Add(image.Pt(dx, dy))
			if p.In(s.canvas.Bounds()) {
				s.canvas.SetRGBA(p.X, p.Y, markerColor)
			}
		}
	}
}

// SaveCanvas writes the marked map as a PNG.
func (s *Session) SaveCanvas(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.canvas); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
