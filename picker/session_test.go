package picker

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blank(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	return g
}

func TestSessionKeepsClickOrder(t *testing.T) {
	s := NewSession(blank(50, 40))
	events := []Event{
		{Kind: LeftClick, X: 10, Y: 5},
		{Kind: RightClick, X: 1, Y: 1},
		{Kind: Drag, X: 2, Y: 2},
		{Kind: KeyPress, Key: 'q'},
		{Kind: LeftClick, X: 30, Y: 20},
		{Kind: LeftClick, X: 99, Y: 20},
		{Kind: LeftClick, X: 0, Y: 39},
	}
	for _, ev := range events {
		assert.False(t, s.Handle(ev), "event %v", ev)
	}
	assert.False(t, s.Done())
	assert.True(t, s.Handle(Event{Kind: KeyPress, Key: 'r'}))
	assert.True(t, s.Done())

	// ignored once finished
	s.Handle(Event{Kind: LeftClick, X: 1, Y: 1})
	assert.Equal(t, []image.Point{{10, 5}, {30, 20}, {0, 39}}, s.Points())
}

func TestSessionCustomFinishKey(t *testing.T) {
	s := NewSession(blank(5, 5))
	s.FinishKey = 'f'
	assert.False(t, s.Handle(Event{Kind: KeyPress, Key: 'r'}))
	assert.True(t, s.Handle(Event{Kind: KeyPress, Key: 'f'}))
}

func TestSessionMarksCanvas(t *testing.T) {
	src := blank(20, 20)
	s := NewSession(src)
	s.Handle(Event{Kind: LeftClick, X: 10, Y: 10})

	c := s.Canvas()
	assert.Equal(t, color.RGBAModel.Convert(markerColor), color.RGBAModel.Convert(c.At(10, 10)))
	assert.Equal(t, color.RGBAModel.Convert(markerColor), color.RGBAModel.Convert(c.At(15, 10)))
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(c.At(15, 15)))
	// source untouched
	assert.Equal(t, uint8(255), src.GrayAt(10, 10).Y)

	// marker near the edge is clipped
	s.Handle(Event{Kind: LeftClick, X: 0, Y: 0})
	assert.Len(t, s.Points(), 2)
}

func TestSaveCanvas(t *testing.T) {
	s := NewSession(blank(8, 6))
	s.Handle(Event{Kind: LeftClick, X: 3, Y: 3})
	p := filepath.Join(t.TempDir(), "marked.png")
	require.NoError(t, s.SaveCanvas(p))

	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "KeyPress", KeyPress.String())
	assert.Equal(t, "Unknown", EventKind(9).String())
}
