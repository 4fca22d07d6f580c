package gridmap

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 255 free, 0 wall
func corridor() *OccupancyGrid {
	return BuildGrid(grayFromRows([][]uint8{
		{255, 255, 255, 255, 255},
		{255, 0, 0, 0, 255},
		{255, 0, 255, 0, 255},
		{255, 0, 0, 0, 255},
		{255, 255, 255, 255, 255},
	}))
}

func TestReachable(t *testing.T) {
	g := corridor()

	t.Run("around the block", func(t *testing.T) {
		d, ok := g.Reachable(image.Pt(0, 0), image.Pt(4, 4))
		require.True(t, ok)
		assert.InDelta(t, 6+math.Sqrt2, d, 1e-9)
	})

	t.Run("diagonal step", func(t *testing.T) {
		d, ok := g.Reachable(image.Pt(0, 0), image.Pt(1, 0))
		require.True(t, ok)
		assert.InDelta(t, 1.0, d, 1e-9)
		d, ok = BuildGrid(grayFromRows([][]uint8{{255, 255}, {255, 255}})).Reachable(image.Pt(0, 0), image.Pt(1, 1))
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt2, d, 1e-9)
	})

	t.Run("walled in", func(t *testing.T) {
		_, ok := g.Reachable(image.Pt(0, 0), image.Pt(2, 2))
		assert.False(t, ok)
	})

	t.Run("on obstacle", func(t *testing.T) {
		_, ok := g.Reachable(image.Pt(1, 1), image.Pt(0, 0))
		assert.False(t, ok)
	})

	t.Run("same point", func(t *testing.T) {
		d, ok := g.Reachable(image.Pt(4, 0), image.Pt(4, 0))
		assert.True(t, ok)
		assert.Zero(t, d)
	})
}

func TestReach(t *testing.T) {
	g := corridor()
	legs := g.Reach([]image.Point{{0, 0}, {4, 0}, {2, 2}})
	require.Len(t, legs, 3)
	assert.True(t, legs[0].Reachable)
	assert.False(t, legs[1].Reachable)
	assert.False(t, legs[2].Reachable)
	assert.Equal(t, image.Pt(0, 0), legs[2].To)

	closed := g.Reach([]image.Point{{0, 0}, {4, 0}, {0, 0}})
	assert.Len(t, closed, 2)

	assert.Nil(t, g.Reach([]image.Point{{0, 0}}))
}
