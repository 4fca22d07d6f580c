package picker

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		line   string
		want   Event
		ok     bool
		hasErr bool
	}{
		{"10 20", Event{Kind: LeftClick, X: 10, Y: 20}, true, false},
		{" 10,20 ", Event{Kind: LeftClick, X: 10, Y: 20}, true, false},
		{"click 3 4", Event{Kind: LeftClick, X: 3, Y: 4}, true, false},
		{"right 3 4", Event{Kind: RightClick, X: 3, Y: 4}, true, false},
		{"drag 3, 4", Event{Kind: Drag, X: 3, Y: 4}, true, false},
		{"r", Event{Kind: KeyPress, Key: 'r'}, true, false},
		{"q", Event{Kind: KeyPress, Key: 'q'}, true, false},
		{"", Event{}, false, false},
		{"# comment", Event{}, false, false},
		{"1 2 3", Event{}, false, true},
		{"a b", Event{}, false, true},
		{"1 b", Event{}, false, true},
		{",,", Event{}, false, true},
		{" , , ", Event{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ev, ok, err := ParseEvent(tt.line)
			if tt.hasErr {
				assert.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, ev)
			}
		})
	}
}

func TestLineSourceStopsAtFinishKey(t *testing.T) {
	in := strings.NewReader("# waypoints\n10 10\nright 5 5\nbogus line\n20,10\nx\n20 30\nr\n40 40\n")
	var prompt bytes.Buffer
	s := NewSession(blank(50, 50))

	pts, err := NewLineSource(in, &prompt).Select(s)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{10, 10}, {20, 10}, {20, 30}}, pts)
	assert.True(t, s.Done())
	assert.Contains(t, prompt.String(), "Press r to finish")
}

func TestLineSourceSkipsCommaOnlyLine(t *testing.T) {
	s := NewSession(blank(50, 50))
	pts, err := NewLineSource(strings.NewReader("10 10\n,,\n20 20\nr\n"), nil).Select(s)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{10, 10}, {20, 20}}, pts)
}

func TestLineSourceEOFFinishes(t *testing.T) {
	s := NewSession(blank(50, 50))
	pts, err := NewLineSource(strings.NewReader("1 1\n2 2"), nil).Select(s)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{1, 1}, {2, 2}}, pts)
	assert.True(t, s.Done())
}

func TestLineSourceEmpty(t *testing.T) {
	pts, err := NewLineSource(strings.NewReader(""), nil).Select(NewSession(blank(5, 5)))
	require.NoError(t, err)
	assert.Empty(t, pts)
}

var _ Source = (*LineSource)(nil)
