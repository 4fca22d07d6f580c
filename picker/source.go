package picker

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
)

// Source blocks until the operator finishes and returns the clicked
// pixels in selection order.
type Source interface {
	Select(s *Session) ([]image.Point, error)
}

// LineSource reads one event per line:
//
//	x y | x,y | click x y   left click
//	right x y               right click
//	drag x y                drag
//	r                       any single character is a key press
//
// Blank lines and lines starting with # are skipped. The end of the
// stream finishes the session.
type LineSource struct {
	r      io.Reader
	prompt io.Writer
}

// NewLineSource reads events from r. prompt may be nil.
func NewLineSource(r io.Reader, prompt io.Writer) *LineSource {
	return &LineSource{r: r, prompt: prompt}
}

func (ls *LineSource) Select(s *Session) ([]image.Point, error) {
	if ls.prompt != nil {
		fmt.Fprintf(ls.prompt, "Enter the path points as \"x y\", one per line (Press %c to finish).\n", s.FinishKey)
	}
	sc := bufio.NewScanner(ls.r)
	line := 0
	for sc.Scan() {
		line++
		ev, ok, err := ParseEvent(sc.Text())
		if err != nil {
			log.Warnf("line %d: %v", line, err)
			continue
		}
		if !ok {
			continue
		}
		if s.Handle(ev) {
			return s.Points(), nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s.Finish()
	return s.Points(), nil
}

// ParseEvent parses one line. ok is false for blank and comment lines.
func ParseEvent(line string) (ev Event, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ev, false, nil
	}
	if utf8.RuneCountInString(line) == 1 {
		r, _ := utf8.DecodeRuneInString(line)
		return Event{Kind: KeyPress, Key: r}, true, nil
	}

	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return ev, false, fmt.Errorf("want \"x y\", got %q", line)
	}
	ev.Kind = LeftClick
	switch strings.ToLower(fields[0]) {
	case "click", "left":
		fields = fields[1:]
	case "right":
		ev.Kind = RightClick
		fields = fields[1:]
	case "drag":
		ev.Kind = Drag
		fields = fields[1:]
	}
	if len(fields) != 2 {
		return ev, false, fmt.Errorf("want \"x y\", got %q", line)
	}
	if ev.X, err = strconv.Atoi(fields[0]); err != nil {
		return ev, false, fmt.Errorf("bad x in %q: %w", line, err)
	}
	if ev.Y, err = strconv.Atoi(fields[1]); err != nil {
		return ev, false, fmt.Errorf("bad y in %q: %w", line, err)
	}
	return ev, true, nil
}
