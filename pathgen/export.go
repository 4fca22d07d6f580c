package pathgen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
)

var csvHeader = []string{"x", "y"}

// ToWorldPath maps every path-frame sample to world coordinates.
func ToWorldPath(path []gridmap.Point, meta gridmap.MapMeta) []gridmap.Point {
	world := make([]gridmap.Point, len(path))
	for i, p := range path {
		world[i] = meta.ToWorld(p)
	}
	return world
}

// WriteCSV writes the header row then one world-frame row per sample, in order.
func WriteCSV(w io.Writer, path []gridmap.Point, meta gridmap.MapMeta) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range ToWorldPath(path, meta) {
		if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV truncates filename and writes the path to it.
func SaveCSV(filename string, path []gridmap.Point, meta gridmap.MapMeta) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := WriteCSV(f, path, meta); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
