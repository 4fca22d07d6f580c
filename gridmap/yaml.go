package gridmap

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v2"
)

// MapYaml is the ROS map_server description of a map image.
type MapYaml struct {
	Image          string    `yaml:"image"`
	Resolution     *float64  `yaml:"resolution"`
	Origin         []float64 `yaml:"origin"`
	Negate         int       `yaml:"negate"`
	OccupiedThresh float64   `yaml:"occupied_thresh"`
	FreeThresh     float64   `yaml:"free_thresh"`
}

type MapMeta struct {
	Resolution float64 // world units per pixel
	Origin     Point   // world position of pixel (0,0) in the path frame

	// Image is the map image named by the yaml, resolved against the yaml's directory.
	Image string
}

func ReadImageYaml(filename string) (MapYaml, error) {
	data := MapYaml{}
	buf, err := os.ReadFile(filename)
	if err != nil {
		return data, fmt.Errorf("%w: %w", ErrMetadata, err)
	}
	if err := yaml.Unmarshal(buf, &data); err != nil {
		return data, fmt.Errorf("%w: %s: %w", ErrMetadata, filename, err)
	}
	return data, nil
}

// ReadMapMeta loads resolution and origin from a ROS map yaml.
func ReadMapMeta(filename string) (MapMeta, error) {
	y, err := ReadImageYaml(filename)
	if err != nil {
		return MapMeta{}, err
	}
	// the grid always uses ObstacleThreshold; the map_server values are informational
	log.Debugf("%s: negate: %d, occupied_thresh: %v, free_thresh: %v", filename, y.Negate, y.OccupiedThresh, y.FreeThresh)
	return y.Meta(filepath.Dir(filename), filename)
}

// Meta validates the required fields. dir resolves a relative image entry.
func (y MapYaml) Meta(dir, name string) (MapMeta, error) {
	var m MapMeta
	if y.Resolution == nil {
		return m, fmt.Errorf("%w: %s: missing resolution", ErrMetadata, name)
	}
	r := *y.Resolution
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return m, fmt.Errorf("%w: %s: resolution must be positive, got %v", ErrMetadata, name, r)
	}
	if len(y.Origin) < 2 {
		return m, fmt.Errorf("%w: %s: origin needs at least 2 values, got %d", ErrMetadata, name, len(y.Origin))
	}
	m.Resolution = r
	m.Origin = Point{X: y.Origin[0], Y: y.Origin[1]}
	if y.Image != "" {
		m.Image = y.Image
		if !filepath.IsAbs(m.Image) {
			m.Image = filepath.Join(dir, m.Image)
		}
	}
	return m, nil
}

// YamlPathFor returns the metadata file that sits next to an image,
// e.g. map/floor.png -> map/floor.yaml.
func YamlPathFor(mapFile string) string {
	return strings.TrimSuffix(mapFile, filepath.Ext(mapFile)) + ".yaml"
}
