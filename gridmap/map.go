package gridmap

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/jbuchbinder/gopnm"
	"github.com/labstack/gommon/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Map is a decoded floor plan together with its occupancy grid.
type Map struct {
	Meta   MapMeta
	Raster *image.Gray
	Grid   *OccupancyGrid
}

func (m *Map) Width() int  { return m.Grid.Width }
func (m *Map) Height() int { return m.Grid.Height }

// LoadMap reads the metadata first, so a bad yaml aborts before the image is touched.
// An empty mapFile falls back to the image named inside the yaml.
func LoadMap(yamlFile, mapFile string) (*Map, error) {
	meta, err := ReadMapMeta(yamlFile)
	if err != nil {
		return nil, err
	}
	if mapFile == "" {
		mapFile = meta.Image
	}
	m, err := ReadMapImage(mapFile)
	if err != nil {
		return nil, err
	}
	m.Meta = meta
	return m, nil
}

// read a map image of any registered format (png, pgm, bmp, ...)
func ReadMapImage(mapFile string) (*Map, error) {
	if mapFile == "" {
		return nil, fmt.Errorf("%w: no image path given", ErrMapLoad)
	}
	file, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapLoad, err)
	}
	defer file.Close()

	imageData, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapLoad, mapFile, err)
	}

	gray := ToGray(imageData)
	grid := BuildGrid(gray)
	log.Infof("map %s (%s) %dx%d, obstacles: %d, free: %d",
		mapFile, format, grid.Width, grid.Height, grid.ObstacleCount(), grid.Len()-grid.ObstacleCount())

	return &Map{Raster: gray, Grid: grid}, nil
}
