// Package viz renders a generated path over its map for operator review.
package viz

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// dots per inch of the saved figure, as the map is drawn one pixel per dot
const dpi = 300

const minSize = 4 * vg.Inch

var (
	pathColor     = color.RGBA{R: 255, A: 255}
	obstacleColor = color.Black
	waypointColor = color.RGBA{B: 255, A: 255}
)

// Scene is everything drawn in one figure. Path and Waypoints are in the
// path frame; the obstacle cloud is in image space and flipped here.
type Scene struct {
	Title     string
	Raster    image.Image
	Grid      *gridmap.OccupancyGrid
	Path      []gridmap.Point
	Waypoints []gridmap.Point
}

// Plot builds the figure. The raster spans [0,W]x[0,H] with its first row
// at the top, which is where FlipY puts image row 0.
func Plot(s Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	if p.Title.Text == "" {
		p.Title.Text = "Flipped Image with Path"
	}
	p.X.Label.Text = "x [px]"
	p.Y.Label.Text = "y [px]"

	var height int
	if s.Raster != nil {
		b := s.Raster.Bounds()
		height = b.Dy()
		p.Add(plotter.NewImage(s.Raster, 0, 0, float64(b.Dx()), float64(b.Dy())))
	}
	if s.Grid != nil {
		height = s.Grid.Height
		obs := make(plotter.XYs, s.Grid.ObstacleCount())
		for i := range obs {
			obs[i].X = float64(s.Grid.ObstacleX[i])
			obs[i].Y = gridmap.FlipY(float64(s.Grid.ObstacleY[i]), height)
		}
		if len(obs) > 0 {
			sc, err := plotter.NewScatter(obs)
			if err != nil {
				return nil, fmt.Errorf("obstacles: %w", err)
			}
			sc.GlyphStyle.Color = obstacleColor
			sc.GlyphStyle.Radius = vg.Points(0.5)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add("Obstacles", sc)
		}
	}
	if len(s.Path) > 0 {
		line, err := plotter.NewLine(toXYs(s.Path))
		if err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
		line.Color = pathColor
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add("Smoothed Path", line)
	}
	if len(s.Waypoints) > 0 {
		sc, err := plotter.NewScatter(toXYs(s.Waypoints))
		if err != nil {
			return nil, fmt.Errorf("waypoints: %w", err)
		}
		sc.GlyphStyle.Color = waypointColor
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add("Waypoints", sc)
	}
	p.Legend.Top = true
	return p, nil
}

// Save renders the scene; the format follows the file extension (png, svg, pdf, ...).
func Save(filename string, s Scene) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	w, h := minSize, minSize
	if s.Raster != nil {
		b := s.Raster.Bounds()
		w = maxLength(vg.Length(b.Dx())/dpi*vg.Inch, minSize)
		h = maxLength(vg.Length(b.Dy())/dpi*vg.Inch, minSize)
	}
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("save plot %s: %w", filename, err)
	}
	return nil
}

func toXYs(pts []gridmap.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func maxLength(a, b vg.Length) vg.Length {
	if a > b {
		return a
	}
	return b
}
