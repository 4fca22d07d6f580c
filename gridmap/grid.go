package gridmap

import (
	"image"
	"image/color"
)

// ObstacleThreshold is the binarization threshold. Pixels at or below it are obstacles.
const ObstacleThreshold uint8 = 127

// OccupancyGrid marks every pixel of a map as obstacle or free.
// Cells are indexed (x=column, y=row) in image space.
type OccupancyGrid struct {
	Width  int
	Height int

	// obstacle pixel coordinates in scan order, image space
	ObstacleX []int
	ObstacleY []int

	cells []bool
}

// BuildGrid thresholds the raster in one pass over its pixels.
func BuildGrid(gray *image.Gray) *OccupancyGrid {
	b := gray.Bounds()
	g := &OccupancyGrid{
		Width:  b.Dx(),
		Height: b.Dy(),
		cells:  make([]bool, b.Dx()*b.Dy()),
	}
	for i := 0; i < g.Height; i++ {
		row := gray.Pix[i*gray.Stride : i*gray.Stride+g.Width]
		for j, v := range row {
			if v <= ObstacleThreshold {
				g.cells[i*g.Width+j] = true
				g.ObstacleX = append(g.ObstacleX, j)
				g.ObstacleY = append(g.ObstacleY, i)
			}
		}
	}
	return g
}

// At reports whether (x, y) is an obstacle. Coordinates outside the grid are treated as obstacles.
func (g *OccupancyGrid) At(x, y int) bool {
	if !g.Contains(x, y) {
		return true
	}
	return g.cells[y*g.Width+x]
}

func (g *OccupancyGrid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

func (g *OccupancyGrid) Len() int { return len(g.cells) }

func (g *OccupancyGrid) ObstacleCount() int { return len(g.ObstacleX) }

// ToGray converts any image to 8-bit grayscale with bounds starting at (0,0).
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			pixel := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			gray.SetGray(x, y, pixel)
		}
	}
	return gray
}
