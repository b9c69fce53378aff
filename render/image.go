package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Image draws a grid as pixels. Every cell occupies a CellPixels square
// whose top and left WallPixels rows and columns hold its north and west
// sides; the right and bottom borders are one extra wall strip. North is up.
type Image struct {
	g          *grid.Grid
	ov         Overlay
	palette    Palette
	cellPixels int
	wallPixels int
}

// NewImage returns an image of g. cellPixels is clamped to at least 2 and
// wallPixels to [1, cellPixels−1].
func NewImage(g *grid.Grid, ov Overlay, cellPixels, wallPixels int) *Image {
	cellPixels = max(cellPixels, 2)
	wallPixels = min(max(wallPixels, 1), cellPixels-1)
	return &Image{
		g:          g,
		ov:         ov,
		palette:    DefaultPalette(),
		cellPixels: cellPixels,
		wallPixels: wallPixels,
	}
}

// ColorModel returns the RGBA model.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the pixel rectangle of the whole maze.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0,
		m.g.Width()*m.cellPixels+m.wallPixels,
		m.g.Height()*m.cellPixels+m.wallPixels)
}

// At returns the colour of pixel (x, y).
func (m *Image) At(x, y int) color.Color {
	b := m.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return color.Transparent
	}
	// Right and bottom border strips.
	if x >= m.g.Width()*m.cellPixels || y >= m.g.Height()*m.cellPixels {
		return m.palette[RoleWall]
	}

	c := grid.Cell{X: x / m.cellPixels, Y: m.g.Height() - 1 - y/m.cellPixels}
	ox, oy := x%m.cellPixels, y%m.cellPixels
	west, north := ox < m.wallPixels, oy < m.wallPixels
	open := m.g.NeighborsAt(c)

	switch {
	case west && north:
		return m.palette[RoleWall]
	case west:
		if !open.Has(grid.West) {
			return m.palette[RoleWall]
		}
		return m.palette[PassageRole(m.g, c, c.Step(grid.West), m.ov)]
	case north:
		if !open.Has(grid.North) {
			return m.palette[RoleWall]
		}
		return m.palette[PassageRole(m.g, c, c.Step(grid.North), m.ov)]
	default:
		return m.palette[CellRole(m.g, c, m.ov)]
	}
}

// WritePNG rasterizes img and encodes it as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, image_utils.ToRGBA(img))
}
