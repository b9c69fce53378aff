package render

import (
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/lvlmaze/grid"
)

// glyphs used for cell bodies and passages in plain text.
var glyphs = map[Role]byte{
	RoleUnvisited:        ' ',
	RoleVisited:          '.',
	RoleFinalized:        ' ',
	RolePath:             '*',
	RoleStart:            'S',
	RoleStartUnreachable: 's',
	RoleGoal:             'G',
	RoleGoalUnreachable:  'g',
	RoleHead:             '@',
}

// TextOptions configures Text.
type TextOptions struct {
	Overlay Overlay
	// Color paints cell and passage backgrounds with Palette.
	Color   bool
	Palette Palette
}

// Text draws g as ASCII art, one line per text row, each ending in '\n'.
//
//	+---+---+
//	| S * G |
//	+---+---+
//
// Complexity: O(W×H).
func Text(g *grid.Grid, opts TextOptions) string {
	t := textWriter{g: g, opts: opts}
	if t.opts.Palette == nil {
		t.opts.Palette = DefaultPalette()
	}

	for y := g.Height() - 1; y >= 0; y-- {
		t.border(y, grid.North)
		t.row(y)
	}
	t.border(0, grid.South)
	return t.sb.String()
}

type textWriter struct {
	g    *grid.Grid
	opts TextOptions
	sb   strings.Builder
}

// border writes the horizontal line on side d (North or South) of row y.
func (t *textWriter) border(y int, d grid.Direction) {
	for x := 0; x < t.g.Width(); x++ {
		c := grid.Cell{X: x, Y: y}
		t.paint(RoleWall, "+")
		if !t.g.NeighborsAt(c).Has(d) {
			t.paint(RoleWall, "---")
			continue
		}
		role := PassageRole(t.g, c, c.Step(d), t.opts.Overlay)
		t.paint(role, " "+string(glyphs[role])+" ")
	}
	t.paint(RoleWall, "+")
	t.sb.WriteByte('\n')
}

// row writes the cell line of row y.
func (t *textWriter) row(y int) {
	for x := 0; x < t.g.Width(); x++ {
		c := grid.Cell{X: x, Y: y}
		if t.g.NeighborsAt(c).Has(grid.West) {
			role := PassageRole(t.g, c, c.Step(grid.West), t.opts.Overlay)
			t.paint(role, string(glyphs[role]))
		} else {
			t.paint(RoleWall, "|")
		}
		role := CellRole(t.g, c, t.opts.Overlay)
		t.paint(role, " "+string(glyphs[role])+" ")
	}
	t.paint(RoleWall, "|")
	t.sb.WriteByte('\n')
}

func (t *textWriter) paint(role Role, s string) {
	if !t.opts.Color {
		t.sb.WriteString(s)
		return
	}
	rgba := t.opts.Palette[role]
	t.sb.WriteString(color.RGB(rgba.R, rgba.G, rgba.B, true).Sprint(s))
}
