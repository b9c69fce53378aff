package render

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Role is how a cell or passage is drawn.
type Role int

const (
	RoleWall Role = iota
	RoleUnvisited
	RoleVisited
	RoleFinalized
	RolePath
	RoleStart
	RoleStartUnreachable
	RoleGoal
	RoleGoalUnreachable
	RoleHead
)

// Overlay carries the route-finding marks drawn on top of the maze.
type Overlay struct {
	Start *grid.Cell
	Goal  *grid.Cell
	Path  mapset.Set[grid.Cell]
}

// NewOverlay returns an overlay marking start, goal and the given path
// cells. Either endpoint may be nil.
func NewOverlay(start, goal *grid.Cell, path []grid.Cell) Overlay {
	ov := Overlay{Start: start, Goal: goal, Path: mapset.New[grid.Cell]()}
	for _, c := range path {
		ov.Path.Put(c)
	}
	return ov
}

func (ov Overlay) onPath(c grid.Cell) bool {
	return ov.Path.Size() > 0 && ov.Path.Has(c)
}

// unreachable reports whether both endpoints are set but no path was found.
func (ov Overlay) unreachable() bool {
	return ov.Start != nil && ov.Goal != nil && ov.Path.Size() == 0
}

// CellRole classifies cell c.
func CellRole(g *grid.Grid, c grid.Cell, ov Overlay) Role {
	switch {
	case !g.Finished() && c == g.Head():
		return RoleHead
	case ov.Goal != nil && c == *ov.Goal:
		if ov.unreachable() {
			return RoleGoalUnreachable
		}
		return RoleGoal
	case ov.Start != nil && c == *ov.Start:
		if ov.unreachable() {
			return RoleStartUnreachable
		}
		return RoleStart
	case ov.onPath(c):
		return RolePath
	case g.Finalized(c):
		return RoleFinalized
	case g.Visited(c):
		return RoleVisited
	default:
		return RoleUnvisited
	}
}

// PassageRole classifies the open passage between adjacent cells a and b.
func PassageRole(g *grid.Grid, a, b grid.Cell, ov Overlay) Role {
	switch {
	case ov.onPath(a) && ov.onPath(b):
		return RolePath
	case g.Finalized(a) && g.Finalized(b):
		return RoleFinalized
	case g.Visited(a) && g.Visited(b):
		return RoleVisited
	default:
		return RoleUnvisited
	}
}

// Palette maps roles to colours.
type Palette map[Role]color.RGBA

// DefaultPalette returns the standard dark theme.
func DefaultPalette() Palette {
	return Palette{
		RoleWall:             {R: 31, G: 35, B: 53, A: 255},
		RoleUnvisited:        {R: 59, G: 66, B: 97, A: 255},
		RoleVisited:          {R: 65, G: 166, B: 181, A: 255},
		RoleFinalized:        {R: 79, G: 214, B: 190, A: 255},
		RolePath:             {R: 255, G: 199, B: 119, A: 255},
		RoleStart:            {R: 187, G: 154, B: 247, A: 255},
		RoleStartUnreachable: {R: 255, G: 117, B: 127, A: 255},
		RoleGoal:             {R: 157, G: 124, B: 216, A: 255},
		RoleGoalUnreachable:  {R: 197, G: 59, B: 83, A: 255},
		RoleHead:             {R: 255, G: 158, B: 100, A: 255},
	}
}
