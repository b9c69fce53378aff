package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
)

var errBadCell = errors.New("want x,y")

// cellFlag is a flag.Value holding an optional "x,y" cell.
type cellFlag struct {
	cell grid.Cell
	set  bool
}

func (f *cellFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.cell.X, f.cell.Y)
}

func (f *cellFlag) Set(s string) error {
	c, err := parseCell(s)
	if err != nil {
		return err
	}
	f.cell, f.set = c, true
	return nil
}

// or returns the flag's cell, or def when the flag was not given.
func (f *cellFlag) or(def grid.Cell) grid.Cell {
	if f.set {
		return f.cell
	}
	return def
}

// parseCell reads "x,y" with optional spaces around either number.
func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.NoCell, fmt.Errorf("%q: %w", s, errBadCell)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.NoCell, fmt.Errorf("%q: %w", s, errBadCell)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.NoCell, fmt.Errorf("%q: %w", s, errBadCell)
	}
	return grid.Cell{X: x, Y: y}, nil
}
