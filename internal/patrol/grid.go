package patrol

import (
	"fmt"
	"slices"
	"strings"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Ahead returns the neighbouring position in direction f. The result may lie
// outside any grid.
func (p Position) Ahead(f Facing) Position {
	dx, dy := f.Delta()
	return Position{p.X + dx, p.Y + dy}
}

// Compare orders positions row by row, then by column.
func (p Position) Compare(o Position) int {
	if p.Y != o.Y {
		return iif(p.Y < o.Y, -1, 1)
	}
	if p.X != o.X {
		return iif(p.X < o.X, -1, 1)
	}
	return 0
}

// Grid is an immutable rectangular obstacle map. Cells are stored row-major.
type Grid struct {
	width, height int
	obstacles     []bool
}

// NewGrid builds a grid of the given size. Every obstacle must lie inside it.
func NewGrid(width, height int, obstacles ...Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	g := &Grid{
		width:     width,
		height:    height,
		obstacles: make([]bool, width*height),
	}
	for _, p := range obstacles {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: obstacle %s in %dx%d grid",
				ErrOutOfBounds, p, width, height)
		}
		g.obstacles[g.index(p)] = true
	}
	return g, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) InBounds(p Position) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

// panics [AssertionError]
func (g *Grid) HasObstacle(p Position) bool {
	return g.obstacles[g.index(p)]
}

// WithObstacle returns a copy of g with one more obstacle at p. The receiver
// is left untouched, so a single grid can back any number of concurrent
// searches.
//
// panics [AssertionError]
func (g *Grid) WithObstacle(p Position) *Grid {
	clone := &Grid{
		width:     g.width,
		height:    g.height,
		obstacles: slices.Clone(g.obstacles),
	}
	clone.obstacles[clone.index(p)] = true
	return clone
}

// Obstacles lists the obstacle positions in row-major order.
func (g *Grid) Obstacles() []Position {
	var res []Position
	for i, blocked := range g.obstacles {
		if blocked {
			res = append(res, Position{i % g.width, i / g.width})
		}
	}
	return res
}

// StateCount is the number of distinct patrol states the grid admits.
func (g *Grid) StateCount() int {
	return g.width * g.height * len(AllFacings())
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			b.WriteByte(iif(g.obstacles[y*g.width+x], byte('#'), byte('.')))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) index(p Position) int {
	if !g.InBounds(p) {
		panic(AssertionError{fmt.Sprintf(
			"position %s outside %dx%d grid", p, g.width, g.height,
		)})
	}
	return p.Y*g.width + p.X
}
