// Package render draws a grid with a patrol overlaid on it.
package render

import (
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/vancomm/guard-patrol/internal/patrol"
)

type cellKind int

const (
	empty cellKind = iota
	obstacle
	visited
	placement
	guard
)

var styles = map[cellKind]color.Style{
	empty:     {color.FgGray},
	obstacle:  {color.FgWhite, color.OpBold},
	visited:   {color.FgCyan},
	placement: {color.FgRed, color.OpBold},
	guard:     {color.FgGreen, color.BgBlack, color.OpBold},
}

// Overlay marks the guard with its start marker, the baseline path with 'X'
// and the loop-inducing placements with 'O'.
type Overlay struct {
	Grid       *patrol.Grid
	Start      patrol.State
	Path       patrol.Path
	Placements []patrol.Position
	Colored    bool
}

func (o Overlay) kind(p patrol.Position, placements map[patrol.Position]bool) cellKind {
	switch {
	case p == o.Start.Position:
		return guard
	case o.Grid.HasObstacle(p):
		return obstacle
	case placements[p]:
		return placement
	case o.Path.Visited.Has(p):
		return visited
	default:
		return empty
	}
}

func (o Overlay) symbol(k cellKind) string {
	switch k {
	case guard:
		return string(o.Start.Facing.Marker())
	case obstacle:
		return "#"
	case placement:
		return "O"
	case visited:
		return "X"
	default:
		return "."
	}
}

func (o Overlay) String() string {
	placements := make(map[patrol.Position]bool, len(o.Placements))
	for _, p := range o.Placements {
		placements[p] = true
	}

	var b strings.Builder
	for y := range o.Grid.Height() {
		for x := range o.Grid.Width() {
			k := o.kind(patrol.Position{X: x, Y: y}, placements)
			if o.Colored {
				b.WriteString(styles[k].Sprint(o.symbol(k)))
			} else {
				b.WriteString(o.symbol(k))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Report builds the overlay for an analysis result.
func Report(g *patrol.Grid, start patrol.State, r *patrol.Report, colored bool) Overlay {
	return Overlay{
		Grid:       g,
		Start:      start,
		Path:       r.Baseline,
		Placements: r.Placements,
		Colored:    colored,
	}
}

// IsTerminal tells whether colour codes make sense on f.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
