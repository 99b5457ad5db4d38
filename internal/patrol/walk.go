package patrol

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// State is everything that determines the guard's future moves.
type State struct {
	Position Position
	Facing   Facing
}

func (s State) String() string {
	return fmt.Sprintf("%s %s", s.Position, s.Facing)
}

type Outcome int8

const (
	Leave Outcome = iota
	Turn
	Move
)

func (o Outcome) String() string {
	switch o {
	case Leave:
		return "leave"
	case Turn:
		return "turn"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Step applies one transition. On Leave the returned state equals s.
func Step(g *Grid, s State) (Outcome, State) {
	ahead := s.Position.Ahead(s.Facing)
	switch {
	case !g.InBounds(ahead):
		return Leave, s
	case g.HasObstacle(ahead):
		return Turn, State{s.Position, s.Facing.TurnRight()}
	default:
		return Move, State{ahead, s.Facing}
	}
}

// Path is the result of a single patrol.
type Path struct {
	Visited mapset.Set[Position]
	Looped  bool
	// Steps counts the transitions evaluated, the final Leave included.
	Steps int
}

// Len is the number of distinct positions visited.
func (p Path) Len() int {
	return p.Visited.Size()
}

// Positions returns the visited positions in row-major order.
func (p Path) Positions() []Position {
	res := make([]Position, 0, p.Visited.Size())
	p.Visited.Each(func(pos Position) {
		res = append(res, pos)
	})
	slices.SortFunc(res, Position.Compare)
	return res
}

// Walk runs the guard from start until it leaves the grid or repeats a
// state. At most g.StateCount()+1 transitions are evaluated.
//
// panics [AssertionError]
func Walk(g *Grid, start State) Path {
	if !start.Facing.IsValid() {
		panic(AssertionError{"start facing is invalid"})
	}
	if g.HasObstacle(start.Position) {
		panic(AssertionError{"start cell holds an obstacle"})
	}

	var (
		limit   = g.StateCount() + 1
		seen    = mapset.New[State]()
		visited = mapset.New[Position]()
		state   = start
		steps   = 0
	)

	for {
		if seen.Has(state) {
			return Path{Visited: visited, Looped: true, Steps: steps}
		}
		seen.Put(state)
		visited.Put(state.Position)

		outcome, next := Step(g, state)
		steps++
		if steps > limit {
			panic(AssertionError{fmt.Sprintf(
				"patrol exceeded %d transitions", limit,
			)})
		}
		if outcome == Leave {
			return Path{Visited: visited, Looped: false, Steps: steps}
		}
		state = next
	}
}
