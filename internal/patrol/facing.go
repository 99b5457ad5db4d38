package patrol

// Facing is the direction the guard is looking in.
type Facing uint8

const (
	Up Facing = iota
	Right
	Down
	Left
)

// AllFacings returns the facings in clockwise order starting from Up.
func AllFacings() []Facing {
	return []Facing{Up, Right, Down, Left}
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

func (f Facing) IsValid() bool {
	return f <= Left
}

// TurnRight returns the facing 90 degrees clockwise from f.
func (f Facing) TurnRight() Facing {
	switch f {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		panic(AssertionError{"turn from invalid facing"})
	}
}

// Delta returns the column and row offsets of one step. Rows grow downwards.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		panic(AssertionError{"delta of invalid facing"})
	}
}

// Marker is the grid character that places a guard with this facing.
func (f Facing) Marker() rune {
	switch f {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '?'
	}
}

func facingFromMarker(r rune) (Facing, bool) {
	for _, f := range AllFacings() {
		if f.Marker() == r {
			return f, true
		}
	}
	return 0, false
}
