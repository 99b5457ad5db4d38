package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnRightCycles(t *testing.T) {
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Down, Right.TurnRight())
	assert.Equal(t, Left, Down.TurnRight())
	assert.Equal(t, Up, Left.TurnRight())

	for _, f := range AllFacings() {
		assert.Equal(t, f, f.TurnRight().TurnRight().TurnRight().TurnRight())
	}
}

func TestDeltaIsUnitStep(t *testing.T) {
	for _, f := range AllFacings() {
		dx, dy := f.Delta()
		assert.Equal(t, 1, dx*dx+dy*dy, f.String())
	}
	dx, dy := Up.Delta()
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
}

func TestMarkerRoundTrip(t *testing.T) {
	for _, f := range AllFacings() {
		got, ok := facingFromMarker(f.Marker())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := facingFromMarker('#')
	assert.False(t, ok)
}

func TestInvalidFacingPanics(t *testing.T) {
	bad := Facing(7)
	assert.False(t, bad.IsValid())
	assert.Equal(t, "Unknown", bad.String())
	assert.PanicsWithValue(t, AssertionError{"turn from invalid facing"}, func() {
		bad.TurnRight()
	})
}
