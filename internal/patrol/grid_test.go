package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 2, Position{1, 0}, Position{2, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 24, g.StateCount())
	assert.Equal(t, ".#.\n..#\n", g.String())
	assert.Equal(t, []Position{{1, 0}, {2, 1}}, g.Obstacles())

	_, err = NewGrid(0, 3)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid(2, 2, Position{2, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestInBounds(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{1, 2}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{2, 0}, false},
		{Position{0, 3}, false},
	}
	for _, test := range tests {
		t.Run(test.pos.String(), func(t *testing.T) {
			assert.Equal(t, test.want, g.InBounds(test.pos))
		})
	}
}

func TestHasObstacleOutOfBoundsPanics(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { g.HasObstacle(Position{2, 0}) })
	assert.Panics(t, func() { g.WithObstacle(Position{0, -1}) })
}

func TestWithObstacleLeavesReceiverUntouched(t *testing.T) {
	g, err := NewGrid(3, 3, Position{1, 0})
	require.NoError(t, err)

	augmented := g.WithObstacle(Position{2, 2})

	assert.True(t, augmented.HasObstacle(Position{1, 0}))
	assert.True(t, augmented.HasObstacle(Position{2, 2}))
	assert.False(t, g.HasObstacle(Position{2, 2}))
	assert.Equal(t, []Position{{1, 0}}, g.Obstacles())
}

func TestPositionCompare(t *testing.T) {
	assert.Equal(t, 0, Position{1, 1}.Compare(Position{1, 1}))
	assert.Equal(t, -1, Position{5, 0}.Compare(Position{0, 1}))
	assert.Equal(t, 1, Position{2, 1}.Compare(Position{1, 1}))
	assert.Equal(t, Position{3, 4}, Position{3, 5}.Ahead(Up))
	assert.Equal(t, Position{2, 5}, Position{3, 5}.Ahead(Left))
}
