package patrol

import "errors"

var (
	ErrEmptyGrid      = errors.New("grid is empty")
	ErrRaggedRows     = errors.New("grid rows differ in length")
	ErrUnknownCell    = errors.New("unknown cell character")
	ErrNoStart        = errors.New("no start marker found")
	ErrMultipleStarts = errors.New("more than one start marker")
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrStartBlocked   = errors.New("start cell holds an obstacle")
	ErrBaselineLoops  = errors.New("baseline patrol never leaves the grid")
)

// AssertionError reports a broken contract inside the package. It is only
// ever used as a panic value.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
