package patrol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseGrid reads a character grid: '#' is an obstacle, '.' is empty and one
// of '^', '>', 'v', '<' marks the guard and its facing. Trailing blank lines
// are ignored.
func ParseGrid(r io.Reader) (*Grid, State, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, State{}, fmt.Errorf("unable to read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, State{}, ErrEmptyGrid
	}

	var (
		width     = len(lines[0])
		height    = len(lines)
		obstacles []Position
		start     *State
	)
	for y, line := range lines {
		if len(line) != width {
			return nil, State{}, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedRows, y, len(line), width)
		}
		for x, char := range []byte(line) {
			pos := Position{x, y}
			switch char {
			case '.':
			case '#':
				obstacles = append(obstacles, pos)
			default:
				facing, ok := facingFromMarker(rune(char))
				if !ok {
					return nil, State{}, fmt.Errorf("%w %q at %s",
						ErrUnknownCell, char, pos)
				}
				if start != nil {
					return nil, State{}, fmt.Errorf("%w: %s and %s",
						ErrMultipleStarts, start.Position, pos)
				}
				start = &State{pos, facing}
			}
		}
	}
	if start == nil {
		return nil, State{}, ErrNoStart
	}

	grid, err := NewGrid(width, height, obstacles...)
	if err != nil {
		return nil, State{}, err
	}

	return grid, *start, nil
}
