package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultMaxCells = 1 << 16

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// Workers is the number of goroutines a placement search may use. Zero means
// one per CPU.
func Workers() (int, error) {
	workers, err := lookupInt("PATROL_WORKERS", 0)
	if err != nil {
		return 0, err
	}
	if workers < 0 {
		return 0, fmt.Errorf("PATROL_WORKERS must not be negative, got %d", workers)
	}
	return workers, nil
}

// MaxCells caps the size of grids accepted over the network.
func MaxCells() (int, error) {
	maxCells, err := lookupInt("PATROL_MAX_CELLS", defaultMaxCells)
	if err != nil {
		return 0, err
	}
	if maxCells <= 0 {
		return 0, fmt.Errorf("PATROL_MAX_CELLS must be positive, got %d", maxCells)
	}
	return maxCells, nil
}

func LogFile() string {
	return os.Getenv("LOG_FILE")
}

type Patrol struct {
	Workers  int
	MaxCells int
}

func NewPatrol() (*Patrol, error) {
	workers, err := Workers()
	if err != nil {
		return nil, err
	}

	maxCells, err := MaxCells()
	if err != nil {
		return nil, err
	}

	p := &Patrol{
		Workers:  workers,
		MaxCells: maxCells,
	}

	return p, nil
}
