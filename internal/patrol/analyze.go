package patrol

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type Report struct {
	Visited        int        `json:"visited"`
	LoopPlacements int        `json:"loop_placements"`
	Placements     []Position `json:"placements"`
	Baseline       Path       `json:"-"`
}

// Analyze walks the baseline patrol and counts the single-obstacle placements
// that turn it into a loop.
func Analyze(ctx context.Context, g *Grid, start State, workers int) (*Report, error) {
	if !g.InBounds(start.Position) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start.Position)
	}
	if g.HasObstacle(start.Position) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start.Position)
	}

	began := time.Now()

	baseline := Walk(g, start)
	if baseline.Looped {
		return nil, ErrBaselineLoops
	}

	Log.WithFields(logrus.Fields{
		"start":   start.String(),
		"visited": baseline.Len(),
		"steps":   baseline.Steps,
	}).Debug("baseline patrol")

	placements, err := FindLoopPlacements(ctx, g, start, baseline, workers)
	if err != nil {
		return nil, fmt.Errorf("placement search interrupted: %w", err)
	}

	Log.WithFields(logrus.Fields{
		"loop_placements": len(placements),
		"duration_ms":     time.Since(began).Milliseconds(),
	}).Debug("analysis done")

	report := &Report{
		Visited:        baseline.Len(),
		LoopPlacements: len(placements),
		Placements:     placements,
		Baseline:       baseline,
	}

	return report, nil
}
