package patrol

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Candidates lists the cells worth blocking: every cell of the baseline path
// except the start. A cell the baseline never reaches is never looked at as
// "ahead" either, so blocking it leaves the patrol unchanged.
func Candidates(start State, baseline Path) []Position {
	res := baseline.Positions()
	for i, p := range res {
		if p == start.Position {
			return append(res[:i], res[i+1:]...)
		}
	}
	return res
}

// FindLoopPlacements returns, in row-major order, every candidate cell whose
// blocking traps the guard in a loop. workers == 1 runs on the calling
// goroutine, workers <= 0 uses GOMAXPROCS workers. The only error returned is
// the context's.
//
// panics [AssertionError]
func FindLoopPlacements(
	ctx context.Context, g *Grid, start State, baseline Path, workers int,
) ([]Position, error) {
	if baseline.Looped {
		panic(AssertionError{"placement search over a looping baseline"})
	}

	candidates := Candidates(start, baseline)
	loops := make([]bool, len(candidates))

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	Log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"workers":    workers,
	}).Debug("placement search")

	if workers == 1 {
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			loops[i] = Walk(g.WithObstacle(c), start).Looped
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(workers)
		for i, c := range candidates {
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				loops[i] = Walk(g.WithObstacle(c), start).Looped
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	res := make([]Position, 0)
	for i, looped := range loops {
		if looped {
			res = append(res, candidates[i])
		}
	}
	return res, nil
}

// CountLoopPlacements is the sequential count of loop-inducing placements.
//
// panics [AssertionError]
func CountLoopPlacements(g *Grid, start State, baseline Path) int {
	res, _ := FindLoopPlacements(context.Background(), g, start, baseline, 1)
	return len(res)
}
