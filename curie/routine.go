package curie

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-geomag/grid"
)

// OptimizeRoutine fits every centroid of a moving-window analysis,
// distributing windows over a bounded worker pool.
//
// Results are returned in centroid order. Each window derives its own RNG
// seed from the Fitter seed and the centroid index, so routine runs are
// reproducible regardless of worker scheduling. workers <= 0 uses
// GOMAXPROCS.
func (f *Fitter) OptimizeRoutine(ctx context.Context, window float64, centroids []grid.Point, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(centroids))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range centroids {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := f.optimizeSeeded(window, c.X, c.Y, f.seed+int64(i)+1)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
