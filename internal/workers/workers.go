package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used when a non-positive limit is passed to New.
const DefaultLimit = 4

type Workers struct {
	workers []Worker
	limit   int
}

func New(limit int, workers ...Worker) *Workers {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Workers{workers: workers, limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker, at most limit at a time, and waits for them.
// Workers not yet started when ctx is cancelled are skipped.
func (w *Workers) Run(ctx context.Context) {
	limit := w.limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for _, worker := range w.workers {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			worker.Run(ctx)
			return nil
		})
	}

	_ = g.Wait()
}
