// Package workers runs independent units of work concurrently with an upper
// bound on parallelism. The passgen CLI uses it to fan breach lookups for a
// bulk batch out over a few goroutines.
package workers

import "context"

// Worker is a single unit of work. Run should return promptly once ctx is
// cancelled.
//
// Example implementation:
//
//	type lookup struct {
//	    secret string
//	    result models.BreachResult
//	}
//
//	func (l *lookup) Run(ctx context.Context) {
//	    l.result = breachService.Check(ctx, l.secret)
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
