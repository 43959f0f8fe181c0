package main

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-htmlfmt/internal/config"
)

// maxAutoWorkers caps the automatic worker count. Formatting is CPU-bound and
// cheap, so beyond this the file system is the bottleneck.
const maxAutoWorkers = 8

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return min(max(runtime.GOMAXPROCS(0), 1), maxAutoWorkers)
}

// forEach runs fn for every index in [0, n) on at most workers goroutines.
// Once ctx is done, remaining indexes go to onCanceled instead of fn.
// Each index is visited exactly once, so callers can write results[i] without locking.
func forEach(ctx context.Context, n, workers int, fn func(i int), onCanceled func(i int, err error)) {
	if n == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(min(max(workers, 1), n))

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				onCanceled(i, err)
				return nil
			}
			fn(i)
			return nil
		})
	}

	_ = g.Wait()
}
