package main

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateWorkers / TestResolveWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 32} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, 33} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(5); got != 5 {
		t.Errorf("resolveWorkers(5) = %d, want 5", got)
	}

	want := min(max(runtime.GOMAXPROCS(0), 1), maxAutoWorkers)
	if got := resolveWorkers(0); got != want {
		t.Errorf("resolveWorkers(0) = %d, want %d", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestForEach - Bounded fan-out
// ---------------------------------------------------------------------------

func TestForEach(t *testing.T) {
	t.Parallel()

	const n = 50
	seen := make([]int32, n)
	var running, peak atomic.Int32

	forEach(context.Background(), n, 3,
		func(i int) {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			atomic.AddInt32(&seen[i], 1)
			running.Add(-1)
		},
		func(i int, err error) {
			t.Errorf("onCanceled(%d, %v) called without cancellation", i, err)
		},
	)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", p)
	}
}

func TestForEach_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran, canceled atomic.Int32
	forEach(ctx, 10, 2,
		func(int) { ran.Add(1) },
		func(_ int, err error) {
			if errors.Is(err, context.Canceled) {
				canceled.Add(1)
			}
		},
	)

	if ran.Load() != 0 || canceled.Load() != 10 {
		t.Errorf("ran=%d canceled=%d, want 0 and 10", ran.Load(), canceled.Load())
	}
}

func TestForEach_Empty(t *testing.T) {
	t.Parallel()

	forEach(context.Background(), 0, 4,
		func(int) { t.Error("fn called for empty range") },
		func(int, error) { t.Error("onCanceled called for empty range") },
	)
}
