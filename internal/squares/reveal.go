package squares

import (
	"context"
	"time"
)

const (
	// DefaultRevealDelay is how long a new stage stays dark before colors
	// start to appear.
	DefaultRevealDelay = 1750 * time.Millisecond
	// DefaultRevealStagger is the pause between two revealed cells.
	DefaultRevealStagger = 30 * time.Millisecond
)

// reveal is an in-flight, cancellable color reveal.
type reveal struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startReveal waits delay, then calls paint for each index in order with
// stagger between calls. It stops as soon as ctx is cancelled or paint
// returns false.
func startReveal(parent context.Context, delay, stagger time.Duration, order []int, paint func(ctx context.Context, index int) bool) *reveal {
	ctx, cancel := context.WithCancel(parent)
	r := &reveal{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(r.done)
		defer cancel()

		if !sleepCtx(ctx, delay) {
			return
		}
		for i, index := range order {
			if !paint(ctx, index) {
				return
			}
			if i < len(order)-1 && !sleepCtx(ctx, stagger) {
				return
			}
		}
	}()

	return r
}

// Cancel stops the reveal. It does not wait for the goroutine to exit.
func (r *reveal) Cancel() {
	r.cancel()
}

// sleepCtx waits for d or until ctx is done. It reports whether the full
// duration elapsed without cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// shuffle permutes list in place, walking from the end and swapping each slot
// with a uniformly chosen earlier one.
func shuffle(list []int, rng RandomSource) {
	for j := len(list); j >= 1; j-- {
		item := rng.Intn(j)
		if item < j-1 {
			list[item], list[j-1] = list[j-1], list[item]
		}
	}
}
