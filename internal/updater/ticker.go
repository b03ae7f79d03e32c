// ABOUTME: Cancellable repeating-timer scheduler
// ABOUTME: Drives Tick at a fixed interval with no overlapping runs
package updater

import (
	"context"
	"sync"
	"time"
)

// scheduler is the repeating-timer contract the updater drives ticks with.
type scheduler interface {
	Start()
	Stop()
	Running() bool
}

// Ticker invokes a callback at a fixed wall-clock interval. The callback
// runs synchronously on one goroutine, so ticks never overlap; Stop halts
// the schedule between ticks and never interrupts a tick in flight.
type Ticker struct {
	interval time.Duration
	tick     func()

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewTicker creates a stopped ticker.
func NewTicker(interval time.Duration, tick func()) *Ticker {
	return &Ticker{interval: interval, tick: tick}
}

// Start begins the schedule. No-op while already running.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.run(ctx)
}

// Stop halts the schedule. Idempotent.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Running reports whether the schedule is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Ticker) run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			t.tick()
		}
	}
}
