package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrFeedStarted = errors.New("clock feed already started")

const defaultInterval = time.Second

// Feed emits the current instant once immediately and then once per interval.
// A feed is single use: Start it once, Stop it once the consumer goes away.
type Feed struct {
	clock    Clock
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewFeed(clock Clock, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Feed{
		clock:    clock,
		interval: interval,
	}
}

// Start begins ticking until ctx is canceled or Stop is called. The returned
// channel is closed once the ticker has been released.
func (f *Feed) Start(ctx context.Context) (<-chan time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done != nil {
		return nil, ErrFeedStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	ticks := make(chan time.Time, 1)

	f.cancel = cancel
	f.done = make(chan struct{})

	go f.run(ctx, ticks, f.done)

	return ticks, nil
}

// Stop cancels the feed and waits for its goroutine to exit. It is safe to call
// more than once and before Start.
func (f *Feed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Done is closed once the feed has fully stopped.
func (f *Feed) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done == nil {
		closed := make(chan struct{})
		close(closed)

		return closed
	}

	return f.done
}

func (f *Feed) run(ctx context.Context, ticks chan<- time.Time, done chan<- struct{}) {
	defer close(done)
	defer close(ticks)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	if !f.emit(ctx, ticks) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !f.emit(ctx, ticks) {
				return
			}
		}
	}
}

func (f *Feed) emit(ctx context.Context, ticks chan<- time.Time) bool {
	select {
	case <-ctx.Done():
		return false
	case ticks <- f.clock.Now():
		return true
	}
}
