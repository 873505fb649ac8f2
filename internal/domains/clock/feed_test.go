package clock_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
	"zonecast/config"
	"zonecast/internal/domains/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClock struct {
	base  time.Time
	calls atomic.Int64
}

func (c *countingClock) Now() time.Time {
	n := c.calls.Add(1)

	return c.base.Add(time.Duration(n-1) * time.Second)
}

func receive(t *testing.T, ticks <-chan time.Time) time.Time {
	t.Helper()

	select {
	case tick, ok := <-ticks:
		require.True(t, ok, "feed closed early")

		return tick
	case <-time.After(time.Second):
		t.Fatal("no tick received")
	}

	return time.Time{}
}

func drain(t *testing.T, ticks <-chan time.Time) {
	t.Helper()

	deadline := time.After(time.Second)

	for {
		select {
		case _, ok := <-ticks:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("feed channel was not closed")
		}
	}
}

func TestFeed_EmitsImmediatelyThenEveryInterval(t *testing.T) {
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	c := &countingClock{base: base}

	feed := clock.NewFeed(c, 5*time.Millisecond)
	defer feed.Stop()

	ticks, err := feed.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, base, receive(t, ticks))
	assert.Equal(t, base.Add(time.Second), receive(t, ticks))
	assert.Equal(t, base.Add(2*time.Second), receive(t, ticks))
}

func TestFeed_StopReleasesTicker(t *testing.T) {
	feed := clock.NewFeed(clock.FixedClock{Time: time.Unix(0, 0)}, time.Millisecond)

	ticks, err := feed.Start(context.Background())
	require.NoError(t, err)

	receive(t, ticks)
	feed.Stop()

	select {
	case <-feed.Done():
	default:
		t.Fatal("Stop returned before the feed finished")
	}

	drain(t, ticks)

	assert.NotPanics(t, feed.Stop)
}

func TestFeed_ContextCancellationStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	feed := clock.NewFeed(clock.FixedClock{Time: time.Unix(0, 0)}, time.Hour)

	ticks, err := feed.Start(ctx)
	require.NoError(t, err)

	receive(t, ticks)
	cancel()

	drain(t, ticks)
	<-feed.Done()
}

func TestFeed_IsSingleUse(t *testing.T) {
	feed := clock.NewFeed(clock.RealClock{}, time.Hour)
	defer feed.Stop()

	_, err := feed.Start(context.Background())
	require.NoError(t, err)

	_, err = feed.Start(context.Background())
	assert.ErrorIs(t, err, clock.ErrFeedStarted)
}

func TestFeed_StopBeforeStart(t *testing.T) {
	feed := clock.NewFeed(clock.RealClock{}, 0)

	assert.NotPanics(t, feed.Stop)

	select {
	case <-feed.Done():
	default:
		t.Fatal("an unstarted feed reports itself as done")
	}
}

func TestSource(t *testing.T) {
	cfg := &config.Config{}
	cfg.Converter.TickMillis = 250

	source := clock.NewSource(cfg)

	assert.Equal(t, 250*time.Millisecond, source.Interval)
	assert.WithinDuration(t, time.Now(), source.Now(), time.Minute)

	source.Clock = clock.FixedClock{Time: time.Unix(100, 0)}
	feed := source.NewFeed()
	defer feed.Stop()

	ticks, err := feed.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Unix(100, 0), receive(t, ticks))
}
