package clock

import (
	"time"
	"zonecast/config"
)

// Clock provides the current instant. It is injected so live clocks can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using time.Now().
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// Source hands out live clock feeds sharing one clock and cadence.
type Source struct {
	Clock    Clock
	Interval time.Duration
}

func NewSource(cfg *config.Config) *Source {
	return &Source{
		Clock:    RealClock{},
		Interval: time.Duration(cfg.Converter.TickMillis) * time.Millisecond,
	}
}

func (s *Source) Now() time.Time {
	return s.Clock.Now()
}

// NewFeed returns an unstarted feed. The caller owns it and must Stop it.
func (s *Source) NewFeed() *Feed {
	return NewFeed(s.Clock, s.Interval)
}
