package model

import (
	"sync"
	"time"
	cModel "zonecast/internal/domains/converter/model"
)

const EntityName = "session"

// Session is one user's working selection. Its fields are guarded by the embedded
// mutex; callers lock it for every read and write.
type Session struct {
	sync.Mutex

	ID         string
	Source     cModel.SourceSelection
	Targets    *cModel.TargetZoneSet
	CreatedAt  time.Time
	LastSeenAt time.Time

	// Version increases on every source or target change.
	Version uint64

	memo        cModel.Conversion
	memoVersion uint64
	memoized    bool
}

func New(id string, source cModel.SourceSelection, targets []cModel.ZoneID, now time.Time) *Session {
	return &Session{
		ID:         id,
		Source:     source,
		Targets:    cModel.NewTargetZoneSet(source.Zone, targets...),
		CreatedAt:  now,
		LastSeenAt: now,
		Version:    1,
	}
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.LastSeenAt = now
}

func (s *Session) Expired(now time.Time, idle time.Duration) bool {
	return idle > 0 && now.Sub(s.LastSeenAt) > idle
}

// SetSource replaces the selection and reports whether it changed.
func (s *Session) SetSource(source cModel.SourceSelection) bool {
	if source == s.Source {
		return false
	}

	s.Source = source
	s.Version++

	return true
}

func (s *Session) AddTarget(zone cModel.ZoneID) bool {
	if !s.Targets.Add(zone, s.Source.Zone) {
		return false
	}

	s.Version++

	return true
}

func (s *Session) RemoveTarget(zone cModel.ZoneID) bool {
	if !s.Targets.Remove(zone) {
		return false
	}

	s.Version++

	return true
}

// Memoized returns the conversion computed for the current version, if any.
func (s *Session) Memoized() (cModel.Conversion, bool) {
	if !s.memoized || s.memoVersion != s.Version {
		return cModel.Conversion{}, false
	}

	return s.memo, true
}

func (s *Session) Memoize(conversion cModel.Conversion) {
	s.memo = conversion
	s.memoVersion = s.Version
	s.memoized = true
}
