package model

import "slices"

// TargetZoneSet keeps the zones a selection is converted into, in insertion order.
// It never holds a duplicate, and Add refuses the source zone current at the time
// of the call. Changing the source later does not evict an existing target.
type TargetZoneSet struct {
	zones []ZoneID
}

// NewTargetZoneSet seeds a set through Add, so duplicates and the source are dropped.
func NewTargetZoneSet(source ZoneID, seed ...ZoneID) *TargetZoneSet {
	set := &TargetZoneSet{zones: make([]ZoneID, 0, len(seed))}

	for _, zone := range seed {
		set.Add(zone, source)
	}

	return set
}

// Add appends zone unless it is already present or equals source. It reports whether the set changed.
func (s *TargetZoneSet) Add(zone, source ZoneID) bool {
	if zone == source || s.Contains(zone) {
		return false
	}

	s.zones = append(s.zones, zone)

	return true
}

// Remove drops zone if present. It reports whether the set changed.
func (s *TargetZoneSet) Remove(zone ZoneID) bool {
	idx := slices.Index(s.zones, zone)
	if idx < 0 {
		return false
	}

	s.zones = slices.Delete(s.zones, idx, idx+1)

	return true
}

func (s *TargetZoneSet) Contains(zone ZoneID) bool {
	return slices.Contains(s.zones, zone)
}

func (s *TargetZoneSet) Len() int {
	return len(s.zones)
}

// Zones returns a copy of the targets in order.
func (s *TargetZoneSet) Zones() []ZoneID {
	return slices.Clone(s.zones)
}

// Candidates lists the catalog zones that Add would currently accept.
func (s *TargetZoneSet) Candidates(catalog []ZoneID, source ZoneID) []ZoneID {
	candidates := make([]ZoneID, 0, len(catalog))

	for _, zone := range catalog {
		if zone == source || s.Contains(zone) {
			continue
		}

		candidates = append(candidates, zone)
	}

	return candidates
}
