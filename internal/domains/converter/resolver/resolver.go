package resolver

import (
	"zonecast/config"
	"zonecast/internal/domains/converter/model"
	"zonecast/shared/timezone"
)

// maxRefinements bounds how many times a first lookup is re-checked.
const maxRefinements = 2

// Resolver maps a civil reading in a zone to the rule the zone observes then.
//
// The civil value is first read as a UTC instant (the basis) and the zone's rule is
// looked up there. With refinement enabled the rule is looked up again at
// basis - offset, the instant the civil value actually names under that offset, and
// adopted once it is stable. Inside a spring-forward gap no offset is stable and the
// literal lookup at the basis is returned. Inside a fall-back overlap the first stable
// offset wins, which is the earlier of the two readings for zones west of Greenwich.
type Resolver interface {
	Resolve(zone model.ZoneID, civil model.CivilDateTime) (timezone.Rule, error)
}

type resolverImpl struct {
	provider timezone.Provider
	refine   bool
}

func New(provider timezone.Provider, cfg *config.Config) Resolver {
	return NewWithRefinement(provider, cfg.Refine())
}

func NewWithRefinement(provider timezone.Provider, refine bool) Resolver {
	return &resolverImpl{
		provider: provider,
		refine:   refine,
	}
}

func (r *resolverImpl) Resolve(zone model.ZoneID, civil model.CivilDateTime) (timezone.Rule, error) {
	basis := civil.AsUTC()

	literal, err := r.provider.Lookup(zone.String(), basis)
	if err != nil {
		return timezone.Rule{}, err
	}

	if !r.refine {
		return literal, nil
	}

	candidate := literal

	for range maxRefinements {
		next, err := r.provider.Lookup(zone.String(), basis.Add(-candidate.Offset))
		if err != nil {
			return literal, nil
		}

		if next.Offset == candidate.Offset {
			return next, nil
		}

		candidate = next
	}

	return literal, nil
}
