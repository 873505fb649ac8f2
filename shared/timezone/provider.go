package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"
	"zonecast/shared/failure"

	"github.com/rs/zerolog/log"
)

// Rule is what a zone observes at a given instant.
type Rule struct {
	// Offset is local time minus UTC, positive east of Greenwich.
	Offset       time.Duration
	Abbreviation string
	DST          bool
}

type Provider interface {
	Lookup(zone string, instant time.Time) (Rule, error)
	Location(zone string) (*time.Location, error)
	Catalog() Catalog
}

type provider struct {
	catalog   Catalog
	mu        sync.RWMutex
	locations map[string]*time.Location
}

func NewProvider(catalog Catalog) Provider {
	return &provider{
		catalog:   catalog,
		locations: make(map[string]*time.Location, catalog.Len()),
	}
}

func (p *provider) Catalog() Catalog {
	return p.catalog
}

// Location returns the loaded location for a catalog zone, loading it at most once.
func (p *provider) Location(zone string) (*time.Location, error) {
	if !p.catalog.Contains(zone) {
		return nil, failure.UnknownZone(zone)
	}

	p.mu.RLock()
	loc, ok := p.locations[zone]
	p.mu.RUnlock()

	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn().
			Err(err).
			Str("zone", zone).
			Msg("Zone is in the catalog but missing from the rule database")

		return nil, failure.UnknownZone(zone)
	}

	p.mu.Lock()
	p.locations[zone] = loc
	p.mu.Unlock()

	return loc, nil
}

// Lookup returns the offset and abbreviation zone observes at instant.
func (p *provider) Lookup(zone string, instant time.Time) (Rule, error) {
	loc, err := p.Location(zone)
	if err != nil {
		return Rule{}, err
	}

	local := instant.In(loc)
	name, offset := local.Zone()

	return Rule{
		Offset:       time.Duration(offset) * time.Second,
		Abbreviation: name,
		DST:          local.IsDST(),
	}, nil
}
