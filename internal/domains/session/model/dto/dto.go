package dto

import (
	"time"
	cModel "zonecast/internal/domains/converter/model"
	cDto "zonecast/internal/domains/converter/model/dto"
	"zonecast/internal/domains/session/model"
	"zonecast/shared/timezone"
)

// CreateSessionRequest opens a session. Omitted fields fall back to the configured
// defaults and the current time in the source zone; an explicit empty target list
// starts the session with no targets.
type CreateSessionRequest struct {
	Date        string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"omitempty,clock"`
	SourceZone  string   `json:"source_zone" validate:"omitempty,zone"`
	TargetZones []string `json:"target_zones" validate:"omitempty,max=64,unique,dive,zone"`
}

type SessionResponse struct {
	ID        string              `json:"id"`
	Source    cDto.SourceResponse `json:"source"`
	Targets   []string            `json:"targets"`
	Version   uint64              `json:"version"`
	CreatedAt time.Time           `json:"created_at"`
}

// FromModel maps a session. The caller holds the session lock.
func (r *SessionResponse) FromModel(session *model.Session) {
	r.ID = session.ID
	r.Source.FromModel(session.Source)
	r.Targets = cDto.FromZoneIDs(session.Targets.Zones())
	r.Version = session.Version
	r.CreatedAt = session.CreatedAt
}

// ClockResponse is one live clock frame: the source zone first, then every target.
type ClockResponse struct {
	At     time.Time           `json:"at"`
	Source *cDto.ZoneResponse  `json:"source,omitempty"`
	Times  []cDto.ZoneResponse `json:"times"`
}

func (r *ClockResponse) FromModels(at time.Time, source cModel.ZoneID, models []cModel.ConvertedTime) {
	r.At = at.UTC().Truncate(time.Second)
	r.Times = make([]cDto.ZoneResponse, 0, len(models))

	for i, mod := range models {
		var zone cDto.ZoneResponse
		zone.FromModel(mod)

		if i == 0 && mod.Zone == source && r.Source == nil {
			r.Source = &zone

			continue
		}

		r.Times = append(r.Times, zone)
	}
}

type ZoneOption struct {
	Zone        string `json:"zone"`
	DisplayName string `json:"display_name"`
}

type CandidatesResponse struct {
	Zones []ZoneOption `json:"zones"`
}

func (r *CandidatesResponse) FromModels(zones []cModel.ZoneID) {
	r.Zones = make([]ZoneOption, len(zones))
	for i, zone := range zones {
		r.Zones[i] = ZoneOption{Zone: zone.String(), DisplayName: timezone.DisplayName(zone.String())}
	}
}
