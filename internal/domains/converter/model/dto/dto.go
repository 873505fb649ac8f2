package dto

import (
	"time"
	"zonecast/internal/domains/converter/model"
	"zonecast/shared/constant"
	"zonecast/shared/timezone"
)

type ConvertRequest struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required,clock"`
	SourceZone  string   `json:"source_zone" validate:"required,zone"`
	TargetZones []string `json:"target_zones" validate:"omitempty,max=64,unique,dive,zone"`
}

func (r *ConvertRequest) ToModel() (model.SourceSelection, []model.ZoneID, error) {
	civil, err := model.ParseCivilDateTime(r.Date, r.Time)
	if err != nil {
		return model.SourceSelection{}, nil, err
	}

	return model.SourceSelection{Civil: civil, Zone: model.ZoneID(r.SourceZone)}, ToZoneIDs(r.TargetZones), nil
}

// SourceRequest selects a new source moment. Date and time fall back to the current
// selection when omitted.
type SourceRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty,clock"`
	Zone string `json:"zone" validate:"omitempty,zone"`
}

type TargetRequest struct {
	Zone string `json:"zone" validate:"required,zone"`
}

type SourceResponse struct {
	Zone        string `json:"zone"`
	DisplayName string `json:"display_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Civil       string `json:"civil"`
}

func (r *SourceResponse) FromModel(selection model.SourceSelection) {
	local := selection.Civil.AsUTC()

	r.Zone = selection.Zone.String()
	r.DisplayName = timezone.DisplayName(r.Zone)
	r.Date = local.Format(constant.DateLayout)
	r.Time = local.Format(constant.ClockLayoutSecond)
	r.Civil = selection.Civil.String()
}

type ConvertedTimeResponse struct {
	Zone         string `json:"zone"`
	DisplayName  string `json:"display_name"`
	Time         string `json:"time"`
	Date         string `json:"date"`
	Abbreviation string `json:"abbreviation"`
	Offset       string `json:"offset"`
	Civil        string `json:"civil"`
}

func (r *ConvertedTimeResponse) FromModel(converted model.ConvertedTime) {
	r.Zone = converted.Zone.String()
	r.DisplayName = timezone.DisplayName(r.Zone)
	r.Time = converted.Time
	r.Date = converted.Date
	r.Abbreviation = converted.Abbreviation
	r.Offset = timezone.FormatOffset(converted.Offset)
	r.Civil = converted.Civil.String()
}

type SkippedZoneResponse struct {
	Zone   string `json:"zone"`
	Reason string `json:"reason"`
}

type ConversionResponse struct {
	Source  SourceResponse          `json:"source"`
	UTC     string                  `json:"utc,omitempty"`
	Times   []ConvertedTimeResponse `json:"times"`
	Skipped []SkippedZoneResponse   `json:"skipped,omitempty"`
	Message string                  `json:"message,omitempty"`
}

// FromModel maps a conversion pass. An empty pass carries the prompt the view shows
// instead of a table.
func (r *ConversionResponse) FromModel(conversion model.Conversion) {
	r.Source.FromModel(conversion.Source)

	if !conversion.UTC.IsZero() {
		r.UTC = conversion.UTC.Format(time.RFC3339)
	}

	r.Times = FromConvertedTimes(conversion.Times)

	r.Skipped = make([]SkippedZoneResponse, len(conversion.Skipped))
	for i, skipped := range conversion.Skipped {
		r.Skipped[i] = SkippedZoneResponse{Zone: skipped.Zone.String(), Reason: skipped.Reason}
	}

	if len(r.Times) == 0 {
		r.Message = constant.ResponseMessageNoTargets
	}
}

type ZoneResponse struct {
	Zone         string `json:"zone"`
	DisplayName  string `json:"display_name"`
	Abbreviation string `json:"abbreviation"`
	Offset       string `json:"offset"`
	Time         string `json:"time"`
	Date         string `json:"date"`
}

func (r *ZoneResponse) FromModel(converted model.ConvertedTime) {
	r.Zone = converted.Zone.String()
	r.DisplayName = timezone.DisplayName(r.Zone)
	r.Abbreviation = converted.Abbreviation
	r.Offset = timezone.FormatOffset(converted.Offset)
	r.Time = converted.Time
	r.Date = converted.Date
}

type GetZonesResponse struct {
	Zones     []ZoneResponse `json:"zones"`
	TotalData int            `json:"total_data"`
}

func (r *GetZonesResponse) FromModels(models []model.ConvertedTime) {
	r.TotalData = len(models)

	r.Zones = make([]ZoneResponse, len(models))
	for i, mod := range models {
		r.Zones[i].FromModel(mod)
	}
}

func FromConvertedTimes(models []model.ConvertedTime) []ConvertedTimeResponse {
	times := make([]ConvertedTimeResponse, len(models))
	for i, mod := range models {
		times[i].FromModel(mod)
	}

	return times
}

func ToZoneIDs(names []string) []model.ZoneID {
	zones := make([]model.ZoneID, len(names))
	for i, name := range names {
		zones[i] = model.ZoneID(name)
	}

	return zones
}

func FromZoneIDs(zones []model.ZoneID) []string {
	names := make([]string, len(zones))
	for i, zone := range zones {
		names[i] = zone.String()
	}

	return names
}
