package service

import (
	"context"
	"fmt"
	"time"
	"zonecast/config"
	"zonecast/infras/otel"
	"zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/converter/resolver"
	"zonecast/shared/constant"
	"zonecast/shared/failure"
	"zonecast/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Converter runs conversion passes and formats live clocks. Both are pure functions
// of their arguments and the rule provider; "now" only enters through CurrentTimes.
type Converter interface {
	Convert(ctx context.Context, selection model.SourceSelection, targets []model.ZoneID) (model.Conversion, error)
	CurrentTimes(ctx context.Context, now time.Time, zones []model.ZoneID) []model.ConvertedTime
	Catalog() []model.ZoneID
}

type serviceImpl struct {
	resolver resolver.Resolver
	provider timezone.Provider
	basis    string
	otel     otel.Otel
}

func New(resolver resolver.Resolver, provider timezone.Provider, cfg *config.Config, otel otel.Otel) Converter {
	return &serviceImpl{
		resolver: resolver,
		provider: provider,
		basis:    cfg.Converter.Basis,
		otel:     otel,
	}
}

func (s *serviceImpl) Convert(ctx context.Context, selection model.SourceSelection, targets []model.ZoneID) (res model.Conversion, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelSourceAttributeKey, selection.Zone)
	scope.SetAttribute(constant.OtelTargetsAttributeKey, len(targets))

	res = model.Conversion{
		Source:  selection,
		Times:   make([]model.ConvertedTime, 0, len(targets)),
		Skipped: make([]model.SkippedZone, 0),
	}

	source, err := s.resolver.Resolve(selection.Zone, selection.Civil)
	if err != nil {
		log.Warn().Err(err).Str("zone", selection.Zone.String()).Msg("failed to resolve source zone")

		return res, fmt.Errorf("failed to resolve source zone: %w", err)
	}

	res.UTC = selection.Civil.AsUTC().Add(-source.Offset)

	for _, target := range targets {
		rule, err := s.targetRule(target, selection.Civil, res.UTC)
		if err != nil {
			log.Warn().Err(err).Str("zone", target.String()).Msg("skipping target zone")

			res.Skipped = append(res.Skipped, model.SkippedZone{Zone: target, Reason: err.Error()})

			continue
		}

		local := res.UTC.Add(rule.Offset)

		res.Times = append(res.Times, s.present(target, local, rule.Offset, s.abbreviation(target, res.UTC, rule)))
	}

	scope.AddEvent(fmt.Sprintf("converted %d of %d target zones", len(res.Times), len(targets)))

	return res, nil
}

// CurrentTimes renders now in every zone, skipping zones the provider rejects.
func (s *serviceImpl) CurrentTimes(ctx context.Context, now time.Time, zones []model.ZoneID) []model.ConvertedTime {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentTimes")
	defer scope.End()

	now = now.UTC().Truncate(time.Second)
	times := make([]model.ConvertedTime, 0, len(zones))

	for _, zone := range zones {
		rule, err := s.provider.Lookup(zone.String(), now)
		if err != nil {
			log.Warn().Err(err).Str("zone", zone.String()).Msg("skipping live clock")

			continue
		}

		times = append(times, s.present(zone, now.Add(rule.Offset), rule.Offset, rule.Abbreviation))
	}

	return times
}

func (s *serviceImpl) Catalog() []model.ZoneID {
	names := s.provider.Catalog().Zones()
	zones := make([]model.ZoneID, len(names))

	for i, name := range names {
		zones[i] = model.ZoneID(name)
	}

	return zones
}

// targetRule picks the target offset. The default civil basis resolves the target on
// the same civil value as the source; the instant basis reads the rule at the UTC
// instant itself and is exact around transitions.
func (s *serviceImpl) targetRule(target model.ZoneID, civil model.CivilDateTime, utc time.Time) (timezone.Rule, error) {
	if s.basis == config.BasisInstant {
		return s.provider.Lookup(target.String(), utc) //nolint:wrapcheck
	}

	return s.resolver.Resolve(target, civil) //nolint:wrapcheck
}

func (s *serviceImpl) abbreviation(zone model.ZoneID, utc time.Time, resolved timezone.Rule) string {
	if s.basis == config.BasisInstant {
		return resolved.Abbreviation
	}

	rule, err := s.provider.Lookup(zone.String(), utc)
	if err != nil {
		log.Warn().Err(failure.Formatting(zone.String(), err)).Msg("falling back to an empty abbreviation")

		return constant.Empty
	}

	return rule.Abbreviation
}

// present formats local, a UTC-located instant whose wall clock is the zone's reading.
func (s *serviceImpl) present(zone model.ZoneID, local time.Time, offset time.Duration, abbreviation string) model.ConvertedTime {
	return model.ConvertedTime{
		Zone:         zone,
		Time:         local.Format(constant.DisplayTimeLayout),
		Date:         local.Format(constant.DisplayDateLayout),
		Abbreviation: abbreviation,
		Civil:        model.CivilFromTime(local),
		Offset:       offset,
	}
}
