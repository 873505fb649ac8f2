package service

import (
	"context"
	"fmt"
	"slices"
	"time"
	"zonecast/config"
	"zonecast/infras/otel"
	"zonecast/internal/domains/clock"
	cModel "zonecast/internal/domains/converter/model"
	cDto "zonecast/internal/domains/converter/model/dto"
	cService "zonecast/internal/domains/converter/service"
	"zonecast/internal/domains/session/model"
	"zonecast/internal/domains/session/model/dto"
	"zonecast/internal/domains/session/repository"
	"zonecast/shared/constant"
	"zonecast/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Session interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateSource(ctx context.Context, id string, req cDto.SourceRequest) (dto.SessionResponse, error)
	AddTarget(ctx context.Context, id string, req cDto.TargetRequest) (dto.SessionResponse, error)
	RemoveTarget(ctx context.Context, id string, zone string) (dto.SessionResponse, error)
	Conversions(ctx context.Context, id string) (cDto.ConversionResponse, error)
	Clock(ctx context.Context, id string, now time.Time) (dto.ClockResponse, error)
	Candidates(ctx context.Context, id string) (dto.CandidatesResponse, error)
}

type serviceImpl struct {
	repo       repository.Session
	converter  cService.Converter
	clock      *clock.Source
	cfg        *config.Config
	otel       otel.Otel
	idle       time.Duration
	maxTargets int
}

func New(repo repository.Session, converter cService.Converter, clock *clock.Source, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		repo:       repo,
		converter:  converter,
		clock:      clock,
		cfg:        cfg,
		otel:       otel,
		idle:       time.Duration(cfg.Session.IdleTimeoutSeconds) * time.Second,
		maxTargets: cfg.Session.MaxTargets,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	if swept := s.repo.Sweep(ctx, now, s.idle); swept > 0 {
		log.Info().Int("count", swept).Msg("swept idle sessions")
	}

	zone := cModel.ZoneID(req.SourceZone)
	if zone == "" {
		zone = cModel.ZoneID(s.cfg.Converter.SourceZone)
	}

	if err = s.known(zone); err != nil {
		return res, err
	}

	names := req.TargetZones
	if names == nil {
		names = s.cfg.Converter.TargetZones
	}

	targets := cDto.ToZoneIDs(names)
	for _, target := range targets {
		if err = s.known(target); err != nil {
			return res, err
		}
	}

	civil, err := s.selectCivil(s.currentCivil(ctx, now, zone), req.Date, req.Time)
	if err != nil {
		return res, err
	}

	session := model.New(uuid.NewString(), cModel.SourceSelection{Civil: civil, Zone: zone}, targets, now)

	// duplicates and the source zone are already dropped here
	if session.Targets.Len() > s.maxTargets {
		return res, failure.Conflict(fmt.Sprintf("a session holds at most %d target zones", s.maxTargets)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("id", session.ID).Str("zone", zone.String()).Int("targets", session.Targets.Len()).Msg("session created")

	session.Lock()
	defer session.Unlock()

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Info().Str("id", id).Msg("session deleted")

	return nil
}

func (s *serviceImpl) UpdateSource(ctx context.Context, id string, req cDto.SourceRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSource")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (cDto.SourceRequest{}) {
		return res, failure.BadRequestFromString("source update cannot be empty") //nolint:wrapcheck
	}

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	source := session.Source

	if req.Zone != "" {
		source.Zone = cModel.ZoneID(req.Zone)

		if err = s.known(source.Zone); err != nil {
			return res, err
		}
	}

	source.Civil, err = s.selectCivil(source.Civil, req.Date, req.Time)
	if err != nil {
		return res, err
	}

	if session.SetSource(source) {
		log.Debug().Str("id", id).Str("zone", source.Zone.String()).Stringer("civil", source.Civil).Msg("session source changed")
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) AddTarget(ctx context.Context, id string, req cDto.TargetRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddTarget")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	zone := cModel.ZoneID(req.Zone)
	if zone == "" {
		return res, failure.EmptyTargetZone
	}

	if err = s.known(zone); err != nil {
		return res, err
	}

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	fresh := zone != session.Source.Zone && !session.Targets.Contains(zone)
	if fresh && session.Targets.Len() >= s.maxTargets {
		return res, failure.Conflict(fmt.Sprintf("a session holds at most %d target zones", s.maxTargets)) //nolint:wrapcheck
	}

	if session.AddTarget(zone) {
		log.Debug().Str("id", id).Str("zone", zone.String()).Msg("target zone added")
	}

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) RemoveTarget(ctx context.Context, id string, zone string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveTarget")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if zone == "" {
		return res, failure.EmptyTargetZone
	}

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	if session.RemoveTarget(cModel.ZoneID(zone)) {
		log.Debug().Str("id", id).Str("zone", zone).Msg("target zone removed")
	}

	res.FromModel(session)

	return res, nil
}

// Conversions returns the conversion for the session's current selection, running
// the engine only when the selection changed since the last call.
func (s *serviceImpl) Conversions(ctx context.Context, id string) (res cDto.ConversionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Conversions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	conversion, ok := session.Memoized()
	if !ok {
		conversion, err = s.converter.Convert(ctx, session.Source, session.Targets.Zones())
		if err != nil {
			return res, fmt.Errorf("failed to convert session %s: %w", id, err)
		}

		session.Memoize(conversion)
	} else {
		scope.AddEvent("conversion served from session memo")
	}

	res.FromModel(conversion)

	return res, nil
}

// Clock renders now in the source zone and every target. It never touches the
// memoized conversion.
func (s *serviceImpl) Clock(ctx context.Context, id string, now time.Time) (res dto.ClockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}

	source := session.Source.Zone
	zones := append([]cModel.ZoneID{source}, session.Targets.Zones()...)
	session.Unlock()

	res.FromModels(now, source, s.converter.CurrentTimes(ctx, now, zones))

	return res, nil
}

func (s *serviceImpl) Candidates(ctx context.Context, id string) (res dto.CandidatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Candidates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.session(ctx, id)
	if err != nil {
		return res, err
	}
	defer session.Unlock()

	res.FromModels(session.Targets.Candidates(s.converter.Catalog(), session.Source.Zone))

	return res, nil
}

// session looks up a live session and returns it locked. Expired sessions are
// dropped and reported as missing.
func (s *serviceImpl) session(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	now := s.clock.Now()

	session.Lock()

	if session.Expired(now, s.idle) {
		session.Unlock()

		_ = s.repo.Delete(ctx, id)

		log.Info().Str("id", id).Msg("session expired")

		return nil, failure.SessionNotFound
	}

	session.Touch(now)

	return session, nil
}

func (s *serviceImpl) known(zone cModel.ZoneID) error {
	if !slices.Contains(s.converter.Catalog(), zone) {
		return failure.UnknownZone(zone.String()) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) currentCivil(ctx context.Context, now time.Time, zone cModel.ZoneID) cModel.CivilDateTime {
	times := s.converter.CurrentTimes(ctx, now, []cModel.ZoneID{zone})
	if len(times) == 0 {
		return cModel.CivilFromTime(now.UTC().Truncate(time.Second))
	}

	return times[0].Civil
}

// selectCivil overlays the provided date and clock onto base.
func (s *serviceImpl) selectCivil(base cModel.CivilDateTime, date, clock string) (cModel.CivilDateTime, error) {
	if date == "" && clock == "" {
		return base, nil
	}

	wall := base.AsUTC()

	if date == "" {
		date = wall.Format(constant.DateLayout)
	}

	if clock == "" {
		clock = wall.Format(constant.ClockLayoutSecond)
	}

	return cModel.ParseCivilDateTime(date, clock) //nolint:wrapcheck
}
