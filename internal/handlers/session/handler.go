package session

import (
	"net/http"
	"zonecast/infras/otel"
	"zonecast/internal/domains/clock"
	cDto "zonecast/internal/domains/converter/model/dto"
	"zonecast/internal/domains/session/model/dto"
	"zonecast/internal/domains/session/service"
	"zonecast/shared/constant"
	"zonecast/shared/validator"
	"zonecast/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	eventClock = "clock"
	eventError = "error"
)

type Handler struct {
	service service.Session
	clock   *clock.Source
	otel    otel.Otel
}

func New(service service.Session, clock *clock.Source, otel otel.Otel) Handler {
	return Handler{
		service: service,
		clock:   clock,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSession)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Delete("/{id}", handler.DeleteSession)
		routerGroup.Put("/{id}/source", handler.UpdateSource)
		routerGroup.Post("/{id}/targets", handler.AddTarget)
		routerGroup.Delete("/{id}/targets", handler.RemoveTarget)
		routerGroup.Get("/{id}/conversions", handler.GetConversions)
		routerGroup.Get("/{id}/candidates", handler.GetCandidates)
		routerGroup.Get("/{id}/clock", handler.StreamClock)
	})
}

// CreateSession opens a new conversion session.
// @Summary Create a session
// @Description Open a session holding a source selection and a target zone set. Omitted fields use the configured defaults.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions [post]
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	req := dto.CreateSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSession retrieves a session by its ID.
// @Summary Get a session
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSession closes a session.
// @Summary Delete a session
// @Tags Session
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [delete]
func (handler *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSession")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete session")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// UpdateSource changes the source zone, date or time of a session.
// @Summary Update the source selection
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body cDto.SourceRequest true "Source Request"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/source [put]
func (handler *Handler) UpdateSource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSource")
	defer scope.End()

	req := cDto.SourceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateSource(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update session source")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddTarget adds a target zone. Adding a present zone or the source zone changes nothing.
// @Summary Add a target zone
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body cDto.TargetRequest true "Target Request"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/targets [post]
func (handler *Handler) AddTarget(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTarget")
	defer scope.End()

	req := cDto.TargetRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute(constant.OtelZoneAttributeKey, req.Zone)

	res, err := handler.service.AddTarget(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("zone", req.Zone).Msg("failed to add target zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveTarget removes a target zone if present.
// @Summary Remove a target zone
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Param zone query string true "Zone to remove"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/targets [delete]
func (handler *Handler) RemoveTarget(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveTarget")
	defer scope.End()

	zone := r.URL.Query().Get(constant.RequestParamZone)
	scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

	res, err := handler.service.RemoveTarget(ctx, chi.URLParam(r, constant.RequestParamID), zone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("zone", zone).Msg("failed to remove target zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetConversions returns the conversion for the session's current selection.
// @Summary Get session conversions
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} cDto.ConversionResponse
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/conversions [get]
func (handler *Handler) GetConversions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversions")
	defer scope.End()

	res, err := handler.service.Conversions(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get session conversions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCandidates lists the catalog zones that can still be added as targets.
// @Summary Get candidate target zones
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.CandidatesResponse
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/candidates [get]
func (handler *Handler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCandidates")
	defer scope.End()

	res, err := handler.service.Candidates(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get candidate zones")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// StreamClock streams one clock frame per tick as server-sent events until the
// client disconnects or the session goes away.
// @Summary Stream live clocks
// @Tags Session
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ClockResponse
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/clock [get]
func (handler *Handler) StreamClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StreamClock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if _, err := handler.service.Get(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open clock stream")

		response.WithError(w, err)

		return
	}

	feed := handler.clock.NewFeed()
	defer feed.Stop()

	ticks, err := feed.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	stream, err := response.NewEventStream(w)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open clock stream")

		return
	}

	log.Debug().Str("id", id).Msg("clock stream opened")

	for now := range ticks {
		frame, err := handler.service.Clock(ctx, id, now)
		if err != nil {
			msg := err.Error()
			_ = stream.Send(eventError, response.Error{Error: &msg})

			break
		}

		if err := stream.Send(eventClock, frame); err != nil {
			log.Debug().Err(err).Str("id", id).Msg("clock stream client went away")

			break
		}
	}

	log.Debug().Str("id", id).Msg("clock stream closed")
}
