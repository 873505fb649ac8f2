package conversion

import (
	"net/http"
	"zonecast/infras/otel"
	"zonecast/internal/domains/converter/model/dto"
	"zonecast/internal/domains/converter/service"
	"zonecast/shared/constant"
	"zonecast/shared/validator"
	"zonecast/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CachedConverter
	otel    otel.Otel
}

func New(service service.CachedConverter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/conversions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Convert)
	})
}

// Convert runs one stateless conversion pass.
// @Summary Convert a date and time
// @Description Convert a civil date and time in the source zone into every target zone, in request order.
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/conversions [post]
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	selection, targets, err := req.ToModel()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse source date and time")

		response.WithError(w, err)

		return
	}

	conversion, err := handler.service.Convert(ctx, selection, targets)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert")

		response.WithError(w, err)

		return
	}

	res := dto.ConversionResponse{}
	res.FromModel(conversion)

	scope.AddEvent("Conversion completed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
