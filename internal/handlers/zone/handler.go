package zone

import (
	"net/http"
	"zonecast/infras/otel"
	"zonecast/internal/domains/clock"
	"zonecast/internal/domains/converter/model/dto"
	"zonecast/internal/domains/converter/service"
	"zonecast/shared"
	"zonecast/shared/constant"
	"zonecast/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const queryParamZones = "zones"

type Handler struct {
	service service.Converter
	clock   *clock.Source
	otel    otel.Otel
}

func New(service service.Converter, clock *clock.Source, otel otel.Otel) Handler {
	return Handler{
		service: service,
		clock:   clock,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/zones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetZones)
	})
}

// GetZones lists the zone catalog with each zone's current reading.
// @Summary List time zones
// @Description Retrieve the catalog in display order, with the current offset, abbreviation and time of each zone.
// @Tags Zone
// @Produce json
// @Param zones query string false "Comma separated zones to include, in the order given"
// @Success 200 {object} dto.GetZonesResponse
// @Router /v1/zones [get]
func (handler *Handler) GetZones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZones")
	defer scope.End()

	zones := handler.service.Catalog()
	if filter := shared.SplitList(r.URL.Query().Get(queryParamZones)); len(filter) > 0 {
		zones = dto.ToZoneIDs(filter)
	}

	times := handler.service.CurrentTimes(ctx, handler.clock.Now(), zones)

	res := dto.GetZonesResponse{}
	res.FromModels(times)

	scope.AddEvent("Zones retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
