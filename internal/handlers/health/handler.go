package health

import (
	"net/http"
	"time"
	"zonecast/config"
	"zonecast/internal/domains/clock"
	"zonecast/internal/domains/converter/service"
	"zonecast/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Response struct {
	Status string    `json:"status"`
	App    string    `json:"app"`
	Zones  int       `json:"zones"`
	Time   time.Time `json:"time"`
}

type Handler struct {
	service service.Converter
	clock   *clock.Source
	config  *config.Config
}

func New(service service.Converter, clock *clock.Source, config *config.Config) Handler {
	return Handler{
		service: service,
		clock:   clock,
		config:  config,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports that the server is up and how many zones it serves.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Response{
		Status: "ok",
		App:    h.config.App.Name,
		Zones:  len(h.service.Catalog()),
		Time:   h.clock.Now().UTC().Truncate(time.Second),
	})
}
