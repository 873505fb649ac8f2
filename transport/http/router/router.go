package router

import (
	"zonecast/internal/handlers/conversion"
	"zonecast/internal/handlers/health"
	"zonecast/internal/handlers/session"
	"zonecast/internal/handlers/zone"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health     health.Handler
	Zone       zone.Handler
	Conversion conversion.Handler
	Session    session.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Zone.Router(routerGroup)
		r.DomainHandlers.Conversion.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
