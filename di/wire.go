//go:build wireinject
// +build wireinject

package di

import (
	"zonecast/config"
	"zonecast/infras/otel"
	"zonecast/infras/redis"
	"zonecast/internal/domains/clock"
	"zonecast/internal/handlers/conversion"
	"zonecast/internal/handlers/health"
	"zonecast/internal/handlers/session"
	"zonecast/internal/handlers/zone"
	"zonecast/shared/cache"
	"zonecast/shared/timezone"
	"zonecast/transport/http"
	"zonecast/transport/http/middleware"
	"zonecast/transport/http/router"

	converterResolver "zonecast/internal/domains/converter/resolver"
	converterService "zonecast/internal/domains/converter/service"

	sessionRepository "zonecast/internal/domains/session/repository"
	sessionService "zonecast/internal/domains/session/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewCatalogFromConfig,
	timezone.NewProvider,
	clock.NewSource,
)

var converterDomain = wire.NewSet(
	converterResolver.New,
	converterService.New,
	converterService.NewCached,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var domains = wire.NewSet(
	converterDomain,
	sessionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	health.New,
	zone.New,
	conversion.New,
	session.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
