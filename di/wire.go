//go:build wireinject
// +build wireinject

package di

import (
	"frs/config"
	"frs/infras/otel"
	"frs/infras/redis"
	"frs/infras/s3"
	"frs/shared/cache"
	"frs/transport/http"
	"frs/transport/http/middleware"
	"frs/transport/http/router"

	"github.com/google/wire"

	photoLoader "frs/internal/domains/photo/loader"
	photoService "frs/internal/domains/photo/service"
	photoHandler "frs/internal/handlers/photo"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var photoDomain = wire.NewSet(
	photoLoader.NewFromConfig,
	photoService.New,
)

var domains = wire.NewSet(
	photoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	photoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
