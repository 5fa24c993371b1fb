package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"frs/config"
	"frs/internal/handlers/photo"
	"frs/transport/http/middleware"
)

type DomainHandlers struct {
	Photo photo.Handler
}

type Router struct {
	Config         *config.Config
	Middleware     middleware.AppMiddleware
	Auth           middleware.Auth
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.Tracing)

	if corsCfg := r.Config.App.CORS; corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())
		routerGroup.Use(r.Auth.APIKey)

		r.DomainHandlers.Photo.Router(routerGroup)
	})
}

func New(cfg *config.Config, mw middleware.AppMiddleware, auth middleware.Auth, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		Middleware:     mw,
		Auth:           auth,
		DomainHandlers: domainHandlers,
	}
}
