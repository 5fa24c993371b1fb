package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog/log"

	"frs/config"
	"frs/infras/otel"
	"frs/shared/constant"
	"frs/shared/failure"
	"frs/transport/http/response"
)

// Auth guards routes that may only be called by clients holding the service API key.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	if cfg.App.APIKey == constant.Empty {
		log.Warn().Msg("No API key configured, /v1 routes are open")
	}

	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey rejects requests without the X-API-Key header with 401 and requests
// carrying a different key with 403. With no key configured every request passes.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		expected := m.cfg.App.APIKey
		if expected == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			err := failure.Unauthorized("Missing API key")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError
			response.WithError(writer, err)

			scope.SetAttribute("http.source", "client")
			scope.TraceError(err)
			scope.End()

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		next.ServeHTTP(writer, request)
	})
}
