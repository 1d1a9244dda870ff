package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"tourbook/infras/otel"
	identity "tourbook/internal/domains/identity/service"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/transport/http/response"
)

// Auth resolves the caller before anything else runs on the route.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	identity identity.Identity
	otel     otel.Otel
}

func NewAuthMiddleware(identity identity.Identity, otel otel.Otel) Auth {
	return &authImpl{
		identity: identity,
		otel:     otel,
	}
}

// Auth stores the resolved user in the request context. Any failure is answered
// with 401 and the reason only goes to the log.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		user, err := m.identity.CurrentUser(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			log.Warn().Err(err).Str("path", request.URL.Path).Msg("rejected unauthenticated request")

			scope.TraceError(err)
			scope.End()

			response.WithError(writer, failure.ErrUnauthorized)

			return
		}

		scope.SetAttribute("user.id", user.ID)
		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, user.Email)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
