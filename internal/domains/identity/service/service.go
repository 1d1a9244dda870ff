package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"tourbook/infras/jwt"
	"tourbook/infras/otel"
	"tourbook/internal/domains/identity/model"
	"tourbook/shared/cache"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
)

type Identity interface {
	// CurrentUser resolves the caller from an Authorization header value. Every
	// failure is reported as failure.ErrUnauthorized; the reason is only logged.
	CurrentUser(ctx context.Context, authorization string) (model.User, error)
}

type serviceImpl struct {
	jwt   jwt.JWT
	cache cache.RedisCache
	otel  otel.Otel
}

func New(jwt jwt.JWT, cache cache.RedisCache, otel otel.Otel) Identity {
	return &serviceImpl{
		jwt:   jwt,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CurrentUser(ctx context.Context, authorization string) (user model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".identity.CurrentUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := jwt.ExtractTokenFromHeader(authorization)
	if err != nil {
		log.Debug().Err(err).Msg("missing or malformed authorization header")

		return user, failure.ErrUnauthorized
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		log.Warn().Err(err).Msg("rejected access token")

		return user, failure.ErrUnauthorized
	}

	if claims.ID != "" {
		revoked, err := s.cache.Exists(ctx, constant.RevokedTokenKeyPrefix+claims.ID)
		if err != nil {
			log.Error().Err(err).Str("token_id", claims.ID).Msg("failed to check token revocation, rejecting")

			return user, failure.ErrUnauthorized
		}

		if revoked {
			log.Warn().Str("token_id", claims.ID).Str("user_id", claims.Subject).Msg("revoked access token")

			return user, failure.ErrUnauthorized
		}
	}

	return model.User{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}
