//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tourbook/config"
	"tourbook/infras/email"
	"tourbook/infras/jwt"
	"tourbook/infras/kafka"
	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/infras/redis"
	"tourbook/infras/s3"
	bookingHandler "tourbook/internal/handlers/booking"
	"tourbook/shared/cache"
	"tourbook/transport/event"
	"tourbook/transport/http"
	"tourbook/transport/http/middleware"
	"tourbook/transport/http/router"

	bookingRepository "tourbook/internal/domains/booking/repository"
	bookingService "tourbook/internal/domains/booking/service"
	identityService "tourbook/internal/domains/identity/service"
	notificationService "tourbook/internal/domains/notification/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	email.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var identityDomain = wire.NewSet(
	identityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var domains = wire.NewSet(
	identityDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
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

func InitializeWorker() *event.Consumer {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		email.New,
		s3.New,
		notificationService.NewWorker,
		event.New,
	)

	return &event.Consumer{}
}
