//go:build wireinject
// +build wireinject

package di

import (
	"agendador/config"
	"agendador/infras/jwt"
	"agendador/infras/kafka"
	"agendador/infras/otel"
	"agendador/infras/postgres"
	"agendador/infras/rabbitmq"
	"agendador/infras/redis"
	"agendador/infras/s3"
	"agendador/internal/domains/notification/sink"
	adminHandler "agendador/internal/handlers/admin"
	healthHandler "agendador/internal/handlers/health"
	reservationHandler "agendador/internal/handlers/reservation"
	roomHandler "agendador/internal/handlers/room"
	"agendador/permissions"
	"agendador/shared/cache"
	"agendador/shared/timezone"
	"agendador/transport/http"
	"agendador/transport/http/middleware"
	"agendador/transport/http/router"

	authService "agendador/internal/domains/auth/service"
	reportService "agendador/internal/domains/report/service"
	reservationRepository "agendador/internal/domains/reservation/repository"
	reservationService "agendador/internal/domains/reservation/service"
	roomRepository "agendador/internal/domains/room/repository"
	roomService "agendador/internal/domains/room/service"
	userRepository "agendador/internal/domains/user/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	rabbitmq.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
	provideHub,
)

var masterData = wire.NewSet(
	roomRepository.New,
	roomService.New,
	userRepository.New,
)

var notificationDomain = wire.NewSet(
	sink.New,
	provideDispatcher,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	masterData,
	notificationDomain,
	reservationDomain,
	reportService.New,
	authService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	reservationHandler.New,
	roomHandler.New,
	adminHandler.New,
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

// InitializeAuth builds only what cmd/token needs.
func InitializeAuth() authService.Auth {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		jwt.New,
		userRepository.New,
		authService.New,
	)

	return nil
}
