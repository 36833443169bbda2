//go:build wireinject
// +build wireinject

package di

import (
	"easybooking/config"
	"easybooking/infras/jwt"
	"easybooking/infras/kafka"
	"easybooking/infras/otel"
	"easybooking/infras/postgres"
	"easybooking/infras/redis"
	reservationEvent "easybooking/internal/domains/reservation/event"
	reservationRepository "easybooking/internal/domains/reservation/repository"
	reservationService "easybooking/internal/domains/reservation/service"
	roomRepository "easybooking/internal/domains/room/repository"
	roomService "easybooking/internal/domains/room/service"
	reservationHandler "easybooking/internal/handlers/reservation"
	roomHandler "easybooking/internal/handlers/room"
	"easybooking/permissions"
	"easybooking/shared/cache"
	"easybooking/shared/metrics"
	"easybooking/transport/cron"
	"easybooking/transport/http"
	"easybooking/transport/http/middleware"
	"easybooking/transport/http/router"

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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationEvent.NewDispatcher,
	wire.Bind(new(reservationEvent.Publisher), new(*reservationEvent.Dispatcher)),
	reservationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		cron.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}
