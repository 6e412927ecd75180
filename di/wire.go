//go:build wireinject
// +build wireinject

package di

import (
	"backoffice/config"
	"backoffice/infras/jwt"
	"backoffice/infras/kafka"
	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/infras/redis"
	"backoffice/infras/s3"
	"backoffice/permissions"
	"backoffice/shared/cache"
	"backoffice/transport/http"
	"backoffice/transport/http/middleware"
	"backoffice/transport/http/router"

	bookingRepository "backoffice/internal/domains/booking/repository"
	bookingService "backoffice/internal/domains/booking/service"
	hotelRepository "backoffice/internal/domains/hotel/repository"
	hotelService "backoffice/internal/domains/hotel/service"
	inventoryRepository "backoffice/internal/domains/inventory/repository"
	inventoryService "backoffice/internal/domains/inventory/service"
	roomTypeRepository "backoffice/internal/domains/roomtype/repository"
	roomTypeService "backoffice/internal/domains/roomtype/service"

	bookingHandler "backoffice/internal/handlers/booking"
	hotelHandler "backoffice/internal/handlers/hotel"
	inventoryHandler "backoffice/internal/handlers/inventory"
	roomTypeHandler "backoffice/internal/handlers/roomtype"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomTypeDomain,
	inventoryDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomTypeHandler.New,
	inventoryHandler.New,
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
