// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"backoffice/config"
	"backoffice/infras/jwt"
	"backoffice/infras/kafka"
	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/infras/redis"
	"backoffice/infras/s3"
	repository3 "backoffice/internal/domains/booking/repository"
	service4 "backoffice/internal/domains/booking/service"
	"backoffice/internal/domains/hotel/repository"
	"backoffice/internal/domains/hotel/service"
	repository4 "backoffice/internal/domains/inventory/repository"
	service3 "backoffice/internal/domains/inventory/service"
	repository2 "backoffice/internal/domains/roomtype/repository"
	service2 "backoffice/internal/domains/roomtype/service"
	"backoffice/internal/handlers/booking"
	"backoffice/internal/handlers/hotel"
	"backoffice/internal/handlers/inventory"
	"backoffice/internal/handlers/roomtype"
	"backoffice/permissions"
	"backoffice/shared/cache"
	"backoffice/transport/http"
	"backoffice/transport/http/middleware"
	"backoffice/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryHotel := repository.New(connection, otelOtel)
	roomType := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceHotel := service.New(repositoryHotel, roomType, configConfig, redisCache, s3S3, otelOtel)
	handler := hotel.New(serviceHotel, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	serviceRoomType := service2.New(roomType, repositoryHotel, repositoryBooking, configConfig, redisCache, otelOtel)
	roomtypeHandler := roomtype.New(serviceRoomType, otelOtel)
	repositoryInventory := repository4.New(connection, otelOtel)
	serviceInventory := service3.New(repositoryInventory, roomType, configConfig, redisCache, otelOtel)
	inventoryHandler := inventory.New(serviceInventory, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service4.New(repositoryBooking, roomType, repositoryHotel, configConfig, redisCache, kafkaClient, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	domainHandlers := router.DomainHandlers{
		Hotel:     handler,
		RoomType:  roomtypeHandler,
		Inventory: inventoryHandler,
		Booking:   bookingHandler,
	}
	jwtJWT := jwt.New(configConfig, otelOtel)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, authRole)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var hotelDomain = wire.NewSet(repository.New, service.New)

var roomTypeDomain = wire.NewSet(repository2.New, service2.New)

var inventoryDomain = wire.NewSet(repository4.New, service3.New)

var bookingDomain = wire.NewSet(repository3.New, service4.New)

var domains = wire.NewSet(
	hotelDomain,
	roomTypeDomain,
	inventoryDomain,
	bookingDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), hotel.New, roomtype.New, inventory.New, booking.New, router.New)
