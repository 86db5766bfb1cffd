//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"rental/config"
	"rental/infras/jwt"
	"rental/infras/kafka"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/infras/redis"
	"rental/infras/s3"
	"rental/permissions"
	"rental/shared/cache"
	"rental/transport/http"
	"rental/transport/http/middleware"
	"rental/transport/http/router"

	addressRepository "rental/internal/domains/address/repository"
	addressService "rental/internal/domains/address/service"
	authService "rental/internal/domains/auth/service"
	bookingRepository "rental/internal/domains/booking/repository"
	bookingService "rental/internal/domains/booking/service"
	cardRepository "rental/internal/domains/card/repository"
	cardService "rental/internal/domains/card/service"
	propertyRepository "rental/internal/domains/property/repository"
	propertyService "rental/internal/domains/property/service"
	userRepository "rental/internal/domains/user/repository"
	userService "rental/internal/domains/user/service"

	addressHandler "rental/internal/handlers/address"
	authHandler "rental/internal/handlers/auth"
	bookingHandler "rental/internal/handlers/booking"
	cardHandler "rental/internal/handlers/card"
	propertyHandler "rental/internal/handlers/property"
	userHandler "rental/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	propertyRepository.New,
	bookingRepository.New,
	addressRepository.New,
	cardRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	propertyService.New,
	bookingService.New,
	userService.New,
	addressService.New,
	cardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	propertyHandler.New,
	bookingHandler.New,
	userHandler.New,
	addressHandler.New,
	cardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
