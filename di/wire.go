//go:build wireinject
// +build wireinject

package di

import (
	"deskbooker/config"
	"deskbooker/shared/cache"
	"deskbooker/transport/http"
	"deskbooker/transport/http/middleware"
	"deskbooker/transport/http/router"

	deskRepository "deskbooker/internal/domains/desk/repository"
	deskService "deskbooker/internal/domains/desk/service"
	deskHandler "deskbooker/internal/handlers/desk"

	deskBookingProcessor "deskbooker/internal/domains/deskbooking/processor"
	deskBookingRepository "deskbooker/internal/domains/deskbooking/repository"
	deskBookingService "deskbooker/internal/domains/deskbooking/service"
	deskBookingHandler "deskbooker/internal/handlers/deskbooking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideOtel,
	provideRedis,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var deskDomain = wire.NewSet(
	deskRepository.New,
	deskService.New,
)

var deskBookingDomain = wire.NewSet(
	deskBookingRepository.New,
	deskBookingService.New,
	deskBookingProcessor.New,
	wire.Bind(new(deskBookingProcessor.DeskAvailability), new(deskRepository.Desk)),
	wire.Bind(new(deskBookingProcessor.BookingStore), new(deskBookingRepository.DeskBooking)),
)

var domains = wire.NewSet(
	deskDomain,
	deskBookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	deskHandler.New,
	deskBookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}
