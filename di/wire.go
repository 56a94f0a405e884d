//go:build wireinject
// +build wireinject

package di

import (
	"mesa/config"
	"mesa/infras/jwt"
	"mesa/infras/kafka"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/infras/redis"
	"mesa/infras/s3"
	"mesa/internal/events"
	"mesa/internal/sweep"
	"mesa/permissions"
	"mesa/shared/cache"
	"mesa/transport/http"
	"mesa/transport/http/middleware"
	"mesa/transport/http/router"

	"github.com/google/wire"

	authService "mesa/internal/domains/auth/service"
	documentRepository "mesa/internal/domains/document/repository"
	documentService "mesa/internal/domains/document/service"
	equipmentRepository "mesa/internal/domains/equipment/repository"
	equipmentService "mesa/internal/domains/equipment/service"
	menuRepository "mesa/internal/domains/menu/repository"
	menuService "mesa/internal/domains/menu/service"
	oilchangeRepository "mesa/internal/domains/oilchange/repository"
	oilchangeService "mesa/internal/domains/oilchange/service"
	reservationRepository "mesa/internal/domains/reservation/repository"
	reservationService "mesa/internal/domains/reservation/service"
	restaurantRepository "mesa/internal/domains/restaurant/repository"
	restaurantService "mesa/internal/domains/restaurant/service"
	subscriptionRepository "mesa/internal/domains/subscription/repository"
	subscriptionService "mesa/internal/domains/subscription/service"
	templogRepository "mesa/internal/domains/templog/repository"
	templogService "mesa/internal/domains/templog/service"
	userRepository "mesa/internal/domains/user/repository"
	userService "mesa/internal/domains/user/service"

	adminHandler "mesa/internal/handlers/admin"
	authHandler "mesa/internal/handlers/auth"
	employeeHandler "mesa/internal/handlers/employee"
	equipmentHandler "mesa/internal/handlers/equipment"
	healthHandler "mesa/internal/handlers/health"
	menuHandler "mesa/internal/handlers/menu"
	oilchangeHandler "mesa/internal/handlers/oilchange"
	reservationHandler "mesa/internal/handlers/reservation"
	restaurantHandler "mesa/internal/handlers/restaurant"
	templogHandler "mesa/internal/handlers/templog"
)

// App bundles the long-running pieces of the service so a single injector
// can hand them to main.
type App struct {
	HTTP    *http.HTTP
	Sweeper *sweep.Sweeper
}

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewTenantMiddleware,
	wire.Bind(new(middleware.MembershipChecker), new(userService.User)),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var templogDomain = wire.NewSet(
	templogRepository.New,
	templogService.New,
)

var equipmentDomain = wire.NewSet(
	equipmentRepository.New,
	equipmentService.New,
)

var oilchangeDomain = wire.NewSet(
	oilchangeRepository.New,
	oilchangeService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var subscriptionDomain = wire.NewSet(
	subscriptionRepository.New,
	subscriptionService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	restaurantDomain,
	reservationDomain,
	templogDomain,
	equipmentDomain,
	oilchangeDomain,
	menuDomain,
	subscriptionDomain,
	documentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	restaurantHandler.New,
	reservationHandler.New,
	templogHandler.New,
	equipmentHandler.New,
	oilchangeHandler.New,
	menuHandler.New,
	employeeHandler.New,
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

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		sweep.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
