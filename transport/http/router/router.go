package router

import (
	"github.com/go-chi/chi/v5"

	"mesa/internal/handlers/admin"
	"mesa/internal/handlers/auth"
	"mesa/internal/handlers/employee"
	"mesa/internal/handlers/equipment"
	"mesa/internal/handlers/health"
	"mesa/internal/handlers/menu"
	"mesa/internal/handlers/oilchange"
	"mesa/internal/handlers/reservation"
	"mesa/internal/handlers/restaurant"
	"mesa/internal/handlers/templog"
	"mesa/transport/http/middleware"
)

type DomainHandlers struct {
	Health         health.Handler
	Auth           auth.Handler
	Restaurant     restaurant.Handler
	Reservation    reservation.Handler
	TemperatureLog templog.Handler
	Equipment      equipment.Handler
	OilChange      oilchange.Handler
	Dish           menu.Handler
	Employee       employee.Handler
	Admin          admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
	Tenant         middleware.Tenant
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthRole.APIKey)
			protected.Use(r.AuthRole.Auth)
			protected.Use(r.AuthRole.RBAC)

			// register, login and refresh are listed as skipped in the
			// permissions table, so they pass through untouched.
			r.DomainHandlers.Auth.Router(protected)

			protected.Route("/restaurants", func(restaurants chi.Router) {
				restaurants.Get("/", r.DomainHandlers.Restaurant.GetRestaurants)

				restaurants.Route("/{restaurantId}", func(scoped chi.Router) {
					scoped.Use(r.Tenant.RestaurantScope)

					r.DomainHandlers.Restaurant.Router(scoped)
					r.DomainHandlers.Reservation.Router(scoped)
					r.DomainHandlers.TemperatureLog.Router(scoped)
					r.DomainHandlers.Equipment.Router(scoped)
					r.DomainHandlers.OilChange.Router(scoped)
					r.DomainHandlers.Dish.Router(scoped)
					r.DomainHandlers.Employee.Router(scoped)
				})
			})

			r.DomainHandlers.Admin.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole, tenant middleware.Tenant) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
		Tenant:         tenant,
	}
}
