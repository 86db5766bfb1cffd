package router

import (
	"github.com/go-chi/chi/v5"

	"rental/internal/handlers/address"
	"rental/internal/handlers/auth"
	"rental/internal/handlers/booking"
	"rental/internal/handlers/card"
	"rental/internal/handlers/property"
	"rental/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Property property.Handler
	Booking  booking.Handler
	User     user.Handler
	Address  address.Handler
	Card     card.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Address.Router(routerGroup)
		r.DomainHandlers.Card.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
