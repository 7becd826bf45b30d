package router

import (
	"deskbooker/internal/handlers/desk"
	"deskbooker/internal/handlers/deskbooking"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Desk        desk.Handler
	DeskBooking deskbooking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Desk.Router(routerGroup)
		r.DomainHandlers.DeskBooking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
