package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the handlers mounted under /api.
type Handlers struct {
	Users     *UserHandler
	Contacts  *ContactHandler
	Addresses *AddressHandler
}

// Routes registers the /api route table on r. authenticate guards every
// route except registration and login.
func Routes(h Handlers, authenticate func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		// Public
		r.Post("/users", h.Users.Register)
		r.Post("/users/login", h.Users.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users/current", h.Users.Current)
			r.Patch("/users/current", h.Users.Update)
			r.Delete("/users/logout", h.Users.Logout)

			r.Post("/contacts", h.Contacts.Create)
			r.Get("/contacts", h.Contacts.Search)
			r.Route("/contacts/{"+ContactIDParam+"}", func(r chi.Router) {
				r.Get("/", h.Contacts.Get)
				r.Put("/", h.Contacts.Update)
				r.Delete("/", h.Contacts.Delete)

				r.Post("/addresses", h.Addresses.Create)
				r.Get("/addresses", h.Addresses.List)
				r.Get("/addresses/{"+AddressIDParam+"}", h.Addresses.Get)
				r.Put("/addresses/{"+AddressIDParam+"}", h.Addresses.Update)
				r.Delete("/addresses/{"+AddressIDParam+"}", h.Addresses.Delete)
			})
		})
	}
}
