package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/acronyms", h.listAcronyms)
			r.Get("/acronyms/{acronymID}/user", h.acronymUser)
			r.Get("/acronyms/{acronymID}/categories", h.acronymCategories)
			r.Get("/categories", h.listCategories)
			r.Get("/users", h.listUsers)
			r.Post("/users/login", h.login)
			r.Post("/users/siwa", h.signInWithApple)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/acronyms", h.createAcronym)
			r.Put("/acronyms/{acronymID}", h.updateAcronym)
			r.Delete("/acronyms/{acronymID}", h.deleteAcronym)
			r.Post("/acronyms/{acronymID}/categories/{categoryID}", h.attachCategory)
			r.Delete("/acronyms/{acronymID}/categories/{categoryID}", h.detachCategory)
			r.Post("/categories", h.createCategory)
			r.Post("/users", h.createUser)
		})
	})

	router.NotFound(notFound)
	// the TIL API answers a known path with an unsupported method with 404
	router.MethodNotAllowed(notFound)

	return router
}
