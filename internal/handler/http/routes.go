package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openshelf/catalog/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/books", h.listBooks)
		r.Get("/books/{book_id}", h.getBook)
	})

	// catalog writes, guarded by the static API key
	router.Group(func(r chi.Router) {
		r.Use(h.requireAPIKey)

		r.Post("/books", h.createBook)
		r.Put("/books/{book_id}", h.updateBook)
		r.Delete("/books/{book_id}", h.deleteBook)
	})

	// reservation endpoints, guarded by the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/books/{book_id}/reservations", h.createReservation)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/books/{book_id}/reservations", h.listReservations)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Resource not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}
