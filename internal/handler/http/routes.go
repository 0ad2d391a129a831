package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(h.withSession, h.withCORS(), h.withBodyDecoding)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/auth", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createProduct)
		r.Post("/shipping", h.createShippingAddress)
		r.Post("/notify", h.notify)

		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrRouteNotFound.Error(), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
}
