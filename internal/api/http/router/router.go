package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shopforge/storefront-server/internal/api/http/handler"
	"github.com/shopforge/storefront-server/internal/api/http/middleware"
	"github.com/shopforge/storefront-server/internal/logger"
)

// Router wires HTTP handlers, CORS and request logging into one http.Handler.
type Router struct {
	users          *handler.User
	products       *handler.Product
	categories     *handler.Category
	health         *handler.Health
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance over the entity handlers.
func New(
	users *handler.User,
	products *handler.Product,
	categories *handler.Category,
	health *handler.Health,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		users:          users,
		products:       products,
		categories:     categories,
		health:         health,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Handler builds the route table.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middleware.NewLogging(rt.logger).Handle)

	r.Get("/", handler.Welcome)
	r.Get("/health", rt.health.Check)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", rt.users.Create)
		r.Get("/", rt.users.List)
		r.Get("/{id}", rt.users.Get)
		r.Put("/{id}", rt.users.Update)
		r.Delete("/{id}", rt.users.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", rt.products.Create)
		r.Get("/", rt.products.List)
		r.Get("/{id}", rt.products.Get)
		r.Put("/{id}", rt.products.Update)
		r.Delete("/{id}", rt.products.Delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", rt.categories.Create)
		r.Get("/", rt.categories.List)
		r.Put("/{id}", rt.categories.Update)
		r.Delete("/{id}", rt.categories.Delete)
	})

	return r
}
