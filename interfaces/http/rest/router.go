package rest

import (
	"net/http"

	"catalog-backend/application/services"
	"catalog-backend/interfaces/http/rest/handlers"
	"catalog-backend/interfaces/http/rest/middleware"
	"catalog-backend/pkg/common"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	products *services.ProductService
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(products *services.ProductService, logger *zap.Logger) *Router {
	return &Router{
		products: products,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS preflights are answered here, before any routing happens
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	productHandler := handlers.NewProductHandler(rt.products, rt.logger)
	router.Route("/products", func(r chi.Router) {
		r.Get("/available", productHandler.ListAvailable)
		r.Post("/", productHandler.Create)
		r.Get("/{productID}", productHandler.Get)
		r.Delete("/{productID}", productHandler.Delete)
	})

	// Unmatched routes answer with the canonical 404 body
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondNotFound(w)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
