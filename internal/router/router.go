package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/config"
	"github.com/washbay-pos/api/internal/handler"
	mw "github.com/washbay-pos/api/internal/middleware"
	"github.com/washbay-pos/api/internal/refdata"
	"github.com/washbay-pos/api/internal/service"
	"github.com/washbay-pos/api/internal/session"
	"github.com/washbay-pos/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, cache *refdata.Cache, sessions *session.Store, submit *service.SubmitService, hub *ws.Hub, log *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:4173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/stages/{stage}/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, log, w, r)
	})

	// Protected routes (require a terminal JWT)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		catalogHandler := handler.NewCatalogHandler(cache)
		r.Route("/products", catalogHandler.RegisterRoutes)

		clientHandler := handler.NewClientHandler(cache)
		r.Route("/clients", clientHandler.RegisterRoutes)

		sessionHandler := handler.NewSessionHandler(sessions, cache, submit, log)
		r.Route("/sessions", sessionHandler.RegisterRoutes)
	})

	return r
}
