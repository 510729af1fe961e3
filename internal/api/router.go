package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/trainwell/vitals-api/docs"
	"github.com/trainwell/vitals-api/internal/api/handler"
	"github.com/trainwell/vitals-api/internal/api/middleware"
	"go.uber.org/zap"
)

type Router struct {
	logger         *zap.Logger
	userHandler    *handler.UserHandler
	analyzeHandler *handler.AnalyzeHandler
	syncHandler    *handler.SyncHandler
}

func NewRouter(
	logger *zap.Logger,
	userHandler *handler.UserHandler,
	analyzeHandler *handler.AnalyzeHandler,
	syncHandler *handler.SyncHandler,
) *Router {
	return &Router{
		logger:         logger,
		userHandler:    userHandler,
		analyzeHandler: analyzeHandler,
		syncHandler:    syncHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Stateless analysis
		r.Route("/analyze", func(r chi.Router) {
			r.Post("/sleep", rt.analyzeHandler.Sleep)
			r.Post("/readiness", rt.analyzeHandler.Readiness)
			r.Post("/recovery", rt.analyzeHandler.Recovery)
			r.Post("/trends", rt.analyzeHandler.Trends)
			r.Post("/anomalies", rt.analyzeHandler.Anomalies)
			r.Post("/insights", rt.analyzeHandler.Insights)
		})

		// Users, vendor sync and stored snapshots
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Post("/{userId}/sync", rt.syncHandler.Sync)
			r.Get("/{userId}/snapshots", rt.syncHandler.ListSnapshots)
		})
	})

	return r
}
