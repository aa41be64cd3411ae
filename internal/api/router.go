package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/point-ledger/internal/api/handlers"
	"github.com/baharkarakas/point-ledger/internal/config"
	"github.com/baharkarakas/point-ledger/internal/metrics"
	"github.com/baharkarakas/point-ledger/internal/middleware"
)

func NewRouter(cfg config.Config, log *slog.Logger, ps handlers.PointService) http.Handler {
	ph := handlers.NewPointHandler(ps, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.Log(log), middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/point/{id}", func(r chi.Router) {
		r.Get("/", ph.Point)
		r.Get("/histories", ph.History)
		r.Patch("/charge", ph.Charge)
		r.Patch("/use", ph.Use)
	})

	return r
}
