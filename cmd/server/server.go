// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golazo-app/golazo/internal/api"
	"github.com/golazo-app/golazo/internal/api/calendar"
	"github.com/golazo-app/golazo/internal/api/scores"
	"github.com/golazo-app/golazo/internal/config"
	"github.com/golazo-app/golazo/internal/db"
	"github.com/golazo-app/golazo/internal/metrics"
	"github.com/golazo-app/golazo/internal/occupancy"
	"github.com/golazo-app/golazo/internal/ratelimit"
	"github.com/golazo-app/golazo/internal/scoring"
)

type application struct {
	scoring   *scoring.Service
	occupancy *occupancy.Service
	limiter   *ratelimit.Limiter
}

func newApp(cfg *config.Config, database *db.DB) (*application, error) {
	scoringSvc, err := scoring.NewService(database.Queries, scoring.Weights{
		Attendance: cfg.Scoring.AttendanceWeight,
		Payment:    cfg.Scoring.PaymentWeight,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring service: %w", err)
	}

	occupancySvc, err := occupancy.NewService(database.Queries, occupancy.Policy{
		StartHour: cfg.Calendar.SlotStartHour,
		EndHour:   cfg.Calendar.SlotEndHour,
	}, cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("occupancy service: %w", err)
	}

	limiterCfg := ratelimit.DefaultConfig()
	limiterCfg.Cooldown = cfg.Scoring.RecomputeCooldown
	limiterCfg.MaxPerHour = cfg.Scoring.RecomputeMaxPerHour

	return &application{
		scoring:   scoringSvc,
		occupancy: occupancySvc,
		limiter:   ratelimit.New(limiterCfg),
	}, nil
}

func newServer(cfg *config.Config, app *application) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithRecovery,
		api.WithLogging,
		api.WithRequestID,
	)

	scores.InitHandlers(app.scoring, app.limiter)
	calendar.InitHandlers(app.occupancy)
	registerRoutes(router, cfg)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Score routes
	mux.HandleFunc("GET /api/v1/players/{playerID}/score", scores.HandleGetScore)
	mux.HandleFunc("POST /api/v1/players/{playerID}/score/recompute", scores.HandleRecomputeScore)

	// Calendar routes
	mux.HandleFunc("GET /api/v1/admins/{adminID}/calendar", calendar.HandleWeek)
	mux.HandleFunc("GET /api/v1/admins/{adminID}/calendar/export", calendar.HandleWeekExport)
	mux.HandleFunc("GET /api/v1/admins/{adminID}/free-slots", calendar.HandleFreeSlots)
}
