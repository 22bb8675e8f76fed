package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/cogni-tracker/docs"
	"github.com/blaisecz/cogni-tracker/internal/api/handler"
	"github.com/blaisecz/cogni-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	User      *handler.UserHandler
	EMA       *handler.EMAHandler
	Session   *handler.SessionHandler
	Analytics *handler.AnalyticsHandler
	Coach     *handler.CoachHandler
	Export    *handler.ExportHandler
}

type Router struct {
	handlers       Handlers
	log            *zap.Logger
	metricsEnabled bool
}

func NewRouter(handlers Handlers, log *zap.Logger, metricsEnabled bool) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		handlers:       handlers,
		log:            log,
		metricsEnabled: metricsEnabled,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.log))
	if rt.metricsEnabled {
		r.Use(middleware.Metrics)
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if rt.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := rt.handlers

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)

				r.Route("/emas", func(r chi.Router) {
					r.Post("/", h.EMA.Create)
					r.Get("/", h.EMA.List)
					r.Get("/latest", h.EMA.Latest)
				})

				r.Route("/sessions", func(r chi.Router) {
					r.Post("/", h.Session.Create)
					r.Get("/", h.Session.List)
				})

				r.Get("/analytics", h.Analytics.Summary)
				r.Get("/profile", h.Analytics.Profile)
				r.Get("/reports", h.Analytics.Report)

				r.Post("/coach", h.Coach.Ask)
				r.Post("/coach/feedback", h.Coach.Feedback)

				r.Get("/export", h.Export.Export)
				r.Post("/import", h.Export.Import)
			})
		})
	})

	return r
}
