// Package api provides the HTTP API for Shorecast.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/api/handler"
	"github.com/shorecast/shorecast/internal/api/middleware"
	"github.com/shorecast/shorecast/internal/api/models"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/provider/resilience"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/voice"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	Registry   *beach.Registry
	Conditions *conditions.Service
	Tides      *tide.Service
	Marine     *marine.Service
	Sewage     *sewage.Service
	Voice      *voice.Handler
	Upstreams  *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "shorecast-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	conditionsHandler := handler.NewConditionsHandler(cfg.Conditions, cfg.Registry)
	voiceHandler := handler.NewVoiceHandler(cfg.Voice)
	cacheHandler := handler.NewCacheHandler(cfg.Tides, cfg.Marine, cfg.Sewage, cfg.Conditions)
	debugHandler := handler.NewDebugHandler(cfg.Registry, cfg.Tides, cfg.Marine, cfg.Sewage)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Upstreams, func() []models.CacheStatus {
		tides := cfg.Tides.CacheStats()
		marineStats := cfg.Marine.CacheStats()
		sewageStats := cfg.Sewage.CacheStats()
		dashboards := cfg.Conditions.CacheStats()
		return []models.CacheStatus{
			{Name: "tides", Entries: tides.Entries, FreshEntries: tides.FreshEntries},
			{Name: "marine", Entries: marineStats.Entries, FreshEntries: marineStats.FreshEntries},
			{Name: "sewage", Entries: sewageStats.Entries, FreshEntries: sewageStats.FreshEntries},
			{Name: "dashboard", Entries: dashboards.Entries, FreshEntries: dashboards.FreshEntries},
		}
	})

	// Rate limit middleware per endpoint category
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min
	debugRateLimit := middleware.RateLimitByIP(middleware.DebugRateLimit)         // 10 req/min

	r.Get("/", conditionsHandler.Root)

	r.With(standardRateLimit).Get("/locations", conditionsHandler.ListLocations)

	// Conditions endpoints fan out to the tide, marine and sewage
	// upstreams, so they carry the stricter limit.
	r.Route("/conditions", func(r chi.Router) {
		r.Use(expensiveRateLimit)
		r.Get("/", conditionsHandler.GetConditions)
		r.Get("/{slug}", conditionsHandler.GetConditions)
	})

	r.With(expensiveRateLimit).Get("/dashboard", conditionsHandler.Dashboard)

	r.With(standardRateLimit).Post("/alexa", voiceHandler.Alexa)

	r.Route("/cache", func(r chi.Router) {
		r.Use(standardRateLimit)
		r.Get("/stats", cacheHandler.Stats)
		r.Post("/clear", cacheHandler.Clear)
	})

	r.Route("/debug", func(r chi.Router) {
		r.Use(debugRateLimit)
		r.Get("/tides/{slug}", debugHandler.Tides)
		r.Get("/marine/{slug}", debugHandler.Marine)
		r.Get("/sewage/{slug}", debugHandler.Sewage)
	})

	r.Route("/ops", func(r chi.Router) {
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/status", opsHandler.SystemStatus)
	})

	return r
}
