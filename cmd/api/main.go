// Package main provides the entrypoint for the Shorecast API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/api"
	"github.com/shorecast/shorecast/internal/api/middleware"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/config"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/marine/openmeteo"
	"github.com/shorecast/shorecast/internal/provider/resilience"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/sewage/beachbuoy"
	"github.com/shorecast/shorecast/internal/sewage/welshwater"
	"github.com/shorecast/shorecast/internal/telemetry"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/tide/admiralty"
	"github.com/shorecast/shorecast/internal/voice"
	"github.com/shorecast/shorecast/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "shorecast-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Shorecast API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.AdmiraltyAPIKey == "" {
		log.Warn().Msg("ADMIRALTY_API_KEY not set - tide lookups will fail and conditions degrade")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTELEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// One resilient client per upstream so breakers and rate budgets stay
	// scoped correctly. All register into the shared health registry.
	upstreams := resilience.NewRegistry()

	admiraltyClient := resilience.NewClient(resilience.ClientConfig{
		Name: admiralty.ProviderName,
		Throttle: resilience.ThrottleConfig{
			RequestsPerMinute: config.TideRequestsPerMinute,
			MaxConcurrent:     config.TideMaxConcurrent,
		},
		Registry: upstreams,
	})

	openmeteoClient := resilience.NewClient(resilience.ClientConfig{
		Name: openmeteo.ProviderName,
		Throttle: resilience.ThrottleConfig{
			RequestsPerMinute: config.WeatherRequestsPerMinute,
			MaxConcurrent:     config.WeatherMaxConcurrent,
		},
		Registry: upstreams,
	})

	welshWaterClient := resilience.NewClient(resilience.ClientConfig{
		Name: welshwater.StrategyName,
		Throttle: resilience.ThrottleConfig{
			RequestsPerMinute: config.SewageRequestsPerMinute,
			MaxConcurrent:     config.SewageMaxConcurrent,
		},
		Registry: upstreams,
	})

	beachbuoyClient := resilience.NewClient(resilience.ClientConfig{
		Name: beachbuoy.StrategyName,
		Throttle: resilience.ThrottleConfig{
			RequestsPerMinute: config.SewageRequestsPerMinute,
			MaxConcurrent:     config.SewageMaxConcurrent,
		},
		Registry: upstreams,
	})

	// Initialize domain services
	tideService := tide.NewService(tide.ServiceConfig{
		Provider: admiralty.NewClient(admiralty.ClientConfig{
			APIKey:     cfg.AdmiraltyAPIKey,
			HTTPClient: admiraltyClient,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("tide service initialized")

	marineService := marine.NewService(marine.ServiceConfig{
		Provider: openmeteo.NewClient(openmeteo.ClientConfig{
			HTTPClient: openmeteoClient,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("marine service initialized")

	sewageService := sewage.NewService(sewage.ServiceConfig{
		Strategies: map[string]sewage.Strategy{
			beach.CompanyWelshWater: welshwater.NewStrategy(welshwater.StrategyConfig{
				HTTPClient: welshWaterClient,
				Logger:     log,
			}),
			beach.CompanySouthernWater: beachbuoy.NewStrategy(beachbuoy.StrategyConfig{
				HTTPClient: beachbuoyClient,
				Logger:     log,
			}),
		},
		Logger: log,
	})
	log.Info().Msg("sewage service initialized")

	registry := beach.NewRegistry()

	conditionsService := conditions.NewService(conditions.ServiceConfig{
		Tides:    tideService,
		Marine:   marineService,
		Sewage:   sewageService,
		Registry: registry,
		Logger:   log,
	})
	log.Info().Msg("conditions service initialized")

	voiceHandler := voice.NewHandler(conditionsService, registry, log)

	// Dashboard prewarm keeps popular beach sets warm between cache cycles
	prewarm := worker.NewPrewarmJob(worker.PrewarmJobConfig{
		Config: worker.PrewarmConfig{
			Enabled:  cfg.PrewarmEnabled,
			Interval: cfg.PrewarmInterval,
		},
		Logger:     log,
		Conditions: conditionsService,
	})
	if err := prewarm.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start prewarm job")
	}
	defer prewarm.Stop()

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		Logger:      log,
		ServiceName: serviceName,
		Metrics:     metrics,
		Registry:    registry,
		Conditions:  conditionsService,
		Tides:       tideService,
		Marine:      marineService,
		Sewage:      sewageService,
		Voice:       voiceHandler,
		Upstreams:   upstreams,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
