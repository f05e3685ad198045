package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	apihttp "github.com/climatefin/riskcore/internal/api/http"
	"github.com/climatefin/riskcore/internal/config"
	"github.com/climatefin/riskcore/internal/engine"
	"github.com/climatefin/riskcore/internal/logging"
	"github.com/climatefin/riskcore/internal/observability"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/session"
	"github.com/climatefin/riskcore/internal/tracing"
	"github.com/climatefin/riskcore/internal/weather"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[riskcore] fatal error: %v", err)
	}
}

func run() (err error) {
	logger := logging.New(logging.Config{
		AddSource: true,
	})
	slog.SetDefault(logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("PANIC", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	logger.Info("booting api", "env", cfg.Server.Env, "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var traceProvider *tracing.Provider
	if cfg.Features.EnableTracing {
		traceProvider, err = tracing.Setup(tracing.Config{
			ServiceName:    "riskcore-api",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Server.Env,
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
			SamplingRate:   1.0,
			Enabled:        true,
			Logger:         logger,
		})
		if err != nil {
			logger.Warn("failed to set up tracing", "error", err)
		} else {
			defer func() {
				if shutdownErr := traceProvider.Shutdown(ctx); shutdownErr != nil {
					logger.Warn("failed to shut down tracing", "error", shutdownErr)
				}
			}()
			logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint)
		}
	} else {
		logger.Info("tracing disabled")
	}

	var metrics *observability.MetricsHandler
	if cfg.Features.EnableMetrics {
		metrics = observability.NewMetricsHandler()
		logger.Info("metrics enabled")
	} else {
		logger.Info("metrics disabled")
	}

	weatherClient := weather.New(weather.Config{
		BaseURL:      cfg.Weather.BaseURL,
		FetchTimeout: cfg.Weather.FetchTimeout,
	})

	sessions := session.NewStore(
		session.WithTTL(cfg.Session.TTL),
		session.WithReapInterval(cfg.Session.ReapInterval),
	)
	defer sessions.Close()

	riskEngine := engine.New(engine.Config{
		Registry:      registry.Load(),
		WeatherClient: weatherClient,
		Sessions:      sessions,
		Metrics:       metrics,
	})

	router := apihttp.NewRouter(apihttp.RouterConfig{
		Engine:         riskEngine,
		Logger:         logger,
		Metrics:        metrics,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	mux := http.NewServeMux()
	mux.Handle("/", router)
	if metrics != nil {
		mux.Handle("/metrics", metrics.Handler())
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting api server", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
