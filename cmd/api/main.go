package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/setup"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(cfg.LogLevel, true)
	appLogger := log.Logger

	if envErr != nil {
		appLogger.Warn().Msg("No .env file found")
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Unable to load dependencies")
	}
	defer deps.Close()

	if deps.APIConfig.GenerateCache {
		if err := deps.Cache.RunSync(ctx); err != nil {
			appLogger.Error().Err(err).Msg("Startup cache generation failed")
		}
	}

	deps.Start(ctx)

	addr := deps.APIConfig.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           setup.NewHTTPHandler(deps),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info().
			Str("address", addr).
			Bool("protected_mode", deps.APIConfig.ProtectedMode).
			Bool("rate_limit", deps.APIConfig.RateLimit.Enabled).
			Msg("Starting VVQuest API")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Server failed")
		}
	case <-ctx.Done():
		appLogger.Info().Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
}
