package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sortrush/sortrush/go/internal/gameconfig"
	"github.com/sortrush/sortrush/go/internal/gateway"
	"github.com/sortrush/sortrush/go/internal/runner"
	"github.com/sortrush/sortrush/go/internal/session"
	"github.com/sortrush/sortrush/go/web"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := gameconfig.NewConfigFromEnv()
	settings, err := gameconfig.LoadSettings(cfg.SettingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game settings")
	}

	log.Info().
		Str("port", cfg.Port).
		Int("total_rounds", settings.TotalRounds).
		Int("round_seconds", settings.RoundSeconds).
		Msg("starting sortrush gateway")

	registry := session.NewRegistry()
	gatewayService := gateway.NewService(settings, registry, gateway.DefaultConnectionConfig())
	tickRunner := runner.New(registry, clockwork.NewRealClock(), time.Second)

	// Setup HTTP server
	mux := http.NewServeMux()
	gatewayService.RegisterRoutes(mux)
	mux.Handle("/", http.FileServer(web.StaticFS()))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		connections, sessions := gatewayService.Stats()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"service":"sortrush-gateway","version":"1.0.0","connections":%d,"sessions":%d}`,
			connections, sessions)
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      cors.AllowAll().Handler(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start gateway service (connection manager broadcast loop)
	go gatewayService.Start(ctx)

	// Start the tick runner driving every running session at 1 Hz
	go func() {
		if err := tickRunner.Run(ctx); err != nil {
			log.Error().Err(err).Msg("tick runner failed")
		}
	}()

	// Start HTTP server
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	cancel()

	log.Info().Msg("sortrush gateway shutdown complete")
}
