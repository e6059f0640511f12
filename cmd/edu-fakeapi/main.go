package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edu-platform/educlient/internal/fakeapi"
	"github.com/edu-platform/educlient/shared/config"
	"github.com/edu-platform/educlient/shared/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	devJwtSecret    = "edu-fakeapi-dev-secret"
)

func main() {
	var (
		configFolder string
		seed         bool
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.BoolVar(&seed, "seed", true, "start with sample data")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	secret := cfg.JwtSecret()
	if secret == "" {
		logger.Log.Warn("jwt_secret is not set, using the development secret")
		secret = devJwtSecret
	}

	srv := fakeapi.New(fakeapi.Options{
		JwtSecret:      secret,
		TokenTTL:       cfg.Public.FakeAPI.TokenTTL,
		AllowedOrigins: cfg.Public.FakeAPI.AllowedOrigins,
		Seed:           seed,
		FilesDir:       cfg.Public.FakeAPI.FilesDir,
		PublicRate:     cfg.Public.FakeAPI.PublicRate,
	})
	server := configureServer(cfg.Public.FakeAPI, srv.Handler())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("starting fake api", "addr", server.Addr, "seed", seed)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown failed", "error", err)
	}
	logger.Log.Info("fake api stopped")
}

func configureServer(cfg config.FakeAPI, handler http.Handler) *http.Server {
	addr := cfg.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
