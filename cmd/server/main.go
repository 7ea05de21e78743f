package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/config"
	"github.com/mmynk/utilityportal/internal/metrics"
	"github.com/mmynk/utilityportal/internal/seed"
	"github.com/mmynk/utilityportal/internal/service"
	"github.com/mmynk/utilityportal/internal/storage/sqlite"
	"github.com/mmynk/utilityportal/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := logging.Setup(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	authenticator, err := auth.NewPasswordAuthenticator(store, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	if len(args) > 0 && args[0] == "seed" {
		res, err := seed.Run(ctx, store, authenticator, logger)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Info("Seed complete", "user_id", res.UserID, "created", res.Created, "bills", res.Bills, "readings", res.Readings)
		return nil
	}

	tokens, err := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	router := service.NewRouter(service.Deps{
		Store:         store,
		Authenticator: authenticator,
		Tokens:        tokens,
		Metrics:       metrics.New(),
		Logger:        logger,
		CORSOrigin:    cfg.CORSOrigin,
		StaticDir:     cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
