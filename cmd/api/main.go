package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/empreweb/empreweb-backend/config"
	authservice "github.com/empreweb/empreweb-backend/internal/auth/service"
	"github.com/empreweb/empreweb-backend/internal/bootstrap"
	contentservice "github.com/empreweb/empreweb-backend/internal/content/service"
	"github.com/empreweb/empreweb-backend/internal/keepalive"
	"github.com/empreweb/empreweb-backend/internal/logging"
	"github.com/empreweb/empreweb-backend/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	ctx := context.Background()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{Config: cfg.Store})
	if err != nil {
		logger.Error(ctx, "content store unavailable", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())
	logger.Info(ctx, "content store connected", "driver", cfg.Store.Driver)

	notifier, err := notify.New(cfg, logger)
	if err != nil {
		logger.Error(ctx, "notifier", "error", err)
		os.Exit(1)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "empreweb-api",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.App.CORSOrigins,
		Log:         logger,
		Store:       store,
		Auth:        authservice.NewAuthService(cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, logger),
		Content:     contentservice.NewContentService(store, notifier, logger),
	})

	var pinger *keepalive.Scheduler
	if cfg.KeepAlive.URL != "" {
		pinger = keepalive.NewScheduler(cfg.KeepAlive.URL, cfg.KeepAlive.Schedule, logger)
		if err := pinger.Start(); err != nil {
			logger.Error(ctx, "keepalive disabled", "error", err)
			pinger = nil
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info(ctx, "api listening", "port", cfg.Server.Port, "store", cfg.Store.Driver, "notify", cfg.Notify.Strategy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "api server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if pinger != nil {
		pinger.Stop(sctx)
	}
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error(ctx, "forced shutdown", "error", err)
	}
}
