package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/config"
	reqmw "github.com/empreweb/empreweb-backend/internal/api/http/middleware"
	"github.com/empreweb/empreweb-backend/internal/bootstrap"
	"github.com/empreweb/empreweb-backend/internal/logging"
	"github.com/empreweb/empreweb-backend/internal/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	ctx := context.Background()

	bootstrap.SetGinMode(cfg.App.Environment)

	tmpl, err := site.Templates()
	if err != nil {
		logger.Error(ctx, "templates", "error", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqmw.RequestIDMiddleware(logger))
	r.SetHTMLTemplate(tmpl)

	client := site.NewClient(cfg.Server.APIBaseURL, cfg.Server.APITimeout)
	site.NewHandler(client, site.Options{
		WhatsAppNumber: cfg.Notify.WhatsAppNumber,
		NotifyStrategy: cfg.Notify.Strategy,
		ContactEmail:   cfg.Mail.To,
		SecureCookies:  cfg.App.Environment == "production",
	}, logger).Register(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.SitePort,
		Handler: r,
	}

	go func() {
		logger.Info(ctx, "site listening", "port", cfg.Server.SitePort, "api", cfg.Server.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "site server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		logger.Error(ctx, "forced shutdown", "error", err)
	}
}
