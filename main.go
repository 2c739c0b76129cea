package main

import (
	"amazon-shop/app"
	"amazon-shop/config"
	_ "amazon-shop/docs"
	"amazon-shop/logging"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Amazon Shop
// @version 1.0
// @description Server-rendered storefront: catalog, session cart, checkout and customer accounts.
// @BasePath /
func main() {
	cfg := config.LoadConfig()

	logFormat := cfg.LogFormat
	if logFormat == "" && !cfg.IsProduction() {
		logFormat = "console"
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: logFormat})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to start application")
	}
	defer application.Close()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           application.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().
			Str("port", cfg.Port).
			Str("env", cfg.AppEnv).
			Str("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html").
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
