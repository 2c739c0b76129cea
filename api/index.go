package api

import (
	"amazon-shop/app"
	"amazon-shop/config"
	_ "amazon-shop/docs"
	"amazon-shop/logging"
	"amazon-shop/models"
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		logging.Init(logging.Config{Level: cfg.LogLevel, Format: "json"})

		application, initErr = app.New(context.Background(), cfg)
		if initErr != nil {
			logging.Error().Err(initErr).Msg("failed to initialize application")
		}
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
		})
		return
	}
	application.Handler().ServeHTTP(w, r)
}
