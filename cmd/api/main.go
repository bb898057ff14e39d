package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-consulting-backend/config"
	_ "go-consulting-backend/docs" // Important for Swagger
	v1 "go-consulting-backend/internal/delivery/http/v1"
	"go-consulting-backend/internal/usecase"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/mailer"
	"go-consulting-backend/pkg/redis"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Consulting Lead-Generation API
// @version         1.0
// @description     Backend for the Meridian Advisory marketing site: contact, consultation and application forms with email notification.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting consulting backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 5. Setup Email Dispatcher
	dispatcher := mailer.New(cfg)
	if !dispatcher.IsConfigured() {
		logger.Log.Warn("Email dispatcher not fully configured - sends will be simulated outside production")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(dispatcher, cfg.ContactEmailTo)
	consultationUC := usecase.NewConsultationUsecase(dispatcher, cfg.ContactEmailTo)
	applicationUC := usecase.NewApplicationUsecase(dispatcher, cfg.ContactEmailTo)
	healthUC := usecase.NewHealthUsecase(dispatcher, cfg.AppEnv)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		ConsultationUC: consultationUC,
		ApplicationUC:  applicationUC,
		HealthUC:       healthUC,
		MailTester:     dispatcher,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
