package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-publishing-backend/config"
	_ "go-publishing-backend/docs" // Important for Swagger
	v1 "go-publishing-backend/internal/delivery/http/v1"
	"go-publishing-backend/internal/formsession"
	"go-publishing-backend/internal/repository/postgres"
	"go-publishing-backend/internal/usecase"
	"go-publishing-backend/pkg/auth"
	"go-publishing-backend/pkg/database"
	"go-publishing-backend/pkg/email"
	"go-publishing-backend/pkg/logger"
	"go-publishing-backend/pkg/redis"
	"go-publishing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           SR Publishing House API
// @version         1.0
// @description     Backend for the publishing house website and admin console using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting publishing backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	contactRepo := postgres.NewContactRepository(dbPool)
	newsRepo := postgres.NewNewsRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - intake notifications disabled")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	slotCfg := formsession.Config{
		RequireTime:  cfg.AppointmentRequireTime,
		SlotStart:    cfg.AppointmentSlotStart,
		SlotEnd:      cfg.AppointmentSlotEnd,
		SlotInterval: cfg.AppointmentSlotInterval,
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	contactUC := usecase.NewContactUsecase(contactRepo, emailService, validate, slotCfg)
	newsUC := usecase.NewNewsUsecase(newsRepo, validate)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	chatUC := usecase.NewChatUsecase()
	authorUC := usecase.NewAuthorUsecase()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		NewsUC:    newsUC,
		AuthUC:    authUC,
		ChatUC:    chatUC,
		AuthorUC:  authorUC,
		Tokens:    tokens,
		SlotCfg:   slotCfg,
		Config:    cfg,
	})

	// 9. Start Server
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
