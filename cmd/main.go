package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SimpnicServerTeam/scs-mfa-server/ent"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/config"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/logger"
	ent_repo "github.com/SimpnicServerTeam/scs-mfa-server/internal/repository/ent"
	redis_repo "github.com/SimpnicServerTeam/scs-mfa-server/internal/repository/redis"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/router"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/server"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/service"
	"github.com/redis/go-redis/v9"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.AppEnv)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisSettings.Address,
		Password: cfg.RedisSettings.Password,
		DB:       cfg.RedisSettings.DB,
	})

	entClient, err := ent.Open(cfg.DatabaseDriver, cfg.DatabaseSettings)
	if err != nil {
		log.Fatalf("failed opening connection to database: %v", err)
	}
	defer entClient.Close()
	// Run the auto migration tool.
	if err := entClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}

	deviceRepo := ent_repo.NewEntDeviceRepository(entClient)
	challengeRepo := redis_repo.NewRedisChallengeRepository(redisClient)
	usedCodeRepo := redis_repo.NewRedisUsedCodeRepository(redisClient)

	smsSender := service.NewSMSService(&cfg.SMS)
	emailSender := service.NewSMTPEmailService(&cfg.SMTP, cfg.MFA.Issuer)

	mfaService := service.NewMFAService(
		deviceRepo,
		challengeRepo,
		usedCodeRepo,
		smsSender,
		emailSender,
		cfg.MFA,
	)

	tokenService := service.NewJWTService(cfg.JWTSecret)

	app := server.New()
	router.SetupMFARoutes(app, handlers.NewMFAHandler(mfaService), tokenService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := app.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
