package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/danisworo/jualin/internal/pkg/config"
	"github.com/danisworo/jualin/internal/pkg/database"
	"github.com/danisworo/jualin/internal/pkg/health"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/messaging"
	"github.com/danisworo/jualin/internal/pkg/middleware"
	natspkg "github.com/danisworo/jualin/internal/pkg/nats"
	authGateway "github.com/danisworo/jualin/services/auth/gateway"
	authHandler "github.com/danisworo/jualin/services/auth/handler"
	authRepository "github.com/danisworo/jualin/services/auth/repository"
	authUsecase "github.com/danisworo/jualin/services/auth/usecase"
	contactGateway "github.com/danisworo/jualin/services/contacts/gateway"
	contactHandler "github.com/danisworo/jualin/services/contacts/handler"
	contactRepository "github.com/danisworo/jualin/services/contacts/repository"
	contactUsecase "github.com/danisworo/jualin/services/contacts/usecase"
)

func main() {
	appName := "jualin"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	if configs.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Logger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Shared messaging clients
	smsClient := messaging.NewSMSClient(configs.SMS)
	emailClient := messaging.NewEmailClient(configs.SMTP)
	if !smsClient.IsConfigured() {
		zapLogger.Logger.Warn("SMS provider not configured, running in degraded OTP mode")
	}

	// Contacts service
	contactRepo := contactRepository.NewContactRepo(configs, postgresClient.GetDB())
	messagingGW := contactGateway.NewMessagingGateway(smsClient, emailClient)
	contactUC := contactUsecase.NewContactUC(contactRepo, contactRepo, messagingGW, messagingGW, configs)

	// Auth service. The contacts usecase doubles as its invitation gateway.
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	notifyGW := authGateway.NewNotificationGateway(natsClient)
	authUC := authUsecase.NewAuthUC(authRepo, authRepo, authRepo, contactUC, notifyGW, smsClient, configs)

	authH := authHandler.NewHandler(authUC, configs)
	contactH := contactHandler.NewHandler(contactUC, configs)

	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	authH.RegisterRoutes(e)
	contactH.RegisterRoutes(e)

	zapLogger.Logger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Logger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
