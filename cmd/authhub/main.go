package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/atapsolar/authhub/internal/pkg/config"
	"github.com/atapsolar/authhub/internal/pkg/database"
	"github.com/atapsolar/authhub/internal/pkg/health"
	"github.com/atapsolar/authhub/internal/pkg/logger"
	"github.com/atapsolar/authhub/internal/pkg/middleware"
	natspkg "github.com/atapsolar/authhub/internal/pkg/nats"
	"github.com/atapsolar/authhub/internal/pkg/server"
	"github.com/atapsolar/authhub/services/auth/gateway"
	"github.com/atapsolar/authhub/services/auth/handler"
	httpHandler "github.com/atapsolar/authhub/services/auth/handler/http"
	"github.com/atapsolar/authhub/services/auth/repository"
	"github.com/atapsolar/authhub/services/auth/usecase"
)

func main() {
	appName := "auth-hub"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	authGW := gateway.NewAuthGW(configs.WhatsApp, natsClient)

	// Initialize usecase
	authUC := usecase.NewAuthUC(authRepo, authRepo, authRepo, authGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC, configs)
	adminHandler := httpHandler.NewAdminHandler(authUC)
	h := handler.NewHandler(authHandler, adminHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(echomw.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// CORS backed by the durable allow-list, refreshed through a short cache
	originCache := middleware.NewAllowlistCache(authRepo, time.Duration(configs.CORS.CacheTTL)*time.Second)
	e.Use(middleware.DynamicCORSMiddleware(originCache))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
