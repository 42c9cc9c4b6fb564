package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/driveaid/driveaid/internal/pkg/config"
	"github.com/driveaid/driveaid/internal/pkg/database"
	"github.com/driveaid/driveaid/internal/pkg/health"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/nsq"
	"github.com/driveaid/driveaid/internal/pkg/server"
	wspkg "github.com/driveaid/driveaid/internal/pkg/websocket"

	chatgateway "github.com/driveaid/driveaid/services/chat/gateway"
	chathandler "github.com/driveaid/driveaid/services/chat/handler"
	chathttp "github.com/driveaid/driveaid/services/chat/handler/http"
	chatnsq "github.com/driveaid/driveaid/services/chat/handler/nsq"
	chatws "github.com/driveaid/driveaid/services/chat/handler/websocket"
	chatrepo "github.com/driveaid/driveaid/services/chat/repository"
	chatusecase "github.com/driveaid/driveaid/services/chat/usecase"

	mechanicshandler "github.com/driveaid/driveaid/services/mechanics/handler"
	mechanicshttp "github.com/driveaid/driveaid/services/mechanics/handler/http"
	mechanicsrepo "github.com/driveaid/driveaid/services/mechanics/repository"
	mechanicsusecase "github.com/driveaid/driveaid/services/mechanics/usecase"

	requestsgateway "github.com/driveaid/driveaid/services/requests/gateway"
	requestshandler "github.com/driveaid/driveaid/services/requests/handler"
	requestshttp "github.com/driveaid/driveaid/services/requests/handler/http"
	requestsrepo "github.com/driveaid/driveaid/services/requests/repository"
	requestsusecase "github.com/driveaid/driveaid/services/requests/usecase"

	usershandler "github.com/driveaid/driveaid/services/users/handler"
	usershttp "github.com/driveaid/driveaid/services/users/handler/http"
	usersrepo "github.com/driveaid/driveaid/services/users/repository"
	usersusecase "github.com/driveaid/driveaid/services/users/usecase"
)

const serviceName = "driveaid"

func main() {
	cfg := config.InitConfig("")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Infrastructure
	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	db := postgresClient.GetDB()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	producer, err := nsq.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	wsManager := wspkg.NewManager(cfg.JWT)

	// Repositories
	userRepo := usersrepo.NewUserRepo(db)
	mechanicRepo := mechanicsrepo.NewMechanicRepo(db, redisClient)
	requestRepo := requestsrepo.NewRequestRepo(db)
	chatRepo := chatrepo.NewChatRepo(db)

	// Gateways
	requestGW := requestsgateway.NewRequestGW(producer, redisClient, cfg.Geocoder)
	chatGW := chatgateway.NewChatGW(producer)

	// Usecases
	userUC := usersusecase.NewUserUC(userRepo, cfg)
	mechanicUC := mechanicsusecase.NewMechanicUC(mechanicRepo)
	requestUC := requestsusecase.NewRequestUC(requestRepo, requestGW, mechanicRepo)
	chatUC := chatusecase.NewChatUC(chatRepo, chatGW, requestRepo, mechanicRepo)

	// NSQ to WebSocket bridge
	eventConsumer := chatnsq.NewEventConsumer(wsManager, cfg.NSQ)
	if err := eventConsumer.Start(); err != nil {
		zapLogger.Fatal("Failed to start event consumers", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		eventConsumer.Stop()
		return nil
	})

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	health.RegisterDependencyHealth(e, map[string]health.Checker{
		"postgres": health.NewPostgresChecker(postgresClient),
		"redis":    health.NewRedisChecker(redisClient),
	})

	authRateLimiter := middleware.AuthRateLimiter(20, time.Minute, redisClient)
	usershandler.NewHandler(usershttp.NewAuthHandler(userUC), authRateLimiter).RegisterRoutes(e)
	mechanicshandler.NewHandler(mechanicshttp.NewMechanicHandler(mechanicUC), cfg).RegisterRoutes(e)
	requestshandler.NewHandler(requestshttp.NewRequestHandler(requestUC), cfg).RegisterRoutes(e)
	chathandler.NewHandler(
		chathttp.NewChatHandler(chatUC),
		chatws.NewWebSocketHandler(wsManager),
		cfg,
	).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
