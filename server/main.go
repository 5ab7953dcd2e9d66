package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"praxis/api/routes"
	"praxis/internal/notifications"
	"praxis/internal/shared/config"
	"praxis/internal/shared/database"
	"praxis/internal/users"
	"praxis/pkg/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Notification pipeline: producer for the booking flow, consumer group
	// turning events into client emails. Both optional behind KAFKA_ENABLED.
	producer, consumer := setupNotifications(cfg, db, appLogger)
	defer producer.Close()

	notificationCtx, notificationCancel := context.WithCancel(context.Background())
	defer notificationCancel()

	if consumer != nil {
		go func() {
			if err := consumer.Start(notificationCtx); err != nil {
				appLogger.Error("Notification consumer stopped", slog.Any("error", err))
			}
		}()
		defer func() {
			if err := consumer.Close(); err != nil {
				appLogger.Error("Error closing notification consumer", slog.Any("error", err))
			}
		}()
		appLogger.Info("Notification consumer started",
			slog.String("topic", cfg.Kafka.AppointmentsTopic),
			slog.String("group", cfg.Kafka.ConsumerGroup),
		)
	}

	router := setupRouter(cfg, db, producer)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("redis_cache", db.Redis != nil),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("notifications", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupNotifications(cfg *config.Config, db *database.DB, appLogger *logger.Logger) (notifications.Producer, *notifications.Consumer) {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Kafka disabled, appointment notifications will not be published")
		return notifications.NoopProducer{}, nil
	}

	producer, err := notifications.NewKafkaProducer(cfg.Kafka)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
		appLogger.Info("Continuing without notification publishing")
		return notifications.NoopProducer{}, nil
	}

	sender := notifications.NewSMTPEmailSender(cfg.Email, appLogger)
	userRepo := users.NewRepository(db.PostgreSQL)
	resolver := func(ctx context.Context, userID uuid.UUID) (string, error) {
		user, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return user.Email, nil
	}

	consumer, err := notifications.NewConsumer(cfg.Kafka, sender, resolver, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka consumer", slog.Any("error", err))
		appLogger.Info("Continuing without notification delivery")
		return producer, nil
	}

	return producer, consumer
}

func setupRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRouter := routes.NewRouter(cfg, db, producer)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
