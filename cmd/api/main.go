// @title Learntendo API
// @version 1.0
// @description Generates structured quiz questions from study material, tutors over chat and reads text aloud.
// @host localhost:8000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"learntendo/internal/adapter"
	"learntendo/internal/adapter/quizgen"
	"learntendo/internal/cache"
	"learntendo/internal/config"
	"learntendo/internal/extractor"
	"learntendo/internal/handler"
	"learntendo/internal/logger"
	"learntendo/internal/middleware"
	"learntendo/internal/normalizer"
	"learntendo/internal/service"
	"learntendo/internal/storage"

	_ "learntendo/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// A missing .env is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM client serves both question generation and tutor chat
	llmClient, err := quizgen.NewFromConfig(context.Background(), cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	uploadStore, err := storage.NewLocalStore(cfg.Upload.Dir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	quizService := service.NewQuizService(
		llmClient,
		extractor.New(appLogger),
		uploadStore,
		normalizer.New(appLogger),
		cfg.LLM.Timeout,
		appLogger,
	)
	quizHandler := handler.NewQuizHandler(quizService)

	ttsService := service.NewTTSService(cfg.TTS.Endpoint, nil, appLogger)
	ttsHandler := handler.NewTTSHandler(ttsService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Post("/generateQuestions", quizHandler.GenerateQuestions)
	apiGroup.Post("/tts", ttsHandler.Synthesize)

	// Chat needs Redis for session history; without it the rest of the
	// API still runs.
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")

		chatService := service.NewChatService(
			llmClient,
			adapter.NewRedisCacheAdapter(redisClient),
			cfg.Chat.HistoryLimit,
			cfg.Chat.SessionTTL,
			cfg.LLM.Timeout,
			appLogger,
		)
		apiGroup.Post("/chat", handler.NewChatHandler(chatService).Chat)
	} else {
		appLogger.Warn("Redis address not configured, chat endpoint disabled")
	}

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
