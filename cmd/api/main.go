package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ndmedia/internal/adapter"
	"ndmedia/internal/cache"
	"ndmedia/internal/config"
	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/handler"
	"ndmedia/internal/logger"
	"ndmedia/internal/middleware"
	"ndmedia/internal/render"
	"ndmedia/internal/repository"
	"ndmedia/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	appLogger := logger.Get()

	siteContent, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}
	appLogger.Info("Content loaded",
		zap.String("path", cfg.Content.Path),
		zap.Int("posters", len(siteContent.Posters)),
		zap.Int("quiz_questions", len(siteContent.Quiz)))

	g, ctx := errgroup.WithContext(ctx)

	// View store backend
	var viewCache domain.Cache
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		viewCache = adapter.NewRedisCacheAdapter(redisClient)
	default:
		memoryCache := adapter.NewMemoryCacheAdapter()
		viewCache = memoryCache
		g.Go(func() error {
			memoryCache.Start()
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			memoryCache.Stop()
			appLogger.Debug("Memory view store stopped", zap.Int("views", memoryCache.Len()))
			return nil
		})
		appLogger.Info("Using in-memory view store")
	}

	settings := domain.TrackerSettings{
		ReferenceFraction: cfg.Tracker.ReferenceFraction,
		HeaderOffset:      cfg.Tracker.HeaderOffset,
		TopThreshold:      cfg.Tracker.TopThreshold,
	}

	// Initialize repositories and services
	viewRepository := repository.NewViewRepository(viewCache, cfg.Session.TTL)
	viewStore := service.NewViewStore(viewRepository)
	viewService := service.NewViewService(viewStore, viewCache, siteContent, settings)
	quizService := service.NewQuizService(viewStore, siteContent)
	carouselService := service.NewCarouselService(viewStore, siteContent)
	trackerService := service.NewTrackerService(viewStore, siteContent, settings)

	renderer, err := render.New(siteContent)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	handler.RegisterRoutes(app, handler.Handlers{
		Page:     handler.NewPageHandler(viewService, renderer),
		View:     handler.NewViewHandler(viewService),
		Quiz:     handler.NewQuizHandler(quizService, renderer),
		Carousel: handler.NewCarouselHandler(carouselService),
		Tracker:  handler.NewTrackerHandler(trackerService),
		Content:  handler.NewContentHandler(siteContent),
		Health:   handler.NewHealthHandler(viewService),
	})

	g.Go(func() error {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("session_backend", cfg.Session.Backend))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	g.Go(func() error {
		<-ctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
