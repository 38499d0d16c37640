package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bobTheBar/app/echo-server/metrics"
	"bobTheBar/app/echo-server/router"
	"bobTheBar/business/analysis"
	bottleService "bobTheBar/business/bottle"
	"bobTheBar/business/recommendation"
	userService "bobTheBar/business/user"
	"bobTheBar/internal/middleware"
	"bobTheBar/internal/repository/embedding"
	mongoRepo "bobTheBar/internal/repository/mongo"
	psqlRepo "bobTheBar/internal/repository/postgres"
	redisRepo "bobTheBar/internal/repository/redis"
	"bobTheBar/internal/rest"
	"bobTheBar/pkg/config"
	"bobTheBar/pkg/database"
	redisdb "bobTheBar/pkg/database/redis"
	"bobTheBar/pkg/logger"
	pkgmetrics "bobTheBar/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "catalog_store", cfg.App.CatalogStore)

	pkgmetrics.Init()

	// Users always live in postgres; the catalog can be moved to mongo.
	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer database.ClosePostgres(db)

	logger.Info("Database connected successfully")

	var bottleRepo bottleService.BottleRepository
	switch cfg.App.CatalogStore {
	case config.CatalogStoreMongo:
		mongoClient, mongoDB, err := database.InitMongo(context.Background(), cfg)
		if err != nil {
			logger.Fatal("Failed to connect to mongo", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(ctx)
		}()

		repo := mongoRepo.NewBottleRepository(mongoDB)
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("Failed to ensure mongo indexes", err)
		}
		bottleRepo = repo
	default:
		bottleRepo = psqlRepo.NewBottleRepository(db)
	}

	// Catalog reads go through redis when a TTL is configured.
	var catalogRepo recommendation.CatalogRepository = bottleRepo
	var invalidator bottleService.CatalogInvalidator
	if cfg.Redis.CatalogTTL > 0 {
		var redisClient *goredis.Client
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", err)
		} else {
			defer redisdb.CloseRedisClient(redisClient)
			cache := redisRepo.NewCatalogCache(redisClient, bottleRepo, cfg.Redis.CatalogTTL)
			catalogRepo = cache
			invalidator = cache
		}
	}

	var embeddingRepo bottleService.EmbeddingRepository
	if cfg.Embedding.URL != "" {
		embeddingRepo = embedding.NewDeepSeekRepository(embedding.DeepSeekConfig{
			URL:     cfg.Embedding.URL,
			APIKey:  cfg.Embedding.APIKey,
			Timeout: cfg.Embedding.Timeout,
		})
	} else {
		logger.Warn("DEEPSEEK_API_URL not set, bottles will be stored without embeddings")
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)

	// Init service
	analysisSvc := analysis.NewAnalysisService()
	recommendationSvc, err := recommendation.NewRecommendationService(
		catalogRepo,
		analysisSvc,
		recommendation.DefaultConfig().WithThreshold(cfg.Recommendation.SimilarityThreshold),
	)
	if err != nil {
		logger.Fatal("Invalid recommendation config", err)
	}
	bottleSvc := bottleService.NewBottleService(bottleRepo, embeddingRepo, invalidator)
	userSvc := userService.NewUserService(userRepo, validate, cfg.JWT.SecretKey, cfg.JWT.TTL)

	// Init handler
	collectionHandler := rest.NewCollectionHandler(analysisSvc, recommendationSvc, cfg.Server.RequestTimeout)
	bottleHandler := rest.NewBottleHandler(bottleSvc, cfg.Server.RequestTimeout)
	userHandler := rest.NewUserHandler(userSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(15 * time.Minute / 500),
			Burst:     500,
			ExpiresIn: 15 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": cfg.App.Version,
		})
	})

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCollectionRoutes(api, collectionHandler)
	router.SetupBottleRoutes(api, bottleHandler, authRequired, adminOnly)
	router.SetupUserRoutes(api, userHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
