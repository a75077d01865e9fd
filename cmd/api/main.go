package main

// @title Geography Microservice API
// @version 1.0.0
// @description Микросервис справочника географии: координаты (полигоны), географические объекты и их связи.
// @description
// @description Основные возможности:
// @description - Ведение координат с историей версий полигонов
// @description - Привязка координат к географическим объектам с коэффициентом масштаба
// @description - Атомарная замена полигона объекта новой версией (upgrade)
// @description - Список объектов с центрами и полигонами для отрисовки карты

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geography-microservice/docs/swagger"
	"github.com/geography-microservice/internal/config"
	httpDelivery "github.com/geography-microservice/internal/delivery/http"
	"github.com/geography-microservice/internal/delivery/http/handler"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/logger"
	"github.com/geography-microservice/internal/repository/cache"
	"github.com/geography-microservice/internal/repository/postgres"
	redisRepo "github.com/geography-microservice/internal/repository/redis"
	"github.com/geography-microservice/internal/usecase"
)

const memoryCacheCleanupInterval = 10 * time.Minute

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "geography-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Geography Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.Bool("api_log_enabled", cfg.Server.APILogEnabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	checkers := map[string]handler.HealthChecker{"postgres": db}

	// 4. Connect to Redis (кеш списков и/или журнал запросов)
	var redisClient *cache.Redis
	if cfg.Cache.Driver == config.CacheDriverRedis || cfg.Server.APILogEnabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		checkers["redis"] = redisClient
	}

	// 5. Initialize Repositories
	var cacheRepo repository.CacheRepository
	if cfg.Cache.Driver == config.CacheDriverRedis {
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		cacheRepo = cache.NewMemoryCacheRepository(cfg.Cache.ListCacheTTL, memoryCacheCleanupInterval, log)
	}

	coordinateRepo := postgres.NewCoordinateRepository(db)
	coordinateTypeRepo := postgres.NewCoordinateTypeRepository(db)
	objectRepo := postgres.NewGeographyObjectRepository(db)
	objectTypeRepo := postgres.NewGeographyObjectTypeRepository(db)
	linkRepo := postgres.NewGeographyObjectCoordinateRepository(db)
	txManager := postgres.NewTxManager(db)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	objectUC := usecase.NewGeographyObjectUseCase(
		objectRepo,
		objectTypeRepo,
		linkRepo,
		cacheRepo,
		txManager,
		cfg.Cache.ListCacheTTL,
		log,
	)
	coordinateUC := usecase.NewCoordinateUseCase(coordinateRepo, txManager, objectUC, log)
	coordinateTypeUC := usecase.NewCoordinateTypeUseCase(coordinateTypeRepo, log)
	linkUC := usecase.NewGeographyObjectCoordinateUseCase(linkRepo, txManager, objectUC, log)
	upgradeUC := usecase.NewUpgradeUseCase(txManager, objectUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Coordinate:                handler.NewCoordinateHandler(coordinateUC, coordinateTypeUC, log),
		GeographyObject:           handler.NewGeographyObjectHandler(objectUC, log),
		GeographyObjectCoordinate: handler.NewGeographyObjectCoordinateHandler(linkUC, upgradeUC, log),
		Health:                    handler.NewHealthHandler(checkers, log),
	}

	// 8. Журнал запросов публикуется в Redis Stream и сохраняется воркером
	var apiLogger repository.StreamRepository
	if cfg.Server.APILogEnabled {
		apiLogger = redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, apiLogger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
