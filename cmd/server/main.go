package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mongoAdapter "github.com/Glassyflute/adboard/internal/adapter/mongo"
	natsAdapter "github.com/Glassyflute/adboard/internal/adapter/nats"
	"github.com/Glassyflute/adboard/internal/adapter/storage"
	"github.com/Glassyflute/adboard/internal/config"
	"github.com/Glassyflute/adboard/internal/platform/metrics"
	httpPort "github.com/Glassyflute/adboard/internal/port/http"
	"github.com/Glassyflute/adboard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapConfig := zap.NewProductionConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("http_port", cfg.HTTP.Port),
		zap.String("mongo_uri", cfg.Mongo.URI),
		zap.String("mongo_database", cfg.Mongo.Database),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongoAdapter.NewConnection(&cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := mongoAdapter.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	categoryRepo := mongoAdapter.NewCategoryRepository(mongoClient, cfg.Mongo.Database)
	locationRepo := mongoAdapter.NewLocationRepository(mongoClient, cfg.Mongo.Database)
	userRepo := mongoAdapter.NewAdUserRepository(mongoClient, cfg.Mongo.Database)
	adRepo := mongoAdapter.NewAdRepository(mongoClient, cfg.Mongo.Database)

	imageStorage, err := storage.NewMinIOStorage(
		cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket, cfg.MinIO.UseSSL, logger,
	)
	if err != nil {
		logger.Fatal("failed to initialize image storage", zap.Error(err))
	}

	var publisher usecase.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := natsAdapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info("NATS publisher connected", zap.String("url", cfg.NATS.URL))
	}

	var mm *metrics.MetricsManager
	if cfg.Metrics.Enabled {
		mm = metrics.NewMetricsManager("adboard")
		go func() {
			if err := metrics.StartMetricsServer(cfg.Metrics.Port, logger, mm.Registry); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	pageSize := int(cfg.Paging.PageSize)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, adRepo, publisher, logger, pageSize)
	userUC := usecase.NewUserUsecase(userRepo, adRepo, locationRepo, publisher, logger, pageSize)
	adUC := usecase.NewAdUsecase(adRepo, userRepo, categoryRepo, locationRepo, imageStorage, publisher, mm, logger, pageSize)

	router := httpPort.NewRouter(logger, mm,
		httpPort.NewCategoryHandler(categoryUC, logger),
		httpPort.NewAdHandler(adUC, logger),
		httpPort.NewUserHandler(userUC, logger),
	)

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("port", cfg.HTTP.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
