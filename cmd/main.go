package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gib2sgf/internal/adapters"
	"gib2sgf/internal/bootstrap"
	"gib2sgf/internal/delivery"
	convertDelivery "gib2sgf/internal/delivery/convert"
	repo "gib2sgf/internal/repository"
	convertuc "gib2sgf/internal/usecase/convert"
)

type storageAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
	s3Adapter    *adapters.AdapterS3
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Errorw("failed to setup configuration", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage := initStorageAdapters(ctx, logger, cfg)
	defer storage.mongoAdapter.Close(context.Background())
	defer storage.redisAdapter.Close(context.Background())

	store := repo.NewConversionRepository(*cfg, logger,
		storage.redisAdapter.GetClient(), storage.mongoAdapter.Database, storage.s3Adapter.Client)
	handler := convertDelivery.NewConvertHandler(*cfg, logger, convertuc.NewConvertUseCase(store, logger))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      delivery.NewRouter(*cfg, handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infow("server is running", "port", cfg.ServerPort, "version", convertuc.Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("graceful shutdown failed", "error", err)
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func initStorageAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *storageAdapters {
	mongoAdapter := adapters.NewAdapterMongo(cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize mongodb", "error", err)
	}

	redisAdapter := adapters.NewAdapterRedis(cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize redis", "error", err)
	}

	s3Adapter := adapters.NewAdapterS3(cfg, log)
	if err := s3Adapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize object storage", "error", err)
	}

	log.Info("storage adapters initialized")
	return &storageAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
		s3Adapter:    s3Adapter,
	}
}
