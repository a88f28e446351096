package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/config"
	httpapi "overcooked-ordering/stats-svc/internal/api/http"
	"overcooked-ordering/stats-svc/internal/service"
	"overcooked-ordering/stats-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8083")
	logger := config.NewLogger("stats-svc")
	defer logger.Sync()

	redisClient := config.MustInitRedis(cfg, logger)
	defer redisClient.Close()

	reader := config.NewKafkaReader(cfg, "stats-svc")
	defer reader.Close()

	store := storage.NewStatsStore(redisClient)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, store, logger)
	consumerDone := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(consumerDone)
	}()

	handler := httpapi.NewHandler(service.NewOverviewService(store, logger), logger)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler),
	}

	go func() {
		logger.Info("stats service starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("topic", cfg.OrdersTopic),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	<-consumerDone
	logger.Info("stats service stopped")
}
