package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/config"
	httpapi "overcooked-ordering/menu-svc/internal/api/http"
	"overcooked-ordering/menu-svc/internal/service"
	"overcooked-ordering/menu-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8081")
	logger := config.NewLogger("menu-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	kafkaWriter := config.NewKafkaWriter(cfg)
	defer kafkaWriter.Close()

	settingsSvc := service.NewSettingsService(repo, logger)
	catalogSvc := service.NewCatalogService(repo, repo, logger)
	orderSvc := service.NewOrderService(
		repo,
		settingsSvc,
		service.ReceiptQRGenerator{BaseURL: cfg.PublicBaseURL},
		storage.NewKafkaPublisher(kafkaWriter),
		logger,
	)

	handler := httpapi.NewHandler(catalogSvc, settingsSvc, orderSvc, logger)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler),
	}

	go func() {
		logger.Info("menu service starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("menu service stopped")
}
