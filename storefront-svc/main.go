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
	httpapi "overcooked-ordering/storefront-svc/internal/api/http"
	"overcooked-ordering/storefront-svc/internal/gateway"
	"overcooked-ordering/storefront-svc/internal/menuclient"
	"overcooked-ordering/storefront-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8080")
	logger := config.NewLogger("storefront-svc")
	defer logger.Sync()

	redisClient := config.MustInitRedis(cfg, logger)
	defer redisClient.Close()

	client := &http.Client{}
	menu := menuclient.New(cfg.MenuSvcURL, client, logger)
	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:  cfg.MenuSvcURL,
		StatsSvcURL: cfg.StatsSvcURL,
	}, client, logger)

	handler := httpapi.NewHandler(
		storage.NewRedisCartStore(redisClient, cfg.CartTTL),
		storage.NewCheckoutLock(redisClient, cfg.CheckoutLockTTL),
		menu,
		logger,
	)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, gw),
	}

	go func() {
		logger.Info("storefront starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("menu_svc", cfg.MenuSvcURL),
			zap.String("stats_svc", cfg.StatsSvcURL),
		)
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
	logger.Info("storefront stopped")
}
