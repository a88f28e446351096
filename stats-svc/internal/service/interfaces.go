package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"overcooked-ordering/domain"
	"overcooked-ordering/stats-svc/internal/storage"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordOrderCreated(ctx context.Context, event domain.OrderEvent) (bool, error)
	RecordStatusChange(ctx context.Context, event domain.OrderEvent) (bool, error)
	Totals(ctx context.Context, restaurantID string) (storage.Totals, error)
	Daily(ctx context.Context, restaurantID string, dates []string) ([]storage.DayStats, error)
	TopDishes(ctx context.Context, restaurantID string, limit int) ([]storage.DishStat, error)
}

type OverviewInterface interface {
	Overview(ctx context.Context, restaurantID string, days int) (*Overview, error)
}

var (
	_ StoreInterface    = (*storage.StatsStore)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ OverviewInterface = (*OverviewService)(nil)
)
