package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/stats-svc/internal/storage"
)

const (
	DefaultDays  = 7
	MaxDays      = 90
	topDishCount = 5
)

var ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxDays)

type Overview struct {
	RestaurantID string             `json:"restaurant_id"`
	Days         int                `json:"days"`
	Totals       storage.Totals     `json:"totals"`
	Series       []storage.DayStats `json:"series"`
	TopDishes    []storage.DishStat `json:"top_dishes"`
}

type OverviewService struct {
	store  StoreInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewOverviewService(store StoreInterface, logger *zap.Logger) *OverviewService {
	return &OverviewService{store: store, logger: logger, now: time.Now}
}

func (s *OverviewService) WithClock(now func() time.Time) *OverviewService {
	s.now = now
	return s
}

// lastDays lists the UTC dates of the window, oldest first, ending today.
func lastDays(today time.Time, days int) []string {
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = today.AddDate(0, 0, i-days+1).Format(time.DateOnly)
	}
	return dates
}

func (s *OverviewService) Overview(ctx context.Context, restaurantID string, days int) (*Overview, error) {
	if days < 1 || days > MaxDays {
		return nil, ErrInvalidDays
	}

	totals, err := s.store.Totals(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load totals: %w", err)
	}

	series, err := s.store.Daily(ctx, restaurantID, lastDays(s.now().UTC(), days))
	if err != nil {
		return nil, fmt.Errorf("load daily series: %w", err)
	}

	top, err := s.store.TopDishes(ctx, restaurantID, topDishCount)
	if err != nil {
		s.logger.Warn("overview without top dishes", zap.String("restaurant_id", restaurantID), zap.Error(err))
		top = nil
	}
	if top == nil {
		top = []storage.DishStat{}
	}

	return &Overview{
		RestaurantID: restaurantID,
		Days:         days,
		Totals:       totals,
		Series:       series,
		TopDishes:    top,
	}, nil
}
