package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

// SettingsService resolves per-restaurant cart settings, falling back to
// domain.DefaultCartSettings when a restaurant has no stored record.
type SettingsService struct {
	repo   SettingsRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewSettingsService(repo SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger, now: time.Now}
}

// WithClock replaces the timestamp source used for defaults and updates.
func (s *SettingsService) WithClock(now func() time.Time) *SettingsService {
	s.now = now
	return s
}

func (s *SettingsService) Resolve(ctx context.Context, restaurantID string) (domain.CartSettings, error) {
	if restaurantID == "" {
		restaurantID = domain.DefaultRestaurantID
	}

	stored, err := s.repo.GetSettings(ctx, restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultCartSettings(restaurantID, s.now().UTC()), nil
	}
	if err != nil {
		return domain.CartSettings{}, fmt.Errorf("load cart settings: %w", err)
	}
	return *stored, nil
}

func (s *SettingsService) Update(ctx context.Context, restaurantID string, patch domain.SettingsPatch) (domain.CartSettings, error) {
	current, err := s.Resolve(ctx, restaurantID)
	if err != nil {
		return domain.CartSettings{}, err
	}

	updated := patch.Apply(current)
	updated.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveSettings(ctx, &updated); err != nil {
		return domain.CartSettings{}, fmt.Errorf("save cart settings: %w", err)
	}

	s.logger.Info("cart settings updated",
		zap.String("restaurant_id", updated.RestaurantID),
		zap.String("delivery_fee", updated.DeliveryFee.String()),
		zap.String("min_order_amount", updated.MinOrderAmount.String()))
	return updated, nil
}
