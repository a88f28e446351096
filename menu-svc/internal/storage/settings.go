package storage

import (
	"context"

	"github.com/lib/pq"

	"overcooked-ordering/domain"
)

func (r *PostgresRepository) GetSettings(ctx context.Context, restaurantID string) (*domain.CartSettings, error) {
	var s domain.CartSettings
	err := r.DB.QueryRowContext(ctx, `
		SELECT restaurant_id, delivery_fee, min_order_amount, currency, is_delivery_available, payment_methods, updated_at
		FROM cart_settings
		WHERE restaurant_id = $1`, restaurantID).
		Scan(&s.RestaurantID, &s.DeliveryFee, &s.MinOrderAmount, &s.Currency,
			&s.IsDeliveryAvailable, pq.Array(&s.PaymentMethods), &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) SaveSettings(ctx context.Context, s *domain.CartSettings) error {
	methods := s.PaymentMethods
	if methods == nil {
		methods = []string{}
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO cart_settings (restaurant_id, delivery_fee, min_order_amount, currency, is_delivery_available, payment_methods, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			delivery_fee = EXCLUDED.delivery_fee,
			min_order_amount = EXCLUDED.min_order_amount,
			currency = EXCLUDED.currency,
			is_delivery_available = EXCLUDED.is_delivery_available,
			payment_methods = EXCLUDED.payment_methods,
			updated_at = EXCLUDED.updated_at`,
		s.RestaurantID, s.DeliveryFee, s.MinOrderAmount, s.Currency,
		s.IsDeliveryAvailable, pq.Array(methods), s.UpdatedAt)
	return err
}
