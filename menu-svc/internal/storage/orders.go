package storage

import (
	"context"
	"strconv"

	"overcooked-ordering/domain"
)

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.SubmittedOrder) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, restaurant_id, subtotal, delivery_fee, total_amount, currency,
			customer_name, phone, delivery, delivery_address, comment, payment_method, status, qr_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULL, $14)`,
		order.ID, order.RestaurantID, order.Subtotal, order.DeliveryFee, order.TotalAmount, order.Currency,
		order.CustomerName, order.Phone, order.Delivery, order.DeliveryAddress, order.Comment,
		order.PaymentMethod, order.Status, order.CreatedAt); err != nil {
		return err
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, item_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, i, item.ItemID, item.Name, item.UnitPrice, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

const orderColumns = `id, restaurant_id, subtotal, delivery_fee, total_amount, currency, customer_name, phone,
	delivery, delivery_address, comment, payment_method, status, created_at`

func scanOrder(row rowScanner) (domain.SubmittedOrder, error) {
	var o domain.SubmittedOrder
	err := row.Scan(&o.ID, &o.RestaurantID, &o.Subtotal, &o.DeliveryFee, &o.TotalAmount, &o.Currency,
		&o.CustomerName, &o.Phone, &o.Delivery, &o.DeliveryAddress, &o.Comment, &o.PaymentMethod,
		&o.Status, &o.CreatedAt)
	return o, err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.SubmittedOrder, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.LineItem{}
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

// ListOrders returns order summaries. Items are left empty; GetOrder loads them.
func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.SubmittedOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any
	if filter.RestaurantID != "" {
		args = append(args, filter.RestaurantID)
		query += " AND restaurant_id = $" + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += " AND status = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.SubmittedOrder{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		order.Items = []domain.LineItem{}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
