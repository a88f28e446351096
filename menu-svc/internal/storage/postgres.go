package storage

import (
	"context"
	"database/sql"
	"fmt"

	"overcooked-ordering/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			name_ru TEXT NOT NULL,
			name_tk TEXT NOT NULL DEFAULT '',
			sort_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			category_id TEXT NOT NULL,
			name_ru TEXT NOT NULL,
			name_tk TEXT NOT NULL DEFAULT '',
			description_ru TEXT NOT NULL DEFAULT '',
			description_tk TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url TEXT,
			calories INT NOT NULL DEFAULT 0,
			weight INT NOT NULL DEFAULT 0,
			preparation_time INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_settings (
			restaurant_id TEXT PRIMARY KEY,
			delivery_fee NUMERIC(10,2) NOT NULL,
			min_order_amount NUMERIC(10,2) NOT NULL,
			currency TEXT NOT NULL,
			is_delivery_available BOOLEAN NOT NULL,
			payment_methods TEXT[] NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			delivery_fee NUMERIC(10,2) NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			currency TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			delivery BOOLEAN NOT NULL,
			delivery_address TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			position INT NOT NULL DEFAULT 0,
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const dishColumns = `id, restaurant_id, category_id, name_ru, name_tk, description_ru, description_tk,
	price, is_active, is_available, COALESCE(image_url, ''), calories, weight, preparation_time, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDish(row rowScanner) (domain.CatalogItem, error) {
	var dish domain.CatalogItem
	err := row.Scan(&dish.ID, &dish.RestaurantID, &dish.CategoryID,
		&dish.Name.RU, &dish.Name.TK, &dish.Description.RU, &dish.Description.TK,
		&dish.Price, &dish.IsActive, &dish.IsAvailable, &dish.ImageURL,
		&dish.Calories, &dish.WeightGrams, &dish.PreparationMinutes, &dish.CreatedAt)
	return dish, err
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.CatalogItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+dishColumns+`
		FROM dishes
		WHERE restaurant_id = $1 AND ($2 OR is_active)
		ORDER BY created_at DESC`, restaurantID, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.CatalogItem{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, restaurantID, dishID string) (*domain.CatalogItem, error) {
	dish, err := scanDish(r.DB.QueryRowContext(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE id = $1 AND restaurant_id = $2`,
		dishID, restaurantID))
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.CatalogItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (id, restaurant_id, category_id, name_ru, name_tk, description_ru, description_tk,
			price, is_active, is_available, image_url, calories, weight, preparation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at`,
		dish.ID, dish.RestaurantID, dish.CategoryID, dish.Name.RU, dish.Name.TK,
		dish.Description.RU, dish.Description.TK, dish.Price, dish.IsActive, dish.IsAvailable,
		dish.ImageURL, dish.Calories, dish.WeightGrams, dish.PreparationMinutes).
		Scan(&dish.CreatedAt)
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.CatalogItem) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE dishes
		SET category_id=$1, name_ru=$2, name_tk=$3, description_ru=$4, description_tk=$5,
			price=$6, is_active=$7, is_available=$8, image_url=$9, calories=$10, weight=$11, preparation_time=$12
		WHERE id=$13 AND restaurant_id=$14`,
		dish.CategoryID, dish.Name.RU, dish.Name.TK, dish.Description.RU, dish.Description.TK,
		dish.Price, dish.IsActive, dish.IsAvailable, dish.ImageURL, dish.Calories, dish.WeightGrams,
		dish.PreparationMinutes, dish.ID, dish.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, restaurantID, dishID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM dishes WHERE id=$1 AND restaurant_id=$2", dishID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name_ru, name_tk, sort_order, is_active
		FROM categories
		WHERE restaurant_id = $1 AND ($2 OR is_active)
		ORDER BY sort_order, name_ru`, restaurantID, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name.RU, &c.Name.TK, &c.SortOrder, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO categories (id, restaurant_id, name_ru, name_tk, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.RestaurantID, c.Name.RU, c.Name.TK, c.SortOrder, c.IsActive)
	return err
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE categories SET name_ru=$1, name_tk=$2, sort_order=$3, is_active=$4
		WHERE id=$5 AND restaurant_id=$6`,
		c.Name.RU, c.Name.TK, c.SortOrder, c.IsActive, c.ID, c.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, categoryID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=$1 AND restaurant_id=$2", categoryID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
