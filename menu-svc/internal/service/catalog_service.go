package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

type CatalogService struct {
	dishes     DishRepository
	categories CategoryRepository
	logger     *zap.Logger
}

func NewCatalogService(dishes DishRepository, categories CategoryRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{dishes: dishes, categories: categories, logger: logger}
}

func (s *CatalogService) ListDishes(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.CatalogItem, error) {
	return s.dishes.ListDishes(ctx, restaurantID, includeInactive)
}

func (s *CatalogService) GetDish(ctx context.Context, restaurantID, dishID string) (*domain.CatalogItem, error) {
	dish, err := s.dishes.GetDish(ctx, restaurantID, dishID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return dish, err
}

func validateDish(dish *domain.CatalogItem) error {
	switch {
	case strings.TrimSpace(dish.Name.RU) == "" || strings.TrimSpace(dish.Name.TK) == "":
		return fmt.Errorf("%w: name is required in both languages", ErrInvalidDish)
	case dish.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDish)
	case dish.CategoryID == "":
		return fmt.Errorf("%w: category is required", ErrInvalidDish)
	}
	return nil
}

func (s *CatalogService) CreateDish(ctx context.Context, dish *domain.CatalogItem) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	dish.ID = uuid.NewString()
	if err := s.dishes.CreateDish(ctx, dish); err != nil {
		return err
	}
	s.logger.Info("dish created", zap.String("restaurant_id", dish.RestaurantID), zap.String("dish_id", dish.ID))
	return nil
}

func (s *CatalogService) UpdateDish(ctx context.Context, dish *domain.CatalogItem) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	rows, err := s.dishes.UpdateDish(ctx, dish)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) DeleteDish(ctx context.Context, restaurantID, dishID string) error {
	rows, err := s.dishes.DeleteDish(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx, restaurantID, includeInactive)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name.RU) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	category.ID = uuid.NewString()
	return s.categories.CreateCategory(ctx, category)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name.RU) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	rows, err := s.categories.UpdateCategory(ctx, category)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, restaurantID, categoryID string) error {
	rows, err := s.categories.DeleteCategory(ctx, restaurantID, categoryID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
