package service

import (
	"context"
	"errors"

	"overcooked-ordering/domain"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidDish         = errors.New("invalid dish")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidOrder        = errors.New("invalid order payload")
	ErrInvalidStatus       = errors.New("unknown order status")
	ErrIllegalStatusChange = errors.New("order status change is not allowed")
)

type DishRepository interface {
	ListDishes(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.CatalogItem, error)
	GetDish(ctx context.Context, restaurantID, dishID string) (*domain.CatalogItem, error)
	CreateDish(ctx context.Context, dish *domain.CatalogItem) error
	UpdateDish(ctx context.Context, dish *domain.CatalogItem) (int64, error)
	DeleteDish(ctx context.Context, restaurantID, dishID string) (int64, error)
}

type CategoryRepository interface {
	ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) (int64, error)
	DeleteCategory(ctx context.Context, restaurantID, categoryID string) (int64, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context, restaurantID string) (*domain.CartSettings, error)
	SaveSettings(ctx context.Context, settings *domain.CartSettings) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.SubmittedOrder) error
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	GetOrder(ctx context.Context, orderID string) (*domain.SubmittedOrder, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.SubmittedOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (int64, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	ListDishes(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.CatalogItem, error)
	GetDish(ctx context.Context, restaurantID, dishID string) (*domain.CatalogItem, error)
	CreateDish(ctx context.Context, dish *domain.CatalogItem) error
	UpdateDish(ctx context.Context, dish *domain.CatalogItem) error
	DeleteDish(ctx context.Context, restaurantID, dishID string) error
	ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID string) error
}

type SettingsServiceInterface interface {
	Resolve(ctx context.Context, restaurantID string) (domain.CartSettings, error)
	Update(ctx context.Context, restaurantID string, patch domain.SettingsPatch) (domain.CartSettings, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.OrderRequest) (*domain.SubmittedOrder, error)
	Get(ctx context.Context, orderID string) (*domain.SubmittedOrder, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.SubmittedOrder, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.SubmittedOrder, error)
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
	QRLink(orderID string) string
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ SettingsServiceInterface = (*SettingsService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
)
