package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LocalizedText struct {
	RU string `json:"ru"`
	TK string `json:"tk,omitempty"`
}

// Default returns the Russian text, or the Turkmen one when Russian is missing.
func (t LocalizedText) Default() string {
	if t.RU != "" {
		return t.RU
	}
	return t.TK
}

type CatalogItem struct {
	ID                 string          `json:"id"`
	RestaurantID       string          `json:"restaurant_id"`
	Name               LocalizedText   `json:"name"`
	Description        LocalizedText   `json:"description"`
	Price              decimal.Decimal `json:"price"`
	CategoryID         string          `json:"category_id"`
	IsActive           bool            `json:"is_active"`
	IsAvailable        bool            `json:"is_available"`
	ImageURL           string          `json:"image_url,omitempty"`
	Calories           int             `json:"calories,omitempty"`
	WeightGrams        int             `json:"weight,omitempty"`
	PreparationMinutes int             `json:"preparation_time,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (i CatalogItem) Orderable() bool {
	return i.IsActive && i.IsAvailable
}

type Category struct {
	ID           string        `json:"id"`
	RestaurantID string        `json:"restaurant_id"`
	Name         LocalizedText `json:"name"`
	SortOrder    int           `json:"sort_order"`
	IsActive     bool          `json:"is_active"`
}

// MaxLineQuantity caps the quantity of a single line.
const MaxLineQuantity = 999

type LineItem struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func Subtotal(lines []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Total())
	}
	return sum
}

func ItemCount(lines []LineItem) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var statusFlow = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderFilter struct {
	RestaurantID string
	Status       OrderStatus
}

// OrderRequest is what a storefront sends to the order-creation endpoint.
type OrderRequest struct {
	RestaurantID    string          `json:"restaurant_id"`
	Items           []LineItem      `json:"items"`
	CustomerName    string          `json:"customer_name"`
	Phone           string          `json:"phone"`
	Delivery        bool            `json:"delivery"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Comment         string          `json:"comment,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type SubmittedOrder struct {
	ID              string          `json:"id"`
	RestaurantID    string          `json:"restaurant_id"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	CustomerName    string          `json:"customer_name"`
	Phone           string          `json:"phone"`
	Delivery        bool            `json:"delivery"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Comment         string          `json:"comment,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	Status          OrderStatus     `json:"status"`
	QRCode          string          `json:"qr_code,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	RestaurantID string          `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Items        []LineItem      `json:"items,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
