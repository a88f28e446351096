package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRestaurantID is used when a request names no restaurant.
const DefaultRestaurantID = "main_restaurant"

const DefaultPaymentMethod = "cash"

type CartSettings struct {
	RestaurantID        string          `json:"restaurant_id"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	MinOrderAmount      decimal.Decimal `json:"min_order_amount"`
	Currency            string          `json:"currency"`
	IsDeliveryAvailable bool            `json:"is_delivery_available"`
	PaymentMethods      []string        `json:"payment_methods"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// DefaultCartSettings is what a restaurant without a stored record gets.
func DefaultCartSettings(restaurantID string, now time.Time) CartSettings {
	if restaurantID == "" {
		restaurantID = DefaultRestaurantID
	}
	return CartSettings{
		RestaurantID:        restaurantID,
		DeliveryFee:         decimal.Zero,
		MinOrderAmount:      decimal.NewFromInt(20),
		Currency:            "TMT",
		IsDeliveryAvailable: true,
		PaymentMethods:      []string{DefaultPaymentMethod},
		UpdatedAt:           now,
	}
}

// AcceptsPayment reports whether method is allowed. An empty method list
// restricts nothing.
func (s CartSettings) AcceptsPayment(method string) bool {
	if len(s.PaymentMethods) == 0 {
		return true
	}
	for _, m := range s.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// SettingsPatch lists the fields an admin may change. Nil means unchanged.
// Values are not range checked: negative fees and an empty method list are
// stored as given.
type SettingsPatch struct {
	DeliveryFee         *decimal.Decimal `json:"delivery_fee,omitempty"`
	MinOrderAmount      *decimal.Decimal `json:"min_order_amount,omitempty"`
	Currency            *string          `json:"currency,omitempty"`
	IsDeliveryAvailable *bool            `json:"is_delivery_available,omitempty"`
	PaymentMethods      *[]string        `json:"payment_methods,omitempty"`
}

func (p SettingsPatch) Apply(s CartSettings) CartSettings {
	if p.DeliveryFee != nil {
		s.DeliveryFee = *p.DeliveryFee
	}
	if p.MinOrderAmount != nil {
		s.MinOrderAmount = *p.MinOrderAmount
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.IsDeliveryAvailable != nil {
		s.IsDeliveryAvailable = *p.IsDeliveryAvailable
	}
	if p.PaymentMethods != nil {
		s.PaymentMethods = append([]string(nil), (*p.PaymentMethods)...)
	}
	return s
}
