package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(prices ...string) []LineItem {
	var out []LineItem
	for i, p := range prices {
		out = append(out, LineItem{ItemID: fmt.Sprintf("dish-%d", i), Name: "Dish", UnitPrice: decimal.RequireFromString(p), Quantity: 1})
	}
	return out
}

func TestDefaultCartSettings(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	s := DefaultCartSettings("unknown", now)

	assert.Equal(t, "unknown", s.RestaurantID)
	assert.True(t, s.DeliveryFee.Equal(decimal.Zero))
	assert.True(t, s.MinOrderAmount.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "TMT", s.Currency)
	assert.True(t, s.IsDeliveryAvailable)
	assert.Equal(t, []string{"cash"}, s.PaymentMethods)
	assert.Equal(t, now, s.UpdatedAt)

	assert.Equal(t, DefaultRestaurantID, DefaultCartSettings("", now).RestaurantID)
}

func TestSettingsPatch_Apply(t *testing.T) {
	base := DefaultCartSettings("r1", time.Now())
	fee := decimal.NewFromInt(-5)
	currency := "USD"
	methods := []string{}

	patched := SettingsPatch{DeliveryFee: &fee, Currency: &currency, PaymentMethods: &methods}.Apply(base)

	assert.True(t, patched.DeliveryFee.Equal(fee), "negative fee is stored as given")
	assert.Equal(t, "USD", patched.Currency)
	assert.Empty(t, patched.PaymentMethods)
	assert.True(t, patched.MinOrderAmount.Equal(base.MinOrderAmount))
	assert.Equal(t, base.IsDeliveryAvailable, patched.IsDeliveryAvailable)
	assert.Equal(t, []string{"cash"}, base.PaymentMethods, "base is not mutated")
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+99365123456", true},
		{"+993 (65) 12-34-56", true},
		{"8 800 555 35 35", true},
		{"", false},
		{"12345", false},
		{"phone", false},
		{"+99365123456789012", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.phone, func(t *testing.T) {
			assert.Equal(t, testCase.want, ValidPhone(testCase.phone))
		})
	}
}

func TestValidateCheckout(t *testing.T) {
	settings := DefaultCartSettings("r1", time.Now())
	noDelivery := settings
	noDelivery.IsDeliveryAvailable = false
	cardOnly := settings
	cardOnly.PaymentMethods = []string{"card"}
	noMethods := SettingsPatch{PaymentMethods: &[]string{}}.Apply(settings)

	tests := []struct {
		name     string
		input    CheckoutInput
		settings CartSettings
		wantErr  error
	}{
		{
			name:     "empty cart wins over every other failure",
			input:    CheckoutInput{},
			settings: settings,
			wantErr:  ErrEmptyCart,
		},
		{
			name:     "below minimum",
			input:    CheckoutInput{Lines: lines("15"), CustomerName: "Aman", Phone: "+99365123456"},
			settings: settings,
			wantErr:  ErrBelowMinimum,
		},
		{
			name:     "below minimum reported before bad customer info",
			input:    CheckoutInput{Lines: lines("15")},
			settings: settings,
			wantErr:  ErrBelowMinimum,
		},
		{
			name:     "missing name",
			input:    CheckoutInput{Lines: lines("25"), Phone: "+99365123456"},
			settings: settings,
			wantErr:  ErrInvalidCustomerInfo,
		},
		{
			name:     "bad phone",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "abc"},
			settings: settings,
			wantErr:  ErrInvalidCustomerInfo,
		},
		{
			name:     "delivery without address",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "+99365123456", Delivery: true},
			settings: settings,
			wantErr:  ErrMissingAddress,
		},
		{
			name:     "delivery unavailable is treated as pickup",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "+99365123456", Delivery: true},
			settings: noDelivery,
		},
		{
			name:     "unsupported payment method",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "+99365123456", PaymentMethod: "crypto"},
			settings: settings,
			wantErr:  ErrUnsupportedPaymentMethod,
		},
		{
			name:     "default method must be accepted too",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "+99365123456"},
			settings: cardOnly,
		},
		{
			name:     "empty method list accepts any method",
			input:    CheckoutInput{Lines: lines("25"), CustomerName: "Aman", Phone: "+99365123456", PaymentMethod: "card"},
			settings: noMethods,
		},
		{
			name:     "exactly the minimum passes",
			input:    CheckoutInput{Lines: lines("12.5", "7.5"), CustomerName: "Aman", Phone: "+99365123456"},
			settings: settings,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ValidateCheckout(testCase.input, testCase.settings)
			if testCase.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestValidateCheckout_Quote(t *testing.T) {
	settings := DefaultCartSettings("r1", time.Now())
	settings.DeliveryFee = decimal.NewFromInt(5)
	settings.PaymentMethods = []string{"cash", "card"}

	in := CheckoutInput{
		Lines:           []LineItem{{ItemID: "a", UnitPrice: decimal.RequireFromString("10.25"), Quantity: 2}},
		CustomerName:    "Aman",
		Phone:           "+99365123456",
		Delivery:        true,
		DeliveryAddress: "Ashgabat, Magtymguly 1",
	}

	quote, err := ValidateCheckout(in, settings)
	require.NoError(t, err)
	assert.Equal(t, "20.5", quote.Subtotal.String())
	assert.Equal(t, "5", quote.DeliveryFee.String())
	assert.Equal(t, "25.5", quote.Total.String())
	assert.True(t, quote.Delivery)
	assert.Equal(t, "cash", quote.PaymentMethod)

	in.Delivery = false
	quote, err = ValidateCheckout(in, settings)
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(quote.Subtotal))
}

func TestValidateCheckout_EmptyMethodListDefaultsToCash(t *testing.T) {
	settings := SettingsPatch{PaymentMethods: &[]string{}}.Apply(DefaultCartSettings("r1", time.Now()))
	require.Empty(t, settings.PaymentMethods)

	quote, err := ValidateCheckout(CheckoutInput{
		Lines:        lines("25"),
		CustomerName: "Aman",
		Phone:        "+99365123456",
	}, settings)

	require.NoError(t, err)
	assert.Equal(t, DefaultPaymentMethod, quote.PaymentMethod)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(25)))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("%w: subtotal 15", ErrBelowMinimum)

	assert.Equal(t, "below_minimum", KindOf(wrapped))
	assert.Equal(t, "submission_failed", KindOf(fmt.Errorf("status 500: %w", ErrSubmissionFailed)))
	assert.Equal(t, "", KindOf(errors.New("boom")))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrSubmissionFailed))
}

func TestOrderStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPreparing.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, OrderStatus("lost").Valid())
}

func TestLocalizedText_Default(t *testing.T) {
	assert.Equal(t, "Плов", LocalizedText{RU: "Плов", TK: "Palow"}.Default())
	assert.Equal(t, "Palow", LocalizedText{TK: "Palow"}.Default())
}
