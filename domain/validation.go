package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidPhone accepts an optional leading plus and 7 to 15 digits. Spaces,
// dashes and parentheses are ignored.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(strings.TrimSpace(phone)))
}

type CheckoutInput struct {
	Lines           []LineItem
	CustomerName    string
	Phone           string
	Delivery        bool
	DeliveryAddress string
	PaymentMethod   string
}

// Quote is the priced result of a successful validation.
type Quote struct {
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	Total         decimal.Decimal
	Delivery      bool
	PaymentMethod string
}

// ValidateCheckout runs the checkout checks in order and returns the first
// failure only.
func ValidateCheckout(in CheckoutInput, settings CartSettings) (Quote, error) {
	if len(in.Lines) == 0 {
		return Quote{}, ErrEmptyCart
	}

	subtotal := Subtotal(in.Lines)
	if subtotal.LessThan(settings.MinOrderAmount) {
		return Quote{}, fmt.Errorf("%w: subtotal %s, minimum %s %s",
			ErrBelowMinimum, subtotal.StringFixed(2), settings.MinOrderAmount.StringFixed(2), settings.Currency)
	}

	if strings.TrimSpace(in.CustomerName) == "" || !ValidPhone(in.Phone) {
		return Quote{}, ErrInvalidCustomerInfo
	}

	delivery := in.Delivery && settings.IsDeliveryAvailable
	if delivery && strings.TrimSpace(in.DeliveryAddress) == "" {
		return Quote{}, ErrMissingAddress
	}

	method := in.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
		if len(settings.PaymentMethods) > 0 {
			method = settings.PaymentMethods[0]
		}
	}
	if !settings.AcceptsPayment(method) {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}

	fee := decimal.Zero
	if delivery {
		fee = settings.DeliveryFee
	}

	return Quote{
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal.Add(fee),
		Delivery:      delivery,
		PaymentMethod: method,
	}, nil
}
