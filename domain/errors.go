package domain

import "errors"

var (
	ErrInvalidQuantity          = errors.New("quantity must be between 1 and 999")
	ErrEmptyCart                = errors.New("cart is empty")
	ErrBelowMinimum             = errors.New("subtotal is below the minimum order amount")
	ErrInvalidCustomerInfo      = errors.New("customer name and a valid phone number are required")
	ErrMissingAddress           = errors.New("delivery address is required")
	ErrUnsupportedPaymentMethod = errors.New("payment method is not accepted")
	ErrSubmissionFailed         = errors.New("order submission failed")
	ErrSettingsFetchFailed      = errors.New("cart settings could not be fetched")
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrEmptyCart, "empty_cart"},
	{ErrBelowMinimum, "below_minimum"},
	{ErrInvalidCustomerInfo, "invalid_customer_info"},
	{ErrMissingAddress, "missing_address"},
	{ErrUnsupportedPaymentMethod, "unsupported_payment_method"},
	{ErrSubmissionFailed, "submission_failed"},
	{ErrSettingsFetchFailed, "settings_fetch_failed"},
}

// KindOf returns the stable kind string for errors of this package, or "" for
// anything else.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// IsValidationError reports whether err is one of the local checkout checks.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrInvalidCustomerInfo) ||
		errors.Is(err, ErrMissingAddress) ||
		errors.Is(err, ErrUnsupportedPaymentMethod)
}
