package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/storefront-svc/internal/cart"
)

// OrderDraft is the customer part of an order. The cart supplies the lines.
type OrderDraft struct {
	CustomerName    string `json:"customer_name"`
	Phone           string `json:"phone"`
	Delivery        bool   `json:"delivery"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Comment         string `json:"comment,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.SubmittedOrder, error)
}

// SettingsSource resolves checkout constraints. On error the submission
// proceeds on domain.DefaultCartSettings.
type SettingsSource interface {
	Settings(ctx context.Context, restaurantID string) (domain.CartSettings, error)
}

// Submission drives one order draft from Draft to Succeeded. It is not safe
// for concurrent use and does not guard against two submissions of the same
// cart; callers serialize checkouts per session.
type Submission struct {
	state    State
	draft    OrderDraft
	cart     *cart.Engine
	creator  OrderCreator
	settings SettingsSource
	logger   *zap.Logger
	now      func() time.Time

	lastErr error
	order   *domain.SubmittedOrder
}

func NewSubmission(engine *cart.Engine, creator OrderCreator, settings SettingsSource, logger *zap.Logger) *Submission {
	return &Submission{
		state:    Draft,
		cart:     engine,
		creator:  creator,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Submission) State() State { return s.state }

func (s *Submission) Draft() OrderDraft { return s.draft }

// Err is the error of the last attempt, if it was rejected or failed.
func (s *Submission) Err() error { return s.lastErr }

func (s *Submission) Order() *domain.SubmittedOrder { return s.order }

func (s *Submission) transition(next State) error {
	if !s.state.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.state, next)
	}
	s.state = next
	return nil
}

// UpdateDraft replaces the draft and returns the machine to Draft.
func (s *Submission) UpdateDraft(draft OrderDraft) error {
	if !s.state.Editable() {
		return fmt.Errorf("%w: draft is not editable in %s", ErrIllegalTransition, s.state)
	}
	s.draft = draft
	s.lastErr = nil
	s.state = Draft
	return nil
}

func (s *Submission) resolveSettings(ctx context.Context, restaurantID string) domain.CartSettings {
	settings, err := s.settings.Settings(ctx, restaurantID)
	if err == nil {
		return settings
	}
	s.logger.Warn("using default cart settings", zap.String("restaurant_id", restaurantID), zap.Error(err))
	return domain.DefaultCartSettings(restaurantID, s.now().UTC())
}

// Submit validates the draft against the cart and the restaurant settings and,
// when valid, makes exactly one order-creation call. Rejected and Failed
// attempts keep the cart and the draft, and Submit may be called again.
func (s *Submission) Submit(ctx context.Context) (*domain.SubmittedOrder, error) {
	if err := s.transition(Validating); err != nil {
		return nil, err
	}
	s.lastErr = nil

	restaurantID := s.cart.RestaurantID()
	lines := s.cart.Lines()

	var settings domain.CartSettings
	if len(lines) > 0 {
		settings = s.resolveSettings(ctx, restaurantID)
	}

	quote, err := domain.ValidateCheckout(domain.CheckoutInput{
		Lines:           lines,
		CustomerName:    s.draft.CustomerName,
		Phone:           s.draft.Phone,
		Delivery:        s.draft.Delivery,
		DeliveryAddress: s.draft.DeliveryAddress,
		PaymentMethod:   s.draft.PaymentMethod,
	}, settings)
	if err != nil {
		s.lastErr = err
		s.state = Rejected
		return nil, err
	}

	s.state = Submitting
	req := domain.OrderRequest{
		RestaurantID:    restaurantID,
		Items:           lines,
		CustomerName:    s.draft.CustomerName,
		Phone:           s.draft.Phone,
		Delivery:        quote.Delivery,
		DeliveryAddress: s.draft.DeliveryAddress,
		Comment:         s.draft.Comment,
		PaymentMethod:   quote.PaymentMethod,
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		TotalAmount:     quote.Total,
	}
	if !quote.Delivery {
		req.DeliveryAddress = ""
	}

	order, err := s.creator.CreateOrder(ctx, req)
	if err == nil && (order == nil || order.ID == "") {
		err = errors.New("response carries no order id")
	}
	if err != nil {
		if !errors.Is(err, domain.ErrSubmissionFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
		}
		s.lastErr = err
		s.state = Failed
		return nil, err
	}

	s.state = Succeeded
	s.order = order
	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn("order placed but cart was not cleared", zap.String("order_id", order.ID), zap.Error(err))
	}
	return order, nil
}
