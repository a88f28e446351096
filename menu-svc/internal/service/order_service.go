package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

// OrderService accepts checkout submissions. Totals are recomputed from the
// submitted lines against the restaurant's current settings; client-supplied
// amounts are informational only.
type OrderService struct {
	repo      OrderRepository
	settings  SettingsServiceInterface
	qr        QRGenerator
	publisher OrderPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, settings SettingsServiceInterface, qr QRGenerator, publisher OrderPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		settings:  settings,
		qr:        qr,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func checkLines(lines []domain.LineItem) error {
	for _, line := range lines {
		if line.ItemID == "" {
			return fmt.Errorf("%w: line without item id", ErrInvalidOrder)
		}
		if line.Quantity < 1 || line.Quantity > domain.MaxLineQuantity {
			return fmt.Errorf("%w: item %s", domain.ErrInvalidQuantity, line.ItemID)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: negative price for item %s", ErrInvalidOrder, line.ItemID)
		}
	}
	return nil
}

func (s *OrderService) Create(ctx context.Context, req domain.OrderRequest) (*domain.SubmittedOrder, error) {
	if req.RestaurantID == "" {
		req.RestaurantID = domain.DefaultRestaurantID
	}
	if err := checkLines(req.Items); err != nil {
		return nil, err
	}

	settings, err := s.settings.Resolve(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	quote, err := domain.ValidateCheckout(domain.CheckoutInput{
		Lines:           req.Items,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Delivery:        req.Delivery,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	}, settings)
	if err != nil {
		return nil, err
	}

	if !req.TotalAmount.IsZero() && !req.TotalAmount.Equal(quote.Total) {
		s.logger.Warn("client total differs from recomputed total",
			zap.String("restaurant_id", req.RestaurantID),
			zap.String("client_total", req.TotalAmount.String()),
			zap.String("total", quote.Total.String()))
	}

	order := &domain.SubmittedOrder{
		ID:            uuid.NewString(),
		RestaurantID:  req.RestaurantID,
		Items:         req.Items,
		Subtotal:      quote.Subtotal,
		DeliveryFee:   quote.DeliveryFee,
		TotalAmount:   quote.Total,
		Currency:      settings.Currency,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Phone:         strings.TrimSpace(req.Phone),
		Delivery:      quote.Delivery,
		Comment:       req.Comment,
		PaymentMethod: quote.PaymentMethod,
		Status:        domain.StatusPending,
		CreatedAt:     s.now().UTC(),
	}
	if quote.Delivery {
		order.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if qr, err := s.qr.Generate(order.ID); err != nil {
		s.logger.Warn("failed to generate qr code", zap.String("order_id", order.ID), zap.Error(err))
	} else if err := s.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
		s.logger.Warn("failed to store qr code", zap.String("order_id", order.ID), zap.Error(err))
	}
	order.QRCode = s.QRLink(order.ID)

	s.publish(ctx, domain.EventOrderCreated, order)

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("restaurant_id", order.RestaurantID),
		zap.String("total", order.TotalAmount.String()))
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.SubmittedOrder) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Items:        order.Items,
		Timestamp:    s.now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("type", eventType), zap.String("order_id", order.ID), zap.Error(err))
	}
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.SubmittedOrder, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.SubmittedOrder, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListOrders(ctx, filter)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.SubmittedOrder, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalStatusChange, order.Status, status)
	}

	rows, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	order.Status = status

	s.publish(ctx, domain.EventOrderStatusChanged, order)
	return order, nil
}

// GetQRCode returns the stored receipt QR code and regenerates it when the
// order was stored without one.
func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) > 0 {
		return qr, nil
	}

	qr, err = s.qr.Generate(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
		s.logger.Warn("failed to cache regenerated qr code", zap.String("order_id", orderID), zap.Error(err))
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID string) string {
	return "/api/orders/" + orderID + "/qrcode"
}
