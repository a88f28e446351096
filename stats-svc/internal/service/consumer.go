package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		logger: logger,
	}
}

// Start reads order events until ctx is cancelled. Broken messages are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("order events consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("order events consumer stopped")
				return
			}
			c.logger.Error("failed to read message", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.logger.Warn("skipping malformed order event",
				zap.Int64("offset", message.Offset), zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.logger.Error("failed to apply order event",
				zap.String("type", event.Type),
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
		}
	}
}

var errIncompleteEvent = errors.New("event has no order or restaurant id")

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.OrderID == "" || event.RestaurantID == "" {
		return errIncompleteEvent
	}

	var (
		applied bool
		err     error
	)
	switch event.Type {
	case domain.EventOrderCreated:
		applied, err = c.Store.RecordOrderCreated(ctx, event)
	case domain.EventOrderStatusChanged:
		applied, err = c.Store.RecordStatusChange(ctx, event)
	default:
		c.logger.Debug("ignoring order event", zap.String("type", event.Type))
		return nil
	}
	if err != nil {
		return fmt.Errorf("record %s: %w", event.Type, err)
	}

	c.logger.Debug("order event processed",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID),
		zap.Bool("applied", applied),
	)
	return nil
}
