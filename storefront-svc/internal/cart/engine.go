package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"overcooked-ordering/domain"
)

// Store persists whole cart snapshots per session and restaurant. Save
// replaces whatever was stored before.
type Store interface {
	Load(ctx context.Context, sessionID, restaurantID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
}

// Engine owns the cart of one session. Every mutation that changes the cart
// is written through to the store; a failed write leaves the engine unchanged.
type Engine struct {
	store     Store
	sessionID string
	cart      *Cart
}

func Open(ctx context.Context, store Store, sessionID, restaurantID string) (*Engine, error) {
	c, err := store.Load(ctx, sessionID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if c == nil {
		c = New(restaurantID)
	}
	return &Engine{store: store, sessionID: sessionID, cart: c}, nil
}

func (e *Engine) commit(ctx context.Context, next *Cart) error {
	if err := e.store.Save(ctx, e.sessionID, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	e.cart = next
	return nil
}

func (e *Engine) AddItem(ctx context.Context, item domain.CatalogItem, quantity int) error {
	next := e.cart.clone()
	if err := next.AddItem(item, quantity); err != nil {
		return err
	}
	return e.commit(ctx, next)
}

func (e *Engine) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	next := e.cart.clone()
	changed, err := next.UpdateQuantity(itemID, quantity)
	if err != nil || !changed {
		return err
	}
	return e.commit(ctx, next)
}

func (e *Engine) RemoveItem(ctx context.Context, itemID string) error {
	next := e.cart.clone()
	if !next.RemoveItem(itemID) {
		return nil
	}
	return e.commit(ctx, next)
}

func (e *Engine) Clear(ctx context.Context) error {
	next := e.cart.clone()
	if !next.Clear() {
		return nil
	}
	return e.commit(ctx, next)
}

func (e *Engine) RestaurantID() string {
	return e.cart.RestaurantID
}

// Lines returns a copy of the current lines.
func (e *Engine) Lines() []domain.LineItem {
	return append([]domain.LineItem{}, e.cart.Lines...)
}

func (e *Engine) Subtotal() decimal.Decimal {
	return e.cart.Subtotal()
}

func (e *Engine) ItemCount() int {
	return e.cart.ItemCount()
}

func (e *Engine) IsEmpty() bool {
	return e.cart.IsEmpty()
}
