package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"overcooked-ordering/domain"
)

// Cart holds one customer's lines for one restaurant, in insertion order.
// A line's quantity is always between 1 and domain.MaxLineQuantity and each
// item id appears once.
type Cart struct {
	RestaurantID string            `json:"restaurant_id"`
	Lines        []domain.LineItem `json:"lines"`
}

func New(restaurantID string) *Cart {
	return &Cart{RestaurantID: restaurantID, Lines: []domain.LineItem{}}
}

func (c *Cart) clone() *Cart {
	return &Cart{
		RestaurantID: c.RestaurantID,
		Lines:        append([]domain.LineItem{}, c.Lines...),
	}
}

func (c *Cart) index(itemID string) int {
	for i, line := range c.Lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddItem increments an existing line or appends a new one. The name and
// price are copied from item, so later catalog changes do not reach lines
// already in the cart.
func (c *Cart) AddItem(item domain.CatalogItem, quantity int) error {
	if quantity < 1 || quantity > domain.MaxLineQuantity {
		return domain.ErrInvalidQuantity
	}
	if i := c.index(item.ID); i >= 0 {
		if c.Lines[i].Quantity > domain.MaxLineQuantity-quantity {
			return fmt.Errorf("%w: line %s already holds %d", domain.ErrInvalidQuantity, item.ID, c.Lines[i].Quantity)
		}
		c.Lines[i].Quantity += quantity
		return nil
	}
	c.Lines = append(c.Lines, domain.LineItem{
		ItemID:    item.ID,
		Name:      item.Name.Default(),
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity sets the quantity of a line and removes it when quantity
// drops to zero or below. It reports whether the cart changed; a quantity
// above domain.MaxLineQuantity is rejected and leaves the line as it was.
func (c *Cart) UpdateQuantity(itemID string, quantity int) (bool, error) {
	if quantity > domain.MaxLineQuantity {
		return false, domain.ErrInvalidQuantity
	}
	i := c.index(itemID)
	if i < 0 {
		return false, nil
	}
	if quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return true, nil
	}
	if c.Lines[i].Quantity == quantity {
		return false, nil
	}
	c.Lines[i].Quantity = quantity
	return true, nil
}

func (c *Cart) RemoveItem(itemID string) bool {
	changed, _ := c.UpdateQuantity(itemID, 0)
	return changed
}

func (c *Cart) Clear() bool {
	if len(c.Lines) == 0 {
		return false
	}
	c.Lines = []domain.LineItem{}
	return true
}

func (c *Cart) Subtotal() decimal.Decimal {
	return domain.Subtotal(c.Lines)
}

func (c *Cart) ItemCount() int {
	return domain.ItemCount(c.Lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
