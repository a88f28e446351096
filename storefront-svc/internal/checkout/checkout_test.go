package checkout_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/storefront-svc/internal/cart"
	"overcooked-ordering/storefront-svc/internal/checkout"
)

type memoryStore struct {
	carts map[string]*cart.Cart
}

func (s *memoryStore) Load(_ context.Context, sessionID, restaurantID string) (*cart.Cart, error) {
	return s.carts[sessionID+"/"+restaurantID], nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	s.carts[sessionID+"/"+c.RestaurantID] = c
	return nil
}

type fakeSettings struct {
	settings domain.CartSettings
	down     bool
}

func (f *fakeSettings) Settings(_ context.Context, restaurantID string) (domain.CartSettings, error) {
	if f.down {
		return domain.DefaultCartSettings(restaurantID, time.Now()),
			fmt.Errorf("%w: connection refused", domain.ErrSettingsFetchFailed)
	}
	return f.settings, nil
}

type fakeCreator struct {
	calls      int
	failStatus int
}

func (f *fakeCreator) CreateOrder(_ context.Context, req domain.OrderRequest) (*domain.SubmittedOrder, error) {
	f.calls++
	if f.failStatus != 0 {
		return nil, fmt.Errorf("%w: menu-svc answered %d", domain.ErrSubmissionFailed, f.failStatus)
	}
	return &domain.SubmittedOrder{
		ID:           "order-" + strconv.Itoa(f.calls),
		RestaurantID: req.RestaurantID,
		Items:        req.Items,
		Subtotal:     req.Subtotal,
		DeliveryFee:  req.DeliveryFee,
		TotalAmount:  req.TotalAmount,
		Delivery:     req.Delivery,
		Status:       domain.StatusPending,
	}, nil
}

type checkoutTestContext struct {
	ctx        context.Context
	store      *memoryStore
	settings   *fakeSettings
	creator    *fakeCreator
	engine     *cart.Engine
	submission *checkout.Submission
	draft      checkout.OrderDraft
	order      *domain.SubmittedOrder
	err        error

	secondEngine     *cart.Engine
	secondSubmission *checkout.Submission
	secondOrder      *domain.SubmittedOrder
	secondErr        error
}

func (c *checkoutTestContext) reset() {
	c.ctx = context.Background()
	c.store = &memoryStore{carts: map[string]*cart.Cart{}}
	c.settings = &fakeSettings{}
	c.creator = &fakeCreator{}
	c.engine = nil
	c.submission = nil
	c.draft = checkout.OrderDraft{}
	c.order = nil
	c.err = nil
	c.secondEngine = nil
	c.secondSubmission = nil
	c.secondOrder = nil
	c.secondErr = nil
}

func (c *checkoutTestContext) restaurantHasDefaultSettings(restaurantID string) error {
	c.settings.settings = domain.DefaultCartSettings(restaurantID, time.Now())
	return nil
}

func (c *checkoutTestContext) restaurantChargesADeliveryFeeOf(_ string, fee string) error {
	amount, err := decimal.NewFromString(fee)
	if err != nil {
		return err
	}
	c.settings.settings.DeliveryFee = amount
	return nil
}

func (c *checkoutTestContext) deliveryIsUnavailable() error {
	c.settings.settings.IsDeliveryAvailable = false
	return nil
}

func (c *checkoutTestContext) theSettingsServiceIsDown() error {
	c.settings.down = true
	return nil
}

func (c *checkoutTestContext) theOrderServiceIsHealthy() error {
	c.creator.failStatus = 0
	return nil
}

func (c *checkoutTestContext) theOrderServiceFailsWithStatus(status int) error {
	c.creator.failStatus = status
	return nil
}

func (c *checkoutTestContext) openCart() error {
	engine, err := cart.Open(c.ctx, c.store, "session-1", domain.DefaultRestaurantID)
	if err != nil {
		return err
	}
	c.engine = engine
	return nil
}

func (c *checkoutTestContext) theCartContains(table *godog.Table) error {
	if err := c.openCart(); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}
		item := domain.CatalogItem{
			ID:          row.Cells[0].Value,
			Name:        domain.LocalizedText{RU: row.Cells[1].Value},
			Price:       price,
			IsActive:    true,
			IsAvailable: true,
		}
		if err := c.engine.AddItem(c.ctx, item, quantity); err != nil {
			return err
		}
	}
	return nil
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	return c.openCart()
}

func (c *checkoutTestContext) updateDraft() error {
	if c.submission == nil {
		return nil
	}
	return c.submission.UpdateDraft(c.draft)
}

func (c *checkoutTestContext) theCustomerIsWithPhone(name, phone string) error {
	c.draft.CustomerName = name
	c.draft.Phone = phone
	return c.updateDraft()
}

func (c *checkoutTestContext) theCustomerAsksForDeliveryTo(address string) error {
	c.draft.Delivery = true
	c.draft.DeliveryAddress = address
	return c.updateDraft()
}

func (c *checkoutTestContext) theCustomerPaysWith(method string) error {
	c.draft.PaymentMethod = method
	return c.updateDraft()
}

func (c *checkoutTestContext) theCustomerChangesThePhoneTo(phone string) error {
	c.draft.Phone = phone
	return c.updateDraft()
}

func (c *checkoutTestContext) theCustomerSubmitsTheOrder() error {
	if c.submission == nil {
		if c.engine == nil {
			if err := c.openCart(); err != nil {
				return err
			}
		}
		c.submission = checkout.NewSubmission(c.engine, c.creator, c.settings, zap.NewNop())
		if err := c.submission.UpdateDraft(c.draft); err != nil {
			return err
		}
	}
	c.order, c.err = c.submission.Submit(c.ctx)
	return nil
}

func (c *checkoutTestContext) aSecondTabOpensTheSameCart() error {
	engine, err := cart.Open(c.ctx, c.store, "session-1", domain.DefaultRestaurantID)
	if err != nil {
		return err
	}
	c.secondEngine = engine
	return nil
}

func (c *checkoutTestContext) theSecondTabSubmitsTheOrder() error {
	c.secondSubmission = checkout.NewSubmission(c.secondEngine, c.creator, c.settings, zap.NewNop())
	if err := c.secondSubmission.UpdateDraft(c.draft); err != nil {
		return err
	}
	c.secondOrder, c.secondErr = c.secondSubmission.Submit(c.ctx)
	return nil
}

func (c *checkoutTestContext) theSecondTabsSubmissionIs(state string) error {
	if got := c.secondSubmission.State().String(); got != state {
		return fmt.Errorf("expected second tab state %q, got %q (err: %v)", state, got, c.secondErr)
	}
	return nil
}

func (c *checkoutTestContext) theTwoTabsPlacedDifferentOrders() error {
	if c.order == nil || c.secondOrder == nil {
		return fmt.Errorf("expected two orders, got %v and %v", c.order, c.secondOrder)
	}
	if c.order.ID == c.secondOrder.ID {
		return fmt.Errorf("expected different order ids, both were %q", c.order.ID)
	}
	return nil
}

func (c *checkoutTestContext) theSubmissionIs(state string) error {
	if got := c.submission.State().String(); got != state {
		return fmt.Errorf("expected state %q, got %q (err: %v)", state, got, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theErrorKindIs(kind string) error {
	if got := domain.KindOf(c.err); got != kind {
		return fmt.Errorf("expected error kind %q, got %q (err: %v)", kind, got, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCartHoldsItems(count int) error {
	if got := c.engine.ItemCount(); got != count {
		return fmt.Errorf("expected %d items in cart, got %d", count, got)
	}
	return nil
}

func (c *checkoutTestContext) theOrderServiceWasCalledTimes(count int) error {
	if c.creator.calls != count {
		return fmt.Errorf("expected %d order service calls, got %d", count, c.creator.calls)
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalIs(total string) error {
	want, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	if c.order == nil {
		return fmt.Errorf("no order was placed (err: %v)", c.err)
	}
	if !c.order.TotalAmount.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, c.order.TotalAmount)
	}
	return nil
}

func (c *checkoutTestContext) theOrderDeliveryFeeIs(fee string) error {
	want, err := decimal.NewFromString(fee)
	if err != nil {
		return err
	}
	if c.order == nil {
		return fmt.Errorf("no order was placed (err: %v)", c.err)
	}
	if !c.order.DeliveryFee.Equal(want) {
		return fmt.Errorf("expected delivery fee %s, got %s", want, c.order.DeliveryFee)
	}
	return nil
}

func (c *checkoutTestContext) submittingAgainIsRefused() error {
	_, err := c.submission.Submit(c.ctx)
	if !errors.Is(err, checkout.ErrIllegalTransition) {
		return fmt.Errorf("expected an illegal transition, got %v", err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^restaurant "([^"]*)" has default settings$`, tc.restaurantHasDefaultSettings)
	ctx.Step(`^restaurant "([^"]*)" charges a delivery fee of (\S+)$`, tc.restaurantChargesADeliveryFeeOf)
	ctx.Step(`^delivery is unavailable$`, tc.deliveryIsUnavailable)
	ctx.Step(`^the settings service is down$`, tc.theSettingsServiceIsDown)
	ctx.Step(`^the order service is healthy$`, tc.theOrderServiceIsHealthy)
	ctx.Step(`^the order service fails with status (\d+)$`, tc.theOrderServiceFailsWithStatus)
	ctx.Step(`^the cart contains:$`, tc.theCartContains)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the customer is "([^"]*)" with phone "([^"]*)"$`, tc.theCustomerIsWithPhone)
	ctx.Step(`^the customer asks for delivery to "([^"]*)"$`, tc.theCustomerAsksForDeliveryTo)
	ctx.Step(`^the customer pays with "([^"]*)"$`, tc.theCustomerPaysWith)
	ctx.Step(`^a second tab opens the same cart$`, tc.aSecondTabOpensTheSameCart)

	// When steps
	ctx.Step(`^the customer submits the order$`, tc.theCustomerSubmitsTheOrder)
	ctx.Step(`^the customer changes the phone to "([^"]*)"$`, tc.theCustomerChangesThePhoneTo)
	ctx.Step(`^the second tab submits the order$`, tc.theSecondTabSubmitsTheOrder)

	// Then steps
	ctx.Step(`^the submission is "([^"]*)"$`, tc.theSubmissionIs)
	ctx.Step(`^the error kind is "([^"]*)"$`, tc.theErrorKindIs)
	ctx.Step(`^the cart holds (\d+) items?$`, tc.theCartHoldsItems)
	ctx.Step(`^the order service was called (\d+) times?$`, tc.theOrderServiceWasCalledTimes)
	ctx.Step(`^the order total is (\S+)$`, tc.theOrderTotalIs)
	ctx.Step(`^the order delivery fee is (\S+)$`, tc.theOrderDeliveryFeeIs)
	ctx.Step(`^submitting again is refused$`, tc.submittingAgainIsRefused)
	ctx.Step(`^the second tab's submission is "([^"]*)"$`, tc.theSecondTabsSubmissionIs)
	ctx.Step(`^the two tabs placed different orders$`, tc.theTwoTabsPlacedDifferentOrders)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
