package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"overcooked-ordering/domain"
	"overcooked-ordering/menu-svc/internal/mocks"
	"overcooked-ordering/menu-svc/internal/service"
)

type orderFixture struct {
	svc       *service.OrderService
	orders    *mocks.OrderRepository
	settings  *mocks.SettingsRepository
	qr        *mocks.QRGenerator
	publisher *mocks.OrderPublisher
}

func newOrderFixture(t *testing.T) orderFixture {
	f := orderFixture{
		orders:    mocks.NewOrderRepository(t),
		settings:  mocks.NewSettingsRepository(t),
		qr:        mocks.NewQRGenerator(t),
		publisher: mocks.NewOrderPublisher(t),
	}
	settingsSvc := service.NewSettingsService(f.settings, zap.NewNop()).WithClock(func() time.Time { return fixedNow })
	f.svc = service.NewOrderService(f.orders, settingsSvc, f.qr, f.publisher, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func restaurantSettings() *domain.CartSettings {
	return &domain.CartSettings{
		RestaurantID:        "r1",
		DeliveryFee:         decimal.NewFromInt(5),
		MinOrderAmount:      decimal.NewFromInt(20),
		Currency:            "TMT",
		IsDeliveryAvailable: true,
		PaymentMethods:      []string{"cash", "card"},
	}
}

func validRequest() domain.OrderRequest {
	return domain.OrderRequest{
		RestaurantID: "r1",
		Items: []domain.LineItem{
			{ItemID: "plov", Name: "Plov", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2},
		},
		CustomerName:    "Aman",
		Phone:           "+993 61 234567",
		Delivery:        true,
		DeliveryAddress: "Magtymguly 12",
		PaymentMethod:   "card",
	}
}

func TestOrderService_CreateRecomputesTotals(t *testing.T) {
	f := newOrderFixture(t)

	req := validRequest()
	req.TotalAmount = decimal.NewFromInt(1)

	f.settings.On("GetSettings", mock.Anything, "r1").Return(restaurantSettings(), nil).Once()
	f.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.SubmittedOrder) bool {
		return o.ID != "" &&
			o.Status == domain.StatusPending &&
			o.Subtotal.Equal(decimal.NewFromInt(25)) &&
			o.DeliveryFee.Equal(decimal.NewFromInt(5)) &&
			o.TotalAmount.Equal(decimal.NewFromInt(30)) &&
			o.Currency == "TMT" &&
			o.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	f.qr.On("Generate", mock.AnythingOfType("string")).Return([]byte("png"), nil).Once()
	f.orders.On("SaveQRCode", mock.Anything, mock.AnythingOfType("string"), []byte("png")).Return(nil).Once()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.EventOrderCreated && e.RestaurantID == "r1" && e.TotalAmount.Equal(decimal.NewFromInt(30))
	})).Return(nil).Once()

	order, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "/api/orders/"+order.ID+"/qrcode", order.QRCode)
	assert.True(t, order.Delivery)
	assert.Equal(t, "Magtymguly 12", order.DeliveryAddress)
	assert.Equal(t, "card", order.PaymentMethod)
}

func TestOrderService_CreatePickupWhenDeliveryUnavailable(t *testing.T) {
	f := newOrderFixture(t)

	settings := restaurantSettings()
	settings.IsDeliveryAvailable = false

	req := validRequest()
	req.DeliveryAddress = ""
	req.PaymentMethod = ""

	f.settings.On("GetSettings", mock.Anything, "r1").Return(settings, nil).Once()
	f.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.SubmittedOrder) bool {
		return !o.Delivery && o.DeliveryFee.IsZero() && o.TotalAmount.Equal(decimal.NewFromInt(25)) && o.PaymentMethod == "cash"
	})).Return(nil).Once()
	f.qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
	f.orders.On("SaveQRCode", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, order.Delivery)
}

func TestOrderService_CreateRejections(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*domain.OrderRequest)
		needSettings bool
		wantErr      error
	}{
		{
			name:    "zero quantity",
			mutate:  func(r *domain.OrderRequest) { r.Items[0].Quantity = 0 },
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "quantity above the line maximum",
			mutate:  func(r *domain.OrderRequest) { r.Items[0].Quantity = domain.MaxLineQuantity + 1 },
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "missing item id",
			mutate:  func(r *domain.OrderRequest) { r.Items[0].ItemID = "" },
			wantErr: service.ErrInvalidOrder,
		},
		{
			name:         "empty cart",
			mutate:       func(r *domain.OrderRequest) { r.Items = nil },
			needSettings: true,
			wantErr:      domain.ErrEmptyCart,
		},
		{
			name:         "below minimum",
			mutate:       func(r *domain.OrderRequest) { r.Items[0].Quantity = 1 },
			needSettings: true,
			wantErr:      domain.ErrBelowMinimum,
		},
		{
			name:         "bad phone",
			mutate:       func(r *domain.OrderRequest) { r.Phone = "12ab" },
			needSettings: true,
			wantErr:      domain.ErrInvalidCustomerInfo,
		},
		{
			name:         "delivery without address",
			mutate:       func(r *domain.OrderRequest) { r.DeliveryAddress = "  " },
			needSettings: true,
			wantErr:      domain.ErrMissingAddress,
		},
		{
			name:         "unknown payment method",
			mutate:       func(r *domain.OrderRequest) { r.PaymentMethod = "crypto" },
			needSettings: true,
			wantErr:      domain.ErrUnsupportedPaymentMethod,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			if testCase.needSettings {
				f.settings.On("GetSettings", mock.Anything, "r1").Return(restaurantSettings(), nil).Once()
			}

			req := validRequest()
			testCase.mutate(&req)

			order, err := f.svc.Create(context.Background(), req)

			assert.Nil(t, order)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestOrderService_CreateStoreFailure(t *testing.T) {
	f := newOrderFixture(t)

	f.settings.On("GetSettings", mock.Anything, "r1").Return(restaurantSettings(), nil).Once()
	f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	order, err := f.svc.Create(context.Background(), validRequest())

	assert.Nil(t, order)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestOrderService_CreateToleratesSideEffectFailures(t *testing.T) {
	f := newOrderFixture(t)

	f.settings.On("GetSettings", mock.Anything, "r1").Return(restaurantSettings(), nil).Once()
	f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	f.qr.On("Generate", mock.Anything).Return(nil, assert.AnError).Once()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	order, err := f.svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.OrderStatus
		next      domain.OrderStatus
		getError  error
		wantErr   error
		wantWrite bool
	}{
		{name: "pending to confirmed", current: domain.StatusPending, next: domain.StatusConfirmed, wantWrite: true},
		{name: "preparing to cancelled", current: domain.StatusPreparing, next: domain.StatusCancelled, wantWrite: true},
		{name: "completed is final", current: domain.StatusCompleted, next: domain.StatusPending, wantErr: service.ErrIllegalStatusChange},
		{name: "skipping a step", current: domain.StatusPending, next: domain.StatusCompleted, wantErr: service.ErrIllegalStatusChange},
		{name: "unknown status", current: domain.StatusPending, next: "lost", wantErr: service.ErrInvalidStatus},
		{name: "missing order", next: domain.StatusConfirmed, getError: sql.ErrNoRows, wantErr: service.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)

			if testCase.next.Valid() {
				if testCase.getError != nil {
					f.orders.On("GetOrder", mock.Anything, "o1").Return(nil, testCase.getError).Once()
				} else {
					f.orders.On("GetOrder", mock.Anything, "o1").
						Return(&domain.SubmittedOrder{ID: "o1", RestaurantID: "r1", Status: testCase.current}, nil).Once()
				}
			}
			if testCase.wantWrite {
				f.orders.On("UpdateOrderStatus", mock.Anything, "o1", testCase.next).Return(int64(1), nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderStatusChanged && e.Status == testCase.next
				})).Return(nil).Once()
			}

			order, err := f.svc.UpdateStatus(context.Background(), "o1", testCase.next)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, order.Status)
		})
	}
}

func TestOrderService_ListRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.List(context.Background(), domain.OrderFilter{Status: "lost"})

	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestOrderService_GetQRCode(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("GetQRCode", mock.Anything, "o1").Return([]byte("stored"), nil).Once()

		qr, err := f.svc.GetQRCode(context.Background(), "o1")

		require.NoError(t, err)
		assert.Equal(t, []byte("stored"), qr)
	})

	t.Run("regenerated when missing", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("GetQRCode", mock.Anything, "o1").Return([]byte(nil), nil).Once()
		f.qr.On("Generate", "o1").Return([]byte("fresh"), nil).Once()
		f.orders.On("SaveQRCode", mock.Anything, "o1", []byte("fresh")).Return(nil).Once()

		qr, err := f.svc.GetQRCode(context.Background(), "o1")

		require.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.On("GetQRCode", mock.Anything, "nope").Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.GetQRCode(context.Background(), "nope")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestReceiptQRGenerator(t *testing.T) {
	gen := service.ReceiptQRGenerator{BaseURL: "http://localhost"}

	assert.Equal(t, "http://localhost/receipt?order_id=a+b", gen.ReceiptURL("a b"))

	qr, err := gen.Generate("3f1c")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
}
