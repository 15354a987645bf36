package buynow_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/notifications"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/buynow"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

type fakeOrders struct {
	orders.Client
	rec             *recorder
	failCreate      bool
	createdOrders   []model.Order
	revertedConvID  string
}

func (f *fakeOrders) Cloned() orders.Client        { return f }
func (f *fakeOrders) WithSuperadmin() orders.Client { return f }
func (f *fakeOrders) WithUser(int) orders.Client    { return f }

func (f *fakeOrders) CreateBuyNow(ctx context.Context, payload model.BuyNowPayload) ([]model.Order, error) {
	f.rec.record("orders.CreateBuyNow")
	if f.failCreate {
		return nil, errors.New("buy now creation failed")
	}
	return f.createdOrders, nil
}

func (f *fakeOrders) RevertConvertCart(ctx context.Context, conversionID string) error {
	f.rec.record("orders.RevertConvertCart")
	f.revertedConvID = conversionID
	return nil
}

type fakeBilling struct {
	billing.Client
	rec         *recorder
	failInvoice bool
}

func (f *fakeBilling) CreateInvoice(ctx context.Context, init initiator.Initiator, invoice model.CreateInvoice) (*model.Invoice, error) {
	f.rec.record("billing.CreateInvoice")
	if f.failInvoice {
		return nil, errors.New("invoice creation failed")
	}
	return &model.Invoice{ID: "inv-1", URL: "https://pay.example/inv-1"}, nil
}

func (f *fakeBilling) RevertCreateInvoice(ctx context.Context, init initiator.Initiator, sagaID string) error {
	f.rec.record("billing.RevertCreateInvoice")
	return nil
}

type fakeNotifications struct {
	notifications.Client
	rec *recorder
}

func (f *fakeNotifications) OrderCreateForUser(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error {
	f.rec.record("notifications.OrderCreateForUser")
	return nil
}

func (f *fakeNotifications) OrderCreateForStore(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error {
	f.rec.record("notifications.OrderCreateForStore")
	return nil
}

func TestSaga_SuccessCreatesOrderAndNotifies(t *testing.T) {
	rec := &recorder{}
	deps := buynow.Deps{
		Orders:        &fakeOrders{rec: rec, createdOrders: []model.Order{{ID: 1, StoreID: 10}}},
		Billing:       &fakeBilling{rec: rec},
		Notifications: &fakeNotifications{rec: rec},
		Log:           logger.NewNoOpLogger(),
		Tracer:        tracer.NewNoOpTracer(),
	}

	saga := buynow.New(deps)
	result, err := saga.Run(context.Background(), model.BuyNow{CustomerID: 42, StoreID: 10})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/inv-1", result.URL)

	assert.Equal(t, []string{
		"orders.CreateBuyNow",
		"billing.CreateInvoice",
		"notifications.OrderCreateForUser",
		"notifications.OrderCreateForStore",
	}, rec.calls)
}

func TestSaga_InvoiceFailureRevertsConversionByID(t *testing.T) {
	rec := &recorder{}
	fakeOrd := &fakeOrders{rec: rec, createdOrders: []model.Order{{ID: 1, StoreID: 10}}}
	deps := buynow.Deps{
		Orders:        fakeOrd,
		Billing:       &fakeBilling{rec: rec, failInvoice: true},
		Notifications: &fakeNotifications{rec: rec},
		Log:           logger.NewNoOpLogger(),
		Tracer:        tracer.NewNoOpTracer(),
	}

	saga := buynow.New(deps)
	_, err := saga.Run(context.Background(), model.BuyNow{CustomerID: 42, StoreID: 10})
	require.Error(t, err)

	assert.Equal(t, []string{
		"orders.CreateBuyNow",
		"billing.CreateInvoice",
		"billing.RevertCreateInvoice",
		"orders.RevertConvertCart",
	}, rec.calls)
	assert.NotEmpty(t, fakeOrd.revertedConvID)
}
