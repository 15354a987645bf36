package createstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/downstream/stores"
	"github.com/storiqa/saga-coordinator/internal/downstream/warehouses"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/createstore"
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

type fakeStores struct {
	stores.Client
	rec         *recorder
	failCreate  bool
	createdStore *model.Store
}

func (f *fakeStores) CreateStore(ctx context.Context, init initiator.Initiator, store model.NewStore) (*model.Store, error) {
	f.rec.record("stores.CreateStore")
	if f.failCreate {
		return nil, errors.New("store creation failed")
	}
	return f.createdStore, nil
}

func (f *fakeStores) DeleteStoreByUserID(ctx context.Context, init initiator.Initiator, userID int) error {
	f.rec.record("stores.DeleteStoreByUserID")
	return nil
}

type fakeWarehouses struct {
	warehouses.Client
	rec        *recorder
	failCreate bool
}

func (f *fakeWarehouses) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("warehouses.CreateRole")
	if f.failCreate {
		return nil, errors.New("warehouses role failed")
	}
	return &role, nil
}

func (f *fakeWarehouses) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	f.rec.record("warehouses.DeleteRole")
	return nil
}

type fakeOrders struct {
	orders.Client
	rec *recorder
}

func (f *fakeOrders) Cloned() orders.Client        { return f }
func (f *fakeOrders) WithSuperadmin() orders.Client { return f }
func (f *fakeOrders) WithUser(int) orders.Client    { return f }

func (f *fakeOrders) CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("orders.CreateRole")
	return &role, nil
}

func (f *fakeOrders) DeleteRole(ctx context.Context, roleID string) error {
	f.rec.record("orders.DeleteRole")
	return nil
}

type fakeBilling struct {
	billing.Client
	rec          *recorder
	failMerchant bool
}

func (f *fakeBilling) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("billing.CreateRole")
	return &role, nil
}

func (f *fakeBilling) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	f.rec.record("billing.DeleteRole")
	return nil
}

func (f *fakeBilling) CreateStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) (*model.Merchant, error) {
	f.rec.record("billing.CreateStoreMerchant")
	if f.failMerchant {
		return nil, errors.New("store merchant creation failed")
	}
	return &model.Merchant{MerchantID: storeID}, nil
}

func (f *fakeBilling) DeleteStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) error {
	f.rec.record("billing.DeleteStoreMerchant")
	return nil
}

func TestSaga_SuccessRunsAllStagesInOrder(t *testing.T) {
	rec := &recorder{}
	deps := createstore.Deps{
		Stores:     &fakeStores{rec: rec, createdStore: &model.Store{ID: 7, UserID: 1}},
		Warehouses: &fakeWarehouses{rec: rec},
		Orders:     &fakeOrders{rec: rec},
		Billing:    &fakeBilling{rec: rec},
		Log:        logger.NewNoOpLogger(),
		Tracer:     tracer.NewNoOpTracer(),
	}

	saga := createstore.New(deps)
	store, err := saga.Run(context.Background(), initiator.User(1), model.NewStore{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 7, store.ID)

	assert.Equal(t, []string{
		"stores.CreateStore",
		"warehouses.CreateRole",
		"orders.CreateRole",
		"billing.CreateRole",
		"billing.CreateStoreMerchant",
	}, rec.calls)
}

func TestSaga_FailureCompensatesInReverseOrder(t *testing.T) {
	rec := &recorder{}
	deps := createstore.Deps{
		Stores:     &fakeStores{rec: rec, createdStore: &model.Store{ID: 7, UserID: 1}},
		Warehouses: &fakeWarehouses{rec: rec},
		Orders:     &fakeOrders{rec: rec},
		Billing:    &fakeBilling{rec: rec, failMerchant: true},
		Log:        logger.NewNoOpLogger(),
		Tracer:     tracer.NewNoOpTracer(),
	}

	saga := createstore.New(deps)
	_, err := saga.Run(context.Background(), initiator.User(1), model.NewStore{UserID: 1})
	require.Error(t, err)

	assert.Equal(t, []string{
		"stores.CreateStore",
		"warehouses.CreateRole",
		"orders.CreateRole",
		"billing.CreateRole",
		"billing.CreateStoreMerchant",
		"billing.DeleteStoreMerchant",
		"billing.DeleteRole",
		"orders.DeleteRole",
		"warehouses.DeleteRole",
		"stores.DeleteStoreByUserID",
	}, rec.calls)
}

func TestSaga_StoreCreationFailureDeletesStoreByUserID(t *testing.T) {
	rec := &recorder{}
	deps := createstore.Deps{
		Stores:     &fakeStores{rec: rec, failCreate: true},
		Warehouses: &fakeWarehouses{rec: rec},
		Orders:     &fakeOrders{rec: rec},
		Billing:    &fakeBilling{rec: rec},
		Log:        logger.NewNoOpLogger(),
		Tracer:     tracer.NewNoOpTracer(),
	}

	saga := createstore.New(deps)
	_, err := saga.Run(context.Background(), initiator.User(1), model.NewStore{UserID: 1})
	require.Error(t, err)

	assert.Equal(t, []string{"stores.CreateStore", "stores.DeleteStoreByUserID"}, rec.calls)
}
