package createaccount_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/delivery"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/notifications"
	"github.com/storiqa/saga-coordinator/internal/downstream/stores"
	"github.com/storiqa/saga-coordinator/internal/downstream/users"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/createaccount"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the sequence of calls every fake client makes,
// shared across all fakes in a test so assertions can check ordering.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

type fakeUsers struct {
	users.Client
	rec            *recorder
	failCreate     bool
	failDeleteRole bool
	createdUser    *model.User
}

func (f *fakeUsers) Cloned() users.Client       { return f }
func (f *fakeUsers) WithSuperadmin() users.Client { return f }
func (f *fakeUsers) WithUser(int) users.Client   { return f }

func (f *fakeUsers) CreateAccount(ctx context.Context, identity model.NewIdentity, user *model.NewUser) (*model.User, error) {
	f.rec.record("users.CreateAccount")
	if f.failCreate {
		return nil, errors.New("account creation failed")
	}
	return f.createdUser, nil
}

func (f *fakeUsers) CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("users.CreateRole")
	return &role, nil
}

func (f *fakeUsers) DeleteRole(ctx context.Context, roleID string) error {
	f.rec.record("users.DeleteRole")
	if f.failDeleteRole {
		return errors.New("users delete role failed")
	}
	return nil
}

func (f *fakeUsers) DeleteAccountBySagaID(ctx context.Context, sagaID string) error {
	f.rec.record("users.DeleteAccountBySagaID")
	return nil
}

type fakeStores struct {
	stores.Client
	rec        *recorder
	failCreate bool
}

func (f *fakeStores) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("stores.CreateRole")
	if f.failCreate {
		return nil, errors.New("stores role failed")
	}
	return &role, nil
}

func (f *fakeStores) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	f.rec.record("stores.DeleteRole")
	return nil
}

type fakeBilling struct {
	billing.Client
	rec              *recorder
	failMerchant     bool
	failDeleteRole   bool
}

func (f *fakeBilling) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("billing.CreateRole")
	return &role, nil
}

func (f *fakeBilling) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	f.rec.record("billing.DeleteRole")
	if f.failDeleteRole {
		return errors.New("billing delete role failed")
	}
	return nil
}

func (f *fakeBilling) CreateUserMerchant(ctx context.Context, init initiator.Initiator, userID int) (*model.Merchant, error) {
	f.rec.record("billing.CreateUserMerchant")
	if f.failMerchant {
		return nil, errors.New("merchant creation failed")
	}
	return &model.Merchant{MerchantID: userID}, nil
}

func (f *fakeBilling) DeleteUserMerchant(ctx context.Context, init initiator.Initiator, userID int) error {
	f.rec.record("billing.DeleteUserMerchant")
	return nil
}

type fakeDelivery struct {
	delivery.Client
	rec *recorder
}

func (f *fakeDelivery) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	f.rec.record("delivery.CreateRole")
	return &role, nil
}

func (f *fakeDelivery) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	f.rec.record("delivery.DeleteRole")
	return nil
}

type fakeNotifications struct {
	notifications.Client
	rec *recorder
}

func (f *fakeNotifications) CreateContact(ctx context.Context, init initiator.Initiator, payload model.CreateContactPayload) error {
	f.rec.record("notifications.CreateContact")
	return nil
}

func TestSaga_SuccessRunsAllStagesInOrderAndNotifies(t *testing.T) {
	rec := &recorder{}
	deps := createaccount.Deps{
		Users:         &fakeUsers{rec: rec, createdUser: &model.User{ID: 1, Email: "a@b.com"}},
		Stores:        &fakeStores{rec: rec},
		Billing:       &fakeBilling{rec: rec},
		Delivery:      &fakeDelivery{rec: rec},
		Notifications: &fakeNotifications{rec: rec},
		Log:           logger.NewNoOpLogger(),
		Tracer:        tracer.NewNoOpTracer(),
	}

	saga := createaccount.New(deps)
	user, err := saga.Run(context.Background(), model.SagaCreateProfile{Identity: model.NewIdentity{Email: "a@b.com"}})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	assert.Equal(t, []string{
		"users.CreateAccount",
		"users.CreateRole",
		"stores.CreateRole",
		"billing.CreateRole",
		"delivery.CreateRole",
		"billing.CreateUserMerchant",
		"notifications.CreateContact",
	}, rec.calls)
}

func TestSaga_FailureCompensatesInReverseOrder(t *testing.T) {
	rec := &recorder{}
	deps := createaccount.Deps{
		Users:         &fakeUsers{rec: rec, createdUser: &model.User{ID: 1, Email: "a@b.com"}},
		Stores:        &fakeStores{rec: rec},
		Billing:       &fakeBilling{rec: rec, failMerchant: true},
		Delivery:      &fakeDelivery{rec: rec},
		Notifications: &fakeNotifications{rec: rec},
		Log:           logger.NewNoOpLogger(),
		Tracer:        tracer.NewNoOpTracer(),
	}

	saga := createaccount.New(deps)
	_, err := saga.Run(context.Background(), model.SagaCreateProfile{Identity: model.NewIdentity{Email: "a@b.com"}})
	require.Error(t, err)
	assert.Equal(t, "merchant creation failed", err.Error())

	assert.Equal(t, []string{
		"users.CreateAccount",
		"users.CreateRole",
		"stores.CreateRole",
		"billing.CreateRole",
		"delivery.CreateRole",
		"billing.CreateUserMerchant",
		// compensation walks the log in reverse; it reacts to the Start
		// stage even though the merchant call itself failed, since
		// compensations are assumed idempotent.
		"billing.DeleteUserMerchant",
		"delivery.DeleteRole",
		"billing.DeleteRole",
		"stores.DeleteRole",
		"users.DeleteRole",
		"users.DeleteAccountBySagaID",
	}, rec.calls)
}

func TestSaga_CompensationFailureIsSwallowed(t *testing.T) {
	rec := &recorder{}
	deps := createaccount.Deps{
		Users:         &fakeUsers{rec: rec, createdUser: &model.User{ID: 1, Email: "a@b.com"}, failDeleteRole: true},
		Stores:        &fakeStores{rec: rec, failCreate: true},
		Billing:       &fakeBilling{rec: rec},
		Delivery:      &fakeDelivery{rec: rec},
		Notifications: &fakeNotifications{rec: rec},
		Log:           logger.NewNoOpLogger(),
		Tracer:        tracer.NewNoOpTracer(),
	}

	saga := createaccount.New(deps)
	_, err := saga.Run(context.Background(), model.SagaCreateProfile{Identity: model.NewIdentity{Email: "a@b.com"}})
	require.Error(t, err)
	assert.Equal(t, "stores role failed", err.Error())

	// users.DeleteRole is reached and fails, but compensation still
	// proceeds to DeleteAccountBySagaID afterward rather than aborting.
	assert.Equal(t, []string{
		"users.CreateAccount",
		"users.CreateRole",
		"stores.CreateRole",
		"stores.DeleteRole",
		"users.DeleteRole",
		"users.DeleteAccountBySagaID",
	}, rec.calls)
}
