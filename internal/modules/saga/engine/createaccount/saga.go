// Package createaccount implements the CreateAccount saga: account
// creation in the identity service followed by a baseline role grant
// in every other service a fresh account needs access to, followed by
// merchant registration in billing.
package createaccount

import (
	"context"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/delivery"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/notifications"
	"github.com/storiqa/saga-coordinator/internal/downstream/stores"
	"github.com/storiqa/saga-coordinator/internal/downstream/users"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/oplog"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/storiqa/saga-coordinator/internal/pkg/sagaid"
	"github.com/storiqa/saga-coordinator/internal/pkg/utils"
)

// roleNameUser is the baseline role every new account is granted in
// each service it will need to call.
const roleNameUser = "User"

// useCaseName is this saga's span name and log action tag, following
// the Layer:Component.Action convention the rest of the service uses.
const useCaseName = "usecase:saga.createaccount"

// Deps are the downstream clients a CreateAccount saga drives. Each is
// expected to already wrap a fresh, per-request budgeted HTTP client;
// the saga never constructs its own transport.
type Deps struct {
	Users         users.Client
	Stores        stores.Client
	Billing       billing.Client
	Delivery      delivery.Client
	Notifications notifications.Client
	Log           logger.Logger
	Tracer        tracer.Tracer
}

// Saga owns a single CreateAccount run: its operation log, the
// downstream clients it drives, and the saga id minted for this
// attempt. A single owning struct whose methods mutate it directly,
// not the pair-passing (self, result) pattern.
type Saga struct {
	deps   Deps
	log    *oplog.OperationLog[Stage]
	sagaID sagaid.SagaId
}

// New starts a fresh CreateAccount saga over deps.
func New(deps Deps) *Saga {
	return &Saga{deps: deps, log: oplog.New[Stage]()}
}

// Run drives the saga to completion: forward, then compensation in
// reverse order on any forward failure. The caller always sees the
// original forward error, never a compensation error.
func (s *Saga) Run(ctx context.Context, input model.SagaCreateProfile) (*model.User, error) {
	s.sagaID = sagaid.New()

	span, ctx := s.deps.Tracer.StartSpan(ctx, useCaseName)
	defer span.Finish()

	log := s.deps.Log.WithContext(ctx).WithFields(map[string]any{
		"component": "saga",
		"saga_id":   s.sagaID.String(),
	})
	log.Info("saga started")

	createdUser, err := s.forward(ctx, log, span, input)
	if err != nil {
		utils.RecordSpanError(span, err)
		s.compensate(ctx, log, span)
		return nil, err
	}

	log.Info("saga completed")
	s.notifyBestEffort(ctx, log, createdUser)
	return createdUser, nil
}

func (s *Saga) forward(ctx context.Context, log logger.Logger, span tracer.Span, input model.SagaCreateProfile) (*model.User, error) {
	sagaID := s.sagaID.String()

	identity := input.Identity
	identity.SagaID = sagaID
	var newUser *model.NewUser
	if input.User != nil {
		u := *input.User
		u.SagaID = sagaID
		newUser = &u
	}

	log.WithField("stage", string(AccountCreationStart)).Info("saga stage starting")
	s.log.Append(accountCreationStart(sagaID))
	createdUser, err := s.deps.Users.CreateAccount(ctx, identity, newUser)
	if err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(accountCreationComplete(sagaID))

	superadmin := s.deps.Users.WithSuperadmin()

	usersRoleID := sagaid.New().String()
	log.WithField("stage", string(UsersRoleSetStart)).Info("saga stage starting")
	s.log.Append(usersRoleSetStart(usersRoleID))
	if _, err := superadmin.CreateRole(ctx, model.NewRole{ID: usersRoleID, UserID: createdUser.ID, Name: roleNameUser}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(usersRoleSetComplete(usersRoleID))

	storeRoleID := sagaid.New().String()
	log.WithField("stage", string(StoreRoleSetStart)).Info("saga stage starting")
	s.log.Append(storeRoleSetStart(storeRoleID))
	if _, err := s.deps.Stores.CreateRole(ctx, initiator.Superadmin(), model.NewRole{ID: storeRoleID, UserID: createdUser.ID, Name: roleNameUser}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(storeRoleSetComplete(storeRoleID))

	billingRoleID := sagaid.New().String()
	log.WithField("stage", string(BillingRoleSetStart)).Info("saga stage starting")
	s.log.Append(billingRoleSetStart(billingRoleID))
	if _, err := s.deps.Billing.CreateRole(ctx, initiator.Superadmin(), model.NewRole{ID: billingRoleID, UserID: createdUser.ID, Name: roleNameUser}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(billingRoleSetComplete(billingRoleID))

	deliveryRoleID := sagaid.New().String()
	log.WithField("stage", string(DeliveryRoleSetStart)).Info("saga stage starting")
	s.log.Append(deliveryRoleSetStart(deliveryRoleID))
	if _, err := s.deps.Delivery.CreateRole(ctx, initiator.Superadmin(), model.NewRole{ID: deliveryRoleID, UserID: createdUser.ID, Name: roleNameUser}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(deliveryRoleSetComplete(deliveryRoleID))

	log.WithField("stage", string(BillingCreateMerchantStart)).Info("saga stage starting")
	s.log.Append(billingCreateMerchantStart(createdUser.ID))
	if _, err := s.deps.Billing.CreateUserMerchant(ctx, initiator.Superadmin(), createdUser.ID); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(billingCreateMerchantComplete(createdUser.ID))

	return createdUser, nil
}

// compensate walks the log in reverse, issuing a targeted undo for
// every Start stage seen. A compensation call that itself fails is
// logged and ignored; the caller only ever sees the original forward
// error.
func (s *Saga) compensate(ctx context.Context, log logger.Logger, span tracer.Span) {
	admin := initiator.Superadmin()
	superadminUsers := s.deps.Users.WithSuperadmin()

	for _, stage := range s.log.Reverse() {
		var err error
		switch stage.Kind {
		case BillingCreateMerchantStart:
			err = s.deps.Billing.DeleteUserMerchant(ctx, admin, stage.UserID)
		case DeliveryRoleSetStart:
			err = s.deps.Delivery.DeleteRole(ctx, admin, stage.RoleID)
		case BillingRoleSetStart:
			err = s.deps.Billing.DeleteRole(ctx, admin, stage.RoleID)
		case StoreRoleSetStart:
			err = s.deps.Stores.DeleteRole(ctx, admin, stage.RoleID)
		case UsersRoleSetStart:
			err = superadminUsers.DeleteRole(ctx, stage.RoleID)
		case AccountCreationStart:
			err = superadminUsers.DeleteAccountBySagaID(ctx, stage.SagaID)
		default:
			continue
		}
		if err != nil {
			utils.RecordSpanError(span, err)
			if log != nil {
				log.WithField("stage", string(stage.Kind)).Error("compensation call failed: " + err.Error())
			}
		}
	}
}

// notifyBestEffort registers the new account with the CRM-equivalent.
// Not compensated; failures are logged only.
func (s *Saga) notifyBestEffort(ctx context.Context, log logger.Logger, user *model.User) {
	payload := model.CreateContactPayload{UserID: user.ID, Email: user.Email}
	if err := s.deps.Notifications.CreateContact(ctx, initiator.Superadmin(), payload); err != nil && log != nil {
		log.WithField("user_id", user.ID).Warn("crm contact creation failed: " + err.Error())
	}
}
