// Package createstore implements the CreateStore saga: store creation
// followed by a StoreManager role grant in every service the store
// owner will drive orders through, followed by merchant registration
// for the store itself.
package createstore

import (
	"context"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/downstream/stores"
	"github.com/storiqa/saga-coordinator/internal/downstream/warehouses"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/oplog"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/storiqa/saga-coordinator/internal/pkg/sagaid"
	"github.com/storiqa/saga-coordinator/internal/pkg/utils"
	"github.com/storiqa/saga-coordinator/internal/pkg/validationmap"
)

// roleNameStoreManager is the role granted to a store's owner in every
// service the store needs to drive orders through.
const roleNameStoreManager = "StoreManager"

// useCaseName is this saga's span name and log action tag, following
// the Layer:Component.Action convention the rest of the service uses.
const useCaseName = "usecase:saga.createstore"

// allowedValidationFields restricts a reconstructed Validate error to
// the fields a store creation request can actually fail on.
var allowedValidationFields = []string{
	"name", "short_description", "long_description", "slug",
	"phone", "email", "default_language", "store",
}

// Deps are the downstream clients a CreateStore saga drives.
type Deps struct {
	Stores     stores.Client
	Warehouses warehouses.Client
	Orders     orders.Client
	Billing    billing.Client
	Log        logger.Logger
	Tracer     tracer.Tracer
}

// Saga owns a single CreateStore run.
type Saga struct {
	deps   Deps
	log    *oplog.OperationLog[Stage]
	sagaID sagaid.SagaId
}

// New starts a fresh CreateStore saga over deps.
func New(deps Deps) *Saga {
	return &Saga{deps: deps, log: oplog.New[Stage]()}
}

// Run drives the saga to completion. On forward failure the error is
// passed through the validation mapper before being returned, so the
// controller boundary sees a closed-set error kind rather than a raw
// downstream failure.
func (s *Saga) Run(ctx context.Context, caller initiator.Initiator, input model.NewStore) (*model.Store, error) {
	s.sagaID = sagaid.New()

	span, ctx := s.deps.Tracer.StartSpan(ctx, useCaseName)
	defer span.Finish()

	log := s.deps.Log.WithContext(ctx).WithFields(map[string]any{
		"component": "saga",
		"saga_id":   s.sagaID.String(),
	})
	log.Info("saga started")

	store, err := s.forward(ctx, log, span, caller, input)
	if err != nil {
		utils.RecordSpanError(span, err)
		s.compensate(ctx, log, span)
		return nil, validationmap.Map(err, allowedValidationFields)
	}

	log.Info("saga completed")
	return store, nil
}

func (s *Saga) forward(ctx context.Context, log logger.Logger, span tracer.Span, caller initiator.Initiator, input model.NewStore) (*model.Store, error) {
	sagaID := s.sagaID.String()
	input.SagaID = &sagaID

	log.WithField("stage", string(StoreCreationStart)).Info("saga stage starting")
	s.log.Append(storeCreationStart(input.UserID))
	store, err := s.deps.Stores.CreateStore(ctx, caller, input)
	if err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(storeCreationComplete(input.UserID))

	warehousesRoleID := sagaid.New().String()
	log.WithField("stage", string(WarehousesRoleSetStart)).Info("saga stage starting")
	s.log.Append(warehousesRoleSetStart(warehousesRoleID))
	if _, err := s.deps.Warehouses.CreateRole(ctx, initiator.Superadmin(), model.NewRole{ID: warehousesRoleID, UserID: store.UserID, Name: roleNameStoreManager}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(warehousesRoleSetComplete(warehousesRoleID))

	ordersRoleID := sagaid.New().String()
	log.WithField("stage", string(OrdersRoleSetStart)).Info("saga stage starting")
	s.log.Append(ordersRoleSetStart(ordersRoleID))
	superadminOrders := s.deps.Orders.WithSuperadmin()
	if _, err := superadminOrders.CreateRole(ctx, model.NewRole{ID: ordersRoleID, UserID: store.UserID, Name: roleNameStoreManager}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(ordersRoleSetComplete(ordersRoleID))

	billingRoleID := sagaid.New().String()
	log.WithField("stage", string(BillingRoleSetStart)).Info("saga stage starting")
	s.log.Append(billingRoleSetStart(billingRoleID))
	if _, err := s.deps.Billing.CreateRole(ctx, initiator.Superadmin(), model.NewRole{ID: billingRoleID, UserID: store.UserID, Name: roleNameStoreManager}); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(billingRoleSetComplete(billingRoleID))

	log.WithField("stage", string(BillingCreateMerchantStart)).Info("saga stage starting")
	s.log.Append(billingCreateMerchantStart(store.ID))
	if _, err := s.deps.Billing.CreateStoreMerchant(ctx, initiator.Superadmin(), store.ID); err != nil {
		utils.RecordSpanError(span, err)
		return nil, err
	}
	s.log.Append(billingCreateMerchantComplete(store.ID))

	return store, nil
}

func (s *Saga) compensate(ctx context.Context, log logger.Logger, span tracer.Span) {
	admin := initiator.Superadmin()
	superadminOrders := s.deps.Orders.WithSuperadmin()

	for _, stage := range s.log.Reverse() {
		var err error
		switch stage.Kind {
		case BillingCreateMerchantStart:
			err = s.deps.Billing.DeleteStoreMerchant(ctx, admin, stage.StoreID)
		case BillingRoleSetStart:
			err = s.deps.Billing.DeleteRole(ctx, admin, stage.RoleID)
		case OrdersRoleSetStart:
			err = superadminOrders.DeleteRole(ctx, stage.RoleID)
		case WarehousesRoleSetStart:
			err = s.deps.Warehouses.DeleteRole(ctx, admin, stage.RoleID)
		case StoreCreationStart:
			err = s.deps.Stores.DeleteStoreByUserID(ctx, admin, stage.UserID)
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
