// Package createorder implements the CreateOrder saga: cart conversion
// in the orders service followed by invoice creation in billing, with
// best-effort notification fan-out on success.
package createorder

import (
	"context"
	"strconv"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/notifications"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/oplog"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/storiqa/saga-coordinator/internal/pkg/sagaid"
	"github.com/storiqa/saga-coordinator/internal/pkg/utils"
)

// useCaseName is this saga's span name and log action tag, following
// the Layer:Component.Action convention the rest of the service uses.
const useCaseName = "usecase:saga.createorder"

// Deps are the downstream clients a CreateOrder saga drives.
type Deps struct {
	Orders        orders.Client
	Billing       billing.Client
	Notifications notifications.Client
	Log           logger.Logger
	Tracer        tracer.Tracer
}

// Saga owns a single CreateOrder run.
type Saga struct {
	deps   Deps
	log    *oplog.OperationLog[Stage]
	sagaID sagaid.SagaId
}

// New starts a fresh CreateOrder saga over deps.
func New(deps Deps) *Saga {
	return &Saga{deps: deps, log: oplog.New[Stage]()}
}

// Run drives the saga to completion, issuing best-effort notifications
// on success and reverse-order compensation on forward failure.
func (s *Saga) Run(ctx context.Context, input model.ConvertCart) (*model.BillingOrders, error) {
	s.sagaID = sagaid.New()

	span, ctx := s.deps.Tracer.StartSpan(ctx, useCaseName)
	defer span.Finish()

	log := s.deps.Log.WithContext(ctx).WithFields(map[string]any{
		"component": "saga",
		"saga_id":   s.sagaID.String(),
	})
	log.Info("saga started")

	result, createdOrders, err := s.forward(ctx, log, span, input)
	if err != nil {
		utils.RecordSpanError(span, err)
		s.compensate(ctx, log, span, input.CustomerID)
		return nil, err
	}

	log.Info("saga completed")
	s.notifyBestEffort(ctx, log, input, createdOrders)
	return result, nil
}

func (s *Saga) forward(ctx context.Context, log logger.Logger, span tracer.Span, input model.ConvertCart) (*model.BillingOrders, []model.Order, error) {
	conversionID := sagaid.New().String()
	payload := model.NewConvertCartPayload(input, conversionID)

	log.WithField("stage", string(OrdersConvertCartStart)).Info("saga stage starting")
	s.log.Append(ordersConvertCartStart(conversionID, input.CustomerID))
	createdOrders, err := s.deps.Orders.ConvertCart(ctx, payload)
	if err != nil {
		utils.RecordSpanError(span, err)
		return nil, nil, err
	}
	s.log.Append(ordersConvertCartComplete(conversionID, input.CustomerID))

	invoiceSagaID := sagaid.New().String()
	invoice := model.CreateInvoice{
		Orders:     createdOrders,
		CustomerID: input.CustomerID,
		SagaID:     invoiceSagaID,
		Currency:   input.Currency,
	}

	log.WithField("stage", string(BillingCreateInvoiceStart)).Info("saga stage starting")
	s.log.Append(billingCreateInvoiceStart(invoiceSagaID))
	inv, err := s.deps.Billing.CreateInvoice(ctx, initiator.Superadmin(), invoice)
	if err != nil {
		utils.RecordSpanError(span, err)
		return nil, nil, err
	}
	s.log.Append(billingCreateInvoiceComplete(invoiceSagaID))

	return &model.BillingOrders{Orders: createdOrders, URL: inv.URL}, createdOrders, nil
}

func (s *Saga) compensate(ctx context.Context, log logger.Logger, span tracer.Span, customerID int) {
	admin := initiator.Superadmin()
	superadminOrders := s.deps.Orders.WithSuperadmin()

	for _, stage := range s.log.Reverse() {
		var err error
		switch stage.Kind {
		case BillingCreateInvoiceStart:
			err = s.deps.Billing.RevertCreateInvoice(ctx, admin, stage.InvoiceSagaID)
		case OrdersConvertCartStart:
			err = superadminOrders.DeleteOrdersByCustomerID(ctx, customerID)
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

// notifyBestEffort fans out the order-created notice to the customer,
// to every distinct store involved, and records each unique coupon
// redemption. None of this is compensated; failures are logged only.
func (s *Saga) notifyBestEffort(ctx context.Context, log logger.Logger, input model.ConvertCart, createdOrders []model.Order) {
	admin := initiator.Superadmin()

	userPayload := model.OrderCreateNotification{UserID: input.CustomerID, Orders: createdOrders}
	if err := s.deps.Notifications.OrderCreateForUser(ctx, admin, userPayload); err != nil && log != nil {
		log.WithField("customer_id", input.CustomerID).Warn("order-created notification to customer failed: " + err.Error())
	}

	seenStores := make(map[int]bool)
	for _, order := range createdOrders {
		if seenStores[order.StoreID] {
			continue
		}
		seenStores[order.StoreID] = true
		storePayload := model.OrderCreateNotification{UserID: order.StoreID, Orders: createdOrders}
		if err := s.deps.Notifications.OrderCreateForStore(ctx, admin, storePayload); err != nil && log != nil {
			log.WithField("store_id", order.StoreID).Warn("order-created notification to store failed: " + err.Error())
		}
	}

	for couponID := range input.Coupons {
		id, convErr := strconv.Atoi(couponID)
		if convErr != nil {
			continue
		}
		payload := model.CouponUsedPayload{CouponID: id, UserID: input.CustomerID}
		if err := s.deps.Notifications.CouponUsed(ctx, admin, payload); err != nil && log != nil {
			log.WithField("coupon_id", id).Warn("coupon usage notification failed: " + err.Error())
		}
	}
}
