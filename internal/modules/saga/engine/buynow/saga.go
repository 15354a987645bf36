// Package buynow implements the BuyNow saga: single-product fast
// checkout in the orders service followed by invoice creation in
// billing. Shares createorder's shape but its convert-step compensation
// is a revert-by-conversion-id rather than a delete-by-customer-id,
// since a buy-now conversion is not yet attached to a customer's order
// history the way a cart conversion is.
package buynow

import (
	"context"

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
const useCaseName = "usecase:saga.buynow"

// Deps are the downstream clients a BuyNow saga drives.
type Deps struct {
	Orders        orders.Client
	Billing       billing.Client
	Notifications notifications.Client
	Log           logger.Logger
	Tracer        tracer.Tracer
}

// Saga owns a single BuyNow run.
type Saga struct {
	deps   Deps
	log    *oplog.OperationLog[Stage]
	sagaID sagaid.SagaId
}

// New starts a fresh BuyNow saga over deps.
func New(deps Deps) *Saga {
	return &Saga{deps: deps, log: oplog.New[Stage]()}
}

// Run drives the saga to completion, issuing best-effort notifications
// on success and reverse-order compensation on forward failure.
func (s *Saga) Run(ctx context.Context, input model.BuyNow) (*model.BillingOrders, error) {
	s.sagaID = sagaid.New()

	span, ctx := s.deps.Tracer.StartSpan(ctx, useCaseName)
	defer span.Finish()

	log := s.deps.Log.WithContext(ctx).WithFields(map[string]any{
		"component": "saga",
		"saga_id":   s.sagaID.String(),
	})
	log.Info("saga started")

	result, createdOrders, conversionID, err := s.forward(ctx, log, span, input)
	if err != nil {
		utils.RecordSpanError(span, err)
		s.compensate(ctx, log, span, conversionID)
		return nil, err
	}

	log.Info("saga completed")
	s.notifyBestEffort(ctx, log, input, createdOrders)
	return result, nil
}

func (s *Saga) forward(ctx context.Context, log logger.Logger, span tracer.Span, input model.BuyNow) (*model.BillingOrders, []model.Order, string, error) {
	conversionID := sagaid.New().String()
	payload := model.NewBuyNowPayload(input, conversionID)

	log.WithField("stage", string(OrdersConvertCartStart)).Info("saga stage starting")
	s.log.Append(ordersConvertCartStart(conversionID))
	createdOrders, err := s.deps.Orders.CreateBuyNow(ctx, payload)
	if err != nil {
		utils.RecordSpanError(span, err)
		return nil, nil, conversionID, err
	}
	s.log.Append(ordersConvertCartComplete(conversionID))

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
		return nil, nil, conversionID, err
	}
	s.log.Append(billingCreateInvoiceComplete(invoiceSagaID))

	return &model.BillingOrders{Orders: createdOrders, URL: inv.URL}, createdOrders, conversionID, nil
}

func (s *Saga) compensate(ctx context.Context, log logger.Logger, span tracer.Span, conversionID string) {
	admin := initiator.Superadmin()
	superadminOrders := s.deps.Orders.WithSuperadmin()

	for _, stage := range s.log.Reverse() {
		var err error
		switch stage.Kind {
		case BillingCreateInvoiceStart:
			err = s.deps.Billing.RevertCreateInvoice(ctx, admin, stage.InvoiceSagaID)
		case OrdersConvertCartStart:
			err = superadminOrders.RevertConvertCart(ctx, stage.ConversionID)
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

// notifyBestEffort fans out the order-created notice to the customer
// and to the single store involved, and records a coupon redemption
// when one was applied. None of this is compensated.
func (s *Saga) notifyBestEffort(ctx context.Context, log logger.Logger, input model.BuyNow, createdOrders []model.Order) {
	admin := initiator.Superadmin()

	userPayload := model.OrderCreateNotification{UserID: input.CustomerID, Orders: createdOrders}
	if err := s.deps.Notifications.OrderCreateForUser(ctx, admin, userPayload); err != nil && log != nil {
		log.WithField("customer_id", input.CustomerID).Warn("order-created notification to customer failed: " + err.Error())
	}

	storePayload := model.OrderCreateNotification{UserID: input.StoreID, Orders: createdOrders}
	if err := s.deps.Notifications.OrderCreateForStore(ctx, admin, storePayload); err != nil && log != nil {
		log.WithField("store_id", input.StoreID).Warn("order-created notification to store failed: " + err.Error())
	}

	// BuyNow's coupon field carries discount terms but no coupon id
	// (unlike ConvertCart's coupons map, which is keyed by it), so
	// there is nothing to report a redemption against here.
}
