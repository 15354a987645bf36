/*
|------------------------------------------------------------------------------------
| HTTP HANDLER ARCHITECTURAL STANDARDS & OBSERVABILITY MANIFESTO
|------------------------------------------------------------------------------------
|
| The Handler layer serves as the system's "Front Gate". It is responsible for
| request orchestration, DTO enforcement, and response normalization.
|
| [1. THE SINGLE LOG RULE]
| - Every handler execution MUST emit exactly ONE "Anchor Log" (request received).
| - This log must be enriched with 'business_key' (if available) to bridge the
|   gap between business domains and technical traces.
|
| [2. ZERO POST-ENTRY LOGGING]
| - Once the request is handed over to the saga engine, the Handler MUST NOT
|   emit any further logs (success or failure).
| - Observability for the rest of the execution is handled by the engine and
|   its downstream clients via TraceID correlation.
|
| [3. LEAN ORCHESTRATION]
| - Validation: Enforce payload integrity using DTO tags before execution.
| - Parsing: Handle malformed requests and immediately return AppError.
| - Bubbling: All errors returned by the saga are bubbled up directly to the
|   Global Error Handler to maintain log hygiene.
|
| [4. RESPONSE NORMALIZATION]
| - Always use the standardized 'response' package to ensure consistent
|   API contracts across all workflows.
|
|------------------------------------------------------------------------------------
*/
package http

import (
	"context"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/validator"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/clients"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/buynow"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/createaccount"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/createorder"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/engine/createstore"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
	"github.com/storiqa/saga-coordinator/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// authorizationHeader carries the caller's Initiator: "1" for
// Superadmin, any other decimal value for a user id.
const authorizationHeader = "Authorization"

// Handler drives every saga-workflow HTTP endpoint. Each method builds a
// fresh clients.Set (and so a fresh Budget) for its own request, wires it
// into the matching engine's Deps, and runs the saga.
type Handler struct {
	Cfg     *config.Config
	Log     logger.Logger
	Val     validator.Validator
	Factory *clients.Factory
	Tracer  tracer.Tracer
}

// NewHandler builds a Handler over a shared client Factory.
func NewHandler(cfg *config.Config, log logger.Logger, val validator.Validator, factory *clients.Factory, trc tracer.Tracer) *Handler {
	return &Handler{Cfg: cfg, Log: log, Val: val, Factory: factory, Tracer: trc}
}

// parseInitiator reconstructs the caller's Initiator from the inbound
// Authorization header. Some endpoints accept an absent header; callers
// that require one check the second return value themselves.
func (h *Handler) parseInitiator(c *fiber.Ctx) (initiator.Initiator, bool) {
	return initiator.Parse(c.Get(authorizationHeader))
}

// CreateAccount runs the CreateAccount saga: POST /create_account.
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.Log.WithContext(ctx).WithField("method", "CreateAccount")

	request := new(model.SagaCreateProfile)
	if err := c.BodyParser(request); err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}
	if err := h.Val.Validate(request); err != nil {
		return apperror.ErrCodeInvalidRequest.WithError(err).AddValidationErrors(h.Val.ToDetails(err))
	}

	log.WithFields(map[string]any{
		"business_key": map[string]any{"email": request.Identity.Email},
	}).Info("request received")

	set := h.Factory.New()
	saga := createaccount.New(createaccount.Deps{
		Users:         set.Users,
		Stores:        set.Stores,
		Billing:       set.Billing,
		Delivery:      set.Delivery,
		Notifications: set.Notifications,
		Log:           h.Log,
		Tracer:        h.Tracer,
	})

	user, err := saga.Run(ctx, *request)
	if err != nil {
		return err
	}

	return response.NewHttp(c).Created(response.Http{
		Message: "account created successfully",
		Data:    user,
	})
}

// CreateStore runs the CreateStore saga: POST /create_store.
func (h *Handler) CreateStore(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.Log.WithContext(ctx).WithField("method", "CreateStore")

	request := new(model.NewStore)
	if err := c.BodyParser(request); err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}
	if err := h.Val.Validate(request); err != nil {
		return apperror.ErrCodeInvalidRequest.WithError(err).AddValidationErrors(h.Val.ToDetails(err))
	}

	caller, ok := h.parseInitiator(c)
	if !ok {
		return apperror.NewForbidden(apperror.CodeSagaForbidden, "missing or invalid authorization")
	}

	log.WithFields(map[string]any{
		"business_key": map[string]any{"user_id": request.UserID, "slug": request.Slug},
	}).Info("request received")

	set := h.Factory.New()
	saga := createstore.New(createstore.Deps{
		Stores:     set.Stores,
		Warehouses: set.Warehouses,
		Orders:     set.Orders,
		Billing:    set.Billing,
		Log:        h.Log,
		Tracer:     h.Tracer,
	})

	store, err := saga.Run(ctx, caller, *request)
	if err != nil {
		return err
	}

	return response.NewHttp(c).Created(response.Http{
		Message: "store created successfully",
		Data:    store,
	})
}

// CreateOrder runs the CreateOrder saga: POST /create_order.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.Log.WithContext(ctx).WithField("method", "CreateOrder")

	request := new(model.ConvertCart)
	if err := c.BodyParser(request); err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}
	if err := h.Val.Validate(request); err != nil {
		return apperror.ErrCodeInvalidRequest.WithError(err).AddValidationErrors(h.Val.ToDetails(err))
	}

	log.WithFields(map[string]any{
		"business_key": map[string]any{"customer_id": request.CustomerID},
	}).Info("request received")

	set := h.Factory.New()
	saga := createorder.New(createorder.Deps{
		Orders:        set.Orders.WithUser(request.CustomerID),
		Billing:       set.Billing,
		Notifications: set.Notifications,
		Log:           h.Log,
		Tracer:        h.Tracer,
	})

	orders, err := saga.Run(ctx, *request)
	if err != nil {
		return err
	}

	return response.NewHttp(c).Created(response.Http{
		Message: "order created successfully",
		Data:    orders,
	})
}

// BuyNow runs the BuyNow saga: POST /buy_now.
func (h *Handler) BuyNow(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.Log.WithContext(ctx).WithField("method", "BuyNow")

	request := new(model.BuyNow)
	if err := c.BodyParser(request); err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}
	if err := h.Val.Validate(request); err != nil {
		return apperror.ErrCodeInvalidRequest.WithError(err).AddValidationErrors(h.Val.ToDetails(err))
	}

	log.WithFields(map[string]any{
		"business_key": map[string]any{"customer_id": request.CustomerID, "product_id": request.ProductID},
	}).Info("request received")

	set := h.Factory.New()
	saga := buynow.New(buynow.Deps{
		Orders:        set.Orders.WithUser(request.CustomerID),
		Billing:       set.Billing,
		Notifications: set.Notifications,
		Log:           h.Log,
		Tracer:        h.Tracer,
	})

	orders, err := saga.Run(ctx, *request)
	if err != nil {
		return err
	}

	return response.NewHttp(c).Created(response.Http{
		Message: "order created successfully",
		Data:    orders,
	})
}

// DeclineOrder proxies billing's single-round-trip order decline: POST
// /orders/:id/decline. No saga, no compensation, no operation log —
// the downstream call either succeeds or it doesn't.
func (h *Handler) DeclineOrder(c *fiber.Ctx) error {
	return h.orderPaymentAction(c, func(ctx context.Context, set clients.Set, caller initiator.Initiator, orderID int) error {
		return set.Billing.DeclineOrder(ctx, caller, orderID)
	})
}

// CaptureOrder proxies billing's single-round-trip order capture: POST
// /orders/:id/capture.
func (h *Handler) CaptureOrder(c *fiber.Ctx) error {
	return h.orderPaymentAction(c, func(ctx context.Context, set clients.Set, caller initiator.Initiator, orderID int) error {
		return set.Billing.CaptureOrder(ctx, caller, orderID)
	})
}

// SetOrderPaymentState proxies billing's single-round-trip payment
// state transition: POST /orders/:id/set_payment_state.
func (h *Handler) SetOrderPaymentState(c *fiber.Ctx) error {
	request := new(model.OrderPaymentStateRequest)
	if err := c.BodyParser(request); err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}

	return h.orderPaymentAction(c, func(ctx context.Context, set clients.Set, caller initiator.Initiator, orderID int) error {
		return set.Billing.SetPaymentState(ctx, caller, orderID, request.State)
	})
}

// orderPaymentAction is the shared shape every billing leaf endpoint
// follows: parse the order id, require an Initiator, run one
// downstream call, respond with no body on success.
func (h *Handler) orderPaymentAction(c *fiber.Ctx, call func(ctx context.Context, set clients.Set, caller initiator.Initiator, orderID int) error) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return apperror.ErrCodeMalformedRequest.WithError(err)
	}

	caller, ok := h.parseInitiator(c)
	if !ok {
		return apperror.NewForbidden(apperror.CodeSagaForbidden, "missing or invalid authorization")
	}

	set := h.Factory.New()
	if err := call(c.UserContext(), set, caller, orderID); err != nil {
		return err
	}

	return response.NewHttp(c).OK(response.Http{Message: "order updated successfully"})
}
