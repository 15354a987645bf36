// Package notifications is the typed client over the notifications
// microservice. Every call here is best-effort: the saga engine logs
// failures and never compensates them.
package notifications

import (
	"context"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of best-effort notification operations the saga
// engine fires after a successful workflow.
type Client interface {
	// CreateContact registers a new account with the CRM-equivalent
	// after CreateAccount succeeds.
	CreateContact(ctx context.Context, init initiator.Initiator, payload model.CreateContactPayload) error
	// OrderCreateForUser notifies the customer once per successful
	// CreateOrder/BuyNow.
	OrderCreateForUser(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error
	// OrderCreateForStore notifies each distinct store involved in a
	// successful CreateOrder/BuyNow.
	OrderCreateForStore(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error
	// CouponUsed records a coupon redemption, sent once per unique
	// coupon id on a successful order.
	CouponUsed(ctx context.Context, init initiator.Initiator, payload model.CouponUsedPayload) error
}

type client struct {
	caller transport.Caller
}

// New builds a notifications Client.
func New(caller transport.Caller) Client {
	return &client{caller: caller}
}

func (c *client) CreateContact(ctx context.Context, init initiator.Initiator, payload model.CreateContactPayload) error {
	return c.caller.Call(ctx, http.MethodPost, "/contacts", &init, payload, nil, "create crm contact")
}

func (c *client) OrderCreateForUser(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error {
	return c.caller.Call(ctx, http.MethodPost, "/users/order-create", &init, payload, nil, "notify user of order creation")
}

func (c *client) OrderCreateForStore(ctx context.Context, init initiator.Initiator, payload model.OrderCreateNotification) error {
	return c.caller.Call(ctx, http.MethodPost, "/stores/order-create", &init, payload, nil, "notify store of order creation")
}

func (c *client) CouponUsed(ctx context.Context, init initiator.Initiator, payload model.CouponUsedPayload) error {
	return c.caller.Call(ctx, http.MethodPost, "/coupons/used", &init, payload, nil, "record coupon usage")
}
