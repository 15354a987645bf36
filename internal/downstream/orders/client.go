// Package orders is the typed client over the orders microservice.
// Grounded on the original OrdersMicroservice trait's cloned/
// with_superadmin/with_user lifecycle and its cart-conversion,
// buy-now and role operations.
package orders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of operations the saga engine needs from the
// orders microservice.
type Client interface {
	// Cloned returns an independent handle over the same transport,
	// never mutating the receiver.
	Cloned() Client
	// WithSuperadmin returns a handle whose subsequent calls default to
	// Superadmin authorization.
	WithSuperadmin() Client
	// WithUser returns a handle whose subsequent calls default to the
	// given user.
	WithUser(userID int) Client

	// CreateRole is the OrdersRoleSetStart call: POST /roles.
	CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error)
	// DeleteRole is its compensation: DELETE /roles/by-id/{role_id}.
	DeleteRole(ctx context.Context, roleID string) error

	// ConvertCart is the OrdersConvertCartStart call: POST
	// /orders/create_from_cart.
	ConvertCart(ctx context.Context, payload model.ConvertCartPayload) ([]model.Order, error)
	// CreateBuyNow is the OrdersConvertCartStart call for the BuyNow
	// workflow: POST /orders/create_buy_now.
	CreateBuyNow(ctx context.Context, payload model.BuyNowPayload) ([]model.Order, error)
	// RevertConvertCart is the BuyNow workflow's convert-step
	// compensation: POST /orders/create_buy_now/revert.
	RevertConvertCart(ctx context.Context, conversionID string) error
	// DeleteOrdersByCustomerID is the CreateOrder workflow's
	// convert-step compensation: DELETE
	// /orders/by-customer-id/{customer_id}.
	DeleteOrdersByCustomerID(ctx context.Context, customerID int) error
}

type client struct {
	caller    transport.Caller
	initiator *initiator.Initiator
}

// New builds an orders Client with no default initiator.
func New(caller transport.Caller) Client {
	return &client{caller: caller}
}

func (c *client) Cloned() Client {
	cp := *c
	return &cp
}

func (c *client) WithSuperadmin() Client {
	super := initiator.Superadmin()
	cp := *c
	cp.initiator = &super
	return &cp
}

func (c *client) WithUser(userID int) Client {
	user := initiator.User(userID)
	cp := *c
	cp.initiator = &user
	return &cp
}

func (c *client) CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error) {
	var out model.NewRole
	if err := c.caller.Call(ctx, http.MethodPost, "/roles", c.initiator, role, &out, "create orders role"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteRole(ctx context.Context, roleID string) error {
	path := fmt.Sprintf("/roles/by-id/%s", roleID)
	return c.caller.Call(ctx, http.MethodDelete, path, c.initiator, nil, nil, "delete orders role")
}

func (c *client) ConvertCart(ctx context.Context, payload model.ConvertCartPayload) ([]model.Order, error) {
	var out []model.Order
	if err := c.caller.Call(ctx, http.MethodPost, "/orders/create_from_cart", c.initiator, payload, &out, "convert cart"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateBuyNow(ctx context.Context, payload model.BuyNowPayload) ([]model.Order, error) {
	var out []model.Order
	if err := c.caller.Call(ctx, http.MethodPost, "/orders/create_buy_now", c.initiator, payload, &out, "create buy now order"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) RevertConvertCart(ctx context.Context, conversionID string) error {
	payload := model.ConvertCartRevert{ConversionID: conversionID}
	return c.caller.Call(ctx, http.MethodPost, "/orders/create_buy_now/revert", c.initiator, payload, nil, "revert buy now conversion")
}

func (c *client) DeleteOrdersByCustomerID(ctx context.Context, customerID int) error {
	path := fmt.Sprintf("/orders/by-customer-id/%d", customerID)
	return c.caller.Call(ctx, http.MethodDelete, path, c.initiator, nil, nil, "delete orders by customer id")
}
