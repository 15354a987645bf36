// Package billing is the typed client over the billing microservice,
// the canonical richer tree of merchant, role, invoice and order-state
// operations (grounded on the original BillingMicroservice trait,
// which is the most complete of the microservice modules and is taken
// as authoritative over the thinner traits seen elsewhere).
package billing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of operations the saga engine needs from the
// billing microservice.
type Client interface {
	// CreateUserMerchant is the BillingCreateMerchantStart call (user
	// flavor): POST /merchants/user.
	CreateUserMerchant(ctx context.Context, init initiator.Initiator, userID int) (*model.Merchant, error)
	// DeleteUserMerchant is its compensation: DELETE
	// /merchants/user/{user_id}.
	DeleteUserMerchant(ctx context.Context, init initiator.Initiator, userID int) error

	// CreateStoreMerchant is the BillingCreateMerchantStart call (store
	// flavor): POST /merchants/store.
	CreateStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) (*model.Merchant, error)
	// DeleteStoreMerchant is its compensation: DELETE
	// /merchants/store/{store_id}.
	DeleteStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) error

	// CreateRole is the BillingRoleSetStart call: POST /roles.
	CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error)
	// DeleteRole is its compensation: DELETE /roles/by-id/{role_id}.
	DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error

	// CreateInvoice is the BillingCreateInvoiceStart call: POST
	// /invoices.
	CreateInvoice(ctx context.Context, init initiator.Initiator, invoice model.CreateInvoice) (*model.Invoice, error)
	// RevertCreateInvoice is its compensation: DELETE
	// /invoices/by-saga-id/{saga_id}.
	RevertCreateInvoice(ctx context.Context, init initiator.Initiator, sagaID string) error

	// DeclineOrder, CaptureOrder and SetPaymentState are single-round-trip
	// leaves with no saga compensation.
	DeclineOrder(ctx context.Context, init initiator.Initiator, orderID int) error
	CaptureOrder(ctx context.Context, init initiator.Initiator, orderID int) error
	SetPaymentState(ctx context.Context, init initiator.Initiator, orderID int, state string) error
}

type client struct {
	caller transport.Caller
}

// New builds a billing Client.
func New(caller transport.Caller) Client {
	return &client{caller: caller}
}

func (c *client) CreateUserMerchant(ctx context.Context, init initiator.Initiator, userID int) (*model.Merchant, error) {
	var out model.Merchant
	payload := model.MerchantIDPayload{ID: userID}
	if err := c.caller.Call(ctx, http.MethodPost, "/merchants/user", &init, payload, &out, "create user merchant"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteUserMerchant(ctx context.Context, init initiator.Initiator, userID int) error {
	path := fmt.Sprintf("/merchants/user/%d", userID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete user merchant")
}

func (c *client) CreateStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) (*model.Merchant, error) {
	var out model.Merchant
	payload := model.MerchantIDPayload{ID: storeID}
	if err := c.caller.Call(ctx, http.MethodPost, "/merchants/store", &init, payload, &out, "create store merchant"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteStoreMerchant(ctx context.Context, init initiator.Initiator, storeID int) error {
	path := fmt.Sprintf("/merchants/store/%d", storeID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete store merchant")
}

func (c *client) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	var out model.NewRole
	if err := c.caller.Call(ctx, http.MethodPost, "/roles", &init, role, &out, "create billing role"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	path := fmt.Sprintf("/roles/by-id/%s", roleID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete billing role")
}

func (c *client) CreateInvoice(ctx context.Context, init initiator.Initiator, invoice model.CreateInvoice) (*model.Invoice, error) {
	var out model.Invoice
	if err := c.caller.Call(ctx, http.MethodPost, "/invoices", &init, invoice, &out, "create invoice"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) RevertCreateInvoice(ctx context.Context, init initiator.Initiator, sagaID string) error {
	path := fmt.Sprintf("/invoices/by-saga-id/%s", sagaID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "revert invoice creation")
}

func (c *client) DeclineOrder(ctx context.Context, init initiator.Initiator, orderID int) error {
	path := fmt.Sprintf("/orders/%d/decline", orderID)
	return c.caller.Call(ctx, http.MethodPost, path, &init, nil, nil, "decline order")
}

func (c *client) CaptureOrder(ctx context.Context, init initiator.Initiator, orderID int) error {
	path := fmt.Sprintf("/orders/%d/capture", orderID)
	return c.caller.Call(ctx, http.MethodPost, path, &init, nil, nil, "capture order")
}

func (c *client) SetPaymentState(ctx context.Context, init initiator.Initiator, orderID int, state string) error {
	path := fmt.Sprintf("/orders/%d/set_payment_state", orderID)
	payload := model.OrderPaymentStateRequest{State: state}
	return c.caller.Call(ctx, http.MethodPost, path, &init, payload, nil, "set order payment state")
}
