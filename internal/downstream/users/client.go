// Package users is the typed client over the identity microservice.
// Grounded on the original UsersMicroservice trait's cloned/
// with_superadmin/with_user lifecycle and its account/role operations.
package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of operations the saga engine needs from the
// identity microservice.
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

	// CreateAccount is the AccountCreationStart call: POST /users.
	CreateAccount(ctx context.Context, identity model.NewIdentity, user *model.NewUser) (*model.User, error)
	// CreateRole is the UsersRoleSetStart call: POST /roles.
	CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error)
	// DeleteRole is the UsersRoleSetStart compensation: DELETE
	// /roles/by-id/{role_id}.
	DeleteRole(ctx context.Context, roleID string) error
	// DeleteAccountBySagaID is the AccountCreationStart compensation:
	// DELETE /user_by_saga_id/{saga_id}.
	DeleteAccountBySagaID(ctx context.Context, sagaID string) error
}

type client struct {
	caller    transport.Caller
	initiator *initiator.Initiator
}

// New builds a users Client with no default initiator; every call that
// needs authorization must go through WithSuperadmin/WithUser first.
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

func (c *client) CreateAccount(ctx context.Context, identity model.NewIdentity, user *model.NewUser) (*model.User, error) {
	var out model.User
	payload := model.NewAccountPayload(identity, user)
	if err := c.caller.Call(ctx, http.MethodPost, "/users", c.initiator, payload, &out, "create account"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) CreateRole(ctx context.Context, role model.NewRole) (*model.NewRole, error) {
	var out model.NewRole
	if err := c.caller.Call(ctx, http.MethodPost, "/roles", c.initiator, role, &out, "create user role"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteRole(ctx context.Context, roleID string) error {
	path := fmt.Sprintf("/roles/by-id/%s", roleID)
	return c.caller.Call(ctx, http.MethodDelete, path, c.initiator, nil, nil, "delete user role")
}

func (c *client) DeleteAccountBySagaID(ctx context.Context, sagaID string) error {
	path := fmt.Sprintf("/user_by_saga_id/%s", sagaID)
	return c.caller.Call(ctx, http.MethodDelete, path, c.initiator, nil, nil, "delete account by saga id")
}
