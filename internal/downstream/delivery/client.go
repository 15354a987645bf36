// Package delivery is the typed client over the delivery microservice,
// grounded on the original DeliveryMicroservice trait's create/delete
// role pair.
package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of operations the saga engine needs from the
// delivery microservice.
type Client interface {
	// CreateRole is the DeliveryRoleSetStart call: POST /roles.
	CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error)
	// DeleteRole is its compensation: DELETE /roles/by-id/{role_id}.
	DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error
}

type client struct {
	caller transport.Caller
}

// New builds a delivery Client.
func New(caller transport.Caller) Client {
	return &client{caller: caller}
}

func (c *client) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	var out model.NewRole
	if err := c.caller.Call(ctx, http.MethodPost, "/roles", &init, role, &out, "create delivery role"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	path := fmt.Sprintf("/roles/by-id/%s", roleID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete delivery role")
}
