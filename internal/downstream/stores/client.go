// Package stores is the typed client over the stores microservice.
// Store creation, role management and the per-user compensation lookup
// are the only operations the saga engine needs; moderation/
// deactivation are single-round-trip leaves outside the engine's
// scope.
package stores

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Client is the set of operations the saga engine needs from the
// stores microservice.
type Client interface {
	// CreateStore is the StoreCreationStart call: POST /stores.
	CreateStore(ctx context.Context, init initiator.Initiator, store model.NewStore) (*model.Store, error)
	// CreateRole is the store-role-set calls (StoreRoleSetStart et al
	// on whichever service owns the role): POST /roles.
	CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error)
	// DeleteRole is the corresponding compensation: DELETE
	// /roles/by-id/{role_id}.
	DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error
	// DeleteStoreByUserID is the StoreCreationStart compensation:
	// DELETE /stores/by_user_id/{user_id}.
	DeleteStoreByUserID(ctx context.Context, init initiator.Initiator, userID int) error
}

type client struct {
	caller transport.Caller
}

// New builds a stores Client. Unlike users/orders, stores has no
// lifecycle methods: every call takes its initiator explicitly.
func New(caller transport.Caller) Client {
	return &client{caller: caller}
}

func (c *client) CreateStore(ctx context.Context, init initiator.Initiator, store model.NewStore) (*model.Store, error) {
	var out model.Store
	if err := c.caller.Call(ctx, http.MethodPost, "/stores", &init, store, &out, "create store"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) CreateRole(ctx context.Context, init initiator.Initiator, role model.NewRole) (*model.NewRole, error) {
	var out model.NewRole
	if err := c.caller.Call(ctx, http.MethodPost, "/roles", &init, role, &out, "create store role"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteRole(ctx context.Context, init initiator.Initiator, roleID string) error {
	path := fmt.Sprintf("/roles/by-id/%s", roleID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete store role")
}

func (c *client) DeleteStoreByUserID(ctx context.Context, init initiator.Initiator, userID int) error {
	path := fmt.Sprintf("/stores/by_user_id/%d", userID)
	return c.caller.Call(ctx, http.MethodDelete, path, &init, nil, nil, "delete store by user id")
}
