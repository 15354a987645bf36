// Package clients builds the set of downstream microservice clients a
// single saga run drives, fresh per inbound request so each run gets
// its own time budget. Grounded on the decorator chain in
// internal/infrastructure/httpclient and the per-service Caller in
// internal/downstream/transport.
package clients

import (
	"net/http"
	"time"

	"github.com/storiqa/saga-coordinator/internal/downstream/billing"
	"github.com/storiqa/saga-coordinator/internal/downstream/delivery"
	"github.com/storiqa/saga-coordinator/internal/downstream/notifications"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/downstream/stores"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/downstream/users"
	"github.com/storiqa/saga-coordinator/internal/downstream/warehouses"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/httpclient"
)

// defaultHeaders are merged into every downstream call before the
// per-call Authorization header and Request-Timeout are applied.
var defaultHeaders = http.Header{
	"Content-Type": []string{"application/json"},
	"Accept":       []string{"application/json"},
}

// Factory holds the per-service base URLs and the shared transport every
// saga run's clients are built on top of.
type Factory struct {
	cfg  config.DownstreamConfig
	doer httpclient.HTTPDoer
}

// NewFactory builds a Factory over doer (normally a single shared
// *http.Client reused across every request).
func NewFactory(cfg config.DownstreamConfig, doer httpclient.HTTPDoer) *Factory {
	return &Factory{cfg: cfg, doer: doer}
}

// Set is the full complement of downstream clients one saga run drives,
// all sharing the same Budget.
type Set struct {
	Users         users.Client
	Stores        stores.Client
	Warehouses    warehouses.Client
	Orders        orders.Client
	Billing       billing.Client
	Delivery      delivery.Client
	Notifications notifications.Client
	Budget        *httpclient.Budget
}

// New builds a fresh Set with its own Budget seeded from
// DownstreamConfig.SagaBudgetMs. Every client in the returned Set shares
// that Budget, so the first call to run out of time fails the rest of
// the saga's downstream calls fast.
func (f *Factory) New() Set {
	budget := httpclient.NewBudget(time.Duration(f.cfg.SagaBudgetMs) * time.Millisecond)
	wrapped := httpclient.NewDefaultHeaderClient(
		httpclient.NewBudgetedClient(httpclient.NewRawClient(f.doer), budget),
		defaultHeaders,
	)

	return Set{
		Users:         users.New(transport.New(wrapped, f.cfg.Users)),
		Stores:        stores.New(transport.New(wrapped, f.cfg.Stores)),
		Warehouses:    warehouses.New(transport.New(wrapped, f.cfg.Warehouses)),
		Orders:        orders.New(transport.New(wrapped, f.cfg.Orders)),
		Billing:       billing.New(transport.New(wrapped, f.cfg.Billing)),
		Delivery:      delivery.New(transport.New(wrapped, f.cfg.Delivery)),
		Notifications: notifications.New(transport.New(wrapped, f.cfg.Notifications)),
		Budget:        budget,
	}
}
