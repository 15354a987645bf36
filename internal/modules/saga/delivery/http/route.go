package http

import (
	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"

	"github.com/gofiber/fiber/v2"
)

// RouteConfig wires a Handler into the shared fiber.App.
type RouteConfig struct {
	Config  *config.Config
	Server  *fiber.App
	Handler *Handler
}

// Setup registers the four saga-workflow endpoints plus the billing
// leaf endpoints, at the root of the HTTP surface.
func (r *RouteConfig) Setup() {
	r.Server.Post("/create_account", r.Handler.CreateAccount)
	r.Server.Post("/create_store", r.Handler.CreateStore)
	r.Server.Post("/create_order", r.Handler.CreateOrder)
	r.Server.Post("/buy_now", r.Handler.BuyNow)

	r.Server.Post("/orders/:id/decline", r.Handler.DeclineOrder)
	r.Server.Post("/orders/:id/capture", r.Handler.CaptureOrder)
	r.Server.Post("/orders/:id/set_payment_state", r.Handler.SetOrderPaymentState)
}
