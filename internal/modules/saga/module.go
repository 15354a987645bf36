// Package saga wires the saga-workflow HTTP module: the downstream
// client factory, the four workflow engines, the controller, and its
// routes.
package saga

import (
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/validator"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/clients"
	sagahttp "github.com/storiqa/saga-coordinator/internal/modules/saga/delivery/http"

	"github.com/gofiber/fiber/v2"
)

// HttpModuleConfig carries everything RegisterHttpModule needs to wire
// the saga module into the shared fiber.App.
type HttpModuleConfig struct {
	Config *config.Config
	Server *fiber.App
	Log    logger.Logger
	Val    validator.Validator
	Tracer tracer.Tracer
}

// RegisterHttpModule builds the downstream client factory and the saga
// controller, then registers its routes on cfg.Server.
func RegisterHttpModule(cfg HttpModuleConfig) {
	hdlrLogger := cfg.Log.WithField("component", "handler")

	factory := clients.NewFactory(cfg.Config.Downstream, &http.Client{})

	h := sagahttp.NewHandler(cfg.Config, hdlrLogger, cfg.Val, factory, cfg.Tracer)

	routeConfig := sagahttp.RouteConfig{
		Server:  cfg.Server,
		Config:  cfg.Config,
		Handler: h,
	}
	routeConfig.Setup()
}
