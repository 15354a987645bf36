package app

import (
	"time"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/middleware"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/metrics"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/validator"
	"github.com/storiqa/saga-coordinator/internal/modules/saga"

	"github.com/gofiber/fiber/v2"
)

// BootstrapHttpConfig wires the saga HTTP module onto the shared
// fiber.App. Unlike a multi-domain service, there is exactly one
// module here and no persisted state, so setup is a single pass over
// the global config rather than a per-domain config/logger/db fan-out.
type BootstrapHttpConfig struct {
	App     *fiber.App
	Val     validator.Validator
	Log     logger.Logger
	Tracer  tracer.Tracer
	Metrics metrics.Metrics

	config *config.Config
}

func (b *BootstrapHttpConfig) Run() {
	b.config = config.InitGlobalConfig("config/config.yaml")

	b.setupMiddleware()
	b.setupModules()
	b.setupHealthRoute()
}

// Stop releases resources acquired during Run. The saga coordinator
// keeps no persisted state, so there is nothing to close beyond what
// the server itself owns.
func (b *BootstrapHttpConfig) Stop() {}

func (b *BootstrapHttpConfig) setupMiddleware() {
	t := middleware.NewTelemetrist(b.Log, b.Tracer, b.Metrics)

	b.App.Use(middleware.RequestID())
	b.App.Use(t.HandleMetrics())
	b.App.Use(t.HandleTrace())
	b.App.Use(t.HandleLog())
}

func (b *BootstrapHttpConfig) setupModules() {
	saga.RegisterHttpModule(saga.HttpModuleConfig{
		Config: b.config,
		Server: b.App,
		Log:    b.Log,
		Val:    b.Val,
		Tracer: b.Tracer,
	})
}

func (b *BootstrapHttpConfig) setupHealthRoute() {
	h := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "UP",
			"time":   time.Now().Format(time.RFC3339),
		})
	}

	b.App.Get("/", h)
	b.App.Get("/health", h)
}
