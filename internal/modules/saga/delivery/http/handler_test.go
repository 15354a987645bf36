package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/config"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/logger"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/telemetry/tracer"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/validator"
	"github.com/storiqa/saga-coordinator/internal/modules/saga/clients"
	sagahttp "github.com/storiqa/saga-coordinator/internal/modules/saga/delivery/http"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
	"github.com/storiqa/saga-coordinator/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorHandler mirrors the shape of server.go's errorHdlr closely enough
// to exercise the same AppError-to-JSON contract the real server renders.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var e *apperror.AppError
	if ae, ok := err.(*apperror.AppError); ok {
		e = ae
		code = e.GetHttpStatus()
		message = e.Message
	}

	return c.Status(code).JSON(response.Http{
		Success: false,
		Message: message,
	})
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})

	log := logger.New(&config.Config{}, nil)
	val := validator.NewPlaygroundValidator()
	factory := clients.NewFactory(config.DownstreamConfig{SagaBudgetMs: 1000}, nil)

	handler := sagahttp.NewHandler(&config.Config{}, log, val, factory, tracer.NewNoOpTracer())
	route := sagahttp.RouteConfig{Server: app, Config: &config.Config{}, Handler: handler}
	route.Setup()

	return app
}

func TestCreateAccount_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/create_account", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateAccount_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{
		"identity": map[string]any{
			"email":    "not-an-email",
			"provider": "email",
		},
	})

	req := httptest.NewRequest("POST", "/create_account", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateStore_MissingAuthorization(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{
		"name":              json.RawMessage(`{"en":"My Store"}`),
		"user_id":           1,
		"short_description": json.RawMessage(`{"en":"short"}`),
		"slug":              "my-store",
		"default_language":  "en",
	})

	req := httptest.NewRequest("POST", "/create_store", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{"customer_id": 0})

	req := httptest.NewRequest("POST", "/create_order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBuyNow_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{"product_id": 0})

	req := httptest.NewRequest("POST", "/buy_now", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeclineOrder_MissingAuthorization(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/orders/42/decline", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeclineOrder_MalformedID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/orders/not-an-id/decline", nil)
	req.Header.Set("Authorization", "1")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
