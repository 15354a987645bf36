// Package transport is the shared request/serialize/parse helper every
// downstream client package builds its typed operations on top of,
// grounded on the generic request<C, T, S> free function the original
// microservice clients all funneled through.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/httpclient"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
	"github.com/storiqa/saga-coordinator/internal/pkg/initiator"
)

// Caller binds a budgeted/header-composed httpclient.Client to a single
// microservice's base URL. Each downstream client package wraps one
// Caller per service and adds its typed operations on top.
type Caller struct {
	HTTP    httpclient.Client
	BaseURL string
}

// New constructs a Caller for a given service base URL.
func New(client httpclient.Client, baseURL string) Caller {
	return Caller{HTTP: client, BaseURL: baseURL}
}

// Call issues method against BaseURL+path. init is attached as the
// Authorization header when non-nil, and omitted for internally
// authenticated or public endpoints. payload, when non-nil, is
// marshaled as the JSON body; result, when non-nil, receives the parsed
// response body, an empty body parsing as the JSON null value. desc is
// a short per-operation description used to annotate any failure.
func (c Caller) Call(ctx context.Context, method, path string, init *initiator.Initiator, payload, result any, desc string) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return apperror.NewParse(apperror.CodeSagaParse, fmt.Sprintf("%s: failed to serialize request body", desc), err)
		}
	}

	headers := http.Header{}
	if init != nil {
		headers.Set("Authorization", init.Header())
	}

	resp, err := c.HTTP.Request(ctx, method, c.BaseURL+path, body, headers)
	if err != nil {
		if appErr, ok := err.(*apperror.AppError); ok {
			return appErr
		}
		return apperror.NewHttpClient(apperror.CodeSagaHttpClient, fmt.Sprintf("%s: transport failure", desc), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.wrapFailure(resp, desc)
	}

	if result != nil {
		if err := resp.Parse(result); err != nil {
			return apperror.NewParse(apperror.CodeSagaParse, fmt.Sprintf("%s: failed to parse response body", desc), err)
		}
	}
	return nil
}

func (c Caller) wrapFailure(resp *httpclient.Response, desc string) error {
	downstream := &DownstreamError{StatusCode: resp.StatusCode, Body: resp.Body}

	var parsed downstreamPayload
	if len(resp.Body) > 0 && json.Unmarshal(resp.Body, &parsed) == nil {
		downstream.Code = parsed.Code
		downstream.Description = parsed.Description
		downstream.Payload = parsed.Payload
	}

	message := desc
	if downstream.Description != "" {
		message = fmt.Sprintf("%s: %s", desc, downstream.Description)
	}
	return apperror.NewHttpClient(apperror.CodeSagaHttpClient, message, downstream)
}
