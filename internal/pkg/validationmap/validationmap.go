// Package validationmap reshapes a downstream call failure into the
// small, closed-set error kind the saga engine hands to the controller
// boundary: Forbidden, NotFound, Validate (with an allow-listed field
// set) or Unknown.
package validationmap

import (
	"errors"

	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
)

// Map inspects err for a transport.DownstreamError cause and dispatches
// on its status code. allowedFields restricts a reconstructed Validate
// error to the fields the calling workflow actually surfaces; pass nil
// to keep every field the downstream payload carried. err is returned
// unchanged when it carries no DownstreamError cause, e.g. a
// TimeLimitExceeded or a local serialize/parse failure.
func Map(err error, allowedFields []string) error {
	var downstream *transport.DownstreamError
	if !errors.As(err, &downstream) {
		return err
	}

	status := downstream.Code
	if status == 0 {
		status = downstream.StatusCode
	}

	switch {
	case status == 403:
		return apperror.NewForbidden(apperror.CodeSagaForbidden, downstream.Description)
	case status == 404:
		return apperror.NewNotFound(apperror.CodeSagaNotFound, downstream.Description)
	case status == 400 && downstream.HasStructuredPayload():
		return apperror.NewValidate(apperror.CodeSagaValidate, "validation failed", filterFields(downstream.Payload, allowedFields))
	default:
		return apperror.NewUnknown(apperror.CodeSagaUnknown, downstream.Description)
	}
}

func filterFields(payload map[string][]string, allowed []string) map[string][]string {
	if len(allowed) == 0 {
		return payload
	}
	allow := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allow[f] = struct{}{}
	}
	out := make(map[string][]string)
	for field, messages := range payload {
		if _, ok := allow[field]; ok {
			out[field] = messages
		}
	}
	return out
}
