package validationmap_test

import (
	"errors"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
	"github.com/storiqa/saga-coordinator/internal/pkg/validationmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(downstream *transport.DownstreamError) error {
	return apperror.NewHttpClient(apperror.CodeSagaHttpClient, "call failed", downstream)
}

func TestMap_ForbiddenStatus(t *testing.T) {
	err := validationmap.Map(wrap(&transport.DownstreamError{StatusCode: 403, Description: "not allowed"}), nil)
	appErr := asAppError(t, err)
	assert.Equal(t, apperror.KindForbidden, appErr.Kind)
}

func TestMap_NotFoundStatus(t *testing.T) {
	err := validationmap.Map(wrap(&transport.DownstreamError{StatusCode: 404, Description: "missing"}), nil)
	appErr := asAppError(t, err)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestMap_ValidationPayloadFilteredByAllowList(t *testing.T) {
	downstream := &transport.DownstreamError{
		StatusCode: 400,
		Code:       400,
		Payload: map[string][]string{
			"email": {"is invalid"},
			"secret": {"must not be set"},
		},
	}
	err := validationmap.Map(wrap(downstream), []string{"email"})
	appErr := asAppError(t, err)
	require.Equal(t, apperror.KindValidate, appErr.Kind)

	fields, ok := appErr.Details.(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.NotContains(t, fields, "secret")
}

func TestMap_BadRequestWithoutPayloadIsUnknown(t *testing.T) {
	err := validationmap.Map(wrap(&transport.DownstreamError{StatusCode: 400}), nil)
	appErr := asAppError(t, err)
	assert.Equal(t, apperror.KindUnknown, appErr.Kind)
}

func TestMap_NonDownstreamErrorPassesThrough(t *testing.T) {
	original := errors.New("boom")
	err := validationmap.Map(original, nil)
	assert.Same(t, original, err)
}

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	return appErr
}
