package httpclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	lastHeaders http.Header
}

func (c *recordingClient) Request(_ context.Context, _, _ string, _ []byte, headers http.Header) (*httpclient.Response, error) {
	c.lastHeaders = headers
	return &httpclient.Response{StatusCode: 200}, nil
}

// TestDefaultHeaders_PerCallWinsOnConflict mirrors the Rust source's
// new_headers_override_existing_headers test: when both a default header
// set and per-call headers specify Authorization, the per-call value is
// what reaches the transport.
func TestDefaultHeaders_PerCallWinsOnConflict(t *testing.T) {
	rec := &recordingClient{}

	old := http.Header{}
	old.Set("Authorization", "old_auth")
	withOld := httpclient.NewDefaultHeaderClient(rec, old)

	fresh := http.Header{}
	fresh.Set("Authorization", "new_auth")
	withNew := httpclient.NewDefaultHeaderClient(withOld, fresh)

	_, err := withNew.Request(context.Background(), http.MethodGet, "http://example.test", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "new_auth", rec.lastHeaders.Get("Authorization"))
}

// TestDefaultHeaders_PerCallWithoutConflictIsMerged verifies that a
// per-call header for a different key is merged alongside the defaults
// rather than replacing the whole set.
func TestDefaultHeaders_PerCallWithoutConflictIsMerged(t *testing.T) {
	rec := &recordingClient{}

	defaults := http.Header{}
	defaults.Set("Authorization", "1")
	client := httpclient.NewDefaultHeaderClient(rec, defaults)

	perCall := http.Header{}
	perCall.Set("X-Request-Id", "abc")

	_, err := client.Request(context.Background(), http.MethodGet, "http://example.test", nil, perCall)
	require.NoError(t, err)

	assert.Equal(t, "1", rec.lastHeaders.Get("Authorization"))
	assert.Equal(t, "abc", rec.lastHeaders.Get("X-Request-Id"))
}
