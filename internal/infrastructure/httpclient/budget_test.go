package httpclient_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/storiqa/saga-coordinator/internal/infrastructure/httpclient"
	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sleepingClient simulates a downstream call taking `duration` and
// records the headers it was called with.
type sleepingClient struct {
	duration time.Duration

	mu           sync.Mutex
	callHeaders  []http.Header
	requestCount int
}

func (c *sleepingClient) Request(_ context.Context, _, _ string, _ []byte, headers http.Header) (*httpclient.Response, error) {
	time.Sleep(c.duration)
	c.mu.Lock()
	c.callHeaders = append(c.callHeaders, headers)
	c.requestCount++
	c.mu.Unlock()
	return &httpclient.Response{StatusCode: 200}, nil
}

// TestBudgetedClient_FailsFastWhenExhausted mirrors the Rust source's
// time_limited_http_client_returns_error_on_time_exceeded test.
func TestBudgetedClient_FailsFastWhenExhausted(t *testing.T) {
	inner := &sleepingClient{duration: 10 * time.Millisecond}
	budget := httpclient.NewBudget(9 * time.Millisecond)
	client := httpclient.NewBudgetedClient(inner, budget)

	_, err := client.Request(context.Background(), http.MethodGet, "http://example.test/1", nil, nil)
	require.NoError(t, err)

	_, err = client.Request(context.Background(), http.MethodGet, "http://example.test/2", nil, nil)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeTimeLimitExceed, appErr.Code)
}

// TestBudgetedClient_SetsRequestTimeoutHeader mirrors
// time_limited_http_client_sets_request_timeout_header.
func TestBudgetedClient_SetsRequestTimeoutHeader(t *testing.T) {
	inner := &sleepingClient{duration: time.Millisecond}
	budget := httpclient.NewBudget(10 * time.Millisecond)
	client := httpclient.NewBudgetedClient(inner, budget)

	_, err := client.Request(context.Background(), http.MethodGet, "http://example.test/1", nil, nil)
	require.NoError(t, err)

	require.Len(t, inner.callHeaders, 1)
	assert.Equal(t, "10", inner.callHeaders[0].Get(httpclient.RequestTimeoutHeader))
}

// TestBudgetedClient_OverwritesCallerSuppliedTimeoutHeader mirrors
// time_limited_http_client_updates_request_timeout_header: a caller
// supplying its own Request-Timeout is overwritten by the budget's
// snapshot at call time.
func TestBudgetedClient_OverwritesCallerSuppliedTimeoutHeader(t *testing.T) {
	inner := &sleepingClient{duration: time.Millisecond}
	budget := httpclient.NewBudget(10 * time.Millisecond)
	client := httpclient.NewBudgetedClient(inner, budget)

	headers := http.Header{}
	headers.Set(httpclient.RequestTimeoutHeader, "50")

	_, err := client.Request(context.Background(), http.MethodGet, "http://example.test/1", nil, headers)
	require.NoError(t, err)

	require.Len(t, inner.callHeaders, 1)
	assert.Equal(t, "10", inner.callHeaders[0].Get(httpclient.RequestTimeoutHeader))
}

// TestBudgetedClient_ParallelRequestsClampToTightestBound mirrors
// time_limited_http_client_correctly_calculates_timeout_on_parallel_requests
// (scenario 6 of the testable properties): three parallel calls on a
// 100ms budget taking 20ms, 5ms, 10ms leave remaining in
// (80-3, 80) ms, and the first call's Request-Timeout header is "100".
func TestBudgetedClient_ParallelRequestsClampToTightestBound(t *testing.T) {
	budget := httpclient.NewBudget(100 * time.Millisecond)

	durations := []time.Duration{20 * time.Millisecond, 5 * time.Millisecond, 10 * time.Millisecond}
	var wg sync.WaitGroup
	var firstHeader string
	var mu sync.Mutex

	for i, d := range durations {
		wg.Add(1)
		go func(idx int, dur time.Duration) {
			defer wg.Done()
			perCall := &sleepingClient{duration: dur}
			wrapped := httpclient.NewBudgetedClient(perCall, budget)
			resp, err := wrapped.Request(context.Background(), http.MethodGet, "http://example.test", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			if idx == 0 {
				mu.Lock()
				if len(perCall.callHeaders) > 0 {
					firstHeader = perCall.callHeaders[0].Get(httpclient.RequestTimeoutHeader)
				}
				mu.Unlock()
			}
		}(i, d)
	}
	wg.Wait()

	remaining := budget.Remaining()
	expected := 80 * time.Millisecond
	tolerance := 3 * time.Millisecond

	assert.Greater(t, remaining, expected-tolerance)
	assert.Less(t, remaining, expected)
	assert.Equal(t, "100", firstHeader)
}
