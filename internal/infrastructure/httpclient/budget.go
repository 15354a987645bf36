package httpclient

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/storiqa/saga-coordinator/internal/pkg/apperror"
)

// RequestTimeoutHeader is the egress header carrying the remaining
// budget, in integer milliseconds, on every downstream call.
const RequestTimeoutHeader = "Request-Timeout"

// Budget is the shared, mutable remaining-duration cell backing a single
// inbound request's downstream call chain. It is monotonically
// non-increasing: every request clamps it down via a min-update, never
// up, and zero is an absorbing state. Safe for concurrent use by the
// clones a saga hands to its downstream clients.
type Budget struct {
	mu        sync.Mutex
	remaining time.Duration
}

// NewBudget creates a Budget initialized to d0.
func NewBudget(d0 time.Duration) *Budget {
	if d0 < 0 {
		d0 = 0
	}
	return &Budget{remaining: d0}
}

// Remaining returns the current remaining duration.
func (b *Budget) Remaining() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// reserve reads the current remaining duration for a new request. It does
// not itself decrement remaining; the caller applies the min-update after
// the request completes via settle.
func (b *Budget) reserve() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// settle applies the min-update rule: remaining is clamped down to
// whichever observation is tighter, this request's post-call remainder or
// whatever another concurrent request already wrote. Never increases
// remaining.
func (b *Budget) settle(afterThisRequest time.Duration) {
	if afterThisRequest < 0 {
		afterThisRequest = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if afterThisRequest < b.remaining {
		b.remaining = afterThisRequest
	}
}

// budgetedClient enforces the time budget around an inner Client. Every
// request reads the shared remaining duration, fails fast with
// TimeLimitExceeded when it is already zero, sets Request-Timeout to the
// snapshot it read (overwriting any caller-supplied value), and on
// return clamps the shared remaining down via Budget.settle.
type budgetedClient struct {
	inner  Client
	budget *Budget
}

// NewBudgetedClient wraps inner with the shared budget b.
func NewBudgetedClient(inner Client, b *Budget) Client {
	return &budgetedClient{inner: inner, budget: b}
}

func (c *budgetedClient) Request(ctx context.Context, method, url string, body []byte, headers http.Header) (*Response, error) {
	rem := c.budget.reserve()
	if rem <= 0 {
		return nil, apperror.New(apperror.CodeTimeLimitExceed, "time limit for this client has been exceeded", apperror.KindHttpClient)
	}

	if headers == nil {
		headers = http.Header{}
	} else {
		headers = headers.Clone()
	}
	headers.Set(RequestTimeoutHeader, requestTimeoutMs(rem))

	start := time.Now()
	resp, err := c.inner.Request(ctx, method, url, body, headers)
	elapsed := time.Since(start)

	afterThisRequest := rem - elapsed
	c.budget.settle(afterThisRequest)

	return resp, err
}

func requestTimeoutMs(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatInt(ms, 10)
}
