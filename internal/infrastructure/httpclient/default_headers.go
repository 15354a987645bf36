package httpclient

import (
	"context"
	"net/http"
)

// defaultHeaderClient merges a fixed default header set with whatever
// headers a given call supplies, per-call headers winning on key
// conflict. Composes by wrapping, same as the budget decorator.
type defaultHeaderClient struct {
	inner   Client
	headers http.Header
}

// NewDefaultHeaderClient wraps inner, applying defaults to every call
// that doesn't already set the same key.
func NewDefaultHeaderClient(inner Client, defaults http.Header) Client {
	return &defaultHeaderClient{inner: inner, headers: defaults.Clone()}
}

func (c *defaultHeaderClient) Request(ctx context.Context, method, url string, body []byte, headers http.Header) (*Response, error) {
	merged := c.headers.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	for key, values := range headers {
		merged.Del(key)
		for _, v := range values {
			merged.Add(key, v)
		}
	}
	return c.inner.Request(ctx, method, url, body, merged)
}
