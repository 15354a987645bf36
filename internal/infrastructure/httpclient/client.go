// Package httpclient provides the time-budgeted, header-propagating HTTP
// transport the saga engine builds every downstream call on. A chain of
// decorators wraps a plain net/http.Client: one enforces a shared,
// monotonically non-increasing time budget for an entire inbound
// request, the other merges a default header set with per-call headers.
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Response is the parsed result of a request: status code, raw body, and
// headers, kept deliberately thin since callers decode the body with
// their own result type.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// HTTPDoer is the minimal transport interface every decorator wraps.
// *http.Client satisfies it directly.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is what downstream client packages depend on: a single
// request/response round trip carrying an explicit body and header set.
type Client interface {
	Request(ctx context.Context, method, url string, body []byte, headers http.Header) (*Response, error)
}

// rawClient adapts a plain HTTPDoer (normally *http.Client) to Client,
// with no budget or default-header behavior of its own. It is always the
// innermost layer of the decorator chain.
type rawClient struct {
	doer HTTPDoer
}

// NewRawClient wraps an HTTPDoer as the innermost Client in the chain.
func NewRawClient(doer HTTPDoer) Client {
	return &rawClient{doer: doer}
}

func (c *rawClient) Request(ctx context.Context, method, url string, body []byte, headers http.Header) (*Response, error) {
	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if len(body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Header:     resp.Header,
	}, nil
}

// Parse decodes an empty body as the JSON null value of T, mirroring the
// empty-body parse law: parse<T>("") == parse<T>("null").
func (r *Response) Parse(dst any) error {
	if len(r.Body) == 0 {
		return parseJSON([]byte("null"), dst)
	}
	return parseJSON(r.Body, dst)
}
