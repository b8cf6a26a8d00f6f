package integrations

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/cratescout/pkg/errors"
	"github.com/matzehuels/cratescout/pkg/observability"
)

// maxErrorBody bounds how much of a non-200 body is read for its message.
const maxErrorBody = 64 << 10

// Client provides shared HTTP functionality for API clients.
// It applies common request headers, maps status codes onto error codes and
// decodes JSON bodies. It never retries.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeDecode, err, "decode response from %s", url)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if stderrors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", url)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// checkStatus maps a response onto an error. Every non-200 status is an
// error; the code only names the condition so the message is accurate.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	se := &errors.StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    errorMessage(resp.Body),
	}

	switch code := resp.StatusCode; {
	case isRateLimited(resp):
		if wait := retryAfter(resp, time.Now()); wait > 0 {
			return errors.Wrap(errors.ErrCodeRateLimited, se, "rate limited, resets in %s", wait)
		}
		return errors.Wrap(errors.ErrCodeRateLimited, se, "rate limited")
	case code == http.StatusUnauthorized:
		return errors.Wrap(errors.ErrCodeUnauthorized, se, "credentials rejected")
	case code == http.StatusForbidden:
		return errors.Wrap(errors.ErrCodeForbidden, se, "access forbidden")
	case code == http.StatusNotFound:
		return errors.Wrap(errors.ErrCodeNotFound, se, "resource not found")
	default:
		return errors.Wrap(errors.ErrCodeRemoteStatus, se, "unexpected response %s", resp.Status)
	}
}

// isRateLimited reports whether a 403 or 429 was caused by an exhausted
// rate limit rather than a permission problem.
func isRateLimited(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.Header.Get("Retry-After") != ""
	}
	return false
}

// retryAfter returns how long until the limit resets, from Retry-After or
// X-RateLimit-Reset. Zero means unknown.
func retryAfter(resp *http.Response, now time.Time) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if s := resp.Header.Get("X-RateLimit-Reset"); s != "" {
		if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
			if d := time.Unix(epoch, 0).Sub(now).Round(time.Second); d > 0 {
				return d
			}
		}
	}
	return 0
}

// errorMessage extracts the "message" field GitHub-style APIs put in error
// bodies. Anything unreadable yields an empty string.
func errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
