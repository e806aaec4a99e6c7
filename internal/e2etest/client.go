package e2etest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/manosdvd/agency/internal/errors"
)

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates an HTTP client for the JSON API served at url.
func NewClient(url string) *Client {
	return &Client{
		client: &http.Client{Timeout: 5 * time.Second}, //nolint:mnd // 5 seconds
		url:    url,
	}
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetJSON fetches a URL and decodes the JSON body into v. It returns the status code of the response.
// The body is decoded for every status so that error payloads can be inspected too.
func (c *Client) GetJSON(ctx context.Context, urlPath string, v any) (int, error) {
	resp, err := c.Get(ctx, urlPath)
	if err != nil {
		return 0, errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if contentType := resp.Header.Get("Content-Type"); contentType != "application/json" {
		return resp.StatusCode, errors.New("unexpected content type",
			slog.String("contentType", contentType), slog.Int("status", resp.StatusCode))
	}
	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, errors.Wrap(err, "decode body")
	}
	return resp.StatusCode, nil
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req, nil
}
