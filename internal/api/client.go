// Package api is the typed client for the PRF backend. It is the single choke
// point for all network I/O: every page, CLI command and gateway handler goes
// through it. The client builds request URLs against a configurable base
// origin, dispatches JSON or multipart bodies depending on the payload,
// attaches the stored bearer token on authenticated calls and maps every
// failure to a *ClientError - methods never panic and callers always get an
// explicit error value.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prf-platform/prfweb/internal/session"
)

// all endpoints live under /api on the backend origin - the prefix applies to
// JSON and multipart requests alike
const apiPrefix = "/api"

const (
	defaultTimeout = 30 * time.Second

	// idempotent GETs are retried on transport errors and 5xx responses
	getRetryAttempts = 3
	getRetryBackoff  = 250 * time.Millisecond
)

// Client handles communication with the PRF API
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    session.Store
}

// NewClient creates a client for the PRF API at baseURL. The session store
// supplies the bearer token for authenticated calls and records the VIP
// subscription state.
func NewClient(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		session: store,
	}
}

// BaseURL returns the backend origin the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetAuthToken stores the bearer token obtained from a login or OTP verification
func (c *Client) SetAuthToken(token string) error {
	return c.session.SetToken(token)
}

// AuthToken returns the stored bearer token, or "" when logged out
func (c *Client) AuthToken() string {
	return c.session.Token()
}

// RemoveAuthToken clears the stored bearer token
func (c *Client) RemoveAuthToken() error {
	return c.session.ClearToken()
}

// SetVIPSubscription records a completed subscription locally. The record is a
// UI hint only - entitlements remain server-asserted.
func (c *Client) SetVIPSubscription(sub session.VIPSubscription) error {
	return c.session.SetVIP(sub)
}

// VIPSubscription returns the locally recorded subscription, if any
func (c *Client) VIPSubscription() (session.VIPSubscription, bool) {
	return c.session.VIP()
}

// ClearVIPSubscription removes the locally recorded subscription
func (c *Client) ClearVIPSubscription() error {
	return c.session.ClearVIP()
}

// url builds the full request URL for an endpoint path (path starts with "/")
func (c *Client) url(path string) string {
	return c.baseURL + apiPrefix + path
}

// newJSONRequest builds a request with a JSON-encoded body.
// authed requests carry the stored bearer token; when no token is stored the
// header is omitted and the server is left to reject the call.
func (c *Client) newJSONRequest(ctx context.Context, method string, path string, body any, authed bool) (*http.Request, *ClientError) {
	var buf *bytes.Buffer

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, newInternalError(err, "marshaling request body")
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), buf)
	if err != nil {
		return nil, newInternalError(err, "creating request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		c.attachToken(req)
	}

	return req, nil
}

func (c *Client) attachToken(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

// doJSON issues a JSON request and decodes a 2xx response body into out (out
// may be nil when the response body is not needed).
func (c *Client) doJSON(ctx context.Context, method string, path string, body any, authed bool, out any) error {
	req, cerr := c.newJSONRequest(ctx, method, path, body, authed)
	if cerr != nil {
		return cerr
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return newConnectionError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return newInternalError(err, "decoding response")
		}
	}

	return nil
}

// getJSON issues a GET with bounded retry. Attempts are retried on transport
// errors and 5xx responses; the context cancels the whole sequence so a
// dismissed caller never receives a stale result.
func (c *Client) getJSON(ctx context.Context, path string, authed bool, out any) error {
	var lastErr error

	backoff := getRetryBackoff
	for attempt := 0; attempt < getRetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return newConnectionError(ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, cerr := c.newJSONRequest(ctx, http.MethodGet, path, nil, authed)
		if cerr != nil {
			return cerr
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = newConnectionError(err)
			continue
		}

		if res.StatusCode >= 500 {
			lastErr = newAPIError(res)
			res.Body.Close()
			continue
		}

		if res.StatusCode < 200 || res.StatusCode > 299 {
			apiErr := newAPIError(res)
			res.Body.Close()
			return apiErr
		}

		if out != nil {
			if err := json.NewDecoder(res.Body).Decode(out); err != nil {
				res.Body.Close()
				return newInternalError(err, "decoding response")
			}
		}
		res.Body.Close()
		return nil
	}

	return lastErr
}

// doForm issues a multipart/form-data request. The body and content type come
// from encodeForm - the multipart encoder generates the boundary, the client
// never sets the content type by hand. Used whenever a payload carries a file.
func (c *Client) doForm(ctx context.Context, method string, path string, form *formBody, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), form.body)
	if err != nil {
		return newInternalError(err, "creating form request")
	}

	req.Header.Set("Content-Type", form.contentType)

	if authed {
		c.attachToken(req)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return newConnectionError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return newInternalError(err, "decoding form response")
		}
	}

	return nil
}
