// Package solver is a client for a FlareSolverr-compatible anti-bot service.
// The service loads a page in a real browser on our behalf and returns the
// HTML that a browser would have seen.
package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"reelfetch/internal/httputil"
)

// cmdRequestGet is the only command this client issues.
const cmdRequestGet = "request.get"

// slack is added to the HTTP timeout so the service can report its own
// timeout before we give up on the connection.
const slack = 5 * time.Second

// Client talks to one solver endpoint.
type Client struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// New creates a Client. timeout is passed to the service as maxTimeout and
// also bounds the HTTP call.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		client:   httputil.NewClientWithTimeout(timeout + slack),
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// Endpoint returns the service URL.
func (c *Client) Endpoint() string { return c.endpoint }

type request struct {
	Cmd        string `json:"cmd"`
	URL        string `json:"url"`
	MaxTimeout int64  `json:"maxTimeout"`
}

// Cookie is a cookie set during the solved page load.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
}

// Solution is the page as the service's browser saw it.
type Solution struct {
	URL       string   `json:"url"`
	Status    int      `json:"status"`
	Response  string   `json:"response"`
	UserAgent string   `json:"userAgent"`
	Cookies   []Cookie `json:"cookies"`
}

// Response is the service's JSON envelope.
type Response struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Solution Solution `json:"solution"`
}

// Get asks the service to load pageURL and returns the solved envelope.
// Any transport failure, non-2xx status, undecodable body or non-"ok"
// envelope status is an error.
func (c *Client) Get(ctx context.Context, pageURL string) (*Response, error) {
	payload, err := json.Marshal(request{
		Cmd:        cmdRequestGet,
		URL:        pageURL,
		MaxTimeout: c.timeout.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout+slack)
	defer cancel()

	body, err := httputil.PostJSON(ctx, c.client, c.endpoint, payload)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing solver response: %w", err)
	}

	if resp.Status != "ok" {
		return nil, fmt.Errorf("solver returned status %q: %s", resp.Status, resp.Message)
	}

	return &resp, nil
}
