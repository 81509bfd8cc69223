// Package client reads from a running customers server over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/customers/internal/models"
	"github.com/desertthunder/customers/internal/shared"
)

// Client performs requests against a customers server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a [Client] for baseURL. A nil client uses [http.DefaultClient].
func New(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Response is a raw response with status and body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get performs a GET request to the specified path and returns the raw response.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// Customers fetches GET /customers and decodes the array.
func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	resp, err := c.Get(ctx, "/customers")
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	var customers []models.Customer
	if err := json.Unmarshal(resp.Body, &customers); err != nil {
		return nil, fmt.Errorf("%w: invalid customers payload: %v", shared.ErrAPIRequest, err)
	}

	return customers, nil
}

// Health fetches GET /health. A 503 is returned as a status, not an error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	resp, err := c.Get(ctx, "/health")
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(resp.Body, &health); err != nil {
		return nil, fmt.Errorf("%w: status %d, invalid health payload: %v", shared.ErrAPIRequest, resp.StatusCode, err)
	}
	health.Ready = resp.OK()

	return &health, nil
}

// Health is the decoded GET /health body.
type Health struct {
	Status    string `json:"status"`
	Customers int    `json:"customers"`
	Error     string `json:"error,omitempty"`
	Ready     bool   `json:"-"`
}
