package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const collectionPath = "/todo"

// Client is the HTTP wrapper for the /todo collection resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	validator  *Validator
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout bounds every request. Zero keeps the http.Client's own timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying http.Client. The client is copied, so a
// shared one such as http.DefaultClient is never modified.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithValidator checks list and update responses against the task schema
// before they are decoded.
func WithValidator(v *Validator) ClientOption {
	return func(c *Client) {
		c.validator = v
	}
}

// NewClient creates a new collection HTTP client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc
	return c
}

// ListTodos fetches the whole collection via GET /todo.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	raw, err := c.do(ctx, "list", http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}

	if c.validator != nil {
		if err := c.validator.ValidateList(raw); err != nil {
			return nil, err
		}
	}

	var todos []Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todo list response: %w", err)
	}
	return todos, nil
}

// CreateTodo posts a task via POST /todo. The response body is optional: when
// it does not decode into a task with an id, nil is returned without error.
func (c *Client) CreateTodo(ctx context.Context, todo Todo) (*Todo, error) {
	body, err := json.Marshal(todo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create todo request: %w", err)
	}

	raw, err := c.do(ctx, "create", http.MethodPost, c.collectionURL(), body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var created Todo
	if err := json.Unmarshal(raw, &created); err != nil || created.ID.IsZero() {
		return nil, nil
	}
	return &created, nil
}

// DeleteTodo removes a task via DELETE /todo/{id}. The response body is ignored.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil)
	return err
}

// UpdateTodo replaces a task via PUT /todo/{id} and returns the server's copy.
func (c *Client) UpdateTodo(ctx context.Context, todo Todo) (*Todo, error) {
	body, err := json.Marshal(todo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update todo request: %w", err)
	}

	raw, err := c.do(ctx, "update", http.MethodPut, c.itemURL(todo.ID.String()), body)
	if err != nil {
		return nil, err
	}

	if c.validator != nil {
		if err := c.validator.ValidateTask(raw); err != nil {
			return nil, err
		}
	}

	var updated Todo
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode todo update response: %w", err)
	}
	return &updated, nil
}

func (c *Client) collectionURL() string {
	return c.baseURL + collectionPath
}

func (c *Client) itemURL(id string) string {
	return fmt.Sprintf("%s%s/%s", c.baseURL, collectionPath, url.PathEscape(id))
}

// do performs one request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, target string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s todo request: %w", op, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call todo %s API: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read todo %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: op, Code: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
