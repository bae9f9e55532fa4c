package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	tasksPath = "/api/tasks"
	leadsPath = "/api/leads"
)

// FetchError is a failed collection fetch. Message is what the
// dashboard shows next to its retry action.
type FetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("crm: fetch failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("crm: fetch failed: %s", e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches task and lead collections from the tracker API.
// Each call is independent: no caching, no automatic retry.
type Client struct {
	rest *resty.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rest = resty.NewWithClient(hc).SetBaseURL(c.rest.BaseURL)
	}
}

// New builds a client for the tracker API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	c := &Client{rest: rest}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tasks fetches the task collection.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.fetch(ctx, tasksPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leads fetches the prospect collection.
func (c *Client) Leads(ctx context.Context) ([]Prospect, error) {
	var out []Prospect
	if err := c.fetch(ctx, leadsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, path string, out any) error {
	resp, err := c.rest.R().SetContext(ctx).Get(path)
	if err != nil {
		return &FetchError{Message: "tracker API unreachable", Err: err}
	}
	if resp.IsError() {
		return &FetchError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp.Body(), resp.StatusCode()),
		}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &FetchError{Message: "tracker API returned malformed data", Err: err}
	}
	return nil
}

// errorMessage extracts a human message from an error response body:
// JSON detail, then title, then message, then the raw body text.
func errorMessage(body []byte, status int) string {
	var payload struct {
		Detail  string `json:"detail"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, m := range []string{payload.Detail, payload.Title, payload.Message} {
			if strings.TrimSpace(m) != "" {
				return m
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// Collections is the settled outcome of one dashboard refresh. Tasks
// and leads resolve independently; the caller inspects each error.
type Collections struct {
	Tasks    []Task
	TasksErr error
	Leads    []Prospect
	LeadsErr error
}

// Err returns the error to surface for the aggregate view. The tasks
// error wins when both collections failed.
func (c Collections) Err() error {
	if c.TasksErr != nil {
		return c.TasksErr
	}
	return c.LeadsErr
}

// FetchBoth issues the two collection fetches concurrently and returns
// once both have settled, in either order.
func (c *Client) FetchBoth(ctx context.Context) Collections {
	var (
		wg  sync.WaitGroup
		col Collections
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		col.Tasks, col.TasksErr = c.Tasks(ctx)
	}()
	go func() {
		defer wg.Done()
		col.Leads, col.LeadsErr = c.Leads(ctx)
	}()
	wg.Wait()
	return col
}

// SetTimeout bounds each request. Zero keeps resty's default (none).
func (c *Client) SetTimeout(d time.Duration) *Client {
	c.rest.SetTimeout(d)
	return c
}
