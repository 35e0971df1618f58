// Package rest implements the service.Service interface over the tasks REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskdeck/internal/config"
	"taskdeck/internal/service"
)

const (
	// APITimeout is the default timeout for API calls.
	APITimeout = 10 * time.Second

	// RequestIDHeader carries the per-call correlation id.
	RequestIDHeader = "X-Request-ID"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 4 << 20
)

// Client implements service.Service against a REST endpoint devoted to tasks.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger
	validate   *validator.Validate
}

// New creates a client for cfg.BaseURL with cfg.Timeout per call.
func New(cfg *config.Config, log zerolog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewWithHTTPClient(cfg.BaseURL, &http.Client{}, log)
	c.timeout = cfg.Timeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    APITimeout,
		log:        log.With().Str("component", "rest").Logger(),
		validate:   validator.New(),
	}
}

// ListTasks returns all tasks in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var payload []wireTask
	if err := c.do(ctx, http.MethodGet, "", nil, &payload); err != nil {
		return nil, c.fail(service.OpList, err)
	}

	tasks, err := c.decodeTasks(payload)
	if err != nil {
		return nil, c.fail(service.OpList, err)
	}
	return tasks, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	var payload wireTask
	body := createRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "", body, &payload); err != nil {
		return service.Task{}, c.fail(service.OpCreate, err)
	}

	task, err := c.decodeTask(payload)
	if err != nil {
		return service.Task{}, c.fail(service.OpCreate, err)
	}
	return task, nil
}

// SetTaskCompletion updates the completed flag of a task.
func (c *Client) SetTaskCompletion(ctx context.Context, id int64, completed bool) (service.Task, error) {
	var payload wireTask
	body := completionRequest{Completed: completed}
	if err := c.do(ctx, http.MethodPut, taskPath(id), body, &payload); err != nil {
		return service.Task{}, c.fail(service.OpUpdate, err)
	}

	task, err := c.decodeTask(payload)
	if err != nil {
		return service.Task{}, c.fail(service.OpUpdate, err)
	}
	if task.ID != id {
		return service.Task{}, c.fail(service.OpUpdate, fmt.Errorf("response for task %d carries id %d", id, task.ID))
	}
	return task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, taskPath(id), nil, nil); err != nil {
		return c.fail(service.OpDelete, err)
	}
	return nil
}

func taskPath(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

// do performs a single JSON request. result may be nil when the body is ignored.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With().Str("request_id", requestID).Str("method", method).Str("url", url).Logger()
	start := time.Now()
	log.Debug().Msg("request sent")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", requestID, err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("response received")

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s failed with status %d: %s", requestID, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(result); err != nil {
		return fmt.Errorf("request %s: failed to decode response: %w", requestID, err)
	}
	return nil
}

// fail logs the original error and collapses it for the caller.
func (c *Client) fail(op service.Op, err error) error {
	c.log.Error().Err(err).Str("op", string(op)).Msg("task request failed")
	return service.NewOpError(op, err)
}
