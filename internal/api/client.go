package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Client composes and issues calls against the registry. It keeps no
// per-call state, so one Client can serve concurrent callers.
type Client struct {
	client  *http.Client
	baseURL string
	name    string // client name for logging and User-Agent
}

// NewClient creates a new client for the API rooted at baseURL
func NewClient(name, baseURL string, timeoutSec int) *Client {
	if timeoutSec == 0 {
		timeoutSec = 30 // default timeout
	}

	return &Client{
		client: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		name:    name,
	}
}

// WithHTTPClient swaps the underlying transport, mostly for tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	return &Client{client: hc, baseURL: c.baseURL, name: c.name}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get resolves op with params, sends a GET and decodes the body into out.
// Text-shaped endpoints require out to be a *string.
func (c *Client) Get(ctx context.Context, op Operation, params Params, out any) error {
	ep, target, err := c.prepare(op, http.MethodGet, params)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, ep, target, nil)
	if err != nil {
		return err
	}
	return decode(ep, target, resp, out)
}

// GetText is Get with the raw-text flag set: the body is returned as-is
func (c *Client) GetText(ctx context.Context, op Operation, params Params) (string, error) {
	ep, target, err := c.prepare(op, http.MethodGet, params)
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, ep, target, nil)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// Post sends payload as JSON and decodes the response into out (may be nil)
func (c *Client) Post(ctx context.Context, op Operation, payload any, out any) error {
	ep, target, err := c.prepare(op, http.MethodPost, nil)
	if err != nil {
		return err
	}

	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	resp, err := c.do(ctx, ep, target, body)
	if err != nil {
		return err
	}
	return decode(ep, target, resp, out)
}

// prepare does every check that can fail without touching the network
func (c *Client) prepare(op Operation, method string, params Params) (Endpoint, string, error) {
	ep, err := lookupFor(op, method)
	if err != nil {
		return Endpoint{}, "", err
	}

	path, remaining, err := Resolve(ep.Path, params)
	if err != nil {
		log.Error().
			Str("client", c.name).
			Str("operation", string(op)).
			Err(err).
			Msg("path parameters not bound")
		return Endpoint{}, "", err
	}

	return ep, c.baseURL + path + SerializeQuery(remaining), nil
}

func (c *Client) do(ctx context.Context, ep Endpoint, target string, body []byte) (*HTTPResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("witnessconsole/%s", c.name))
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().
		Str("client", c.name).
		Str("operation", string(ep.Operation)).
		Str("method", ep.Method).
		Str("url", target).
		Msg("making HTTP request")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().
			Str("client", c.name).
			Str("url", target).
			Err(err).
			Msg("HTTP request failed")
		return nil, &HTTPError{Operation: ep.Operation, Method: ep.Method, URL: target, Err: err}
	}

	httpResp, err := c.handleResponse(resp)
	if err != nil {
		return nil, &HTTPError{Operation: ep.Operation, Method: ep.Method, URL: target, StatusCode: resp.StatusCode, Err: err}
	}

	if !httpResp.IsSuccess() {
		return nil, &HTTPError{
			Operation:  ep.Operation,
			Method:     ep.Method,
			URL:        target,
			StatusCode: httpResp.StatusCode,
			Body:       strings.TrimSpace(httpResp.String()),
		}
	}
	return httpResp, nil
}

// handleResponse reads the whole body and closes it
func (c *Client) handleResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	log.Debug().
		Str("client", c.name).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("received HTTP response")

	return httpResp, nil
}

func decode(ep Endpoint, target string, resp *HTTPResponse, out any) error {
	if out == nil {
		return nil
	}

	if ep.Shape == ShapeText {
		s, ok := out.(*string)
		if !ok {
			return &OperationError{
				Operation: ep.Operation,
				Message:   fmt.Sprintf("operation %s returns text, decode target must be *string", ep.Operation),
			}
		}
		*s = resp.String()
		return nil
	}

	if err := resp.DecodeJSON(out); err != nil {
		return &HTTPError{
			Operation:  ep.Operation,
			Method:     ep.Method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

// HTTPResponse represents an HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess checks if the response indicates success (2xx status code)
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the response body into the provided struct
func (r *HTTPResponse) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// String returns the response body as a string
func (r *HTTPResponse) String() string {
	return string(r.Body)
}
