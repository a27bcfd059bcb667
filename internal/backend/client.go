// Package backend implements the HTTP client for the generation backend.
//
// The client is the builder's only source of filesystem truth: folder
// listings, quick paths and generation all go through the backend so the
// builder itself never touches the media disks. Requests are not
// retried; the screens surface failures immediately and the user decides
// whether to try again.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/slidecraft/slidecraft/internal/api"
)

const (
	// DefaultTimeout is the default HTTP request timeout for short calls
	DefaultTimeout = 10 * time.Second

	// GenerateTimeout bounds a full generation run; rendering a long
	// slideshow is slow, so this mirrors the backend's own limit
	GenerateTimeout = 65 * time.Minute
)

// Client talks to one generation backend
type Client struct {
	// BaseURL is the backend base URL (e.g., "http://192.168.1.20:5000")
	BaseURL string

	// HTTPClient is the underlying HTTP client for short requests
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout for short calls
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Health checks that the backend is up and responding
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.getJSON(ctx, api.RouteHealth, &resp); err != nil {
		return err
	}
	if resp.Status != api.HealthStatusHealthy {
		return NewRemoteError(fmt.Sprintf("backend reports status %q", resp.Status))
	}
	return nil
}

// QuickPaths fetches the backend's shortcut folders for the browser
func (c *Client) QuickPaths(ctx context.Context) ([]api.Entry, error) {
	var resp api.QuickPathsResponse
	if err := c.getJSON(ctx, api.RouteQuickPaths, &resp); err != nil {
		return nil, err
	}
	return resp.Paths, nil
}

// BrowseFolder lists one backend folder. Image and audio files are only
// included when the respective flag is set.
func (c *Client) BrowseFolder(ctx context.Context, req api.BrowseRequest) (*api.BrowseResponse, error) {
	var resp api.BrowseResponse
	if err := c.postJSON(ctx, api.RouteBrowseFolder, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, NewRemoteError(resp.Error)
	}
	return &resp, nil
}

// Validate asks the backend to check a document without generating
func (c *Client) Validate(ctx context.Context, documentContent string) (*api.ValidateResponse, error) {
	req := api.ValidateRequest{DocumentContent: documentContent}
	var resp api.ValidateResponse
	if err := c.postJSON(ctx, api.RouteValidate, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Generate submits a document for rendering and blocks until the backend
// finishes or fails. The call uses its own long-deadline client since a
// render can run for an hour.
func (c *Client) Generate(ctx context.Context, req api.GenerateRequest) (*api.GenerateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewParseError("failed to encode generate request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+api.RouteGenerate, bytes.NewReader(body))
	if err != nil {
		return nil, NewNetworkError("failed to create generate request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	long := &http.Client{Timeout: GenerateTimeout}
	httpResp, err := long.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError("backend unreachable", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	var resp api.GenerateResponse
	if err := decodeJSON(httpResp, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, NewRemoteError(resp.Error)
	}
	return &resp, nil
}

// getJSON performs a GET request and decodes the JSON response
func (c *Client) getJSON(ctx context.Context, route string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+route, nil)
	if err != nil {
		return NewNetworkError("failed to create request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("backend unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeJSON(resp, out)
}

// postJSON performs a POST request with a JSON body and decodes the
// JSON response
func (c *Client) postJSON(ctx context.Context, route string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return NewParseError("failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+route, bytes.NewReader(body))
	if err != nil {
		return NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("backend unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeJSON(resp, out)
}

func decodeJSON(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	// Error responses still carry a JSON body with the failure detail;
	// prefer that over the bare status code when it decodes
	if resp.StatusCode != http.StatusOK {
		if json.Unmarshal(data, out) == nil {
			return nil
		}
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError("failed to decode response", err)
	}
	return nil
}
