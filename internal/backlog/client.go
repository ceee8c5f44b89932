// Package backlog provides a minimal client for the Backlog API v2.
//
// Every request is a GET authenticated by the apiKey query parameter;
// Backlog does not accept key material in headers or bodies.
package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/logging"
)

const apiBasePath = "/api/v2"

// Client calls the Backlog API for a single space.
type Client struct {
	spaceURL   string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the Backlog space at spaceURL,
// authenticating every request with apiKey. No timeout is applied beyond
// what the underlying transport enforces.
func NewClient(spaceURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		spaceURL:   strings.TrimRight(spaceURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RecentlyViewedProjectsParams narrows the recently viewed projects
// listing. Zero-valued fields are omitted from the request entirely,
// never sent as empty parameters.
type RecentlyViewedProjectsParams struct {
	Order  string // "asc" or "desc"
	Offset int
	Count  int
}

// GetRecentlyViewedProjects returns the projects the authenticated user
// viewed most recently, in the order the API returns them.
func (c *Client) GetRecentlyViewedProjects(ctx context.Context, params RecentlyViewedProjectsParams) ([]RecentlyViewedProject, error) {
	query := url.Values{}
	if params.Order != "" {
		query.Set("order", params.Order)
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Count > 0 {
		query.Set("count", strconv.Itoa(params.Count))
	}

	var projects []RecentlyViewedProject
	if err := c.get(ctx, "/users/myself/recentlyViewedProjects", query, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns the raw project document for a project ID or key.
// The document is forwarded as-is, matching the pass-through contract of
// the listing call.
func (c *Client) GetProject(ctx context.Context, projectIDOrKey string) (json.RawMessage, error) {
	var project json.RawMessage
	if err := c.get(ctx, "/projects/"+url.PathEscape(projectIDOrKey), nil, &project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetMyself returns the user that owns the API key.
func (c *Client) GetMyself(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/myself", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSpace returns information about the space itself.
func (c *Client) GetSpace(ctx context.Context) (*Space, error) {
	var space Space
	if err := c.get(ctx, "/space", nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// get issues a GET request against an API path and decodes the JSON
// response into v. The API key is appended to the query on every call.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)

	requestURL := c.spaceURL + apiBasePath + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	logging.Debug().Str("path", apiBasePath+path).Msg("sending Backlog API request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error().Err(err).Str("path", apiBasePath+path).Msg("Backlog API request failed")
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := decodeAPIError(res)
		logging.Debug().Int("status", res.StatusCode).Str("path", apiBasePath+path).
			Msg("Backlog API returned an error response")
		return apiErr
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		logging.Error().Err(err).Str("path", apiBasePath+path).Msg("failed to decode Backlog API response")
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError builds an *APIError from a non-2xx response. The message
// and code come from the first element of the body's errors array when the
// body parses; otherwise the status text stands in.
func decodeAPIError(res *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		Message:    http.StatusText(res.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		apiErr.Message = payload.Errors[0].Message
		apiErr.Code = payload.Errors[0].Code
		apiErr.MoreInfo = payload.Errors[0].MoreInfo
	}
	return apiErr
}
