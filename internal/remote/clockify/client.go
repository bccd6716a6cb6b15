// Package clockify talks to a Clockify-compatible time-tracking service over
// its v1 REST API.
package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"clockctl/internal/model"
)

// DefaultBaseURL is the endpoint used when none is configured.
const DefaultBaseURL = "https://api.clockify.me"

// Client is an HTTP client for the service's v1 API. Authentication is an API
// key sent with every request.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client against the given base URL (empty means
// DefaultBaseURL).
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// CurrentUser fetches the user the API key belongs to.
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	var raw rawUser
	if err := c.do(ctx, http.MethodGet, "/api/v1/user", nil, nil, &raw); err != nil {
		return model.User{}, err
	}
	return model.User{ID: raw.ID, Name: raw.Name, ActiveWorkspace: raw.ActiveWorkspace}, nil
}

// Workspaces fetches the workspaces visible to the current user.
func (c *Client) Workspaces(ctx context.Context) ([]model.Workspace, error) {
	var raw []rawWorkspace
	if err := c.do(ctx, http.MethodGet, "/api/v1/workspaces", nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Workspace, 0, len(raw))
	for _, w := range raw {
		out = append(out, model.Workspace{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

// TimeEntries fetches the user's time entries, most recent first.
func (c *Client) TimeEntries(ctx context.Context, workspace, user string) ([]model.TimeEntry, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/user/%s/time-entries", url.PathEscape(workspace), url.PathEscape(user))
	query := url.Values{"hydrated": {"true"}}
	var raw []rawTimeEntry
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.TimeEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Projects fetches the workspace's projects.
func (c *Client) Projects(ctx context.Context, workspace string) ([]model.Project, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/projects", url.PathEscape(workspace))
	var raw []rawProject
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Project, 0, len(raw))
	for _, p := range raw {
		out = append(out, model.Project{ID: p.ID, Name: p.Name, Color: p.Color})
	}
	return out, nil
}

// CreateProject creates a new project in the workspace.
func (c *Client) CreateProject(ctx context.Context, workspace string, spec model.ProjectRequest) (model.Project, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/projects", url.PathEscape(workspace))
	body := rawProjectRequest{Name: spec.Name, Color: spec.Color, Billable: spec.Billable}
	var raw rawProject
	if err := c.do(ctx, http.MethodPost, path, nil, body, &raw); err != nil {
		return model.Project{}, err
	}
	return model.Project{ID: raw.ID, Name: raw.Name, Color: raw.Color}, nil
}

// StartTimer creates an open time entry, i.e. starts the timer.
func (c *Client) StartTimer(ctx context.Context, workspace string, req model.TimeEntryRequest) (model.TimeEntry, error) {
	return c.CreateTimeEntry(ctx, workspace, req)
}

// StopTimer ends the user's currently running timer at the given time. The
// service rejects the call if no timer is running.
func (c *Client) StopTimer(ctx context.Context, workspace, user string, end time.Time) (model.TimeEntry, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/user/%s/time-entries", url.PathEscape(workspace), url.PathEscape(user))
	body := rawStopRequest{End: wireTime(end)}
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &raw); err != nil {
		return model.TimeEntry{}, err
	}
	return raw.toDomain(), nil
}

// CreateTimeEntry creates a time entry; with an end it is a closed manual
// entry, without one it is a running timer.
func (c *Client) CreateTimeEntry(ctx context.Context, workspace string, req model.TimeEntryRequest) (model.TimeEntry, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/time-entries", url.PathEscape(workspace))
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPost, path, nil, toWireRequest(req), &raw); err != nil {
		return model.TimeEntry{}, err
	}
	return raw.toDomain(), nil
}

// UpdateTimeEntry replaces an entry's fields. The service treats this as a
// full update, not a sparse patch, so the request must carry every field.
func (c *Client) UpdateTimeEntry(ctx context.Context, workspace, id string, req model.TimeEntryRequest) (model.TimeEntry, error) {
	path := fmt.Sprintf("/api/v1/workspaces/%s/time-entries/%s", url.PathEscape(workspace), url.PathEscape(id))
	var raw rawTimeEntry
	if err := c.do(ctx, http.MethodPut, path, nil, toWireRequest(req), &raw); err != nil {
		return model.TimeEntry{}, err
	}
	return raw.toDomain(), nil
}

// do performs a single API request and decodes the JSON response into out
// (which may be nil for responses whose body is irrelevant).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("calling service")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clockify: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("clockify: unexpected status %d on %s %s: %s", resp.StatusCode, method, path, string(detail))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("clockify: can't decode response of %s %s: %w", method, path, err)
	}
	return nil
}
