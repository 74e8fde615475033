package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// TokenSource yields the current bearer token, or "" when anonymous. The
// client consults it on every request rather than holding a token itself, so
// auth state changes take effect without rebuilding the client.
type TokenSource func() string

// Client is the authenticated adapter for the GPS resource endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewClient(baseURL string, httpClient *http.Client, token TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{baseURL: baseURL, http: httpClient, token: token}
}

func (c *Client) GpsSessions(ctx context.Context) ([]GpsSessionView, error) {
	var out []GpsSessionView
	if err := c.do(ctx, http.MethodGet, "/GpsSessions", nil, &out, "Failed to fetch GPS sessions"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GpsSession(ctx context.Context, id string) (GpsSession, error) {
	var out GpsSession
	if err := c.do(ctx, http.MethodGet, "/GpsSessions/"+id, nil, &out, "Failed to fetch GPS session with ID "+id); err != nil {
		return GpsSession{}, err
	}
	return out, nil
}

func (c *Client) CreateGpsSession(ctx context.Context, in GpsSessionCreate) (GpsSession, error) {
	var out GpsSession
	if err := c.do(ctx, http.MethodPost, "/GpsSessions", in, &out, "Failed to create GPS session"); err != nil {
		return GpsSession{}, err
	}
	return out, nil
}

func (c *Client) UpdateGpsSession(ctx context.Context, id string, in GpsSessionUpdate) (GpsSession, error) {
	var out GpsSession
	if err := c.do(ctx, http.MethodPut, "/GpsSessions/"+id, in, &out, "Failed to update GPS session with ID "+id); err != nil {
		return GpsSession{}, err
	}
	return out, nil
}

func (c *Client) DeleteGpsSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/GpsSessions/"+id, nil, nil, "Failed to delete GPS session with ID "+id)
}

func (c *Client) LocationsForSession(ctx context.Context, sessionID string) ([]GpsLocation, error) {
	var out []GpsLocation
	if err := c.do(ctx, http.MethodGet, "/GpsLocations/Session/"+sessionID, nil, &out, "Failed to fetch locations for session with ID "+sessionID); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GpsSessionTypes(ctx context.Context) ([]GpsSessionType, error) {
	var out []GpsSessionType
	if err := c.do(ctx, http.MethodGet, "/GpsSessionTypes", nil, &out, "Failed to fetch GPS session types"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GpsLocationTypes(ctx context.Context) ([]GpsLocationType, error) {
	var out []GpsLocationType
	if err := c.do(ctx, http.MethodGet, "/GpsLocationTypes", nil, &out, "Failed to fetch GPS location types"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	return doRequest(ctx, c.http, method, c.baseURL+path, c.token(), in, out, fallback)
}

// doRequest performs one JSON request/response exchange. Any failure,
// transport or server, surfaces as a single error whose message follows the
// normalization precedence; callers never see a partial success.
func doRequest(ctx context.Context, httpClient *http.Client, method, url, token string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.New(fallback)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.New(fallback)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.New(fallback)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New(fallback)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(data, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.New(fallback)
		}
	}
	return nil
}
