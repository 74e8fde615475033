package api

import (
	"context"
	"net/http"
	"time"
)

// AccountClient is the unauthenticated adapter for the credential endpoints.
// It never attaches identity; the server issues the token.
type AccountClient struct {
	baseURL string
	http    *http.Client
}

func NewAccountClient(baseURL string, httpClient *http.Client) *AccountClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &AccountClient{baseURL: baseURL, http: httpClient}
}

func (c *AccountClient) Login(ctx context.Context, in LoginRequest) (JwtResponse, error) {
	var out JwtResponse
	if err := doRequest(ctx, c.http, http.MethodPost, c.baseURL+"/Login", "", in, &out, "Login failed. Please check your credentials or network"); err != nil {
		return JwtResponse{}, err
	}
	return out, nil
}

func (c *AccountClient) Register(ctx context.Context, in RegisterRequest) (JwtResponse, error) {
	var out JwtResponse
	if err := doRequest(ctx, c.http, http.MethodPost, c.baseURL+"/Register", "", in, &out, "Registration failed. Please check your information or network"); err != nil {
		return JwtResponse{}, err
	}
	return out, nil
}
