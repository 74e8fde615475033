package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccountLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("account adapter must not send identity")
		}
		var in LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email != "a@b.com" || in.Password != "secret1" {
			t.Errorf("unexpected credentials: %+v", in)
		}
		_ = json.NewEncoder(w).Encode(JwtResponse{Token: "tok", Status: "ok", FirstName: "Ada", LastName: "Fox"})
	}))
	defer srv.Close()

	c := NewAccountClient(srv.URL, srv.Client())
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != "tok" || resp.FirstName != "Ada" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAccountLoginServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"User/Password problem!"}`))
	}))
	defer srv.Close()

	c := NewAccountClient(srv.URL, srv.Client())
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	if err == nil || err.Error() != "User/Password problem!" {
		t.Fatalf("expected server message, got %v", err)
	}
}

func TestAccountLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewAccountClient(srv.URL, nil)
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err == nil || err.Error() != "Login failed. Please check your credentials or network" {
		t.Fatalf("expected transport message, got %v", err)
	}
}

func TestAccountRegisterFlattensValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{"Password":["Password too short.","Password needs a digit."]}}`))
	}))
	defer srv.Close()

	c := NewAccountClient(srv.URL, srv.Client())
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "x", FirstName: "A", LastName: "B"})
	if err == nil || err.Error() != "Password too short. Password needs a digit." {
		t.Fatalf("expected flattened errors, got %v", err)
	}
}

func TestAccountRegisterTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewAccountClient(srv.URL, nil)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "secret1", FirstName: "A", LastName: "B"})
	if err == nil || err.Error() != "Registration failed. Please check your information or network" {
		t.Fatalf("expected transport message, got %v", err)
	}
}
