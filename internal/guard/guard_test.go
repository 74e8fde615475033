package guard

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/anrokk/SportMap-Client/internal/credstore"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name          string
		requirement   Requirement
		authenticated bool
		want          Action
	}{
		{"public anonymous", Public, false, Allow},
		{"public authenticated", Public, true, Allow},
		{"auth route anonymous", RequiresAuth, false, RedirectLogin},
		{"auth route authenticated", RequiresAuth, true, Allow},
		{"guest route anonymous", RequiresGuest, false, Allow},
		{"guest route authenticated", RequiresGuest, true, RedirectMap},
	}

	for _, tc := range cases {
		if got := Decide(tc.requirement, tc.authenticated); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

type fakeSession struct {
	authenticated bool
	restoreTo     bool
	restoreCalls  int
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }

func (f *fakeSession) InitializeFromStorage(_ context.Context) {
	f.restoreCalls++
	f.authenticated = f.restoreTo
}

type fakeCreds struct {
	values map[string]string
}

func (f *fakeCreds) Get(_ context.Context, key string) (string, error) {
	if value, ok := f.values[key]; ok {
		return value, nil
	}
	return "", credstore.ErrNotFound
}

func (f *fakeCreds) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeCreds) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCreds) Close() error { return nil }

func guardedApp(requirement Requirement, session Session, creds credstore.Store) *fiber.App {
	app := fiber.New()
	app.Get("/target", Middleware(requirement, session, creds), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMiddlewareRedirectsAnonymousToLogin(t *testing.T) {
	app := guardedApp(RequiresAuth, &fakeSession{}, &fakeCreds{values: map[string]string{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/target?view=detail", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	location := resp.Header.Get("Location")
	if location != "/login?redirect=%2Ftarget%3Fview%3Ddetail" {
		t.Fatalf("expected return target in redirect, got %q", location)
	}
}

func TestMiddlewareRedirectsAuthenticatedFromGuestRoute(t *testing.T) {
	app := guardedApp(RequiresGuest, &fakeSession{authenticated: true}, &fakeCreds{values: map[string]string{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/target", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get("Location") != "/map" {
		t.Fatalf("expected redirect to map, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestMiddlewareRestoresFromStorageFirst(t *testing.T) {
	session := &fakeSession{restoreTo: true}
	creds := &fakeCreds{values: map[string]string{credstore.TokenKey: "tok"}}
	app := guardedApp(RequiresAuth, session, creds)

	resp, err := app.Test(httptest.NewRequest("GET", "/target", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected restored session to pass, got %d", resp.StatusCode)
	}
	if session.restoreCalls != 1 {
		t.Fatalf("expected one restoration attempt")
	}
}

func TestMiddlewareSkipsRestoreWithoutStoredToken(t *testing.T) {
	session := &fakeSession{restoreTo: true}
	app := guardedApp(RequiresAuth, session, &fakeCreds{values: map[string]string{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/target", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected login redirect, got %d", resp.StatusCode)
	}
	if session.restoreCalls != 0 {
		t.Fatalf("must not attempt restore without a stored token")
	}
}

func TestMiddlewareAllowsPublicRoute(t *testing.T) {
	app := guardedApp(Public, &fakeSession{}, &fakeCreds{values: map[string]string{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/target", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected pass-through, got %d", resp.StatusCode)
	}
}
