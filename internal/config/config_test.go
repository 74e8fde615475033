package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.APIBaseURL == "" {
		t.Fatalf("expected default api base url")
	}
	if cfg.AccountBaseURL == "" {
		t.Fatalf("expected default account base url")
	}
	if cfg.CredStoreBackend != "sqlite" {
		t.Fatalf("expected sqlite credstore default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("API_BASE_URL", "http://localhost:5000/api/v1")
	t.Setenv("ACCOUNT_BASE_URL", "http://localhost:5000/api/v1/Account")
	t.Setenv("CREDSTORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.APIBaseURL != "http://localhost:5000/api/v1" {
		t.Fatalf("expected override api base url")
	}
	if cfg.AccountBaseURL != "http://localhost:5000/api/v1/Account" {
		t.Fatalf("expected override account base url")
	}
	if cfg.CredStoreBackend != "redis" {
		t.Fatalf("expected override credstore backend")
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected override redis addr")
	}
}
