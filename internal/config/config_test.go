package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 5001 {
		t.Errorf("expected default port 5001, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %q", cfg.Database.Driver)
	}
	if cfg.Vapi.BaseURL != "https://api.vapi.ai" {
		t.Errorf("expected default provider URL, got %q", cfg.Vapi.BaseURL)
	}
	if cfg.Poll.Interval != 10*time.Second {
		t.Errorf("expected default poll interval 10s, got %v", cfg.Poll.Interval)
	}
	if cfg.Poll.MaxAttempts != 10 {
		t.Errorf("expected default poll attempts 10, got %d", cfg.Poll.MaxAttempts)
	}
	if cfg.Sweep.Enabled {
		t.Error("expected sweep disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 8080
  mode: release
database:
  driver: postgres
  host: db.internal
  port: 5433
  name: interviews
poll:
  interval: 5s
  max_attempts: 3
sweep:
  enabled: true
  schedule: "*/5 * * * *"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected driver postgres, got %q", cfg.Database.Driver)
	}
	if cfg.Poll.Interval != 5*time.Second {
		t.Errorf("expected poll interval 5s, got %v", cfg.Poll.Interval)
	}
	if cfg.Poll.MaxAttempts != 3 {
		t.Errorf("expected poll attempts 3, got %d", cfg.Poll.MaxAttempts)
	}
	if !cfg.Sweep.Enabled {
		t.Error("expected sweep enabled")
	}
	if cfg.Sweep.Schedule != "*/5 * * * *" {
		t.Errorf("unexpected sweep schedule %q", cfg.Sweep.Schedule)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VAPI_API_KEY", "k-test")
	t.Setenv("DB_HOST", "pg.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Vapi.APIKey != "k-test" {
		t.Errorf("expected api key from env, got %q", cfg.Vapi.APIKey)
	}
	if cfg.Database.Host != "pg.example.com" {
		t.Errorf("expected db host from env, got %q", cfg.Database.Host)
	}
}

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "callpilot",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=postgres password=secret dbname=callpilot sslmode=disable"
	if got := pg.DSN(); got != want {
		t.Errorf("postgres DSN mismatch:\n got %q\nwant %q", got, want)
	}

	lite := DatabaseConfig{Driver: "sqlite", Path: "./data/app.db"}
	if got := lite.DSN(); got != "./data/app.db" {
		t.Errorf("sqlite DSN mismatch: %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Vapi: VapiConfig{APIKey: "k", AssistantID: "a", PhoneNumberID: "p"},
		Poll: PollConfig{Interval: time.Second, MaxAttempts: 1},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing api key", func(c *Config) { c.Vapi.APIKey = "" }},
		{"missing assistant", func(c *Config) { c.Vapi.AssistantID = "" }},
		{"missing phone number", func(c *Config) { c.Vapi.PhoneNumberID = "" }},
		{"zero attempts", func(c *Config) { c.Poll.MaxAttempts = 0 }},
		{"zero interval", func(c *Config) { c.Poll.Interval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
