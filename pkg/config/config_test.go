package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalYAML = `
telegram:
  bot_token: "123:abc"
  bot_username: "fine_bot"
backend:
  base_url: "https://api.example.com"
  jwt_secret: "0123456789abcdef0123"
`

func TestParseGateway_AppliesDefaults(t *testing.T) {
	cfg, err := ParseGateway([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("ParseGateway() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected shutdown timeout 30s, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Points.RefreshInterval != time.Minute {
		t.Fatalf("expected refresh interval 1m, got %s", cfg.Points.RefreshInterval)
	}
	if cfg.Backend.TokenTTL != 5*time.Minute {
		t.Fatalf("expected token ttl 5m, got %s", cfg.Backend.TokenTTL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
	if cfg.Database.Database != "miniapp_gateway" {
		t.Fatalf("expected default database name, got %q", cfg.Database.Database)
	}
}

func TestParseGateway_FileValuesOverrideDefaults(t *testing.T) {
	raw := minimalYAML + `
server:
  port: 9000
points:
  refresh_interval: 15s
logging:
  level: debug
  format: console
`
	cfg, err := ParseGateway([]byte(raw))
	if err != nil {
		t.Fatalf("ParseGateway() failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Points.RefreshInterval != 15*time.Second {
		t.Fatalf("expected refresh interval 15s, got %s", cfg.Points.RefreshInterval)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected console format, got %q", cfg.Logging.Format)
	}
}

func TestParseGateway_MissingBackendURL(t *testing.T) {
	raw := `
telegram:
  bot_token: "123:abc"
  bot_username: "fine_bot"
backend:
  jwt_secret: "0123456789abcdef0123"
`
	_, err := ParseGateway([]byte(raw))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "BaseURL") {
		t.Fatalf("expected BaseURL validation error, got %v", err)
	}
}

func TestParseGateway_BotTokenRequiredInsideHost(t *testing.T) {
	raw := `
telegram:
  bot_username: "fine_bot"
backend:
  base_url: "https://api.example.com"
  jwt_secret: "0123456789abcdef0123"
`
	_, err := ParseGateway([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "telegram.bot_token is required") {
		t.Fatalf("expected bot token error, got %v", err)
	}
}

func TestParseGateway_OutsideHostWithoutBotToken(t *testing.T) {
	raw := `
telegram:
  bot_username: "fine_bot"
  allow_outside_host: true
backend:
  base_url: "https://api.example.com"
  jwt_secret: "0123456789abcdef0123"
`
	cfg, err := ParseGateway([]byte(raw))
	if err != nil {
		t.Fatalf("ParseGateway() failed: %v", err)
	}
	if !cfg.Telegram.AllowOutsideHost {
		t.Fatal("expected allow_outside_host to be set")
	}
}

func TestParseGateway_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvBackendJWTSecret, "env-secret-0123456789")
	t.Setenv(EnvDatabasePassword, "env-db-pass")

	cfg, err := ParseGateway([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("ParseGateway() failed: %v", err)
	}
	if cfg.Backend.JWTSecret != "env-secret-0123456789" {
		t.Fatalf("expected env jwt secret, got %q", cfg.Backend.JWTSecret)
	}
	if cfg.Database.Password != "env-db-pass" {
		t.Fatalf("expected env db password, got %q", cfg.Database.Password)
	}
}

func TestLoadGateway_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGateway(path)
	if err != nil {
		t.Fatalf("LoadGateway() failed: %v", err)
	}
	if cfg.Telegram.BotUsername != "fine_bot" {
		t.Fatalf("expected bot username fine_bot, got %q", cfg.Telegram.BotUsername)
	}
}

func TestLoadGateway_MissingFile(t *testing.T) {
	_, err := LoadGateway(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	if err == nil {
		t.Fatal("expected invalid level error, got nil")
	}
}
