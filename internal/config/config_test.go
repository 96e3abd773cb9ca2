package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/config"
)

const testConfig = `{
  "server": {"port": 9000, "read_timeout": "3s"},
  "jwt": {"issuer": "test-issuer", "ttl": "15m"},
  "hash": {"algorithm": "argon2"}
}`

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9000)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout, 3*time.Second)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("cfg.Server.WriteTimeout = %v, want default: %v", cfg.Server.WriteTimeout, 30*time.Second)
	}
	if cfg.JWT.TTL != 15*time.Minute {
		t.Errorf("cfg.JWT.TTL = %v, want: %v", cfg.JWT.TTL, 15*time.Minute)
	}
	if cfg.Hash.Algorithm != "argon2" {
		t.Errorf("cfg.Hash.Algorithm = %q, want: %q", cfg.Hash.Algorithm, "argon2")
	}
	if cfg.Payment.Currency != "eur" {
		t.Errorf("cfg.Payment.Currency = %q, want default: %q", cfg.Payment.Currency, "eur")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("PAYMENT_CURRENCY", "usd")

	cfg, err := config.Load(writeConfig(t))
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 7070)
	}
	if cfg.Payment.Currency != "usd" {
		t.Errorf("cfg.Payment.Currency = %q, want: %q", cfg.Payment.Currency, "usd")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("config.Load(missing) = nil, want: error")
	}
}
