package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qerrors "github.com/qosst/qosst-go/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qosst.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.Network.Port != 8181 {
		t.Errorf("default port = %d, want 8181", cfg.Network.Port)
	}
	if cfg.Connection.MaxRetries != 1 {
		t.Errorf("default max_retries = %d, want 1", cfg.Connection.MaxRetries)
	}
	if cfg.Connection.AutoRelisten {
		t.Error("auto_relisten must default to off")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[network]
host = "10.0.0.5"
port = 9000

[connection]
max_retries = 3
dial_timeout = "5s"
auto_relisten = true

[logs]
level = "debug"
format = "console"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Network.Host != "10.0.0.5" || cfg.Network.Port != 9000 {
		t.Errorf("network = %+v", cfg.Network)
	}
	if cfg.Connection.MaxRetries != 3 {
		t.Errorf("max_retries = %d, want 3", cfg.Connection.MaxRetries)
	}
	if cfg.Connection.DialTimeout.Duration != 5*time.Second {
		t.Errorf("dial_timeout = %v, want 5s", cfg.Connection.DialTimeout.Duration)
	}
	if !cfg.Connection.AutoRelisten {
		t.Error("auto_relisten not parsed")
	}
	if cfg.Logs.Level != "debug" || cfg.Logs.Format != "console" {
		t.Errorf("logs = %+v", cfg.Logs)
	}

	// Untouched sections keep their defaults.
	if cfg.Authentication.Type != "none" {
		t.Errorf("authentication type = %q, want default none", cfg.Authentication.Type)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	var cerr *qerrors.ConfigError
	if !qerrors.As(err, &cerr) {
		t.Fatalf("Load of missing file = %v, want ConfigError", err)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Network.Host = "" }},
		{"port out of range", func(c *Config) { c.Network.Port = 70000 }},
		{"unknown authenticator", func(c *Config) { c.Authentication.Type = "rsa" }},
		{"mldsa87 without secret key", func(c *Config) {
			c.Authentication.Type = "mldsa87"
			c.Authentication.RemotePublicKeyFile = "peer.pem"
		}},
		{"mldsa87 without remote key", func(c *Config) {
			c.Authentication.Type = "mldsa87"
			c.Authentication.SecretKeyFile = "me.pem"
		}},
		{"negative retries", func(c *Config) { c.Connection.MaxRetries = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestAuthenticatorFromConfig(t *testing.T) {
	cfg := Default()
	a, err := cfg.Authenticator()
	if err != nil {
		t.Fatalf("Authenticator failed: %v", err)
	}
	digest := []byte("digest")
	sig, err := a.SignDigest(digest)
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}
	if !a.CheckDigest(digest, sig) {
		t.Error("identity authenticator should verify its own signature")
	}
}

func TestControlConfigMapping(t *testing.T) {
	cfg := Default()
	cfg.Connection.MaxRetries = 4
	cfg.Connection.AutoRelisten = true

	cc := cfg.ClientConfig()
	if cc.MaxRetries != 4 {
		t.Errorf("client max retries = %d, want 4", cc.MaxRetries)
	}
	if cc.DialTimeout != 10*time.Second {
		t.Errorf("dial timeout = %v, want default 10s", cc.DialTimeout)
	}
	if sc := cfg.ServerConfig(); !sc.AutoRelisten {
		t.Error("server auto_relisten not mapped")
	}
}
