// Package config loads and validates the TOML configuration shared by the
// command line tools and the role adapters.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/qosst/qosst-go/internal/constants"
	qerrors "github.com/qosst/qosst-go/internal/errors"
	"github.com/qosst/qosst-go/pkg/auth"
	"github.com/qosst/qosst-go/pkg/control"
)

// Config is the root of the TOML configuration file.
type Config struct {
	Network        NetworkConfig    `toml:"network"`
	Authentication AuthConfig       `toml:"authentication"`
	Connection     ConnectionConfig `toml:"connection"`
	Logs           LogsConfig       `toml:"logs"`
}

// NetworkConfig selects the control endpoint.
type NetworkConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// AuthConfig selects and parameterizes the frame authenticator.
type AuthConfig struct {
	// Type names the authentication scheme: "none" or "mldsa87".
	Type string `toml:"type"`

	// SecretKeyFile and RemotePublicKeyFile locate the PEM key material
	// for signature schemes. Ignored by the "none" scheme.
	SecretKeyFile       string `toml:"secret_key_file"`
	RemotePublicKeyFile string `toml:"remote_public_key_file"`
}

// ConnectionConfig tunes the connection behavior of both roles.
type ConnectionConfig struct {
	// MaxRetries bounds the initiator's automatic reconnect attempts.
	MaxRetries int `toml:"max_retries"`

	// DialTimeout bounds each initiator connection attempt, e.g. "10s".
	DialTimeout duration `toml:"dial_timeout"`

	// AutoRelisten makes the responder accept a new peer automatically
	// after a disconnection.
	AutoRelisten bool `toml:"auto_relisten"`
}

// LogsConfig tunes the structured logging output.
type LogsConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `toml:"level"`

	// Format is "json" or "console".
	Format string `toml:"format"`
}

// duration lets TOML carry durations as strings like "10s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is given: local
// endpoint, identity authentication, one retry, JSON logs at info.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			Host: constants.DefaultHost,
			Port: constants.DefaultPort,
		},
		Authentication: AuthConfig{Type: "none"},
		Connection: ConnectionConfig{
			MaxRetries:  1,
			DialTimeout: duration{10 * time.Second},
		},
		Logs: LogsConfig{Level: "info", Format: "json"},
	}
}

// Load reads and validates a TOML configuration file. Missing fields fall
// back to the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, qerrors.NewConfigError("file", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, qerrors.NewConfigError("file", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Network.Host) == "" {
		return qerrors.NewConfigError("network", fmt.Errorf("host is required"))
	}
	if c.Network.Port < 0 || c.Network.Port > 65535 {
		return qerrors.NewConfigError("network", fmt.Errorf("port %d out of range", c.Network.Port))
	}
	switch strings.ToLower(c.Authentication.Type) {
	case "", "none":
	case "mldsa87":
		if c.Authentication.SecretKeyFile == "" {
			return qerrors.NewConfigError("authentication", fmt.Errorf("mldsa87 requires secret_key_file"))
		}
		if c.Authentication.RemotePublicKeyFile == "" {
			return qerrors.NewConfigError("authentication", fmt.Errorf("mldsa87 requires remote_public_key_file"))
		}
	default:
		return qerrors.NewConfigError("authentication",
			fmt.Errorf("unknown type %q: %w", c.Authentication.Type, qerrors.ErrUnknownAuthenticator))
	}
	if c.Connection.MaxRetries < 0 {
		return qerrors.NewConfigError("connection", fmt.Errorf("max_retries must not be negative"))
	}
	if c.Connection.DialTimeout.Duration < 0 {
		return qerrors.NewConfigError("connection", fmt.Errorf("dial_timeout must not be negative"))
	}
	return nil
}

// Authenticator builds the configured frame authenticator.
func (c Config) Authenticator() (auth.Authenticator, error) {
	params := auth.Params{}
	if c.Authentication.SecretKeyFile != "" {
		params["secret_key_file"] = c.Authentication.SecretKeyFile
	}
	if c.Authentication.RemotePublicKeyFile != "" {
		params["remote_public_key_file"] = c.Authentication.RemotePublicKeyFile
	}
	return auth.New(strings.ToLower(c.Authentication.Type), params)
}

// ClientConfig maps the connection section onto the initiator settings.
func (c Config) ClientConfig() control.ClientConfig {
	cc := control.DefaultClientConfig()
	cc.MaxRetries = c.Connection.MaxRetries
	if c.Connection.DialTimeout.Duration > 0 {
		cc.DialTimeout = c.Connection.DialTimeout.Duration
	}
	return cc
}

// ServerConfig maps the connection section onto the responder settings.
func (c Config) ServerConfig() control.ServerConfig {
	return control.ServerConfig{AutoRelisten: c.Connection.AutoRelisten}
}
