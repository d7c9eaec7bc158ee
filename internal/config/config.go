// Package config loads service configuration from an optional YAML file
// overlaid with SUPERLISTS_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SUPERLISTS_"

// Config holds the full service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Session  SessionConfig  `koanf:"session"`
	Mail     MailConfig     `koanf:"mail"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig configures the HTTP listener and link generation.
type ServerConfig struct {
	Port int `koanf:"port"`
	// BaseURL is the externally reachable root used in login links.
	BaseURL string `koanf:"base_url"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// SessionConfig configures JWT session tokens minted after login.
type SessionConfig struct {
	// Secret signs session tokens. Required; no default.
	Secret string `koanf:"secret"`
	// TTLHours is how long sessions stay valid.
	TTLHours int `koanf:"ttl_hours"`
}

// MailConfig configures login link delivery. Mode "log" writes links to
// the log (development); mode "smtp" sends real mail.
type MailConfig struct {
	Mode     string `koanf:"mode"`
	SMTPAddr string `koanf:"smtp_addr"`
	From     string `koanf:"from"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `koanf:"level"`
}

// nestedKeys maps env-style keys to their dotted koanf form, resolving the
// ambiguity between nesting separators and field-internal underscores
// (SUPERLISTS_SERVER_BASE_URL -> server.base_url, not server.base.url).
var nestedKeys = map[string]string{
	"server_base_url":   "server.base_url",
	"session_ttl_hours": "session.ttl_hours",
	"mail_smtp_addr":    "mail.smtp_addr",
}

// Load reads configuration in three layers (highest precedence last):
// built-in defaults, the YAML file at path (skipped when path is empty or
// the file does not exist), then SUPERLISTS_-prefixed environment
// variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := nestedKeys[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-filled with development defaults.
// The session secret has no default on purpose.
func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, BaseURL: "http://localhost:8080"},
		Database: DatabaseConfig{Path: "./data/superlists.db"},
		Session:  SessionConfig{TTLHours: 72},
		Mail:     MailConfig{Mode: "log", From: "noreply@satno7.press"},
		Log:      LogConfig{Level: "info"},
	}
}

// Validate checks invariants that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("session.secret is required (set SUPERLISTS_SESSION_SECRET)")
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("session.ttl_hours must be positive, got %d", c.Session.TTLHours)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Mail.Mode {
	case "log":
	case "smtp":
		if c.Mail.SMTPAddr == "" {
			return errors.New("mail.smtp_addr is required when mail.mode is smtp")
		}
	default:
		return fmt.Errorf("unknown mail.mode %q (want log or smtp)", c.Mail.Mode)
	}
	return nil
}
