// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrMissingEnv reports a required environment variable that is not set.
// Handlers wrap it with the variable names so callers can match with
// errors.Is.
var ErrMissingEnv = errors.New("missing environment variable")

// Config holds the settings for the Backlog MCP server.
type Config struct {
	// APIKey authenticates requests against the Backlog API.
	APIKey string `env:"BACKLOG_API_KEY,required"`
	// SpaceURL is the base URL of the Backlog space,
	// e.g. https://example.backlog.com.
	SpaceURL string `env:"BACKLOG_SPACE_URL,required"`

	LogLevel  string `env:"BACKLOG_MCP_LOG_LEVEL" envDefault:"info"`
	Transport string `env:"BACKLOG_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"BACKLOG_MCP_HTTP_ADDR" envDefault:"localhost:8080"`
}

// Parse reads a Config from environ, then lets command line flags override
// it. environ holds KEY=VALUE pairs, usually os.Environ(). The process
// environment is never read directly.
func Parse(fs *flag.FlagSet, args []string, environ []string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level: debug, info, warn, error")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "listen address for the http transport")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
