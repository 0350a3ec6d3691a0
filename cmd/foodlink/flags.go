package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/foodlink-la/foodlink"
	"github.com/foodlink-la/foodlink/api"
	"github.com/foodlink-la/foodlink/config"
)

// Flags holds the global options and the state built from them in the
// Before hook.
type Flags struct {
	APIURL     string
	LogLevel   string
	LogFile    string
	ConfigPath string
	Timeout    time.Duration

	// Config is resolved in the Before hook and available to all commands.
	Config *config.Config

	// Backend talks to the FoodLink API.
	Backend foodlink.Backend
}

// Global returns the flags shared by every command.
func (f *Flags) Global() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "backend base URL",
			Sources:     cli.EnvVars("FOODLINK_API_URL", "VITE_API_URL"),
			Destination: &f.APIURL,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("FOODLINK_LOG_LEVEL"),
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (optional)",
			Sources:     cli.EnvVars("FOODLINK_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("FOODLINK_CONFIG"),
			Value:       config.DefaultPath(),
			Destination: &f.ConfigPath,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "per-request timeout for backend calls (0 disables)",
			Sources:     cli.EnvVars("FOODLINK_TIMEOUT"),
			Destination: &f.Timeout,
		},
	}
}

// Resolve loads the config file and applies flag and environment overrides
// on top of it. Flags and environment win over the file.
func (f *Flags) Resolve(c *cli.Command) error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	overridden := false
	if c.IsSet("api-url") {
		cfg.APIURL = f.APIURL
		overridden = true
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = f.LogLevel
		overridden = true
	}
	if c.IsSet("timeout") {
		cfg.Timeout = f.Timeout
		overridden = true
	}
	if overridden {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	f.Config = cfg
	return nil
}

// Connect builds the backend client from the resolved config.
func (f *Flags) Connect() {
	f.Backend = api.New(
		api.WithBaseURL(f.Config.APIURL),
		api.WithHTTPClient(&http.Client{Timeout: f.Config.Timeout}),
		api.WithLogger(log.With().Str("component", "api").Logger()),
	)
}
