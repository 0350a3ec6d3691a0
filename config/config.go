// Package config handles configuration loading and validation for foodlink.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/foodlink-la/foodlink"
	"github.com/foodlink-la/foodlink/api"
	"github.com/hay-kot/criterio"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds each backend request.
const DefaultTimeout = 30 * time.Second

// Config holds the application configuration.
type Config struct {
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"log_level"`
	// Location is the free-text place used when a search names none.
	Location string `yaml:"location"`
	// Coordinates back "near me" searches. Nil means no position is known.
	Coordinates *foodlink.Coordinates `yaml:"coordinates"`
	Search      Search                `yaml:"search"`
}

// Search holds the default resource search parameters.
type Search struct {
	MaxDistanceMiles float64  `yaml:"max_distance_miles"`
	Limit            int      `yaml:"limit"`
	OpenNow          bool     `yaml:"open_now"`
	DietaryNeeds     []string `yaml:"dietary_needs"`
}

// Default returns a Config with the backend contract defaults.
func Default() Config {
	return Config{
		APIURL:   api.DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: "info",
		Search: Search{
			MaxDistanceMiles: foodlink.DefaultMaxDistanceMiles,
			Limit:            foodlink.DefaultResourceLimit,
		},
	}
}

// DefaultPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "foodlink", "config.yaml")
}

// Load reads configuration from path on top of the defaults. A missing or
// empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads environment variables from a .env file without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.APIURL == "" {
		c.APIURL = defaults.APIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Search.MaxDistanceMiles == 0 {
		c.Search.MaxDistanceMiles = defaults.Search.MaxDistanceMiles
	}
	if c.Search.Limit == 0 {
		c.Search.Limit = defaults.Search.Limit
	}
}

// Validate checks that the configuration is usable. The returned error
// wraps [foodlink.ErrValidation] and a criterio.FieldErrors naming every
// offending field.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if u, err := url.Parse(c.APIURL); err != nil {
		errs = errs.Append("api_url", err)
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = errs.Append("api_url", fmt.Errorf("must be an http(s) URL, got %q", c.APIURL))
	}
	if c.Timeout < 0 {
		errs = errs.Append("timeout", fmt.Errorf("must not be negative"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = errs.Append("log_level", fmt.Errorf("unknown level %q", c.LogLevel))
	}
	if c.Search.MaxDistanceMiles <= 0 {
		errs = errs.Append("search.max_distance_miles", fmt.Errorf("must be positive"))
	}
	if c.Search.Limit <= 0 {
		errs = errs.Append("search.limit", fmt.Errorf("must be positive"))
	}
	if p := c.Coordinates; p != nil {
		if p.Lat < -90 || p.Lat > 90 {
			errs = errs.Append("coordinates.lat", fmt.Errorf("%v is out of range", p.Lat))
		}
		if p.Lon < -180 || p.Lon > 180 {
			errs = errs.Append("coordinates.lon", fmt.Errorf("%v is out of range", p.Lon))
		}
	}

	if err := errs.ToError(); err != nil {
		return fmt.Errorf("config: %w: %w", foodlink.ErrValidation, err)
	}
	return nil
}

// Filter returns the resource search described by the configuration.
func (c *Config) Filter() foodlink.ResourceFilter {
	f := foodlink.ResourceFilter{
		LocationText:     c.Location,
		MaxDistanceMiles: c.Search.MaxDistanceMiles,
		DietaryNeeds:     slices.Clone(c.Search.DietaryNeeds),
		OpenNow:          c.Search.OpenNow,
		Limit:            c.Search.Limit,
	}
	if c.Coordinates != nil {
		coords := *c.Coordinates
		f.Coordinates = &coords
	}
	return f
}
