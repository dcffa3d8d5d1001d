// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment variables recognized by FromEnv.
const (
	EnvAPIKey        = "GEMINI_API_KEY"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvEnrichTimeout = "CAREERIQ_ENRICH_TIMEOUT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty" validate:"omitempty,file"` // Path to resume text file
	Job    string `json:"job,omitempty" validate:"omitempty,file"`    // Path to job posting file
	Out    string `json:"out,omitempty"`                              // Path to write the result JSON

	// Analysis
	TargetRole string `json:"target_role,omitempty"` // Role hint overriding detection

	// Behavior: Gemini API key, PostgreSQL connection URL, per-section
	// enrichment timeout in seconds, and verbose debug output.
	APIKey               string `json:"api_key,omitempty"`
	DatabaseURL          string `json:"database_url,omitempty"`
	EnrichTimeoutSeconds int    `json:"enrich_timeout_seconds,omitempty" validate:"gte=0,lte=300"`
	Verbose              bool   `json:"verbose,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. A malformed
// timeout value is an error rather than a silent zero.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:      os.Getenv(EnvAPIKey),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}

	if raw := os.Getenv(EnvEnrichTimeout); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvEnrichTimeout, raw, err)
		}
		cfg.EnrichTimeoutSeconds = seconds
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values. Required fields are
// not checked here; those are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}
	fieldErr := fieldErrs[0]
	if fieldErr.Tag() == "file" {
		return fmt.Errorf("config error: %s file not found: %v", jsonName(fieldErr.Field()), fieldErr.Value())
	}
	return fmt.Errorf("config error: %s failed %s validation", jsonName(fieldErr.Field()), fieldErr.Tag())
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply env and config-file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.EnrichTimeoutSeconds == 0 {
		result.EnrichTimeoutSeconds = defaults.EnrichTimeoutSeconds
	}

	// Bool fields cannot distinguish unset from false, so CLI flags always
	// win for those.

	return result
}

func jsonName(field string) string {
	names := map[string]string{
		"Resume":               "resume",
		"Job":                  "job",
		"EnrichTimeoutSeconds": "enrich_timeout_seconds",
	}
	if name, ok := names[field]; ok {
		return name
	}
	return field
}
