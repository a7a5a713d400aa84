// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`      // Path to resume text file
	CompanyURL string `json:"company_url,omitempty"` // Company root URL to crawl

	// Limits
	MaxPages    int `json:"max_pages,omitempty" validate:"gte=0,lte=15"`   // Maximum career pages crawled per company
	MaxResults  int `json:"max_results,omitempty" validate:"gte=0"`        // Maximum ranked results reported
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0,lte=4"` // Simultaneous page fetches / scoring calls

	// Scoring
	AIWeight      float64 `json:"ai_weight,omitempty" validate:"gte=0,lte=1"`      // Weight of the AI compatibility signal
	KeywordWeight float64 `json:"keyword_weight,omitempty" validate:"gte=0,lte=1"` // Weight of the keyword similarity signal

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// DefaultConfig returns the defaults applied when neither the config file
// nor the CLI flags set a value.
func DefaultConfig() Config {
	return Config{
		MaxPages:      10,
		MaxResults:    10,
		Concurrency:   3,
		AIWeight:      0.7,
		KeywordWeight: 0.3,
	}
}

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

// Validate checks that the configuration has valid values. Field ranges
// are enforced by struct tags; cross-field rules are checked here.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("config error: field '%s' failed '%s' validation", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// The two weights describe one blend; setting only one of them is
	// almost always a mistake.
	if (c.AIWeight == 0) != (c.KeywordWeight == 0) {
		return fmt.Errorf("config error: 'ai_weight' and 'keyword_weight' must be set together")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.CompanyURL == "" {
		result.CompanyURL = defaults.CompanyURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.AIWeight == 0 && result.KeywordWeight == 0 {
		result.AIWeight = defaults.AIWeight
		result.KeywordWeight = defaults.KeywordWeight
	}

	if defaults.UseBrowser {
		result.UseBrowser = true
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}
