// Package config holds the linter configuration and its file loader.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// KeywordCase selects the enforced casing for reserved keywords.
type KeywordCase int32

const (
	KeywordCase_UPPER KeywordCase = iota
	KeywordCase_LOWER
)

func (c KeywordCase) String() string {
	if c == KeywordCase_LOWER {
		return "lower"
	}
	return "upper"
}

// UnmarshalYAML implements yaml.Unmarshaler for KeywordCase
func (c *KeywordCase) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return c.set(s)
}

// UnmarshalJSON implements json.Unmarshaler for KeywordCase
func (c *KeywordCase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return c.set(s)
}

func (c *KeywordCase) set(s string) error {
	switch s {
	case "upper", "UPPER", "":
		*c = KeywordCase_UPPER
	case "lower", "LOWER":
		*c = KeywordCase_LOWER
	default:
		return errors.Errorf("unsupported keyword case: %q", s)
	}
	return nil
}

// Config is the recognized linter configuration.
type Config struct {
	// MaxIdentifierLength is the identifier_naming length limit in bytes.
	MaxIdentifierLength int
	// EnforceRiverAlignment toggles the river_alignment rule.
	EnforceRiverAlignment bool
	// KeywordCase is the casing enforced by keyword_casing.
	KeywordCase KeywordCase
	// EnabledRules restricts the rule set to the listed rule IDs.
	// Empty means every registered rule runs.
	EnabledRules []string
	// IgnoredRules disables the listed rule IDs. Applied after EnabledRules.
	IgnoredRules []string
}

// Default returns the default configuration: every rule enabled, uppercase
// keywords, 30-byte identifiers.
func Default() *Config {
	return &Config{
		MaxIdentifierLength:   30,
		EnforceRiverAlignment: true,
		KeywordCase:           KeywordCase_UPPER,
	}
}

// RuleEnabled reports whether the rule with the given ID should run.
func (c *Config) RuleEnabled(id string) bool {
	for _, ignored := range c.IgnoredRules {
		if ignored == id {
			return false
		}
	}
	if id == "river_alignment" && !c.EnforceRiverAlignment {
		return false
	}
	if len(c.EnabledRules) == 0 {
		return true
	}
	for _, enabled := range c.EnabledRules {
		if enabled == id {
			return true
		}
	}
	return false
}

// fileConfig is the on-disk shape; optional fields stay pointers so that
// absent keys fall back to defaults instead of zero values.
type fileConfig struct {
	MaxIdentifierLength   *int        `yaml:"maxIdentifierLength" json:"maxIdentifierLength"`
	EnforceRiverAlignment *bool       `yaml:"enforceRiverAlignment" json:"enforceRiverAlignment"`
	KeywordCase           KeywordCase `yaml:"keywordCase" json:"keywordCase"`
	EnabledRules          []string    `yaml:"enabledRules" json:"enabledRules"`
	IgnoredRules          []string    `yaml:"ignoredRules" json:"ignoredRules"`
}

// LoadFromFile loads configuration from a YAML or JSON file and merges it
// over the defaults.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	var fc fileConfig
	// Try YAML first, then JSON
	if yamlErr := yaml.Unmarshal(data, &fc); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, &fc); jsonErr != nil {
			return nil, errors.Wrapf(yamlErr, "failed to parse config file: %s", filename)
		}
	}

	cfg := Default()
	if fc.MaxIdentifierLength != nil {
		cfg.MaxIdentifierLength = *fc.MaxIdentifierLength
	}
	if fc.EnforceRiverAlignment != nil {
		cfg.EnforceRiverAlignment = *fc.EnforceRiverAlignment
	}
	cfg.KeywordCase = fc.KeywordCase
	cfg.EnabledRules = fc.EnabledRules
	cfg.IgnoredRules = fc.IgnoredRules

	slog.Debug("Loaded config", "enabled_rules", len(cfg.EnabledRules), "ignored_rules", len(cfg.IgnoredRules))
	return cfg, nil
}
