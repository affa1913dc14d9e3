// Package config loads the preflight policy file. Policy is optional: with
// no file present the defaults below apply. YAML (.preflight.yaml) is the
// primary format; a TOML variant (.preflight.toml) is accepted for projects
// that keep their tooling config in TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crantools/preflight/internal/schema"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const policySchemaName = "preflight-policy-v1.0.0"

// Policy holds all configuration for a preflight run.
type Policy struct {
	Checks    ChecksPolicy   `mapstructure:"checks" toml:"checks" json:"checks"`
	Vignettes VignettePolicy `mapstructure:"vignettes" toml:"vignettes" json:"vignettes"`
}

// ChecksPolicy toggles optional checks and run behavior.
type ChecksPolicy struct {
	GitState bool `mapstructure:"git_state" toml:"git_state" json:"git_state"`
	Strict   bool `mapstructure:"strict" toml:"strict" json:"strict"`
}

// VignettePolicy controls vignette discovery and scanning.
type VignettePolicy struct {
	HeadLines int      `mapstructure:"head_lines" toml:"head_lines" json:"head_lines"`
	Patterns  []string `mapstructure:"patterns" toml:"patterns" json:"patterns"`
}

// DefaultPolicy returns the policy used when no file is present.
func DefaultPolicy() Policy {
	return Policy{
		Checks: ChecksPolicy{
			GitState: false,
			Strict:   false,
		},
		Vignettes: VignettePolicy{
			HeadLines: 30,
			Patterns: []string{
				"vignettes/**/*.Rmd",
				"vignettes/**/*.Rnw",
				"vignettes/**/*.Rhtml",
			},
		},
	}
}

// LoadPolicy resolves the policy for a package directory. Search order:
// .preflight.yaml, then .preflight.toml, in the package root. A missing
// file yields the defaults; a malformed or schema-invalid file is an error.
func LoadPolicy(pkgPath string) (Policy, error) {
	policy := DefaultPolicy()

	yamlPath := filepath.Join(pkgPath, ".preflight.yaml")
	tomlPath := filepath.Join(pkgPath, ".preflight.toml")

	switch {
	case fileExists(yamlPath):
		v := viper.New()
		v.SetConfigFile(yamlPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return policy, fmt.Errorf("reading policy %s: %w", yamlPath, err)
		}
		if err := v.Unmarshal(&policy); err != nil {
			return policy, fmt.Errorf("decoding policy %s: %w", yamlPath, err)
		}
	case fileExists(tomlPath):
		content, err := os.ReadFile(tomlPath) // #nosec G304 -- fixed filename under caller-supplied package root
		if err != nil {
			return policy, fmt.Errorf("reading policy %s: %w", tomlPath, err)
		}
		if err := toml.Unmarshal(content, &policy); err != nil {
			return policy, fmt.Errorf("decoding policy %s: %w", tomlPath, err)
		}
	default:
		return policy, nil
	}

	result, err := schema.Validate(policy, policySchemaName)
	if err != nil {
		return policy, fmt.Errorf("validating policy: %w", err)
	}
	if !result.Valid {
		var msgs []string
		for _, verr := range result.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", verr.Path, verr.Message))
		}
		return policy, fmt.Errorf("invalid policy: %s", strings.Join(msgs, "; "))
	}
	return policy, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
