// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads the layered CLI configuration. Precedence, highest to
// lowest: flags > environment (SQLPREP_ prefix) > config file > defaults.
// The config file sqlprep.yaml is looked up in the current directory first and
// then in the XDG config dir. Only non-secret settings exist; there is nothing
// to keep out of the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	apperrors "sqlprep/cli/internal/errors"
	"sqlprep/cli/internal/xdg"
)

// FileName is the config file the CLI looks for.
const FileName = "sqlprep.yaml"

// DefaultDisallowedSchemas is the built-in disallowed-schema set.
var DefaultDisallowedSchemas = []string{"storage"}

// Config holds the CLI settings.
type Config struct {
	// DisallowedSchemas lists schema names whose qualified references cause a
	// statement to be dropped by the filter. Lower-cased and deduplicated.
	DisallowedSchemas []string `koanf:"disallowed_schemas"`
	// Verbose enables debug output on stderr.
	Verbose bool `koanf:"verbose"`
}

// findConfigFile returns the config file to use, or "" when none exists.
// Priority: current directory, then the XDG config dir.
func findConfigFile() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if dir, err := xdg.ConfigDir(); err == nil {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load merges defaults, config file, environment, and flags into a Config.
// flags may be nil. The --schema flag maps onto the disallowed_schemas key.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"disallowed_schemas": DefaultDisallowedSchemas,
		"verbose":            false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SQLPREP_DISALLOWED_SCHEMAS -> disallowed_schemas
	if err := k.Load(env.Provider("SQLPREP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLPREP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			// The CLI uses --schema for brevity; the config key spells it out
			if key == "schema" {
				return "disallowed_schemas", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.DisallowedSchemas = normalizeSchemas(cfg.DisallowedSchemas)
	if len(cfg.DisallowedSchemas) == 0 {
		return nil, apperrors.New(apperrors.ConfigInvalid, "disallowed schema set is empty; set disallowed_schemas or pass --schema")
	}
	return &cfg, nil
}

// normalizeSchemas lower-cases, splits comma/whitespace separated entries
// (environment values arrive as a single string), and deduplicates while
// preserving first-seen order.
func normalizeSchemas(raw []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, entry := range raw {
		fields := strings.FieldsFunc(entry, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, name := range fields {
			name = strings.ToLower(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
