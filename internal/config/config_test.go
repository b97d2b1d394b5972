// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the CWD and the XDG config dir at empty temp directories so
// tests never pick up a developer's real sqlprep.yaml.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

// newFlags mirrors the flag set the filter command registers.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringSlice("schema", nil, "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"storage"}, cfg.DisallowedSchemas)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	yaml := "disallowed_schemas:\n  - storage\n  - Audit\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"storage", "audit"}, cfg.DisallowedSchemas)
	assert.True(t, cfg.Verbose)
}

func TestLoadXDGConfigFile(t *testing.T) {
	dir := isolate(t)
	xdgDir := filepath.Join(dir, "xdg", "sqlprep")
	require.NoError(t, os.MkdirAll(xdgDir, 0o700))
	yaml := "disallowed_schemas: [internal]\n"
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, FileName), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"internal"}, cfg.DisallowedSchemas)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	yaml := "disallowed_schemas: [fromfile]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644))
	t.Setenv("SQLPREP_DISALLOWED_SCHEMAS", "storage,audit")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"storage", "audit"}, cfg.DisallowedSchemas)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SQLPREP_DISALLOWED_SCHEMAS", "fromenv")

	fs := newFlags(t, "--schema", "Legacy", "--schema", "scratch")
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "scratch"}, cfg.DisallowedSchemas)
}

func TestLoadUnchangedFlagsIgnored(t *testing.T) {
	isolate(t)

	fs := newFlags(t)
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"storage"}, cfg.DisallowedSchemas)
}

func TestLoadVerboseFlag(t *testing.T) {
	isolate(t)

	fs := newFlags(t, "--verbose")
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestNormalizeSchemas(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lower-cases", []string{"Storage"}, []string{"storage"}},
		{"splits commas", []string{"a,b"}, []string{"a", "b"}},
		{"splits whitespace", []string{"a b\tc"}, []string{"a", "b", "c"}},
		{"dedupes keeping first order", []string{"b", "a", "B"}, []string{"b", "a"}},
		{"drops empties", []string{"", " , "}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSchemas(tt.in))
		})
	}
}

func TestLoadEmptySchemaSet(t *testing.T) {
	isolate(t)
	t.Setenv("SQLPREP_DISALLOWED_SCHEMAS", " , ")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disallowed schema set is empty")
}
