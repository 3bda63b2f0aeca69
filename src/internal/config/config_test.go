// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvFingerprint, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.True(t, cfg.Decode.Strict)
	assert.False(t, cfg.Decode.SkipInvalid)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, "sha256", cfg.Output.Fingerprint)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvFingerprint, "")

	tests := []struct {
		name     string
		file     string
		content  string
		strict   bool
		skip     bool
		format   string
		color    string
		hashName string
	}{
		{
			name:     "YAML",
			file:     "config.yaml",
			content:  "decode:\n  strict: false\n  skipInvalid: true\noutput:\n  format: table\n  fingerprint: sha1\n  color: never\n",
			strict:   false,
			skip:     true,
			format:   config.FormatTable,
			color:    config.ColorNever,
			hashName: "sha1",
		},
		{
			name:     "YML Partial",
			file:     "config.yml",
			content:  "output:\n  format: JSON\n",
			strict:   true,
			format:   config.FormatJSON,
			color:    config.ColorAuto,
			hashName: "sha256",
		},
		{
			name:     "JSON",
			file:     "config.json",
			content:  `{"decode":{"strict":false},"output":{"format":"pem","fingerprint":"SHA-512","color":"always"}}`,
			strict:   false,
			format:   config.FormatPEM,
			color:    config.ColorAlways,
			hashName: "SHA-512",
		},
		{
			name:     "Unknown Extension Is JSON",
			file:     "config.conf",
			content:  `{"output":{"fingerprint":"md5"}}`,
			strict:   true,
			format:   config.FormatText,
			color:    config.ColorAuto,
			hashName: "md5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.strict, cfg.Decode.Strict)
			assert.Equal(t, tt.skip, cfg.Decode.SkipInvalid)
			assert.Equal(t, tt.format, cfg.Output.Format)
			assert.Equal(t, tt.color, cfg.Output.Color)
			assert.Equal(t, tt.hashName, cfg.Output.Fingerprint)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeFile(t, "config.yaml", "output:\n  format: table\n  fingerprint: sha1\n")
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv(config.EnvFormat, "json")
	t.Setenv(config.EnvFingerprint, "sha384")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, "sha384", cfg.Output.Fingerprint)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvFingerprint, "")

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		invalid bool
	}{
		{
			name: "Missing File",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
		},
		{
			name: "Bad YAML",
			path: func(t *testing.T) string { return writeFile(t, "bad.yaml", "output: [\n") },
		},
		{
			name: "Bad JSON",
			path: func(t *testing.T) string { return writeFile(t, "bad.json", "{") },
		},
		{
			name:    "Unknown Format",
			path:    func(t *testing.T) string { return writeFile(t, "c.yaml", "output:\n  format: xml\n") },
			invalid: true,
		},
		{
			name:    "Unknown Color",
			path:    func(t *testing.T) string { return writeFile(t, "c.yaml", "output:\n  color: rainbow\n") },
			invalid: true,
		},
		{
			name:    "Unknown Fingerprint",
			path:    func(t *testing.T) string { return writeFile(t, "c.yaml", "output:\n  fingerprint: crc32\n") },
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.path(t))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestValidateFillsEmpty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Fingerprint = "sha1"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
}
