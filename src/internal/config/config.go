// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
)

// Environment variables read by Load.
const (
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "X509_INSPECT_CONFIG_FILE"
	// EnvFormat overrides output.format.
	EnvFormat = "X509_INSPECT_FORMAT"
	// EnvFingerprint overrides output.fingerprint.
	EnvFingerprint = "X509_INSPECT_FINGERPRINT"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPEM   = "pem"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// Formats lists the accepted output formats.
	Formats = []string{FormatText, FormatTable, FormatJSON, FormatPEM}
	// ColorModes lists the accepted color modes.
	ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// ErrInvalid is returned when a configuration value is outside its accepted set.
var ErrInvalid = errors.New("config: invalid value")

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	Decode struct {
		// Strict rejects non-canonical encodings and repeated extensions at decode time.
		Strict bool `json:"strict" yaml:"strict"`
		// SkipInvalid passes over blocks that fail to decode.
		SkipInvalid bool `json:"skipInvalid" yaml:"skipInvalid"`
	} `json:"decode" yaml:"decode"`

	Output struct {
		Format      string `json:"format" yaml:"format"`
		Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
		Color       string `json:"color" yaml:"color"`
	} `json:"output" yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Decode.Strict = true
	c.Output.Format = FormatText
	c.Output.Fingerprint = "sha256"
	c.Output.Color = ColorAuto
	return c
}

func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, then the file at configPath
// (or $X509_INSPECT_CONFIG_FILE when configPath is empty), then environment
// overrides. The file format follows its extension: .yaml and .yml are YAML,
// anything else is JSON.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvFormat); v != "" {
		config.Output.Format = v
	}
	if v := os.Getenv(EnvFingerprint); v != "" {
		config.Output.Fingerprint = v
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate normalizes case and checks every enumerated value.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Output.Color = strings.ToLower(c.Output.Color)

	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}

	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want one of %s)", ErrInvalid, c.Output.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		return fmt.Errorf("%w: output.color %q (want one of %s)", ErrInvalid, c.Output.Color, strings.Join(ColorModes, ", "))
	}
	if !x509certs.IsFingerprintAlgorithm(c.Output.Fingerprint) {
		return fmt.Errorf("%w: output.fingerprint %q (want one of %s)", ErrInvalid, c.Output.Fingerprint, strings.Join(x509certs.FingerprintAlgorithms, ", "))
	}
	return nil
}
