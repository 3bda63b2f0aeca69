// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/mcp-server/templates"
)

func TestMagicEmbedReadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contains string
		wantErr  bool
	}{
		{name: "Certificate Formats", filename: templates.CertificateFormats, contains: "# Certificate Formats"},
		{name: "Instructions", filename: templates.Instructions, contains: "{{range .Tools}}"},
		{name: "Inspection Prompt", filename: templates.InspectionPrompt, contains: "### User:"},
		{name: "Validity Prompt", filename: templates.ValidityCheckPrompt, contains: "{{.At}}"},
		{name: "Missing", filename: "non-existent.md", wantErr: true},
		{name: "Outside Root", filename: "../invalid.md", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := templates.MagicEmbed.ReadFile(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.contains)
		})
	}
}

func TestMagicEmbedReadDir(t *testing.T) {
	entries, err := templates.MagicEmbed.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		templates.CertificateFormats,
		templates.Instructions,
		templates.InspectionPrompt,
		templates.ValidityCheckPrompt,
	}, names)
}

func TestMagicEmbedOpen(t *testing.T) {
	f, err := templates.MagicEmbed.Open(templates.CertificateFormats)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = templates.MagicEmbed.Open("missing.md")
	assert.Error(t, err)
}
