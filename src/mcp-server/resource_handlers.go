// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/mcp-server/templates"
)

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleConfigResource serves the default configuration in the layout read
// by config.Load.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(ResourceConfigTemplate, config.Default())
}

func toolNames() []string {
	tools := createTools()
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	return names
}

// handleVersionResource serves server metadata.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(ResourceVersion, map[string]any{
		"name":                  ServerName,
		"version":               GetVersion(),
		"type":                  "MCP Server",
		"tools":                 toolNames(),
		"outputFormats":         config.Formats,
		"fingerprintAlgorithms": x509certs.FingerprintAlgorithms,
		"inputFormats":          []string{"pem", "der", "pkcs7"},
	})
}

// handleCertificateFormatsResource serves the embedded formats documentation.
func handleCertificateFormatsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile(templates.CertificateFormats)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate formats template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ResourceCertificateFormats,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

// handleStatusResource serves server health and activity counters.
func handleStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(ResourceServerStatus, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"server":    ServerName,
		"version":   GetVersion(),
		"stats":     stats.snapshot(),
	})
}
