// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	ResourceConfigTemplate     = "config://template"
	ResourceVersion            = "info://version"
	ResourceCertificateFormats = "docs://certificate-formats"
	ResourceServerStatus       = "status://server-status"
)

// createResources returns the static resources of the server.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(ResourceConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Default server configuration, usable as a starting config file"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(ResourceVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version, tools and supported formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(ResourceCertificateFormats, "Certificate Formats",
				mcp.WithResourceDescription("Accepted certificate encodings and decoding modes"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleCertificateFormatsResource,
		},
		{
			Resource: mcp.NewResource(ResourceServerStatus, "Server Status",
				mcp.WithResourceDescription("Server health and activity counters"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleStatusResource,
		},
	}
}
