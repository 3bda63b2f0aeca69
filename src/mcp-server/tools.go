// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
)

// Tool names.
const (
	ToolInspectCertificate = "inspect_certificate"
	ToolListCertificates   = "list_certificates"
	ToolFingerprint        = "certificate_fingerprint"
	ToolCheckValidity      = "check_validity"
	ToolResourceUsage      = "get_resource_usage"
)

const certificateInputDescription = "PEM text, a file path, or base64-encoded DER/PKCS#7 data"

// createTools returns every tool of the server with its handler. Unset
// arguments fall back to the server configuration at call time.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolInspectCertificate,
				mcp.WithDescription("Decode X.509 certificates and report their fields, extensions, validity status and fingerprint"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateInputDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'table', 'json' or 'pem' (default: from server config)"),
				),
				mcp.WithString("fingerprint",
					mcp.Description("Fingerprint algorithm: "+strings.Join(x509certs.FingerprintAlgorithms, ", ")),
				),
				mcp.WithBoolean("strict",
					mcp.Description("Reject non-canonical encodings and repeated extensions (default: from server config)"),
				),
				mcp.WithBoolean("skip_invalid",
					mcp.Description("Pass over PEM blocks that fail to decode (default: from server config)"),
				),
				mcp.WithString("at",
					mcp.Description("RFC 3339 time used for the validity status (default: now)"),
				),
			),
			Handler: handleInspectCertificate,
			Role:    "inspector",
		},
		{
			Tool: mcp.NewTool(ToolListCertificates,
				mcp.WithDescription("List the subject and validity status of every certificate in a PEM bundle"),
				mcp.WithString("pem",
					mcp.Required(),
					mcp.Description("PEM text or path to a PEM file"),
				),
				mcp.WithBoolean("strict",
					mcp.Description("Reject non-canonical encodings and repeated extensions (default: from server config)"),
				),
				mcp.WithBoolean("skip_invalid",
					mcp.Description("Pass over blocks that fail to decode (default: from server config)"),
				),
			),
			Handler: handleListCertificates,
			Role:    "lister",
		},
		{
			Tool: mcp.NewTool(ToolFingerprint,
				mcp.WithDescription("Compute the fingerprint of every certificate in the input"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateInputDescription),
				),
				mcp.WithString("algorithm",
					mcp.Description("Hash algorithm: "+strings.Join(x509certs.FingerprintAlgorithms, ", ")+" (default: from server config)"),
				),
			),
			Handler: handleCertificateFingerprint,
			Role:    "fingerprinter",
		},
		{
			Tool: mcp.NewTool(ToolCheckValidity,
				mcp.WithDescription("Check whether certificates are within their validity period at a given time"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateInputDescription),
				),
				mcp.WithString("at",
					mcp.Description("RFC 3339 time to check against (default: now)"),
				),
			),
			Handler: handleCheckValidity,
			Role:    "validityChecker",
		},
		{
			Tool: mcp.NewTool(ToolResourceUsage,
				mcp.WithDescription("Get current resource usage statistics including memory, GC and tool call counters"),
				mcp.WithBoolean("detailed",
					mcp.Description("Include detailed memory breakdown (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'markdown' (default: json)"),
					mcp.DefaultString("json"),
				),
			),
			Handler: handleGetResourceUsage,
			Role:    "resourceMonitor",
		},
	}
}

// decodeOptions applies the decode arguments of a request over cfg.
func decodeOptions(request mcp.CallToolRequest, cfg *config.Config) (strict, skipInvalid bool) {
	return request.GetBool("strict", cfg.Decode.Strict), request.GetBool("skip_invalid", cfg.Decode.SkipInvalid)
}
