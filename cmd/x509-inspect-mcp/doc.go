// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-inspect-mcp is a Model Context Protocol (MCP) server that exposes the
// X.509 certificate inspector to AI assistants and automation clients over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-inspector/cmd/x509-inspect-mcp@latest
//
// # Usage
//
//	x509-inspect-mcp [--config FILE]
//
// # Environment Variables
//
//	X509_INSPECT_CONFIG_FILE  Configuration file when --config is not given
//	X509_INSPECT_FORMAT       Default output format of inspect_certificate
//	X509_INSPECT_FINGERPRINT  Default fingerprint algorithm
//
// # MCP Tools
//
//   - inspect_certificate: Report the fields, extensions and status of certificates
//   - list_certificates: One line per certificate of a PEM bundle
//   - certificate_fingerprint: Fingerprints under a chosen hash algorithm
//   - check_validity: Validity period check at a given time
//   - get_resource_usage: Memory, GC and call counters
//
// # MCP Resources
//
//   - config://template: Default configuration
//   - info://version: Version and capabilities
//   - docs://certificate-formats: Accepted encodings and decoding modes
//   - status://server-status: Server health and counters
//
// # MCP Prompts
//
//   - certificate-inspection: Walk through a certificate's fields and extensions
//   - validity-check: Check a certificate's validity period
//
// Logs are written to stderr as JSON lines; stdout carries the protocol.
package main
