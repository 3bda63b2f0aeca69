// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package version holds the release version shared by the x509-inspect
// command and its MCP server.
package version

// Version is the current release. It can be overridden at build time with
// -ldflags "-X github.com/H0llyW00dzZ/x509-cert-inspector/src/version.Version=...".
var Version = "0.1.0"
