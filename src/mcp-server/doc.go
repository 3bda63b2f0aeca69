// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the [X509] certificate inspector as a Model
// Context Protocol ([MCP]) server. Tools decode certificates given as file
// paths, PEM text or base64 and return their fields, fingerprints and
// validity status; resources serve the configuration template, version
// information and format documentation. The server is assembled with
// [ServerBuilder] and served over stdio by [Run].
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
