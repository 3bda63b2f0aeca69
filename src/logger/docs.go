// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the Logger interface and its two implementations:
// CLILogger for human-readable command-line output on stderr and MCPLogger
// for JSON lines in MCP server environments. MCPLogger builds each line in a
// pooled buffer from the gc package.
package logger
