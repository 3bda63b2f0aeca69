// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
)

// Logger defines the logging operations used by the inspector front ends.
//
// The certificate model itself never logs; the CLI reports skipped blocks and
// summaries through a Logger and the [MCP] server reports tool calls.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message.
	Println(v ...any)
	// Warnf formats and prints a warning, such as a skipped certificate block.
	Warnf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package. It writes to
// stderr so that certificate output on stdout can be piped.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLI logger with timestamps disabled.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stderr, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "warning: ".
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("warning: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Log levels written by MCPLogger.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
)

type entry struct {
	Level   string `json:"level"`
	Logger  string `json:"logger,omitempty"`
	Message string `json:"message"`
}

// MCPLogger implements Logger for [MCP] server mode. Every message is one
// JSON object per line. Output is suppressed by default because the MCP
// protocol owns stdout.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	name   string
}

// NewMCPLogger creates an [MCP] logger writing to writer. A nil writer
// discards output.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{writer: writer, silent: silent}
}

// Named returns a logger sharing m's configuration whose entries carry name
// in the "logger" field.
func (m *MCPLogger) Named(name string) *MCPLogger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &MCPLogger{writer: m.writer, silent: m.silent, name: name}
}

// Printf logs a formatted informational message.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Println logs an informational message.
func (m *MCPLogger) Println(v ...any) {
	m.write(LevelInfo, fmt.Sprint(v...))
}

// Warnf logs a formatted warning.
func (m *MCPLogger) Warnf(format string, v ...any) {
	m.write(LevelWarning, fmt.Sprintf(format, v...))
}

func (m *MCPLogger) write(level, msg string) {
	if m.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: level, Logger: m.name, Message: msg}); err != nil {
		return
	}

	m.mu.Lock()
	buf.WriteTo(m.writer)
	m.mu.Unlock()
}

// SetOutput sets the output destination for the MCP logger. A nil writer
// discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
