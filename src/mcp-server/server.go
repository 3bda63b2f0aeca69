// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/version"
)

// ServerName identifies the server to MCP clients.
const ServerName = "X509 Certificate Inspector"

var appVersion = version.Version // default version

// GetVersion returns the version set by the last call to Run.
func GetVersion() string {
	return appVersion
}

// ToolHandler handles one tool call with access to the server configuration.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition pairs a tool with its handler. Role names the tool in the
// server instructions template.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds everything Build wires into the MCP server.
type ServerDependencies struct {
	Config       *config.Config
	Version      string
	Logger       logger.Logger
	Tools        []ToolDefinition
	Resources    []server.ServerResource
	Prompts      []server.ServerPrompt
	Instructions string
}

// ServerBuilder assembles an MCP server through a fluent interface.
//
//	s, err := mcpserver.NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion("1.0.0").
//		WithDefaultTools().
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration passed to every tool handler.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger that records failed tool calls.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools adds tool definitions.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds every certificate tool of this package.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithResources adds resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds prompts.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the MCP server. A nil configuration is replaced by
// [config.Default].
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(ServerName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, bindTool(tool, cfg, b.deps.Logger))
	}
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}
	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// bindTool closes over the configuration and records call statistics.
func bindTool(tool ToolDefinition, cfg *config.Config, log logger.Logger) server.ToolHandlerFunc {
	name := tool.Tool.Name
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats.toolCalls.Add(1)
		result, err := tool.Handler(ctx, request, cfg)
		if err != nil || (result != nil && result.IsError) {
			stats.toolErrors.Add(1)
			if log != nil {
				log.Warnf("tool %s failed: %s", name, describeFailure(result, err))
			}
		}
		return result, err
	}
}

func describeFailure(result *mcp.CallToolResult, err error) string {
	if err != nil {
		return err.Error()
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return "unknown error"
}

// Run serves the inspector over stdio until the client disconnects or the
// process receives SIGINT or SIGTERM.
//
// Configuration is read from configPath, or from $X509_INSPECT_CONFIG_FILE
// when configPath is empty. Logs go to stderr as JSON lines.
func Run(version, configPath string) error {
	appVersion = version

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tools := createTools()
	instructions, err := loadInstructions(templates.MagicEmbed, tools)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	log := logger.NewMCPLogger(os.Stderr, false).Named("x509-inspect-mcp")

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	log.Printf("%s %s listening on stdio", ServerName, version)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
