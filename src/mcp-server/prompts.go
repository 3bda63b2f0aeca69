// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/mcp-server/templates"
)

// Prompt names.
const (
	PromptCertificateInspection = "certificate-inspection"
	PromptValidityCheck         = "validity-check"
)

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	Certificate     string
	At              string
	Fingerprint     string
	Inspector       string
	ValidityChecker string
}

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt(PromptCertificateInspection,
				mcp.WithPromptDescription("Walk through the fields and extensions of a certificate"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription("Path to a certificate file, PEM text or base64-encoded DER"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("fingerprint",
					mcp.ArgumentDescription("Fingerprint algorithm to finish with (default: sha256)"),
				),
			),
			Handler: handleCertificateInspectionPrompt,
		},
		{
			Prompt: mcp.NewPrompt(PromptValidityCheck,
				mcp.WithPromptDescription("Check a certificate's validity period at a given time"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription("Path to a certificate file, PEM text or base64-encoded DER"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("at",
					mcp.ArgumentDescription("RFC 3339 time to check (default: now)"),
				),
			),
			Handler: handleValidityCheckPrompt,
		},
	}
}

// toolRoles maps tool roles to tool names.
func toolRoles() map[string]string {
	roles := make(map[string]string)
	for _, tool := range createTools() {
		roles[tool.Role] = tool.Tool.Name
	}
	return roles
}

// parsePromptTemplate executes a prompt template and splits the result into
// messages at its "### User:" and "### Assistant:" markers. Headings and
// blank lines are dropped.
func parsePromptTemplate(fsys templates.EmbedFS, name string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	content, err := fsys.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	rendered, err := gc.Render(func(buf gc.Buffer) error {
		return tmpl.Execute(buf, data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	var (
		messages []mcp.PromptMessage
		role     mcp.Role
		current  strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(role, mcp.NewTextContent(current.String())))
			current.Reset()
		}
	}

	for line := range strings.Lines(rendered) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "### User:"):
			flush()
			role = mcp.RoleUser
			continue
		case strings.HasPrefix(line, "### Assistant:"):
			flush()
			role = mcp.RoleAssistant
			continue
		case line == "" || strings.HasPrefix(line, "#") || role == "":
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	return messages, nil
}

// handleCertificateInspectionPrompt handles the certificate inspection workflow prompt.
func handleCertificateInspectionPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	fingerprint := request.Params.Arguments["fingerprint"]
	if fingerprint == "" {
		fingerprint = "sha256"
	}

	roles := toolRoles()
	messages, err := parsePromptTemplate(templates.MagicEmbed, templates.InspectionPrompt, promptTemplateData{
		Certificate: request.Params.Arguments["certificate"],
		Fingerprint: fingerprint,
		Inspector:   roles["inspector"],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate inspection template: %w", err)
	}

	return mcp.NewGetPromptResult("Certificate Inspection Workflow", messages), nil
}

// handleValidityCheckPrompt handles the validity check prompt.
func handleValidityCheckPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	at := request.Params.Arguments["at"]
	if at == "" {
		at = "the current time"
	}

	messages, err := parsePromptTemplate(templates.MagicEmbed, templates.ValidityCheckPrompt, promptTemplateData{
		Certificate:     request.Params.Arguments["certificate"],
		At:              at,
		ValidityChecker: toolRoles()["validityChecker"],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse validity check template: %w", err)
	}

	return mcp.NewGetPromptResult("Certificate Validity Check", messages), nil
}
