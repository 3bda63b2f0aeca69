// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	x509report "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/report"
)

// errInvalidInput is returned when a certificate argument is neither PEM
// text, a readable file, nor base64 data.
var errInvalidInput = errors.New("not PEM text, a readable file path, or base64 data")

// readCertificateInput resolves a certificate argument to raw bytes. PEM text
// is used as is; otherwise the argument is tried as a file path and then as
// base64 with whitespace removed.
func readCertificateInput(input string) ([]byte, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errInvalidInput
	}

	if x509certs.IsPEM([]byte(input)) {
		return []byte(input), nil
	}

	if data, err := gc.ReadFile(input); err == nil {
		return data, nil
	}

	compact := strings.Join(strings.Fields(input), "")
	if decoded, err := base64.StdEncoding.DecodeString(compact); err == nil && len(decoded) > 0 {
		return decoded, nil
	}

	return nil, errInvalidInput
}

// decodeInput reads and decodes every certificate of a certificate argument.
func decodeInput(input string, skipInvalid, strict bool) ([]*x509certs.Certificate, error) {
	data, err := readCertificateInput(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	certs, err := x509certs.DecodeAll(data, skipInvalid, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate: %w", err)
	}
	if len(certs) == 0 {
		return nil, errors.New("no certificates found in input")
	}

	stats.certificatesDecoded.Add(int64(len(certs)))
	return certs, nil
}

// parseAt parses an optional RFC 3339 time argument. The zero time means now.
func parseAt(request mcp.CallToolRequest) (time.Time, error) {
	at := request.GetString("at", "")
	if at == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid 'at' time %q: expected RFC 3339", at)
	}
	return t, nil
}

// handleInspectCertificate decodes the certificate argument and renders a
// summary of every certificate in the requested format.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format := strings.ToLower(request.GetString("format", cfg.Output.Format))
	if !slices.Contains(config.Formats, format) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use one of %s", format, strings.Join(config.Formats, ", "))), nil
	}

	algorithm := request.GetString("fingerprint", cfg.Output.Fingerprint)
	if !x509certs.IsFingerprintAlgorithm(algorithm) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported fingerprint algorithm %q", algorithm)), nil
	}

	at, err := parseAt(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	strict, skipInvalid := decodeOptions(request, cfg)
	certs, err := decodeInput(input, skipInvalid, strict)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if format == config.FormatPEM {
		var sb strings.Builder
		for _, cert := range certs {
			sb.Write(cert.ToPEM())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}

	summaries, err := x509report.SummarizeCertificates(certs, x509report.Options{At: at, Fingerprint: algorithm})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var output string
	switch format {
	case config.FormatJSON:
		data, err := x509report.JSON(summaries)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal summaries: %v", err)), nil
		}
		output = string(data)
	case config.FormatTable:
		output = x509report.Table(summaries)
	default:
		if output, err = x509report.Text(summaries, nil); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	return mcp.NewToolResultText(output), nil
}

// handleListCertificates walks a PEM bundle one certificate at a time and
// lists the subject and status of each.
func handleListCertificates(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("pem")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pem parameter required: %v", err)), nil
	}

	text := []byte(input)
	if !x509certs.IsPEM(text) {
		if text, err = gc.ReadFile(strings.TrimSpace(input)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read PEM: %v", err)), nil
		}
	}

	strict, skipInvalid := decodeOptions(request, cfg)
	summaries, err := x509report.SummarizeAll(x509certs.CertsFromText(text, skipInvalid, strict), x509report.Options{
		Fingerprint: cfg.Output.Fingerprint,
	})
	stats.certificatesDecoded.Add(int64(len(summaries)))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed after %d certificate(s): %v", len(summaries), err)), nil
	}

	var sb strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&sb, "%d: %s (%s)\n", s.Index, s.Subject, s.Status)
	}
	fmt.Fprintf(&sb, "\nTotal: %d certificate(s)\n", len(summaries))

	return mcp.NewToolResultText(sb.String()), nil
}

// handleCertificateFingerprint prints one fingerprint line per certificate.
func handleCertificateFingerprint(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	algorithm := request.GetString("algorithm", cfg.Output.Fingerprint)

	certs, err := decodeInput(input, cfg.Decode.SkipInvalid, cfg.Decode.Strict)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	for i, cert := range certs {
		digest, err := cert.Fingerprint(algorithm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		subject, err := cert.PrintSubjectName()
		if err != nil {
			subject = "(unreadable subject)"
		}
		fmt.Fprintf(&sb, "%d: %s\n   %s\n", i+1, subject, x509certs.FormatFingerprint(digest))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleCheckValidity reports the validity window of each certificate and
// where the checked instant falls relative to it.
func handleCheckValidity(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	at, err := parseAt(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	certs, err := decodeInput(input, cfg.Decode.SkipInvalid, cfg.Decode.Strict)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	if at.IsZero() {
		sb.WriteString("Validity check at current time:\n\n")
	} else {
		fmt.Fprintf(&sb, "Validity check at %s:\n\n", at.UTC().Format(time.RFC3339))
	}

	for i, cert := range certs {
		subject, err := cert.PrintSubjectName()
		if err != nil {
			subject = "(unreadable subject)"
		}
		fmt.Fprintf(&sb, "%d: %s\n", i+1, subject)

		notBefore, errBefore := cert.NotBefore()
		notAfter, errAfter := cert.NotAfter()
		if err := errors.Join(errBefore, errAfter); err != nil {
			fmt.Fprintf(&sb, "   Error: %v\n", err)
			continue
		}
		fmt.Fprintf(&sb, "   Not Before: %s\n   Not After:  %s\n",
			notBefore.UTC().Format(time.RFC3339), notAfter.UTC().Format(time.RFC3339))

		sb.WriteString("   Status:     " + validityStatus(cert, at) + "\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func validityStatus(cert *x509certs.Certificate, at time.Time) string {
	var (
		valid bool
		err   error
	)
	if at.IsZero() {
		valid, err = cert.IsTemporallyValidNow()
	} else {
		valid, err = cert.IsTemporallyValidAt(at)
	}
	switch {
	case err != nil:
		return "error: " + err.Error()
	case valid:
		return x509report.StatusValid
	}

	if at.IsZero() {
		if expired, err := cert.IsExpired(); err == nil && expired {
			return x509report.StatusExpired
		}
		return x509report.StatusNotYetValid
	}
	if notAfter, err := cert.NotAfter(); err == nil && at.After(notAfter) {
		return x509report.StatusExpired
	}
	return x509report.StatusNotYetValid
}

// handleGetResourceUsage reports runtime and server statistics.
func handleGetResourceUsage(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	detailed := request.GetBool("detailed", false)
	format := request.GetString("format", "json")

	data := CollectResourceUsage(detailed)

	switch format {
	case "markdown":
		return mcp.NewToolResultText(FormatResourceUsageAsMarkdown(data)), nil
	case "json":
		out, err := FormatResourceUsageAsJSON(data)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'json' or 'markdown'", format)), nil
	}
}
