// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// EmbedFS abstracts the [embed.FS] type so that callers can swap it out in tests.
// Implementations must be safe for concurrent use.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// File names inside [MagicEmbed].
const (
	CertificateFormats  = "certificate-formats.md"
	Instructions        = "X509_instructions.md"
	InspectionPrompt    = "certificate-inspection-prompt.md"
	ValidityCheckPrompt = "validity-check-prompt.md"
)

// MagicEmbed holds the markdown served as MCP resources, the server
// instructions template and the prompt templates.
//
//	content, err := templates.MagicEmbed.ReadFile(templates.CertificateFormats)
//	if err != nil {
//		return fmt.Errorf("failed to read certificate formats: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
