// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
)

// isTerminalFn is overridable in tests.
var isTerminalFn = func(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func useColor(out io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminalFn(f)
}

// headingStyler returns nil when headings should be printed plain.
func headingStyler(out io.Writer, mode string) func(string) string {
	if !useColor(out, mode) {
		return nil
	}

	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	return func(s string) string { return style.Render(s) }
}
