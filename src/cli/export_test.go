// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"os"
	"testing"
)

// SetIsTerminal replaces the terminal check for the duration of the test.
func SetIsTerminal(t *testing.T, fn func(*os.File) bool) {
	t.Helper()
	prev := isTerminalFn
	isTerminalFn = fn
	t.Cleanup(func() { isTerminalFn = prev })
}
