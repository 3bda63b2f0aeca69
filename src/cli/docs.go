// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the X.509 certificate
// inspector. It implements a Cobra-based CLI that decodes certificates from
// files or standard input and reports them as text, markdown tables, JSON or
// re-encoded PEM. Settings come from a JSON or YAML configuration file and
// environment variables, and command-line flags take precedence over both.
package cli
