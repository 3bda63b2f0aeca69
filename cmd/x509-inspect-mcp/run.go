// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/logger"
	mcpserver "github.com/H0llyW00dzZ/x509-cert-inspector/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

// serve is swapped out in tests.
var serve = mcpserver.Run

func newCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "x509-inspect-mcp",
		Short:         "MCP server exposing the X.509 certificate inspector over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := serve(version, configPath)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (JSON or YAML)")

	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logger.NewCLILogger().Printf("x509-inspect-mcp: %v", err)
		os.Exit(1)
	}
}
