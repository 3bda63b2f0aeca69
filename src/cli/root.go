// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	x509report "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/report"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/logger"
)

var (
	// ErrNoCertificates is returned when no input yields a certificate.
	ErrNoCertificates = errors.New("cli: no certificates found")
	// ErrInvalidTime is returned when --at is not an RFC 3339 timestamp.
	ErrInvalidTime = errors.New("cli: invalid --at time")
)

// options holds the flag values of one command invocation.
type options struct {
	configPath  string
	lenient     bool
	skipInvalid bool
	format      string
	fingerprint string
	color       string
	at          string
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCmd(version, log).ExecuteContext(ctx)
}

// NewRootCmd creates the x509-inspect command tree.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   posix.ExecutableName("x509-inspect") + " [FILE...]",
		Short: "Read-only X.509 certificate inspector",
		Long: "x509-inspect decodes X.509 certificates from PEM, DER or PKCS#7 input and " +
			"reports their fields and extensions. With no FILE, or when FILE is -, it reads standard input.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts, log)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (JSON or YAML)")
	flags.BoolVarP(&opts.lenient, "lenient", "l", false, "defer malformed extensions and values to the fields that use them")
	flags.BoolVarP(&opts.skipInvalid, "skip-invalid", "k", false, "skip PEM blocks that fail to decode")
	flags.StringVar(&opts.fingerprint, "fingerprint", "", "fingerprint algorithm (md5, sha1, sha224, sha256, sha384, sha512)")

	root.Flags().StringVarP(&opts.format, "format", "f", "", "output format (text, table, json, pem)")
	root.Flags().StringVar(&opts.color, "color", "", "color headings (auto, always, never)")
	root.Flags().StringVar(&opts.at, "at", "", "compute validity status at this RFC 3339 time instead of now")

	root.AddCommand(
		newFingerprintCmd(opts),
		newVersionCmd(version),
	)

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "x509-inspect %s\n", version)
		},
	}
}

func newFingerprintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [FILE...]",
		Short: "Print the fingerprint of every certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			certs, err := readAll(cmd, args, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range certs {
				digest, err := in.cert.Fingerprint(cfg.Output.Fingerprint)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", x509certs.FormatFingerprint(digest), in.source)
			}
			return nil
		},
	}
}

// loadConfig reads the configuration and applies the flags that were set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lenient") {
		cfg.Decode.Strict = !opts.lenient
	}
	if flags.Changed("skip-invalid") {
		cfg.Decode.SkipInvalid = opts.skipInvalid
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("fingerprint") {
		cfg.Output.Fingerprint = opts.fingerprint
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInspect(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var at time.Time
	if opts.at != "" {
		if at, err = time.Parse(time.RFC3339, opts.at); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTime, err)
		}
	}

	certs, err := readAll(cmd, args, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == config.FormatPEM {
		for _, in := range certs {
			if _, err := out.Write(in.cert.ToPEM()); err != nil {
				return err
			}
		}
		return nil
	}

	summaries := make([]*x509report.Summary, 0, len(certs))
	for i, in := range certs {
		s, err := x509report.Summarize(in.cert, x509report.Options{At: at, Fingerprint: cfg.Output.Fingerprint})
		if err != nil {
			return err
		}
		s.Index = i + 1
		summaries = append(summaries, s)

		if cfg.Output.Format == config.FormatTable {
			for _, p := range s.Problems {
				log.Warnf("%s: certificate #%d: %s", in.source, s.Index, p)
			}
		}
	}

	return render(out, summaries, cfg)
}

func render(out io.Writer, summaries []*x509report.Summary, cfg *config.Config) error {
	switch cfg.Output.Format {
	case config.FormatJSON:
		data, err := x509report.JSON(summaries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case config.FormatTable:
		_, err := io.WriteString(out, x509report.Table(summaries))
		return err
	default:
		text, err := x509report.Text(summaries, headingStyler(out, cfg.Output.Color))
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	}
}
