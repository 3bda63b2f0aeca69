// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/config"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
)

const stdinName = "-"

// input is one decoded certificate and where it came from.
type input struct {
	cert   *x509certs.Certificate
	source string
}

// readAll decodes the certificates of every named file, or of standard
// input when no file is named, in argument order.
func readAll(cmd *cobra.Command, args []string, cfg *config.Config) ([]input, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	var all []input
	for _, name := range args {
		data, err := readSource(cmd.InOrStdin(), name)
		if err != nil {
			return nil, err
		}

		certs, err := decodeSource(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for i, cert := range certs {
			all = append(all, input{cert: cert, source: fmt.Sprintf("%s[%d]", name, i)})
		}
	}

	if len(all) == 0 {
		return nil, ErrNoCertificates
	}
	return all, nil
}

func readSource(stdin io.Reader, name string) ([]byte, error) {
	if name != stdinName {
		return gc.ReadFile(name)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(stdin); err != nil {
		return nil, fmt.Errorf("error reading standard input: %w", err)
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// decodeSource reads PEM text through the batch reader and anything else as
// a DER certificate or PKCS#7 bundle.
func decodeSource(data []byte, cfg *config.Config) ([]*x509certs.Certificate, error) {
	return x509certs.DecodeAll(data, cfg.Decode.SkipInvalid, cfg.Decode.Strict)
}
