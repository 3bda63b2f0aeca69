// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
)

// HumanReadable renders the certificate as an indented multi-line dump headed
// by label. Values that fail to decode are shown as such instead of aborting.
func (c *Certificate) HumanReadable(label string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s:\n", label)
	fmt.Fprintf(&sb, "  Version: %d\n", c.Version+1)
	fmt.Fprintf(&sb, "  Serial Number: %s\n", formatSerial(c))
	fmt.Fprintf(&sb, "  Signature Algorithm: %s\n", oid.Name(c.SignatureAlgorithm))
	fmt.Fprintf(&sb, "  Issuer: %s\n", c.Issuer)
	sb.WriteString("  Validity:\n")
	fmt.Fprintf(&sb, "    Not Before: %s\n", formatTime(c.Validity.NotBefore))
	fmt.Fprintf(&sb, "    Not After : %s\n", formatTime(c.Validity.NotAfter))
	fmt.Fprintf(&sb, "  Subject: %s\n", c.Subject)
	fmt.Fprintf(&sb, "  Public Key Algorithm: %s\n", oid.Name(c.PublicKeyAlgorithm))

	if len(c.Extensions) > 0 {
		sb.WriteString("  Extensions:\n")
		for _, ext := range c.Extensions {
			critical := ""
			if ext.Critical {
				critical = " (critical)"
			}
			fmt.Fprintf(&sb, "    %s%s:\n", oid.Name(ext.ID), critical)
			fmt.Fprintf(&sb, "      %s\n", describeExtensionValue(ext))
		}
	}

	fmt.Fprintf(&sb, "  Signature: %s, %d bits", oid.Name(c.OuterSignatureAlgorithm), c.Signature.BitLength)
	return sb.String()
}

func describeExtensionValue(ext Extension) string {
	if ext.Decoded != nil {
		return ext.Decoded.String()
	}
	if _, err := DecodeExtensionValue(ext.ID, ext.Value); errors.Is(err, ErrUnrecognizedExtension) {
		return fmt.Sprintf("<unrecognized, %d bytes>", len(ext.Value))
	}
	return fmt.Sprintf("<corrupt, %d bytes>", len(ext.Value))
}

func formatSerial(c *Certificate) string {
	if c.SerialNumber == nil {
		return "<none>"
	}
	return c.SerialNumber.Text(16)
}

func formatTime(t Time) string {
	v, err := t.UTC()
	if err != nil {
		return fmt.Sprintf("<invalid %q>", t.Raw)
	}
	return v.Format(time.RFC3339)
}
