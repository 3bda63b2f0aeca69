// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
)

// Text renders the summaries as indented key/value blocks. heading, when
// not nil, styles each "Certificate #n" line.
//
// Thread Safety: Safe for concurrent use.
func Text(summaries []*Summary, heading func(string) string) (string, error) {
	return gc.Render(func(buf gc.Buffer) error {
		for i, s := range summaries {
			if i > 0 {
				buf.WriteByte('\n')
			}
			title := fmt.Sprintf("Certificate #%d", s.Index)
			if heading != nil {
				title = heading(title)
			}
			buf.WriteString(title + "\n")
			writeText(buf, s)
		}
		return nil
	})
}

func writeText(buf gc.Buffer, s *Summary) {
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(buf, "  %-24s %s\n", label+":", value)
		}
	}
	list := func(label string, values []string) {
		field(label, strings.Join(values, ", "))
	}

	field("Version", strconv.Itoa(s.Version))
	field("Serial Number", s.SerialNumber)
	field("Subject", s.Subject)
	field("Issuer", s.Issuer)
	field("Signature Algorithm", s.SignatureAlgorithm)
	field("Public Key Algorithm", s.PublicKeyAlgorithm)
	field("Not Before", s.NotBefore)
	field("Not After", s.NotAfter)
	field("Status", s.Status)
	field("CA", s.CA)
	if s.PathLength != nil {
		field("Path Length", strconv.Itoa(*s.PathLength))
	}
	list("Key Usage", s.KeyUsages)
	list("Extended Key Usage", s.ExtKeyUsages)
	list("DNS Names", s.DNSNames)
	list("Email Addresses", s.EmailAddresses)
	list("IP Addresses", s.IPAddresses)
	list("URIs", s.URIs)
	list("Other Names", s.OtherNames)
	list("Policies", s.Policies)
	list("OCSP", s.OCSPServers)
	list("CA Issuers", s.CAIssuers)
	list("CRL Distribution Points", s.CRLDistribution)
	field("Subject Key ID", s.SubjectKeyID)
	field("Authority Key ID", s.AuthorityKeyID)

	if len(s.Extensions) > 0 {
		buf.WriteString("  Extensions:\n")
		for _, ext := range s.Extensions {
			critical := ""
			if ext.Critical {
				critical = ", critical"
			}
			fmt.Fprintf(buf, "    %s (%s%s)\n", ext.Name, ext.State, critical)
		}
	}

	field("Fingerprint ("+s.FingerprintAlg+")", s.Fingerprint)

	if len(s.Problems) > 0 {
		buf.WriteString("  Problems:\n")
		for _, p := range s.Problems {
			fmt.Fprintf(buf, "    - %s\n", p)
		}
	}
}

// Table renders one markdown table row per certificate.
//
// Thread Safety: Safe for concurrent use.
func Table(summaries []*Summary) string {
	if len(summaries) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Subject", "Issuer", "Not After", "Status", "CA", "Fingerprint"})

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Subject,
			s.Issuer,
			s.NotAfter,
			s.Status,
			s.CA,
			s.Fingerprint,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// JSON renders the summaries as an indented JSON array.
func JSON(summaries []*Summary) ([]byte, error) {
	if summaries == nil {
		summaries = []*Summary{}
	}
	return json.MarshalIndent(summaries, "", "  ")
}
