// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509report_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	x509report "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/report"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/testcert"
)

var (
	googleNotBefore = time.Date(2025, 11, 24, 8, 41, 5, 0, time.UTC)
	googleNotAfter  = time.Date(2026, 2, 16, 8, 41, 4, 0, time.UTC)
)

func googleSummary(t *testing.T, at time.Time) *x509report.Summary {
	t.Helper()
	cert, err := x509certs.Decode(testcert.GoogleComDER(), true)
	require.NoError(t, err)
	s, err := x509report.Summarize(cert, x509report.Options{At: at, Fingerprint: "sha256"})
	require.NoError(t, err)
	return s
}

func TestSummarizeGoogle(t *testing.T) {
	s := googleSummary(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	digest, err := hex.DecodeString(testcert.GoogleComSHA256)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Version)
	assert.Equal(t, testcert.GoogleComSerial, s.SerialNumber)
	assert.Equal(t, "CN=www.google.com", s.Subject)
	assert.Equal(t, "C=US, O=Google Trust Services, CN=WR2", s.Issuer)
	assert.Equal(t, []string{"www.google.com"}, s.CommonNames)
	assert.Equal(t, "2025-11-24T08:41:05Z", s.NotBefore)
	assert.Equal(t, "2026-02-16T08:41:04Z", s.NotAfter)
	assert.Equal(t, x509report.StatusValid, s.Status)
	assert.Equal(t, "false", s.CA)
	assert.Nil(t, s.PathLength)
	assert.Equal(t, []string{"digitalSignature"}, s.KeyUsages)
	assert.Equal(t, []string{"serverAuth"}, s.ExtKeyUsages)
	assert.Equal(t, []string{"www.google.com"}, s.DNSNames)
	assert.Equal(t, []string{"domain-validated"}, s.Policies)
	assert.Equal(t, []string{"http://o.pki.goog/wr2"}, s.OCSPServers)
	assert.Equal(t, []string{"http://i.pki.goog/wr2.crt"}, s.CAIssuers)
	assert.Equal(t, []string{"http://c.pki.goog/wr2/GSyT1N4PBrg.crl"}, s.CRLDistribution)
	assert.Equal(t, "1fe39cba51b59ee2cd9ae3e699a83db638425a26", s.SubjectKeyID)
	assert.Equal(t, "de1b1eed7915d43e3724c321bbec34396d42b230", s.AuthorityKeyID)
	assert.Equal(t, "sha256", s.FingerprintAlg)
	assert.Equal(t, x509certs.FormatFingerprint(digest), s.Fingerprint)
	assert.Empty(t, s.Problems)

	require.Len(t, s.Extensions, 10)
	assert.Equal(t, x509report.Extension{
		Name:     "keyUsage",
		OID:      oid.KeyUsage.String(),
		Critical: true,
		State:    x509report.ExtensionDecoded,
	}, s.Extensions[0])
	last := s.Extensions[9]
	assert.Equal(t, oid.CTPrecertificateSCTs.String(), last.OID)
	assert.Equal(t, x509report.ExtensionOpaque, last.State)
}

func TestSummarizeStatus(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "Before", at: googleNotBefore.Add(-time.Second), want: x509report.StatusNotYetValid},
		{name: "At Not Before", at: googleNotBefore, want: x509report.StatusValid},
		{name: "At Not After", at: googleNotAfter, want: x509report.StatusValid},
		{name: "Sub-Second After Not After", at: googleNotAfter.Add(500 * time.Millisecond), want: x509report.StatusValid},
		{name: "After", at: googleNotAfter.Add(time.Second), want: x509report.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, googleSummary(t, tt.at).Status)
		})
	}
}

func TestSummarizeDefaultFingerprint(t *testing.T) {
	cert, err := x509certs.Decode(testcert.GoogleComDER(), true)
	require.NoError(t, err)

	s, err := x509report.Summarize(cert, x509report.Options{})
	require.NoError(t, err)
	assert.Equal(t, x509certs.DefaultFingerprintAlgorithm, s.FingerprintAlg)

	_, err = x509report.Summarize(cert, x509report.Options{Fingerprint: "crc32"})
	assert.ErrorIs(t, err, x509certs.ErrUnsupportedHashAlgorithm)
}

func TestSummarizeLenientProblems(t *testing.T) {
	tmpl := testcert.With(
		testcert.Raw(oid.KeyUsage, []byte{0x05, 0x00}),
		testcert.BasicConstraints(true, 2),
		testcert.SAN(testcert.DNS("a.example")),
		testcert.SAN(testcert.Email("ops@a.example")),
	)
	cert, err := x509certs.Decode(testcert.Build(tmpl), false)
	require.NoError(t, err)

	s, err := x509report.Summarize(cert, x509report.Options{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, x509report.StatusValid, s.Status)
	assert.Equal(t, "true", s.CA)
	require.NotNil(t, s.PathLength)
	assert.Equal(t, 2, *s.PathLength)
	assert.Empty(t, s.KeyUsages)
	assert.Equal(t, []string{"a.example"}, s.DNSNames)
	assert.Equal(t, []string{"ops@a.example"}, s.EmailAddresses)

	require.Len(t, s.Problems, 1)
	assert.True(t, strings.HasPrefix(s.Problems[0], "keyUsage: "), s.Problems[0])

	require.Len(t, s.Extensions, 4)
	assert.Equal(t, x509report.ExtensionCorrupt, s.Extensions[0].State)
	assert.Equal(t, "subjectAltName", s.Extensions[2].Name)
	assert.Equal(t, "subjectAltName", s.Extensions[3].Name)
}

func TestSummarizeAll(t *testing.T) {
	leaf := testcert.Build(testcert.Default())
	corrupt := []byte{0x30, 0x03, 0x02, 0x01, 0x01}

	tests := []struct {
		name        string
		text        string
		skipInvalid bool
		want        int
		wantErr     bool
	}{
		{name: "Two Certificates", text: testcert.GoogleCom + testcert.PEM(leaf), want: 2},
		{name: "Stops At Corrupt Block", text: testcert.PEM(leaf, corrupt, leaf), want: 1, wantErr: true},
		{name: "Skips Corrupt Block", text: testcert.PEM(leaf, corrupt, leaf), skipInvalid: true, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := x509certs.CertsFromText([]byte(tt.text), tt.skipInvalid, true)
			got, err := x509report.SummarizeAll(r, x509report.Options{})
			if tt.wantErr {
				assert.ErrorIs(t, err, x509certs.ErrDecode)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, got, tt.want)
			for i, s := range got {
				assert.Equal(t, i+1, s.Index)
			}
		})
	}
}

func TestSummarizeCertificates(t *testing.T) {
	google, err := x509certs.Decode(testcert.GoogleComDER(), true)
	require.NoError(t, err)
	leaf, err := x509certs.Decode(testcert.Build(testcert.Default()), true)
	require.NoError(t, err)

	got, err := x509report.SummarizeCertificates([]*x509certs.Certificate{google, leaf}, x509report.Options{Fingerprint: "md5"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "CN=test.example", got[1].Subject)
	assert.Equal(t, "md5", got[1].FingerprintAlg)

	_, err = x509report.SummarizeCertificates([]*x509certs.Certificate{leaf}, x509report.Options{Fingerprint: "crc32"})
	assert.ErrorIs(t, err, x509certs.ErrUnsupportedHashAlgorithm)
}

func TestRenderers(t *testing.T) {
	s := googleSummary(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s.Index = 1
	summaries := []*x509report.Summary{s}

	t.Run("Text", func(t *testing.T) {
		out, err := x509report.Text(summaries, func(h string) string { return "## " + h })
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "## Certificate #1\n"))
		assert.Contains(t, out, "Subject:")
		assert.Contains(t, out, "CN=www.google.com")
		assert.Contains(t, out, "keyUsage (decoded, critical)")
		assert.Contains(t, out, "Fingerprint (sha256):")
		assert.NotContains(t, out, "Problems:")
	})

	t.Run("Table", func(t *testing.T) {
		out := x509report.Table(summaries)
		assert.Contains(t, strings.ToLower(out), "subject")
		assert.Contains(t, out, "CN=www.google.com")
		assert.Contains(t, out, "|")
		assert.Equal(t, "No certificates to display", x509report.Table(nil))
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := x509report.JSON(summaries)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "CN=www.google.com", decoded[0]["subject"])
		assert.Equal(t, "valid", decoded[0]["status"])
		assert.NotContains(t, decoded[0], "problems")

		empty, err := x509report.JSON(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(empty))
	})
}
