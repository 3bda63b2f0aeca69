// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/testcert"
)

func TestGoogleAccessors(t *testing.T) {
	cert := googleCert(t, true)

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Basic Constraints",
			testFunc: func(t *testing.T) {
				ca, err := cert.BasicConstraintCA()
				require.NoError(t, err)
				assert.Equal(t, x509certs.NotAsserted, ca)

				_, ok, err := cert.BasicConstraintPathLength()
				require.NoError(t, err)
				assert.False(t, ok)
			},
		},
		{
			name: "Key Usage",
			testFunc: func(t *testing.T) {
				usages, err := cert.KeyUsages()
				require.NoError(t, err)
				assert.Equal(t, []x509der.KeyUsageBit{x509der.DigitalSignature}, usages)
			},
		},
		{
			name: "Extended Key Usage",
			testFunc: func(t *testing.T) {
				server, err := cert.ExtendedKeyUsage(oid.ExtKeyUsageServerAuth)
				require.NoError(t, err)
				assert.Equal(t, x509certs.Asserted, server)

				client, err := cert.ExtendedKeyUsage(oid.ExtKeyUsageClientAuth)
				require.NoError(t, err)
				assert.Equal(t, x509certs.NotAsserted, client)

				all, err := cert.ExtendedKeyUsages()
				require.NoError(t, err)
				assert.Equal(t, []asn1.ObjectIdentifier{oid.ExtKeyUsageServerAuth}, all)
			},
		},
		{
			name: "Key Identifiers",
			testFunc: func(t *testing.T) {
				ski, err := cert.SubjectKeyIdentifier()
				require.NoError(t, err)
				assert.Equal(t, "1fe39cba51b59ee2cd9ae3e699a83db638425a26", hex.EncodeToString(ski))

				aki, err := cert.AuthorityKeyID()
				require.NoError(t, err)
				assert.Equal(t, "de1b1eed7915d43e3724c321bbec34396d42b230", hex.EncodeToString(aki))

				issuer, err := cert.AuthorityCertIssuer()
				require.NoError(t, err)
				assert.Empty(t, issuer)

				serial, err := cert.AuthorityCertSerialNumber()
				require.NoError(t, err)
				assert.Nil(t, serial)
			},
		},
		{
			name: "Policies",
			testFunc: func(t *testing.T) {
				policies, err := cert.Policies()
				require.NoError(t, err)
				require.Len(t, policies, 1)
				assert.True(t, policies[0].ID.Equal(oid.PolicyDomainValidated))

				p, err := cert.Policy(oid.PolicyDomainValidated)
				require.NoError(t, err)
				require.NotNil(t, p)

				has, err := cert.HasPolicy(oid.PolicyExtendedValidation)
				require.NoError(t, err)
				assert.False(t, has)
			},
		},
		{
			name: "Access And Distribution",
			testFunc: func(t *testing.T) {
				uris, err := cert.CRLDistributionPointURIs()
				require.NoError(t, err)
				assert.Equal(t, []string{"http://c.pki.goog/wr2/GSyT1N4PBrg.crl"}, uris)

				issuers, err := cert.CAIssuers()
				require.NoError(t, err)
				require.Len(t, issuers, 1)
				assert.Equal(t, "http://i.pki.goog/wr2.crt", issuers[0].Text)

				ocsp, err := cert.OCSPResponders()
				require.NoError(t, err)
				require.Len(t, ocsp, 1)
				assert.Equal(t, "http://o.pki.goog/wr2", ocsp[0].Text)
			},
		},
		{
			name: "Names",
			testFunc: func(t *testing.T) {
				dns, err := cert.SubjectDNSNames()
				require.NoError(t, err)
				assert.Equal(t, []string{"www.google.com"}, dns)

				cns, err := cert.SubjectCommonNames()
				require.NoError(t, err)
				assert.Equal(t, []string{"www.google.com"}, cns)

				subject, err := cert.PrintSubjectName()
				require.NoError(t, err)
				assert.Equal(t, "CN=www.google.com", subject)

				issuer, err := cert.PrintIssuerName()
				require.NoError(t, err)
				assert.Equal(t, "C=US, O=Google Trust Services, CN=WR2", issuer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestKeyUsageThreeState(t *testing.T) {
	absent := build(t, true, testcert.Default())

	for _, bit := range x509der.KeyUsageBits {
		t.Run(bit.String(), func(t *testing.T) {
			var others []int
			for _, b := range x509der.KeyUsageBits {
				if b != bit {
					others = append(others, int(b))
				}
			}
			set := build(t, true, testcert.With(testcert.KeyUsage(int(bit))))
			unset := build(t, true, testcert.With(testcert.KeyUsage(others...)))

			got, err := absent.KeyUsage(bit)
			require.NoError(t, err)
			assert.Equal(t, x509certs.NotPresent, got)

			got, err = unset.KeyUsage(bit)
			require.NoError(t, err)
			assert.Equal(t, x509certs.NotAsserted, got)

			got, err = set.KeyUsage(bit)
			require.NoError(t, err)
			assert.Equal(t, x509certs.Asserted, got)

			usages, err := set.KeyUsages()
			require.NoError(t, err)
			assert.Equal(t, []x509der.KeyUsageBit{bit}, usages)
		})
	}

	usages, err := absent.KeyUsages()
	require.NoError(t, err)
	assert.NotNil(t, usages)
	assert.Empty(t, usages)
}

func TestAbsentExtensions(t *testing.T) {
	cert := build(t, true, testcert.Default())

	ca, err := cert.BasicConstraintCA()
	require.NoError(t, err)
	assert.Equal(t, x509certs.NotPresent, ca)

	eku, err := cert.ExtendedKeyUsage(oid.ExtKeyUsageServerAuth)
	require.NoError(t, err)
	assert.Equal(t, x509certs.NotPresent, eku)

	ekus, err := cert.ExtendedKeyUsages()
	require.NoError(t, err)
	assert.Equal(t, []asn1.ObjectIdentifier{}, ekus)

	ski, err := cert.SubjectKeyIdentifier()
	require.NoError(t, err)
	assert.Nil(t, ski)

	aki, err := cert.AuthorityKeyID()
	require.NoError(t, err)
	assert.Nil(t, aki)

	policies, err := cert.Policies()
	require.NoError(t, err)
	assert.Equal(t, []x509der.PolicyInformation{}, policies)

	p, err := cert.Policy(oid.AnyPolicy)
	require.NoError(t, err)
	assert.Nil(t, p)

	dps, err := cert.CRLDistributionPoints()
	require.NoError(t, err)
	assert.Equal(t, []x509der.DistributionPoint{}, dps)

	issuers, err := cert.CAIssuers()
	require.NoError(t, err)
	assert.Equal(t, []x509der.GeneralName{}, issuers)

	sans, err := cert.SubjectAlternativeNames()
	require.NoError(t, err)
	assert.Equal(t, []x509der.GeneralName{}, sans)
}

func TestBasicConstraintPathLength(t *testing.T) {
	cert := build(t, true, testcert.With(testcert.BasicConstraints(true, 2)))

	ca, err := cert.BasicConstraintCA()
	require.NoError(t, err)
	assert.Equal(t, x509certs.Asserted, ca)

	n, ok, err := cert.BasicConstraintPathLength()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestAuthorityCertSerialNumber(t *testing.T) {
	cert := build(t, true, testcert.With(testcert.AuthorityKeyIdentifier([]byte{1, 2, 3}, 77)))

	id, err := cert.AuthorityKeyID()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, id)

	serial, err := cert.AuthorityCertSerialNumber()
	require.NoError(t, err)
	require.NotNil(t, serial)
	assert.Equal(t, int64(77), serial.Int64())
}

func TestSubjectAlternativeNames(t *testing.T) {
	tests := []struct {
		name string
		exts []testcert.Extension
		want []string
	}{
		{
			name: "Two Extensions In Order",
			exts: []testcert.Extension{
				testcert.SAN(testcert.DNS("a.com")),
				testcert.SAN(testcert.DNS("b.com")),
			},
			want: []string{"a.com", "b.com"},
		},
		{
			name: "Duplicates Kept",
			exts: []testcert.Extension{
				testcert.SAN(testcert.DNS("a.com")),
				testcert.SAN(testcert.DNS("a.com")),
			},
			want: []string{"a.com", "a.com"},
		},
		{
			name: "Mixed Tags Filtered",
			exts: []testcert.Extension{
				testcert.SAN(testcert.Email("ops@a.com"), testcert.DNS("a.com"), testcert.IP(net.IPv4(192, 0, 2, 1))),
			},
			want: []string{"a.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := build(t, false, testcert.With(tt.exts...))
			got, err := cert.SubjectDNSNames()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Other Tags", func(t *testing.T) {
		cert := build(t, true, testcert.With(testcert.SAN(
			testcert.Email("ops@a.com"),
			testcert.URI("https://a.com/"),
			testcert.IP(net.IPv4(192, 0, 2, 1)),
			testcert.IP(net.ParseIP("2001:db8::1")),
		)))

		emails, err := cert.SubjectEmailAddresses()
		require.NoError(t, err)
		assert.Equal(t, []string{"ops@a.com"}, emails)

		uris, err := cert.SubjectURIs()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.com/"}, uris)

		ips, err := cert.SubjectIPAddresses()
		require.NoError(t, err)
		require.Len(t, ips, 2)
		assert.Equal(t, "192.0.2.1", ips[0].String())
		assert.Equal(t, "2001:db8::1", ips[1].String())

		all, err := cert.SubjectAlternativeNames()
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("Corrupt Extension", func(t *testing.T) {
		cert := build(t, false, testcert.With(
			testcert.SAN(testcert.DNS("a.com")),
			testcert.Raw(oid.SubjectAltName, []byte{0x30, 0x00}),
		))
		_, err := cert.SubjectDNSNames()
		assert.ErrorIs(t, err, x509certs.ErrCorruptExtension)
	})
}

func TestPolicy(t *testing.T) {
	cert := build(t, true, testcert.With(testcert.Policies(
		oid.PolicyDomainValidated,
		oid.AnyPolicy,
		oid.PolicyDomainValidated,
	)))

	_, err := cert.Policy(oid.PolicyDomainValidated)
	assert.ErrorIs(t, err, x509certs.ErrCertificate)
	assert.ErrorIs(t, err, x509certs.ErrDuplicatePolicy)

	_, err = cert.HasPolicy(oid.PolicyDomainValidated)
	assert.ErrorIs(t, err, x509certs.ErrDuplicatePolicy)

	p, err := cert.Policy(oid.AnyPolicy)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.ID.Equal(oid.AnyPolicy))

	policies, err := cert.Policies()
	require.NoError(t, err)
	assert.Len(t, policies, 3)
}

func TestAccessLocations(t *testing.T) {
	cert := build(t, true, testcert.With(
		testcert.AIA(
			testcert.AccessDescription{Method: oid.AccessMethodOCSP, Location: testcert.URI("http://ocsp.example")},
			testcert.AccessDescription{Method: oid.AccessMethodCAIssuers, Location: testcert.URI("http://ca.example/1.crt")},
			testcert.AccessDescription{Method: oid.AccessMethodCAIssuers, Location: testcert.URI("http://ca.example/2.crt")},
		),
		testcert.CRLDistributionPoints(testcert.URI("http://crl.example/a.crl"), testcert.DNS("crl.example")),
	))

	issuers, err := cert.CAIssuers()
	require.NoError(t, err)
	require.Len(t, issuers, 2)
	assert.Equal(t, "http://ca.example/1.crt", issuers[0].Text)
	assert.Equal(t, "http://ca.example/2.crt", issuers[1].Text)

	ocsp, err := cert.OCSPResponders()
	require.NoError(t, err)
	require.Len(t, ocsp, 1)
	assert.Equal(t, x509der.URI, ocsp[0].Tag)

	dps, err := cert.CRLDistributionPoints()
	require.NoError(t, err)
	assert.Len(t, dps, 2)

	uris, err := cert.CRLDistributionPointURIs()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://crl.example/a.crl"}, uris)
}

func TestLenientAccessorErrors(t *testing.T) {
	tests := []struct {
		name    string
		exts    []testcert.Extension
		call    func(c *x509certs.Certificate) error
		wantErr error
	}{
		{
			name: "Repeated Key Usage",
			exts: []testcert.Extension{testcert.KeyUsage(0), testcert.KeyUsage(5)},
			call: func(c *x509certs.Certificate) error {
				_, err := c.KeyUsage(x509der.DigitalSignature)
				return err
			},
			wantErr: x509certs.ErrMultipleExtensionValues,
		},
		{
			name: "Repeated Basic Constraints",
			exts: []testcert.Extension{testcert.BasicConstraints(true, -1), testcert.BasicConstraints(false, -1)},
			call: func(c *x509certs.Certificate) error {
				_, err := c.BasicConstraintCA()
				return err
			},
			wantErr: x509certs.ErrMultipleExtensionValues,
		},
		{
			name: "Repeated Policies",
			exts: []testcert.Extension{testcert.Policies(oid.AnyPolicy), testcert.Policies(oid.AnyPolicy)},
			call: func(c *x509certs.Certificate) error {
				_, err := c.Policies()
				return err
			},
			wantErr: x509certs.ErrMultipleExtensionValues,
		},
		{
			name: "Corrupt Key Usage",
			exts: []testcert.Extension{testcert.Raw(oid.KeyUsage, []byte{0x05, 0x00})},
			call: func(c *x509certs.Certificate) error {
				_, err := c.KeyUsages()
				return err
			},
			wantErr: x509certs.ErrCorruptExtension,
		},
		{
			name: "Corrupt Extended Key Usage",
			exts: []testcert.Extension{testcert.ExtKeyUsage()},
			call: func(c *x509certs.Certificate) error {
				_, err := c.ExtendedKeyUsage(oid.ExtKeyUsageAny)
				return err
			},
			wantErr: x509certs.ErrCorruptExtension,
		},
		{
			name: "Corrupt Authority Info Access",
			exts: []testcert.Extension{testcert.Raw(oid.AuthorityInfoAccess, []byte{0x04, 0x00})},
			call: func(c *x509certs.Certificate) error {
				_, err := c.OCSPResponders()
				return err
			},
			wantErr: x509certs.ErrCorruptExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			der := testcert.Build(testcert.With(tt.exts...))

			_, err := x509certs.Decode(der, true)
			require.Error(t, err, "strict decoding must reject the certificate up front")

			cert, err := x509certs.Decode(der, false)
			require.NoError(t, err)

			err = tt.call(cert)
			assert.ErrorIs(t, err, x509certs.ErrCertificate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCorruptNameAttribute(t *testing.T) {
	tmpl := testcert.Default()
	tmpl.Subject = []testcert.Attribute{
		{Type: oid.CommonName, Tag: cryptobyte_asn1.PrintableString, Value: []byte("bad@name")},
	}
	der := testcert.Build(tmpl)

	_, err := x509certs.Decode(der, true)
	require.Error(t, err)

	cert, err := x509certs.Decode(der, false)
	require.NoError(t, err)

	_, err = cert.SubjectCommonNames()
	assert.ErrorIs(t, err, x509certs.ErrCertificate)
	assert.ErrorIs(t, err, x509certs.ErrCorruptAttribute)

	_, err = cert.PrintSubjectName()
	assert.ErrorIs(t, err, x509certs.ErrCorruptAttribute)

	issuer, err := cert.PrintIssuerName()
	require.NoError(t, err)
	assert.Equal(t, "O=Test Org, CN=Test CA", issuer)
}

func ExampleCertificate_KeyUsage() {
	cert, err := x509certs.FromPEM([]byte(testcert.GoogleCom), true)
	if err != nil {
		panic(err)
	}
	for _, bit := range []x509der.KeyUsageBit{x509der.DigitalSignature, x509der.KeyCertSign} {
		a, _ := cert.KeyUsage(bit)
		fmt.Printf("%s: %s\n", bit, a)
	}
	// Output:
	// digitalSignature: true
	// keyCertSign: false
}
