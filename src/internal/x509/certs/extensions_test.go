// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
)

var (
	sanA = x509der.GeneralNames{{Tag: x509der.DNSName, Text: "a.com"}}
	sanB = x509der.GeneralNames{{Tag: x509der.DNSName, Text: "b.com"}}
	ku   = x509der.KeyUsage{Bits: asn1.BitString{Bytes: []byte{0x80}, BitLength: 1}}
)

func TestBuildExtensionTable(t *testing.T) {
	exts := []x509der.Extension{
		{ID: oid.SubjectAltName, Decoded: sanA},
		{ID: oid.KeyUsage, Critical: true, Decoded: ku},
		{ID: oid.SubjectAltName, Decoded: sanB},
	}

	_, err := x509certs.BuildExtensionTable(exts, true)
	assert.ErrorIs(t, err, x509certs.ErrDecode)
	assert.ErrorIs(t, err, x509certs.ErrDuplicateExtension)

	table, err := x509certs.BuildExtensionTable(exts, false)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []asn1.ObjectIdentifier{oid.SubjectAltName, oid.KeyUsage}, table.IDs())
	assert.Len(t, table.Lookup(oid.SubjectAltName), 2)
	assert.Empty(t, table.Lookup(oid.BasicConstraints))
	assert.True(t, table.IsCritical(oid.KeyUsage))
	assert.False(t, table.IsCritical(oid.SubjectAltName))
	assert.False(t, table.IsCritical(oid.BasicConstraints))

	empty, err := x509certs.BuildExtensionTable(nil, true)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.IDs())
}

func TestResolveSingle(t *testing.T) {
	table, err := x509certs.BuildExtensionTable([]x509der.Extension{
		{ID: oid.SubjectAltName, Decoded: sanA},
		{ID: oid.KeyUsage, Decoded: ku},
		{ID: oid.SubjectAltName, Decoded: sanB},
		{ID: oid.BasicConstraints, Value: []byte{0x05, 0x00}},
	}, false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      asn1.ObjectIdentifier
		want    x509der.ExtensionValue
		wantErr error
	}{
		{name: "Absent", id: oid.CertificatePolicies},
		{name: "Single", id: oid.KeyUsage, want: ku},
		{name: "Repeated", id: oid.SubjectAltName, wantErr: x509certs.ErrMultipleExtensionValues},
		{name: "Undecoded", id: oid.BasicConstraints, wantErr: x509certs.ErrCorruptExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ResolveSingle(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, x509certs.ErrCertificate)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAll(t *testing.T) {
	table, err := x509certs.BuildExtensionTable([]x509der.Extension{
		{ID: oid.SubjectAltName, Decoded: sanA},
		{ID: oid.SubjectAltName, Decoded: sanB},
		{ID: oid.IssuerAltName, Decoded: sanA},
		{ID: oid.IssuerAltName, Value: []byte{0x01}},
	}, false)
	require.NoError(t, err)

	got, err := table.ResolveAll(oid.SubjectAltName)
	require.NoError(t, err)
	assert.Equal(t, []x509der.ExtensionValue{sanA, sanB}, got)

	got, err = table.ResolveAll(oid.KeyUsage)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = table.ResolveAll(oid.IssuerAltName)
	assert.ErrorIs(t, err, x509certs.ErrCorruptExtension)
}

func TestAssertion(t *testing.T) {
	tests := []struct {
		a       x509certs.Assertion
		str     string
		present bool
		set     bool
	}{
		{a: x509certs.NotPresent, str: "not present"},
		{a: x509certs.NotAsserted, str: "false", present: true},
		{a: x509certs.Asserted, str: "true", present: true, set: true},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.a.String())
			assert.Equal(t, tt.present, tt.a.IsPresent())
			assert.Equal(t, tt.set, tt.a.IsAsserted())
		})
	}
}
