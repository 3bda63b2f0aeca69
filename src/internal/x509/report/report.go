// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509report

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
)

// Validity statuses.
const (
	StatusValid       = "valid"
	StatusExpired     = "expired"
	StatusNotYetValid = "not yet valid"
	StatusUnknown     = "unknown"
)

// Extension states.
const (
	ExtensionDecoded = "decoded"
	ExtensionOpaque  = "opaque"
	ExtensionCorrupt = "corrupt"
)

// Options controls Summarize.
type Options struct {
	// At is the instant the validity status is computed for. The zero value
	// means now.
	At time.Time
	// Fingerprint names the digest algorithm; empty selects the package default.
	Fingerprint string
}

// Extension describes one entry of the extension sequence.
type Extension struct {
	Name     string `json:"name"`
	OID      string `json:"oid"`
	Critical bool   `json:"critical"`
	State    string `json:"state"`
}

// Summary is a flat, serializable view of a certificate. Accessor failures
// do not abort summarizing; each one is recorded in Problems and the field
// it feeds is left empty.
type Summary struct {
	Index              int         `json:"index"`
	Version            int         `json:"version"`
	SerialNumber       string      `json:"serialNumber"`
	Subject            string      `json:"subject"`
	Issuer             string      `json:"issuer"`
	CommonNames        []string    `json:"commonNames,omitempty"`
	SignatureAlgorithm string      `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string      `json:"publicKeyAlgorithm"`
	NotBefore          string      `json:"notBefore,omitempty"`
	NotAfter           string      `json:"notAfter,omitempty"`
	Status             string      `json:"status"`
	CA                 string      `json:"ca"`
	PathLength         *int        `json:"pathLength,omitempty"`
	KeyUsages          []string    `json:"keyUsages,omitempty"`
	ExtKeyUsages       []string    `json:"extKeyUsages,omitempty"`
	DNSNames           []string    `json:"dnsNames,omitempty"`
	EmailAddresses     []string    `json:"emailAddresses,omitempty"`
	IPAddresses        []string    `json:"ipAddresses,omitempty"`
	URIs               []string    `json:"uris,omitempty"`
	OtherNames         []string    `json:"otherNames,omitempty"`
	Policies           []string    `json:"policies,omitempty"`
	OCSPServers        []string    `json:"ocspServers,omitempty"`
	CAIssuers          []string    `json:"caIssuers,omitempty"`
	CRLDistribution    []string    `json:"crlDistributionPoints,omitempty"`
	SubjectKeyID       string      `json:"subjectKeyId,omitempty"`
	AuthorityKeyID     string      `json:"authorityKeyId,omitempty"`
	Extensions         []Extension `json:"extensions"`
	FingerprintAlg     string      `json:"fingerprintAlgorithm"`
	Fingerprint        string      `json:"fingerprint"`
	Problems           []string    `json:"problems,omitempty"`
}

func (s *Summary) note(field string, err error) {
	s.Problems = append(s.Problems, fmt.Sprintf("%s: %v", field, err))
}

// Summarize collects the derived values of cert. The index is set by the
// caller when the certificate is part of a sequence.
//
// Returns an error only when opts names an unsupported fingerprint algorithm.
func Summarize(cert *x509certs.Certificate, opts Options) (*Summary, error) {
	digest, err := cert.Fingerprint(opts.Fingerprint)
	if err != nil {
		return nil, err
	}
	alg := opts.Fingerprint
	if alg == "" {
		alg = x509certs.DefaultFingerprintAlgorithm
	}

	s := &Summary{
		Version:            cert.Version(),
		SerialNumber:       cert.SerialNumber().Text(16),
		SignatureAlgorithm: oid.Name(cert.SignatureAlgorithm()),
		PublicKeyAlgorithm: oid.Name(cert.PublicKeyAlgorithm()),
		Status:             StatusUnknown,
		FingerprintAlg:     alg,
		Fingerprint:        x509certs.FormatFingerprint(digest),
		Extensions:         []Extension{},
	}

	if s.Subject, err = cert.PrintSubjectName(); err != nil {
		s.note("subject", err)
	}
	if s.Issuer, err = cert.PrintIssuerName(); err != nil {
		s.note("issuer", err)
	}
	if s.CommonNames, err = cert.SubjectCommonNames(); err != nil {
		s.note("commonName", err)
	}

	summarizeValidity(s, cert, opts.At)
	summarizeConstraints(s, cert)
	summarizeNames(s, cert)
	summarizeLocations(s, cert)
	summarizeExtensions(s, cert)

	return s, nil
}

func summarizeValidity(s *Summary, cert *x509certs.Certificate, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC().Truncate(time.Second)

	nb, nbErr := cert.NotBefore()
	if nbErr != nil {
		s.note("notBefore", nbErr)
	} else {
		s.NotBefore = nb.Format(time.RFC3339)
	}
	na, naErr := cert.NotAfter()
	if naErr != nil {
		s.note("notAfter", naErr)
	} else {
		s.NotAfter = na.Format(time.RFC3339)
	}
	if nbErr != nil || naErr != nil {
		return
	}

	switch {
	case at.Before(nb):
		s.Status = StatusNotYetValid
	case at.After(na):
		s.Status = StatusExpired
	default:
		s.Status = StatusValid
	}
}

func summarizeConstraints(s *Summary, cert *x509certs.Certificate) {
	ca, err := cert.BasicConstraintCA()
	if err != nil {
		s.note("basicConstraints", err)
	}
	s.CA = ca.String()

	if n, ok, err := cert.BasicConstraintPathLength(); err == nil && ok {
		s.PathLength = &n
	}

	if bits, err := cert.KeyUsages(); err != nil {
		s.note("keyUsage", err)
	} else {
		for _, b := range bits {
			s.KeyUsages = append(s.KeyUsages, b.String())
		}
	}

	if ekus, err := cert.ExtendedKeyUsages(); err != nil {
		s.note("extKeyUsage", err)
	} else {
		for _, id := range ekus {
			s.ExtKeyUsages = append(s.ExtKeyUsages, oid.Name(id))
		}
	}

	if policies, err := cert.Policies(); err != nil {
		s.note("certificatePolicies", err)
	} else {
		for _, p := range policies {
			s.Policies = append(s.Policies, p.String())
		}
	}

	if ski, err := cert.SubjectKeyIdentifier(); err != nil {
		s.note("subjectKeyIdentifier", err)
	} else {
		s.SubjectKeyID = hex.EncodeToString(ski)
	}

	if aki, err := cert.AuthorityKeyID(); err != nil {
		s.note("authorityKeyIdentifier", err)
	} else {
		s.AuthorityKeyID = hex.EncodeToString(aki)
	}
}

func summarizeNames(s *Summary, cert *x509certs.Certificate) {
	names, err := cert.SubjectAlternativeNames()
	if err != nil {
		s.note("subjectAltName", err)
		return
	}
	for _, gn := range names {
		switch gn.Tag {
		case x509der.DNSName:
			s.DNSNames = append(s.DNSNames, gn.Text)
		case x509der.RFC822Name:
			s.EmailAddresses = append(s.EmailAddresses, gn.Text)
		case x509der.IPAddress:
			s.IPAddresses = append(s.IPAddresses, gn.IP.String())
		case x509der.URI:
			s.URIs = append(s.URIs, gn.Text)
		default:
			s.OtherNames = append(s.OtherNames, gn.String())
		}
	}
}

func locationText(gn x509der.GeneralName) string {
	if gn.Tag == x509der.URI {
		return gn.Text
	}
	return gn.String()
}

func summarizeLocations(s *Summary, cert *x509certs.Certificate) {
	if ocsp, err := cert.OCSPResponders(); err != nil {
		s.note("authorityInfoAccess", err)
	} else {
		for _, gn := range ocsp {
			s.OCSPServers = append(s.OCSPServers, locationText(gn))
		}
		// Same extension; a failure was already noted above.
		issuers, _ := cert.CAIssuers()
		for _, gn := range issuers {
			s.CAIssuers = append(s.CAIssuers, locationText(gn))
		}
	}

	dps, err := cert.CRLDistributionPoints()
	if err != nil {
		s.note("crlDistributionPoints", err)
		return
	}
	for _, dp := range dps {
		for _, gn := range dp.FullName {
			s.CRLDistribution = append(s.CRLDistribution, locationText(gn))
		}
	}
}

func summarizeExtensions(s *Summary, cert *x509certs.Certificate) {
	table := cert.Extensions()
	for _, id := range table.IDs() {
		for _, ext := range table.Lookup(id) {
			s.Extensions = append(s.Extensions, Extension{
				Name:     oid.Name(id),
				OID:      id.String(),
				Critical: ext.Critical,
				State:    extensionState(ext),
			})
		}
	}
}

func extensionState(ext x509der.Extension) string {
	if ext.Decoded != nil {
		return ExtensionDecoded
	}
	if _, err := x509der.DecodeExtensionValue(ext.ID, ext.Value); errors.Is(err, x509der.ErrUnrecognizedExtension) {
		return ExtensionOpaque
	}
	return ExtensionCorrupt
}

// SummarizeAll summarizes every certificate of r, numbering them from 1.
// Summaries gathered before a reader error are returned with it.
func SummarizeAll(r *x509certs.Reader, opts Options) ([]*Summary, error) {
	var out []*Summary
	for cert, err := range r.All() {
		if err != nil {
			return out, err
		}
		s, err := Summarize(cert, opts)
		if err != nil {
			return out, err
		}
		s.Index = len(out) + 1
		out = append(out, s)
	}
	return out, nil
}

// SummarizeCertificates summarizes certs in order, numbering them from 1.
func SummarizeCertificates(certs []*x509certs.Certificate, opts Options) ([]*Summary, error) {
	out := make([]*Summary, 0, len(certs))
	for i, cert := range certs {
		s, err := Summarize(cert, opts)
		if err != nil {
			return nil, err
		}
		s.Index = i + 1
		out = append(out, s)
	}
	return out, nil
}
