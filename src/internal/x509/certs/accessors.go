// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/asn1"
	"fmt"
	"math/big"
	"net"
	"slices"

	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
)

// resolve looks up a single-valued extension and asserts its decoded type.
// ok is false when the extension is absent.
func resolve[T x509der.ExtensionValue](c *Certificate, id asn1.ObjectIdentifier) (v T, ok bool, err error) {
	value, err := c.extensions.ResolveSingle(id)
	if err != nil || value == nil {
		return v, false, err
	}
	v, ok = value.(T)
	if !ok {
		return v, false, corruptExtension(id)
	}
	return v, true, nil
}

// BasicConstraintCA reports the cA flag of the basic constraints extension.
func (c *Certificate) BasicConstraintCA() (Assertion, error) {
	bc, ok, err := resolve[x509der.BasicConstraints](c, oid.BasicConstraints)
	if !ok {
		return NotPresent, err
	}
	return assertion(bc.CA), nil
}

// BasicConstraintPathLength returns the path length constraint. ok is false
// when the extension is absent or carries no constraint.
func (c *Certificate) BasicConstraintPathLength() (n int, ok bool, err error) {
	bc, ok, err := resolve[x509der.BasicConstraints](c, oid.BasicConstraints)
	if !ok || !bc.HasPathLen {
		return 0, false, err
	}
	return bc.PathLenConstraint, true, nil
}

// KeyUsage reports whether bit is set in the key usage extension.
func (c *Certificate) KeyUsage(bit x509der.KeyUsageBit) (Assertion, error) {
	ku, ok, err := resolve[x509der.KeyUsage](c, oid.KeyUsage)
	if !ok {
		return NotPresent, err
	}
	return assertion(ku.Has(bit)), nil
}

// KeyUsages returns the set key usage bits in bit order.
func (c *Certificate) KeyUsages() ([]x509der.KeyUsageBit, error) {
	ku, ok, err := resolve[x509der.KeyUsage](c, oid.KeyUsage)
	if !ok {
		return []x509der.KeyUsageBit{}, err
	}
	return ku.Set(), nil
}

// ExtendedKeyUsage reports whether purpose is listed in the extended key usage extension.
func (c *Certificate) ExtendedKeyUsage(purpose asn1.ObjectIdentifier) (Assertion, error) {
	eku, ok, err := resolve[x509der.ExtKeyUsage](c, oid.ExtKeyUsage)
	if !ok {
		return NotPresent, err
	}
	return assertion(slices.ContainsFunc(eku, purpose.Equal)), nil
}

// ExtendedKeyUsages returns the listed extended key usage purposes.
func (c *Certificate) ExtendedKeyUsages() ([]asn1.ObjectIdentifier, error) {
	eku, ok, err := resolve[x509der.ExtKeyUsage](c, oid.ExtKeyUsage)
	if !ok {
		return []asn1.ObjectIdentifier{}, err
	}
	return slices.Clone([]asn1.ObjectIdentifier(eku)), nil
}

// SubjectKeyIdentifier returns the subject key identifier, or nil when absent.
func (c *Certificate) SubjectKeyIdentifier() ([]byte, error) {
	ski, ok, err := resolve[x509der.SubjectKeyIdentifier](c, oid.SubjectKeyIdentifier)
	if !ok {
		return nil, err
	}
	return bytes.Clone(ski), nil
}

// AuthorityKeyIdentifier returns the whole authority key identifier
// extension, or nil when absent.
func (c *Certificate) AuthorityKeyIdentifier() (*x509der.AuthorityKeyIdentifier, error) {
	aki, ok, err := resolve[x509der.AuthorityKeyIdentifier](c, oid.AuthorityKeyIdentifier)
	if !ok {
		return nil, err
	}
	return &aki, nil
}

// AuthorityKeyID returns the keyIdentifier component of the authority key
// identifier, or nil when the extension or the component is absent.
func (c *Certificate) AuthorityKeyID() ([]byte, error) {
	aki, err := c.AuthorityKeyIdentifier()
	if aki == nil {
		return nil, err
	}
	return bytes.Clone(aki.KeyIdentifier), nil
}

// AuthorityCertIssuer returns the authorityCertIssuer component.
func (c *Certificate) AuthorityCertIssuer() (x509der.GeneralNames, error) {
	aki, err := c.AuthorityKeyIdentifier()
	if aki == nil {
		return nil, err
	}
	return slices.Clone(aki.AuthorityCertIssuer), nil
}

// AuthorityCertSerialNumber returns the authorityCertSerialNumber component.
func (c *Certificate) AuthorityCertSerialNumber() (*big.Int, error) {
	aki, err := c.AuthorityKeyIdentifier()
	if aki == nil || aki.AuthorityCertSerialNumber == nil {
		return nil, err
	}
	return new(big.Int).Set(aki.AuthorityCertSerialNumber), nil
}

// Policies returns the certificate policies in encoding order.
func (c *Certificate) Policies() ([]x509der.PolicyInformation, error) {
	cp, ok, err := resolve[x509der.CertificatePolicies](c, oid.CertificatePolicies)
	if !ok {
		return []x509der.PolicyInformation{}, err
	}
	return slices.Clone([]x509der.PolicyInformation(cp)), nil
}

// Policy returns the policy whose identifier is id, or nil when it is not
// listed. The same identifier listed twice is an error.
func (c *Certificate) Policy(id asn1.ObjectIdentifier) (*x509der.PolicyInformation, error) {
	policies, err := c.Policies()
	if err != nil {
		return nil, err
	}

	var found *x509der.PolicyInformation
	for i := range policies {
		if !policies[i].ID.Equal(id) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %w: %s", ErrCertificate, ErrDuplicatePolicy, oid.Name(id))
		}
		found = &policies[i]
	}
	return found, nil
}

// HasPolicy reports whether the policy id is listed.
func (c *Certificate) HasPolicy(id asn1.ObjectIdentifier) (bool, error) {
	p, err := c.Policy(id)
	return p != nil, err
}

// CRLDistributionPoints returns every distribution point in encoding order.
func (c *Certificate) CRLDistributionPoints() ([]x509der.DistributionPoint, error) {
	dps, ok, err := resolve[x509der.CRLDistributionPoints](c, oid.CRLDistributionPoints)
	if !ok {
		return []x509der.DistributionPoint{}, err
	}
	return slices.Clone([]x509der.DistributionPoint(dps)), nil
}

// CRLDistributionPointURIs returns the URIs named in the fullName of every
// distribution point.
func (c *Certificate) CRLDistributionPointURIs() ([]string, error) {
	dps, err := c.CRLDistributionPoints()
	if err != nil {
		return nil, err
	}
	uris := []string{}
	for _, dp := range dps {
		for _, gn := range dp.FullName {
			if gn.Tag == x509der.URI {
				uris = append(uris, gn.Text)
			}
		}
	}
	return uris, nil
}

// CAIssuers returns the locations of the caIssuers access descriptions.
func (c *Certificate) CAIssuers() ([]x509der.GeneralName, error) {
	return c.accessLocations(oid.AccessMethodCAIssuers)
}

// OCSPResponders returns the locations of the ocsp access descriptions.
func (c *Certificate) OCSPResponders() ([]x509der.GeneralName, error) {
	return c.accessLocations(oid.AccessMethodOCSP)
}

func (c *Certificate) accessLocations(method asn1.ObjectIdentifier) ([]x509der.GeneralName, error) {
	aia, ok, err := resolve[x509der.AuthorityInfoAccess](c, oid.AuthorityInfoAccess)
	if !ok {
		return []x509der.GeneralName{}, err
	}
	locations := []x509der.GeneralName{}
	for _, ad := range aia {
		if ad.Method.Equal(method) {
			locations = append(locations, ad.Location)
		}
	}
	return locations, nil
}

// SubjectAlternativeNames returns the names of every subject alternative
// name extension, flattened in encoding order. Repeated extensions and
// repeated names are kept.
func (c *Certificate) SubjectAlternativeNames() ([]x509der.GeneralName, error) {
	values, err := c.extensions.ResolveAll(oid.SubjectAltName)
	if err != nil {
		return nil, err
	}
	names := []x509der.GeneralName{}
	for _, v := range values {
		gns, ok := v.(x509der.GeneralNames)
		if !ok {
			return nil, corruptExtension(oid.SubjectAltName)
		}
		names = append(names, gns...)
	}
	return names, nil
}

func (c *Certificate) sanTexts(tag x509der.GeneralNameTag) ([]string, error) {
	names, err := c.SubjectAlternativeNames()
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, gn := range names {
		if gn.Tag == tag {
			out = append(out, gn.Text)
		}
	}
	return out, nil
}

// SubjectDNSNames returns the dNSName entries of the subject alternative names.
func (c *Certificate) SubjectDNSNames() ([]string, error) { return c.sanTexts(x509der.DNSName) }

// SubjectEmailAddresses returns the rfc822Name entries of the subject alternative names.
func (c *Certificate) SubjectEmailAddresses() ([]string, error) {
	return c.sanTexts(x509der.RFC822Name)
}

// SubjectURIs returns the uniformResourceIdentifier entries of the subject alternative names.
func (c *Certificate) SubjectURIs() ([]string, error) { return c.sanTexts(x509der.URI) }

// SubjectIPAddresses returns the iPAddress entries of the subject alternative names.
func (c *Certificate) SubjectIPAddresses() ([]net.IP, error) {
	names, err := c.SubjectAlternativeNames()
	if err != nil {
		return nil, err
	}
	ips := []net.IP{}
	for _, gn := range names {
		if gn.Tag == x509der.IPAddress {
			ips = append(ips, slices.Clone(gn.IP))
		}
	}
	return ips, nil
}

// SubjectCommonNames returns the commonName values of the subject.
func (c *Certificate) SubjectCommonNames() ([]string, error) {
	cns, err := c.cert.Subject.Attributes(oid.CommonName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrCertificate, ErrCorruptAttribute, err)
	}
	if cns == nil {
		cns = []string{}
	}
	return cns, nil
}

// PrintSubjectName renders the subject name, e.g. "CN=www.google.com".
func (c *Certificate) PrintSubjectName() (string, error) { return printName(c.cert.Subject) }

// PrintIssuerName renders the issuer name.
func (c *Certificate) PrintIssuerName() (string, error) { return printName(c.cert.Issuer) }

func printName(n x509der.Name) (string, error) {
	for _, rdn := range n.RDNs {
		for _, atv := range rdn {
			if _, err := atv.Value(); err != nil && atv.IsString() {
				return "", fmt.Errorf("%w: %w: %w", ErrCertificate, ErrCorruptAttribute, err)
			}
		}
	}
	return n.String(), nil
}
