// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/asn1"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strings"
	"sync"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/pem"
)

var (
	// ErrDecode is the umbrella for every failure to build a Certificate.
	ErrDecode = errors.New("x509certs: failed to decode certificate")

	// ErrStructuralDecode indicates that the certificate bytes do not follow the
	// certificate grammar, or break a strict-mode encoding rule.
	ErrStructuralDecode = errors.New("x509certs: malformed certificate structure")

	// ErrDuplicateExtension indicates that an extension identifier appears more
	// than once in a certificate decoded in strict mode.
	ErrDuplicateExtension = errors.New("x509certs: duplicate extension")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrCertificate is the umbrella for accessor failures on a decoded Certificate.
	ErrCertificate = errors.New("x509certs: certificate error")

	// ErrCorruptExtension indicates an extension whose payload is present but
	// could not be decoded for its type.
	ErrCorruptExtension = errors.New("x509certs: corrupt extension")

	// ErrMultipleExtensionValues indicates an ambiguous lookup of an extension
	// that must appear at most once.
	ErrMultipleExtensionValues = errors.New("x509certs: multiple extension values")

	// ErrDuplicatePolicy indicates the same policy identifier listed twice in
	// one certificate policies extension.
	ErrDuplicatePolicy = errors.New("x509certs: policy asserted more than once")

	// ErrCorruptTime indicates an undecodable validity time.
	ErrCorruptTime = errors.New("x509certs: corrupt time")

	// ErrCorruptAttribute indicates an undecodable name attribute.
	ErrCorruptAttribute = errors.New("x509certs: corrupt name attribute")

	// ErrUnsupportedHashAlgorithm indicates a fingerprint algorithm outside
	// the supported set.
	ErrUnsupportedHashAlgorithm = errors.New("x509certs: unsupported hash algorithm")
)

const (
	// CertificateBlockType is the PEM label of a certificate.
	CertificateBlockType = "CERTIFICATE"
	// PKCS7BlockType is the PEM label of a PKCS#7 bundle.
	PKCS7BlockType = "PKCS7"

	// DefaultFingerprintAlgorithm is used when Fingerprint is given no name.
	DefaultFingerprintAlgorithm = "sha1"
)

var hashes = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// FingerprintAlgorithms lists the accepted Fingerprint algorithm names.
var FingerprintAlgorithms = []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512"}

// Certificate is an immutable, decoded [X.509] certificate. It is safe for
// concurrent use by multiple goroutines.
//
// [X.509]: https://grokipedia.com/page/X.509
type Certificate struct {
	cert       *x509der.Certificate
	extensions *ExtensionTable
	strict     bool

	encodeOnce sync.Once
	encoded    []byte
}

// Decode decodes a DER certificate. Strict decoding rejects non-canonical
// encodings, undecodable recognized values and repeated extensions; lenient
// decoding defers such failures to the accessor that touches them.
//
// Every returned error satisfies errors.Is(err, ErrDecode).
func Decode(der []byte, strict bool) (*Certificate, error) {
	der = bytes.Clone(der)

	parsed, err := x509der.Parse(der, strict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrDecode, ErrStructuralDecode, err)
	}

	table, err := BuildExtensionTable(parsed.Extensions, strict)
	if err != nil {
		return nil, err
	}

	return &Certificate{cert: parsed, extensions: table, strict: strict}, nil
}

// FromPEM decodes the first CERTIFICATE block of text.
func FromPEM(text []byte, strict bool) (*Certificate, error) {
	der, _, err := x509pem.FromPEM(text, CertificateBlockType)
	if err != nil {
		return nil, err
	}
	return Decode(der, strict)
}

// FromPEMFile decodes the first CERTIFICATE block of the named file.
func FromPEMFile(path string, strict bool) (*Certificate, error) {
	der, _, err := x509pem.FromPEMFile(path, CertificateBlockType)
	if err != nil {
		return nil, err
	}
	return Decode(der, strict)
}

// FromDERFile decodes the named DER file.
func FromDERFile(path string, strict bool) (*Certificate, error) {
	der, err := gc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(der, strict)
}

// FromPKCS7 decodes every certificate of a DER PKCS#7 bundle, in bundle order.
func FromPKCS7(data []byte, strict bool) ([]*Certificate, error) {
	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrDecode, ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrNoCertificatesInPKCS)
	}

	certs := make([]*Certificate, 0, len(p.Content.SignedData.Certificates))
	for _, c := range p.Content.SignedData.Certificates {
		cert, err := Decode(c.Raw, strict)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// IsPEM reports whether data looks like PEM text.
func IsPEM(data []byte) bool {
	return bytes.Contains(data, []byte("-----BEGIN "))
}

// DecodeAny decodes data given as PEM (CERTIFICATE and PKCS7 blocks), a DER
// certificate, or a DER PKCS#7 bundle.
func DecodeAny(data []byte, strict bool) ([]*Certificate, error) {
	if IsPEM(data) {
		var certs []*Certificate
		s := x509pem.Blocks(data, false, CertificateBlockType, PKCS7BlockType)
		for s.Next() {
			block := s.Block()
			if block.Label == PKCS7BlockType {
				bundle, err := FromPKCS7(block.Bytes, strict)
				if err != nil {
					return nil, err
				}
				certs = append(certs, bundle...)
				continue
			}
			cert, err := Decode(block.Bytes, strict)
			if err != nil {
				return nil, err
			}
			certs = append(certs, cert)
		}
		if err := s.Err(); err != nil {
			return nil, err
		}
		return certs, nil
	}

	cert, err := Decode(data, strict)
	if err == nil {
		return []*Certificate{cert}, nil
	}
	if bundle, perr := FromPKCS7(data, strict); perr == nil {
		return bundle, nil
	}
	return nil, err
}

// Encode returns the DER encoding of the certificate. The encoding is computed
// once; each call returns a fresh copy.
func (c *Certificate) Encode() []byte {
	return bytes.Clone(c.encoding())
}

func (c *Certificate) encoding() []byte {
	c.encodeOnce.Do(func() {
		encoded, err := c.cert.Encode()
		if err != nil {
			// The kept elements were parsed from valid DER and always re-encode.
			encoded = c.cert.Raw
		}
		c.encoded = encoded
	})
	return c.encoded
}

// ToPEM returns the certificate as a CERTIFICATE block.
func (c *Certificate) ToPEM() []byte {
	return x509pem.ToPEM(c.encoding(), CertificateBlockType)
}

// IsIdenticalTo reports whether both certificates have exactly the same encoding.
func (c *Certificate) IsIdenticalTo(other *Certificate) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(c.encoding(), other.encoding())
}

func normalizeAlgorithm(algorithm string) string {
	name := strings.ReplaceAll(strings.ToLower(algorithm), "-", "")
	if name == "" {
		return DefaultFingerprintAlgorithm
	}
	return name
}

// IsFingerprintAlgorithm reports whether Fingerprint accepts algorithm.
func IsFingerprintAlgorithm(algorithm string) bool {
	_, ok := hashes[normalizeAlgorithm(algorithm)]
	return ok
}

// Fingerprint returns the digest of the certificate encoding under the named
// algorithm. Names are case-insensitive and may contain a dash ("SHA-256").
// An empty name selects [DefaultFingerprintAlgorithm].
func (c *Certificate) Fingerprint(algorithm string) ([]byte, error) {
	newHash, ok := hashes[normalizeAlgorithm(algorithm)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHashAlgorithm, algorithm)
	}
	h := newHash()
	h.Write(c.encoding())
	return h.Sum(nil), nil
}

// FormatFingerprint renders a digest as colon-separated upper-case hex pairs.
func FormatFingerprint(digest []byte) string {
	var sb strings.Builder
	for i, b := range digest {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// String returns a multi-line human-readable dump of the certificate.
func (c *Certificate) String() string {
	return c.cert.HumanReadable("Certificate")
}

// Strict reports whether the certificate was decoded in strict mode.
func (c *Certificate) Strict() bool { return c.strict }

// Extensions returns the certificate's extension table.
func (c *Certificate) Extensions() *ExtensionTable { return c.extensions }

// Version returns the certificate version number, 1 to 3.
func (c *Certificate) Version() int { return c.cert.Version + 1 }

// SerialNumber returns a copy of the serial number.
func (c *Certificate) SerialNumber() *big.Int {
	return new(big.Int).Set(c.cert.SerialNumber)
}

// SignatureAlgorithm returns the signature algorithm identifier of the certificate body.
func (c *Certificate) SignatureAlgorithm() asn1.ObjectIdentifier {
	return c.cert.SignatureAlgorithm
}

// PublicKeyAlgorithm returns the algorithm identifier of the subject public key.
func (c *Certificate) PublicKeyAlgorithm() asn1.ObjectIdentifier {
	return c.cert.PublicKeyAlgorithm
}
