// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrMalformed is returned when the certificate structure does not follow
	// the ASN.1 grammar, or violates a strict-mode rule.
	ErrMalformed = errors.New("x509der: malformed certificate")
	// ErrTrailingData is returned when bytes follow the certificate SEQUENCE.
	ErrTrailingData = errors.New("x509der: trailing data after certificate")
	// ErrUnrecognizedExtension is returned by DecodeExtensionValue for an
	// extension type it has no grammar for.
	ErrUnrecognizedExtension = errors.New("x509der: unrecognized extension")
	// ErrMalformedExtension is returned when a recognized extension payload
	// does not match its grammar.
	ErrMalformedExtension = errors.New("x509der: malformed extension payload")
	// ErrMalformedTime is returned when a validity time does not decode.
	ErrMalformedTime = errors.New("x509der: malformed time")
	// ErrMalformedAttribute is returned when a name attribute value does not decode.
	ErrMalformedAttribute = errors.New("x509der: malformed name attribute")
)

var (
	tagVersion         = asn1.Tag(0).Constructed().ContextSpecific()
	tagIssuerUniqueID  = asn1.Tag(1).ContextSpecific()
	tagSubjectUniqueID = asn1.Tag(2).ContextSpecific()
	tagExtensions      = asn1.Tag(3).Constructed().ContextSpecific()
)

// Extension is a single entry of the certificate's extension sequence.
type Extension struct {
	ID       encoding_asn1.ObjectIdentifier
	Critical bool
	// Value is the content of the extnValue OCTET STRING.
	Value []byte
	// Decoded is nil when the type is unrecognized or the payload does not
	// match the grammar of its type.
	Decoded ExtensionValue
}

// Certificate is the decoded certificate structure. Elements that are only
// carried along are kept in their encoded form.
type Certificate struct {
	Raw                     []byte
	RawTBSCertificate       []byte
	RawSignatureAlgorithm   []byte
	RawSubjectPublicKeyInfo []byte

	// Version is the raw version field: 0 for v1, 2 for v3.
	Version            int
	SerialNumber       *big.Int
	SignatureAlgorithm encoding_asn1.ObjectIdentifier
	Issuer             Name
	Validity           Validity
	Subject            Name
	PublicKeyAlgorithm encoding_asn1.ObjectIdentifier
	// PublicKeyParameters is the encoded algorithm parameters element, for
	// example the named curve of an EC key.
	PublicKeyParameters []byte
	IssuerUniqueID      encoding_asn1.BitString
	SubjectUniqueID     encoding_asn1.BitString
	Extensions          []Extension

	OuterSignatureAlgorithm encoding_asn1.ObjectIdentifier
	Signature               encoding_asn1.BitString

	rawSignature []byte
}

// Parse decodes a DER certificate. In strict mode every rule listed in the
// package documentation is enforced; lenient mode keeps questionable values
// for later inspection.
//
// The returned Certificate references der; the caller must not modify it.
func Parse(der []byte, strict bool) (*Certificate, error) {
	input := cryptobyte.String(der)

	var element cryptobyte.String
	if !input.ReadASN1Element(&element, asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: reading certificate", ErrMalformed)
	}
	if !input.Empty() {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(input))
	}

	cert := &Certificate{Raw: element}

	var outer cryptobyte.String
	if !element.ReadASN1(&outer, asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: reading certificate", ErrMalformed)
	}

	var tbs cryptobyte.String
	if !outer.ReadASN1Element(&tbs, asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: reading tbsCertificate", ErrMalformed)
	}
	cert.RawTBSCertificate = tbs
	if err := cert.parseTBS(tbs, strict); err != nil {
		return nil, err
	}

	var sigAlg cryptobyte.String
	if !outer.ReadASN1Element(&sigAlg, asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: reading signatureAlgorithm", ErrMalformed)
	}
	cert.RawSignatureAlgorithm = sigAlg
	if err := parseAlgorithmIdentifier(sigAlg, &cert.OuterSignatureAlgorithm, nil); err != nil {
		return nil, err
	}

	var sigElement cryptobyte.String
	if !outer.ReadASN1Element(&sigElement, asn1.BIT_STRING) {
		return nil, fmt.Errorf("%w: reading signatureValue", ErrMalformed)
	}
	cert.rawSignature = sigElement
	if !sigElement.ReadASN1BitString(&cert.Signature) {
		return nil, fmt.Errorf("%w: invalid signatureValue", ErrMalformed)
	}

	if !outer.Empty() {
		return nil, fmt.Errorf("%w: trailing data in certificate", ErrMalformed)
	}

	return cert, nil
}

func (c *Certificate) parseTBS(element cryptobyte.String, strict bool) error {
	var tbs cryptobyte.String
	if !element.ReadASN1(&tbs, asn1.SEQUENCE) {
		return fmt.Errorf("%w: reading tbsCertificate", ErrMalformed)
	}

	if !tbs.ReadOptionalASN1Integer(&c.Version, tagVersion, 0) {
		return fmt.Errorf("%w: reading version", ErrMalformed)
	}
	if c.Version < 0 || c.Version > 2 {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformed, c.Version)
	}

	c.SerialNumber = new(big.Int)
	if !tbs.ReadASN1Integer(c.SerialNumber) {
		return fmt.Errorf("%w: reading serialNumber", ErrMalformed)
	}

	var sigAlg cryptobyte.String
	if !tbs.ReadASN1Element(&sigAlg, asn1.SEQUENCE) {
		return fmt.Errorf("%w: reading signature", ErrMalformed)
	}
	if err := parseAlgorithmIdentifier(sigAlg, &c.SignatureAlgorithm, nil); err != nil {
		return err
	}

	var err error
	if c.Issuer, err = parseName(&tbs, strict); err != nil {
		return err
	}
	if c.Validity, err = parseValidity(&tbs, strict); err != nil {
		return err
	}
	if c.Subject, err = parseName(&tbs, strict); err != nil {
		return err
	}

	var spki cryptobyte.String
	if !tbs.ReadASN1Element(&spki, asn1.SEQUENCE) {
		return fmt.Errorf("%w: reading subjectPublicKeyInfo", ErrMalformed)
	}
	c.RawSubjectPublicKeyInfo = spki
	if err := c.parseSubjectPublicKeyInfo(spki); err != nil {
		return err
	}

	for _, uid := range []struct {
		tag asn1.Tag
		dst *encoding_asn1.BitString
	}{
		{tagIssuerUniqueID, &c.IssuerUniqueID},
		{tagSubjectUniqueID, &c.SubjectUniqueID},
	} {
		if !tbs.PeekASN1Tag(uid.tag) {
			continue
		}
		var raw cryptobyte.String
		if !tbs.ReadASN1(&raw, uid.tag) || len(raw) == 0 || raw[0] > 7 {
			return fmt.Errorf("%w: reading unique identifier", ErrMalformed)
		}
		uid.dst.Bytes = raw[1:]
		uid.dst.BitLength = len(raw[1:])*8 - int(raw[0])
	}

	var (
		extensions cryptobyte.String
		present    bool
	)
	if !tbs.ReadOptionalASN1(&extensions, &present, tagExtensions) {
		return fmt.Errorf("%w: reading extensions", ErrMalformed)
	}
	if present {
		if c.Version != 2 && strict {
			return fmt.Errorf("%w: extensions in a version %d certificate", ErrMalformed, c.Version+1)
		}
		if err := c.parseExtensions(extensions, strict); err != nil {
			return err
		}
	}

	if !tbs.Empty() {
		return fmt.Errorf("%w: trailing data in tbsCertificate", ErrMalformed)
	}
	return nil
}

func (c *Certificate) parseSubjectPublicKeyInfo(spki cryptobyte.String) error {
	var seq, alg cryptobyte.String
	if !spki.ReadASN1(&seq, asn1.SEQUENCE) ||
		!seq.ReadASN1Element(&alg, asn1.SEQUENCE) {
		return fmt.Errorf("%w: reading subjectPublicKeyInfo", ErrMalformed)
	}
	if err := parseAlgorithmIdentifier(alg, &c.PublicKeyAlgorithm, &c.PublicKeyParameters); err != nil {
		return err
	}
	var key encoding_asn1.BitString
	if !seq.ReadASN1BitString(&key) || !seq.Empty() {
		return fmt.Errorf("%w: reading subjectPublicKey", ErrMalformed)
	}
	return nil
}

func (c *Certificate) parseExtensions(der cryptobyte.String, strict bool) error {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return fmt.Errorf("%w: reading extensions", ErrMalformed)
	}
	for !seq.Empty() {
		ext, err := parseExtension(&seq, strict)
		if err != nil {
			return err
		}
		c.Extensions = append(c.Extensions, ext)
	}
	return nil
}

func parseExtension(der *cryptobyte.String, strict bool) (Extension, error) {
	var ext Extension

	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) {
		return ext, fmt.Errorf("%w: reading extension", ErrMalformed)
	}
	if !seq.ReadASN1ObjectIdentifier(&ext.ID) {
		return ext, fmt.Errorf("%w: reading extension identifier", ErrMalformed)
	}

	if seq.PeekASN1Tag(asn1.BOOLEAN) {
		var b cryptobyte.String
		if !seq.ReadASN1(&b, asn1.BOOLEAN) || len(b) != 1 {
			return ext, fmt.Errorf("%w: reading critical flag of %s", ErrMalformed, ext.ID)
		}
		switch b[0] {
		case 0xff:
			ext.Critical = true
		case 0x00:
			// DER forbids encoding the DEFAULT value.
			if strict {
				return ext, fmt.Errorf("%w: explicit non-critical flag on %s", ErrMalformed, ext.ID)
			}
		default:
			if strict {
				return ext, fmt.Errorf("%w: non-DER boolean on %s", ErrMalformed, ext.ID)
			}
			ext.Critical = true
		}
	}

	var value cryptobyte.String
	if !seq.ReadASN1(&value, asn1.OCTET_STRING) || !seq.Empty() {
		return ext, fmt.Errorf("%w: reading value of %s", ErrMalformed, ext.ID)
	}
	ext.Value = value

	decoded, err := decodeExtensionValue(ext.ID, ext.Value, strict)
	switch {
	case err == nil:
		ext.Decoded = decoded
	case errors.Is(err, ErrUnrecognizedExtension):
	case strict:
		return ext, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return ext, nil
}

func parseAlgorithmIdentifier(der cryptobyte.String, id *encoding_asn1.ObjectIdentifier, params *[]byte) error {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !seq.ReadASN1ObjectIdentifier(id) {
		return fmt.Errorf("%w: reading algorithm identifier", ErrMalformed)
	}
	if seq.Empty() {
		return nil
	}
	var (
		element cryptobyte.String
		tag     asn1.Tag
	)
	if !seq.ReadAnyASN1Element(&element, &tag) || !seq.Empty() {
		return fmt.Errorf("%w: reading algorithm parameters", ErrMalformed)
	}
	if params != nil {
		*params = element
	}
	return nil
}

// Encode serializes the certificate in DER from its kept elements. For a
// certificate parsed from canonical DER the result equals the input.
func (c *Certificate) Encode() ([]byte, error) {
	b := cryptobyte.NewBuilder(make([]byte, 0, len(c.Raw)))
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(c.RawTBSCertificate)
		b.AddBytes(c.RawSignatureAlgorithm)
		if c.rawSignature != nil {
			b.AddBytes(c.rawSignature)
			return
		}
		b.AddASN1(asn1.BIT_STRING, func(b *cryptobyte.Builder) {
			b.AddUint8(uint8(len(c.Signature.Bytes)*8 - c.Signature.BitLength))
			b.AddBytes(c.Signature.Bytes)
		})
	})
	return b.Bytes()
}
