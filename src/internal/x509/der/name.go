// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	encoding_asn1 "encoding/asn1"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// String tags that cryptobyte/asn1 does not name.
const (
	tagNumericString   = asn1.Tag(18)
	tagVisibleString   = asn1.Tag(26)
	tagUniversalString = asn1.Tag(28)
	tagBMPString       = asn1.Tag(30)
)

// AttributeTypeAndValue ::= SEQUENCE {
// type     AttributeType,
// value    AttributeValue }
//
// The value is kept in its encoded form; Value decodes it on demand.
type AttributeTypeAndValue struct {
	Type encoding_asn1.ObjectIdentifier
	Tag  asn1.Tag
	Raw  []byte
}

// IsString reports whether the value is encoded as one of the ASN.1 string types.
func (atv AttributeTypeAndValue) IsString() bool {
	switch atv.Tag {
	case asn1.PrintableString, asn1.UTF8String, asn1.IA5String, asn1.T61String,
		tagNumericString, tagVisibleString, tagUniversalString, tagBMPString:
		return true
	}
	return false
}

// Value decodes the attribute value as a string.
func (atv AttributeTypeAndValue) Value() (string, error) {
	s, err := decodeString(atv.Tag, atv.Raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedAttribute, oid.Name(atv.Type), err)
	}
	return s, nil
}

// String renders the attribute as type=value. Values that do not decode are
// written in the RFC 4514 hex form.
func (atv AttributeTypeAndValue) String() string {
	if s, err := atv.Value(); err == nil {
		return oid.Name(atv.Type) + "=" + s
	}
	return oid.Name(atv.Type) + "=#" + hex.EncodeToString(atv.Raw)
}

// Name ::= CHOICE { rdnSequence  RDNSequence }
//
// RDNSequence ::= SEQUENCE OF RelativeDistinguishedName
// RelativeDistinguishedName ::= SET SIZE (1..MAX) OF AttributeTypeAndValue
type Name struct {
	RDNs [][]AttributeTypeAndValue
	Raw  []byte
}

// Attributes returns every value of the given attribute type in encoding order.
func (n Name) Attributes(id encoding_asn1.ObjectIdentifier) ([]string, error) {
	var values []string
	for _, rdn := range n.RDNs {
		for _, atv := range rdn {
			if !atv.Type.Equal(id) {
				continue
			}
			v, err := atv.Value()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// String renders the name on one line in encoding order, for example
// "C=US, O=Google Trust Services, CN=WR2". Multi-valued RDNs are joined with "+".
func (n Name) String() string {
	parts := make([]string, 0, len(n.RDNs))
	for _, rdn := range n.RDNs {
		atvs := make([]string, 0, len(rdn))
		for _, atv := range rdn {
			atvs = append(atvs, atv.String())
		}
		parts = append(parts, strings.Join(atvs, "+"))
	}
	return strings.Join(parts, ", ")
}

func parseName(der *cryptobyte.String, strict bool) (Name, error) {
	var element cryptobyte.String
	if !der.ReadASN1Element(&element, asn1.SEQUENCE) {
		return Name{}, fmt.Errorf("%w: reading name", ErrMalformed)
	}
	n := Name{Raw: element}

	var rdnSequence cryptobyte.String
	if !element.ReadASN1(&rdnSequence, asn1.SEQUENCE) {
		return Name{}, fmt.Errorf("%w: reading RDNSequence", ErrMalformed)
	}

	for !rdnSequence.Empty() {
		var set cryptobyte.String
		if !rdnSequence.ReadASN1(&set, asn1.SET) {
			return Name{}, fmt.Errorf("%w: reading RelativeDistinguishedName", ErrMalformed)
		}

		var rdn []AttributeTypeAndValue
		for !set.Empty() {
			var seq cryptobyte.String
			if !set.ReadASN1(&seq, asn1.SEQUENCE) {
				return Name{}, fmt.Errorf("%w: reading AttributeTypeAndValue", ErrMalformed)
			}

			var atv AttributeTypeAndValue
			if !seq.ReadASN1ObjectIdentifier(&atv.Type) {
				return Name{}, fmt.Errorf("%w: reading attribute type", ErrMalformed)
			}
			var raw cryptobyte.String
			if !seq.ReadAnyASN1(&raw, &atv.Tag) || !seq.Empty() {
				return Name{}, fmt.Errorf("%w: reading attribute value", ErrMalformed)
			}
			atv.Raw = raw

			if strict && atv.IsString() {
				if _, err := atv.Value(); err != nil {
					return Name{}, err
				}
			}

			rdn = append(rdn, atv)
		}
		if len(rdn) == 0 {
			return Name{}, fmt.Errorf("%w: empty RelativeDistinguishedName", ErrMalformed)
		}
		n.RDNs = append(n.RDNs, rdn)
	}

	return n, nil
}

func decodeString(tag asn1.Tag, raw []byte) (string, error) {
	switch tag {
	case asn1.UTF8String:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid UTF8String")
		}
		return string(raw), nil
	case asn1.PrintableString:
		for _, b := range raw {
			if !isPrintable(b) {
				return "", fmt.Errorf("invalid PrintableString")
			}
		}
		return string(raw), nil
	case asn1.IA5String, tagVisibleString:
		for _, b := range raw {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("invalid IA5String")
			}
		}
		return string(raw), nil
	case tagNumericString:
		for _, b := range raw {
			if (b < '0' || b > '9') && b != ' ' {
				return "", fmt.Errorf("invalid NumericString")
			}
		}
		return string(raw), nil
	case asn1.T61String:
		// Treated as Latin-1, as most decoders do.
		runes := make([]rune, len(raw))
		for i, b := range raw {
			runes[i] = rune(b)
		}
		return string(runes), nil
	case tagBMPString:
		if len(raw)%2 != 0 {
			return "", fmt.Errorf("invalid BMPString length")
		}
		u := make([]uint16, 0, len(raw)/2)
		for i := 0; i < len(raw); i += 2 {
			u = append(u, uint16(raw[i])<<8|uint16(raw[i+1]))
		}
		return string(utf16.Decode(u)), nil
	case tagUniversalString:
		if len(raw)%4 != 0 {
			return "", fmt.Errorf("invalid UniversalString length")
		}
		runes := make([]rune, 0, len(raw)/4)
		for i := 0; i < len(raw); i += 4 {
			r := rune(raw[i])<<24 | rune(raw[i+1])<<16 | rune(raw[i+2])<<8 | rune(raw[i+3])
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("invalid UniversalString code point")
			}
			runes = append(runes, r)
		}
		return string(runes), nil
	}
	return "", fmt.Errorf("unsupported string tag %d", tag)
}

func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?' ||
		// Tolerated by most parsers though outside the PrintableString set.
		b == '*' ||
		b == '&'
}
