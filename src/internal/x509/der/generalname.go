// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	encoding_asn1 "encoding/asn1"
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// GeneralNameTag identifies the alternative of a GeneralName CHOICE. The
// values match the context-specific tag numbers.
type GeneralNameTag int

const (
	OtherName GeneralNameTag = iota
	RFC822Name
	DNSName
	X400Address
	DirectoryName
	EDIPartyName
	URI
	IPAddress
	RegisteredID
)

var generalNameTags = [...]string{
	OtherName:     "otherName",
	RFC822Name:    "rfc822Name",
	DNSName:       "dNSName",
	X400Address:   "x400Address",
	DirectoryName: "directoryName",
	EDIPartyName:  "ediPartyName",
	URI:           "uniformResourceIdentifier",
	IPAddress:     "iPAddress",
	RegisteredID:  "registeredID",
}

func (t GeneralNameTag) String() string {
	if t >= 0 && int(t) < len(generalNameTags) {
		return generalNameTags[t]
	}
	return fmt.Sprintf("GeneralNameTag(%d)", int(t))
}

// GeneralName is one alternative of
//
//	GeneralName ::= CHOICE {
//	  otherName                 [0] AnotherName,
//	  rfc822Name                [1] IA5String,
//	  dNSName                   [2] IA5String,
//	  x400Address               [3] ORAddress,
//	  directoryName             [4] Name,
//	  ediPartyName              [5] EDIPartyName,
//	  uniformResourceIdentifier [6] IA5String,
//	  iPAddress                 [7] OCTET STRING,
//	  registeredID              [8] OBJECT IDENTIFIER }
//
// Only the field that belongs to Tag is set.
type GeneralName struct {
	Tag GeneralNameTag
	// Text holds rfc822Name, dNSName and uniformResourceIdentifier.
	Text string
	IP   net.IP
	// DirectoryName is decoded leniently; attribute values are checked when read.
	DirectoryName Name
	// ID holds registeredID, or the type-id of an otherName.
	ID encoding_asn1.ObjectIdentifier
	// Raw holds the encoded value of otherName, and the content of
	// x400Address and ediPartyName.
	Raw []byte
}

func (g GeneralName) String() string {
	switch g.Tag {
	case RFC822Name:
		return "email:" + g.Text
	case DNSName:
		return "DNS:" + g.Text
	case URI:
		return "URI:" + g.Text
	case IPAddress:
		return "IP:" + g.IP.String()
	case DirectoryName:
		return "DirName:" + g.DirectoryName.String()
	case RegisteredID:
		return "RID:" + g.ID.String()
	case OtherName:
		return "othername:" + oid.Name(g.ID) + ":" + hex.EncodeToString(g.Raw)
	}
	return g.Tag.String() + ":" + hex.EncodeToString(g.Raw)
}

// GeneralNames ::= SEQUENCE SIZE (1..MAX) OF GeneralName
type GeneralNames []GeneralName

func (gns GeneralNames) String() string {
	parts := make([]string, len(gns))
	for i, gn := range gns {
		parts[i] = gn.String()
	}
	return strings.Join(parts, ", ")
}

func parseGeneralNames(der cryptobyte.String) (GeneralNames, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading GeneralNames", ErrMalformedExtension)
	}
	names, err := readGeneralNames(seq)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty GeneralNames", ErrMalformedExtension)
	}
	return names, nil
}

// readGeneralNames decodes GeneralName values until der is exhausted.
func readGeneralNames(der cryptobyte.String) (GeneralNames, error) {
	var names GeneralNames
	for !der.Empty() {
		gn, err := parseGeneralName(&der)
		if err != nil {
			return nil, err
		}
		names = append(names, gn)
	}
	return names, nil
}

func parseGeneralName(der *cryptobyte.String) (GeneralName, error) {
	var (
		content cryptobyte.String
		tag     asn1.Tag
	)
	if !der.ReadAnyASN1(&content, &tag) {
		return GeneralName{}, fmt.Errorf("%w: reading GeneralName", ErrMalformedExtension)
	}
	if tag&0xc0 != 0x80 {
		return GeneralName{}, fmt.Errorf("%w: GeneralName with non context-specific tag", ErrMalformedExtension)
	}

	gn := GeneralName{Tag: GeneralNameTag(tag & 0x1f)}
	switch gn.Tag {
	case RFC822Name, DNSName, URI:
		for _, b := range content {
			if b >= 0x80 {
				return GeneralName{}, fmt.Errorf("%w: %s is not an IA5String", ErrMalformedExtension, gn.Tag)
			}
		}
		gn.Text = string(content)
	case IPAddress:
		if len(content) != net.IPv4len && len(content) != net.IPv6len {
			return GeneralName{}, fmt.Errorf("%w: iPAddress of length %d", ErrMalformedExtension, len(content))
		}
		gn.IP = net.IP(content)
	case DirectoryName:
		name, err := parseName(&content, false)
		if err != nil || !content.Empty() {
			return GeneralName{}, fmt.Errorf("%w: reading directoryName", ErrMalformedExtension)
		}
		gn.DirectoryName = name
	case RegisteredID:
		id := retag(content, asn1.OBJECT_IDENTIFIER)
		if !id.ReadASN1ObjectIdentifier(&gn.ID) {
			return GeneralName{}, fmt.Errorf("%w: reading registeredID", ErrMalformedExtension)
		}
	case OtherName:
		var value cryptobyte.String
		if !content.ReadASN1ObjectIdentifier(&gn.ID) ||
			!content.ReadASN1(&value, asn1.Tag(0).Constructed().ContextSpecific()) ||
			!content.Empty() {
			return GeneralName{}, fmt.Errorf("%w: reading otherName", ErrMalformedExtension)
		}
		gn.Raw = value
	case X400Address, EDIPartyName:
		gn.Raw = content
	default:
		return GeneralName{}, fmt.Errorf("%w: unknown GeneralName tag %d", ErrMalformedExtension, int(gn.Tag))
	}
	return gn, nil
}
