// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	encoding_asn1 "encoding/asn1"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// ExtensionValue is the decoded payload of a recognized extension. The set of
// implementations is closed: BasicConstraints, KeyUsage, ExtKeyUsage,
// GeneralNames, CertificatePolicies, SubjectKeyIdentifier,
// AuthorityKeyIdentifier, AuthorityInfoAccess and CRLDistributionPoints.
type ExtensionValue interface {
	fmt.Stringer
	extensionValue()
}

func (BasicConstraints) extensionValue()       {}
func (KeyUsage) extensionValue()               {}
func (ExtKeyUsage) extensionValue()            {}
func (GeneralNames) extensionValue()           {}
func (CertificatePolicies) extensionValue()    {}
func (SubjectKeyIdentifier) extensionValue()   {}
func (AuthorityKeyIdentifier) extensionValue() {}
func (AuthorityInfoAccess) extensionValue()    {}
func (CRLDistributionPoints) extensionValue()  {}

// DecodeExtensionValue decodes payload according to the grammar registered for
// id. It returns an error wrapping ErrUnrecognizedExtension when there is no
// grammar for id, and ErrMalformedExtension when payload does not match it.
// Non-DER encodings of DEFAULT values are tolerated.
func DecodeExtensionValue(id encoding_asn1.ObjectIdentifier, payload []byte) (ExtensionValue, error) {
	return decodeExtensionValue(id, payload, false)
}

func decodeExtensionValue(id encoding_asn1.ObjectIdentifier, payload []byte, strict bool) (ExtensionValue, error) {
	der := cryptobyte.String(payload)
	var (
		v   ExtensionValue
		err error
	)
	switch {
	case id.Equal(oid.BasicConstraints):
		v, err = parseBasicConstraints(der, strict)
	case id.Equal(oid.KeyUsage):
		v, err = parseKeyUsage(der)
	case id.Equal(oid.ExtKeyUsage):
		v, err = parseExtKeyUsage(der)
	case id.Equal(oid.SubjectAltName), id.Equal(oid.IssuerAltName):
		v, err = parseGeneralNames(der)
	case id.Equal(oid.CertificatePolicies):
		v, err = parseCertificatePolicies(der)
	case id.Equal(oid.SubjectKeyIdentifier):
		v, err = parseSubjectKeyIdentifier(der)
	case id.Equal(oid.AuthorityKeyIdentifier):
		v, err = parseAuthorityKeyIdentifier(der)
	case id.Equal(oid.AuthorityInfoAccess):
		v, err = parseAuthorityInfoAccess(der)
	case id.Equal(oid.CRLDistributionPoints):
		v, err = parseCRLDistributionPoints(der)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedExtension, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, oid.Name(id))
	}
	return v, nil
}

//	BasicConstraints ::= SEQUENCE {
//	  cA                      BOOLEAN DEFAULT FALSE,
//	  pathLenConstraint       INTEGER (0..MAX) OPTIONAL }
type BasicConstraints struct {
	CA                bool
	PathLenConstraint int
	// HasPathLen reports whether pathLenConstraint was present.
	HasPathLen bool
}

func (bc BasicConstraints) String() string {
	s := fmt.Sprintf("CA:%t", bc.CA)
	if bc.HasPathLen {
		s += fmt.Sprintf(", pathlen:%d", bc.PathLenConstraint)
	}
	return s
}

func parseBasicConstraints(der cryptobyte.String, strict bool) (BasicConstraints, error) {
	var (
		bc  BasicConstraints
		seq cryptobyte.String
	)
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return bc, fmt.Errorf("%w: reading BasicConstraints", ErrMalformedExtension)
	}
	if seq.PeekASN1Tag(asn1.BOOLEAN) {
		var b cryptobyte.String
		if !seq.ReadASN1(&b, asn1.BOOLEAN) || len(b) != 1 {
			return bc, fmt.Errorf("%w: reading cA", ErrMalformedExtension)
		}
		switch b[0] {
		case 0xff:
			bc.CA = true
		case 0x00:
			// DER forbids encoding the DEFAULT value.
			if strict {
				return bc, fmt.Errorf("%w: explicit cA FALSE", ErrMalformedExtension)
			}
		default:
			if strict {
				return bc, fmt.Errorf("%w: non-DER cA boolean", ErrMalformedExtension)
			}
			bc.CA = true
		}
	}
	if seq.PeekASN1Tag(asn1.INTEGER) {
		if !seq.ReadASN1Integer(&bc.PathLenConstraint) || bc.PathLenConstraint < 0 {
			return bc, fmt.Errorf("%w: reading pathLenConstraint", ErrMalformedExtension)
		}
		bc.HasPathLen = true
	}
	if !seq.Empty() {
		return bc, fmt.Errorf("%w: trailing data in BasicConstraints", ErrMalformedExtension)
	}
	return bc, nil
}

// KeyUsageBit is a bit position in the KeyUsage BIT STRING.
type KeyUsageBit int

const (
	DigitalSignature KeyUsageBit = iota
	ContentCommitment
	KeyEncipherment
	DataEncipherment
	KeyAgreement
	KeyCertSign
	CRLSign
	EncipherOnly
	DecipherOnly
)

// KeyUsageBits lists every bit of the key usage space in order.
var KeyUsageBits = []KeyUsageBit{
	DigitalSignature, ContentCommitment, KeyEncipherment, DataEncipherment,
	KeyAgreement, KeyCertSign, CRLSign, EncipherOnly, DecipherOnly,
}

var keyUsageNames = [...]string{
	DigitalSignature:  "digitalSignature",
	ContentCommitment: "contentCommitment",
	KeyEncipherment:   "keyEncipherment",
	DataEncipherment:  "dataEncipherment",
	KeyAgreement:      "keyAgreement",
	KeyCertSign:       "keyCertSign",
	CRLSign:           "cRLSign",
	EncipherOnly:      "encipherOnly",
	DecipherOnly:      "decipherOnly",
}

func (b KeyUsageBit) String() string {
	if b >= 0 && int(b) < len(keyUsageNames) {
		return keyUsageNames[b]
	}
	return fmt.Sprintf("KeyUsageBit(%d)", int(b))
}

// KeyUsage ::= BIT STRING
type KeyUsage struct {
	Bits encoding_asn1.BitString
}

// Has reports whether bit is asserted. Bits beyond the encoded length are unset.
func (ku KeyUsage) Has(bit KeyUsageBit) bool {
	return bit >= 0 && ku.Bits.At(int(bit)) == 1
}

// Set returns the asserted bits in ascending order.
func (ku KeyUsage) Set() []KeyUsageBit {
	bits := []KeyUsageBit{}
	for _, bit := range KeyUsageBits {
		if ku.Has(bit) {
			bits = append(bits, bit)
		}
	}
	return bits
}

func (ku KeyUsage) String() string {
	set := ku.Set()
	names := make([]string, len(set))
	for i, bit := range set {
		names[i] = bit.String()
	}
	return strings.Join(names, ", ")
}

func parseKeyUsage(der cryptobyte.String) (KeyUsage, error) {
	var ku KeyUsage
	if !der.ReadASN1BitString(&ku.Bits) || !der.Empty() {
		return ku, fmt.Errorf("%w: reading KeyUsage", ErrMalformedExtension)
	}
	return ku, nil
}

// ExtKeyUsage ::= SEQUENCE SIZE (1..MAX) OF KeyPurposeId
type ExtKeyUsage []encoding_asn1.ObjectIdentifier

func (eku ExtKeyUsage) String() string {
	names := make([]string, len(eku))
	for i, id := range eku {
		names[i] = oid.Name(id)
	}
	return strings.Join(names, ", ")
}

func parseExtKeyUsage(der cryptobyte.String) (ExtKeyUsage, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading ExtKeyUsage", ErrMalformedExtension)
	}
	var eku ExtKeyUsage
	for !seq.Empty() {
		var id encoding_asn1.ObjectIdentifier
		if !seq.ReadASN1ObjectIdentifier(&id) {
			return nil, fmt.Errorf("%w: reading KeyPurposeId", ErrMalformedExtension)
		}
		eku = append(eku, id)
	}
	if len(eku) == 0 {
		return nil, fmt.Errorf("%w: empty ExtKeyUsage", ErrMalformedExtension)
	}
	return eku, nil
}

//	PolicyQualifierInfo ::= SEQUENCE {
//	  policyQualifierId  PolicyQualifierId,
//	  qualifier          ANY DEFINED BY policyQualifierId }
type PolicyQualifier struct {
	ID encoding_asn1.ObjectIdentifier
	// CPSURI is set for id-qt-cps qualifiers.
	CPSURI string
	// ExplicitText is set for id-qt-unotice qualifiers that carry one.
	ExplicitText string
	// Raw is the encoded qualifier element.
	Raw []byte
}

//	PolicyInformation ::= SEQUENCE {
//	  policyIdentifier   CertPolicyId,
//	  policyQualifiers   SEQUENCE SIZE (1..MAX) OF PolicyQualifierInfo OPTIONAL }
type PolicyInformation struct {
	ID         encoding_asn1.ObjectIdentifier
	Qualifiers []PolicyQualifier
}

func (p PolicyInformation) String() string {
	s := oid.Name(p.ID)
	for _, q := range p.Qualifiers {
		switch {
		case q.CPSURI != "":
			s += " CPS:" + q.CPSURI
		case q.ExplicitText != "":
			s += fmt.Sprintf(" notice:%q", q.ExplicitText)
		default:
			s += " " + oid.Name(q.ID)
		}
	}
	return s
}

// CertificatePolicies ::= SEQUENCE SIZE (1..MAX) OF PolicyInformation
type CertificatePolicies []PolicyInformation

func (cp CertificatePolicies) String() string {
	parts := make([]string, len(cp))
	for i, p := range cp {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

func parseCertificatePolicies(der cryptobyte.String) (CertificatePolicies, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading CertificatePolicies", ErrMalformedExtension)
	}

	var policies CertificatePolicies
	for !seq.Empty() {
		var info cryptobyte.String
		var p PolicyInformation
		if !seq.ReadASN1(&info, asn1.SEQUENCE) || !info.ReadASN1ObjectIdentifier(&p.ID) {
			return nil, fmt.Errorf("%w: reading PolicyInformation", ErrMalformedExtension)
		}
		if !info.Empty() {
			var qualifiers cryptobyte.String
			if !info.ReadASN1(&qualifiers, asn1.SEQUENCE) || !info.Empty() {
				return nil, fmt.Errorf("%w: reading policyQualifiers", ErrMalformedExtension)
			}
			for !qualifiers.Empty() {
				q, err := parsePolicyQualifier(&qualifiers)
				if err != nil {
					return nil, err
				}
				p.Qualifiers = append(p.Qualifiers, q)
			}
		}
		policies = append(policies, p)
	}
	if len(policies) == 0 {
		return nil, fmt.Errorf("%w: empty CertificatePolicies", ErrMalformedExtension)
	}
	return policies, nil
}

func parsePolicyQualifier(der *cryptobyte.String) (PolicyQualifier, error) {
	var (
		q     PolicyQualifier
		seq   cryptobyte.String
		value cryptobyte.String
		tag   asn1.Tag
	)
	if !der.ReadASN1(&seq, asn1.SEQUENCE) ||
		!seq.ReadASN1ObjectIdentifier(&q.ID) ||
		!seq.ReadAnyASN1Element(&value, &tag) ||
		!seq.Empty() {
		return q, fmt.Errorf("%w: reading PolicyQualifierInfo", ErrMalformedExtension)
	}
	q.Raw = value

	switch {
	case q.ID.Equal(oid.PolicyQualifierCPS):
		var uri cryptobyte.String
		if !value.ReadASN1(&uri, asn1.IA5String) {
			return q, fmt.Errorf("%w: reading cPSuri", ErrMalformedExtension)
		}
		q.CPSURI = string(uri)
	case q.ID.Equal(oid.PolicyQualifierUserNotice):
		var notice cryptobyte.String
		if !value.ReadASN1(&notice, asn1.SEQUENCE) {
			return q, fmt.Errorf("%w: reading UserNotice", ErrMalformedExtension)
		}
		// noticeRef is carried in Raw only.
		if notice.PeekASN1Tag(asn1.SEQUENCE) && !notice.SkipASN1(asn1.SEQUENCE) {
			return q, fmt.Errorf("%w: reading noticeRef", ErrMalformedExtension)
		}
		if !notice.Empty() {
			var (
				text    cryptobyte.String
				textTag asn1.Tag
			)
			if !notice.ReadAnyASN1(&text, &textTag) {
				return q, fmt.Errorf("%w: reading explicitText", ErrMalformedExtension)
			}
			s, err := decodeString(textTag, text)
			if err != nil {
				return q, fmt.Errorf("%w: explicitText: %v", ErrMalformedExtension, err)
			}
			q.ExplicitText = s
		}
	}
	return q, nil
}

// SubjectKeyIdentifier ::= KeyIdentifier
type SubjectKeyIdentifier []byte

func (ski SubjectKeyIdentifier) String() string {
	return strings.ToUpper(hex.EncodeToString(ski))
}

func parseSubjectKeyIdentifier(der cryptobyte.String) (SubjectKeyIdentifier, error) {
	var id []byte
	if !der.ReadASN1Bytes(&id, asn1.OCTET_STRING) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading SubjectKeyIdentifier", ErrMalformedExtension)
	}
	return SubjectKeyIdentifier(id), nil
}

//	AuthorityKeyIdentifier ::= SEQUENCE {
//	  keyIdentifier             [0] KeyIdentifier           OPTIONAL,
//	  authorityCertIssuer       [1] GeneralNames            OPTIONAL,
//	  authorityCertSerialNumber [2] CertificateSerialNumber OPTIONAL }
type AuthorityKeyIdentifier struct {
	KeyIdentifier             []byte
	AuthorityCertIssuer       GeneralNames
	AuthorityCertSerialNumber *big.Int
}

func (aki AuthorityKeyIdentifier) String() string {
	var parts []string
	if aki.KeyIdentifier != nil {
		parts = append(parts, "keyid:"+strings.ToUpper(hex.EncodeToString(aki.KeyIdentifier)))
	}
	for _, gn := range aki.AuthorityCertIssuer {
		parts = append(parts, gn.String())
	}
	if aki.AuthorityCertSerialNumber != nil {
		parts = append(parts, "serial:"+aki.AuthorityCertSerialNumber.Text(16))
	}
	return strings.Join(parts, ", ")
}

func parseAuthorityKeyIdentifier(der cryptobyte.String) (AuthorityKeyIdentifier, error) {
	var (
		aki AuthorityKeyIdentifier
		seq cryptobyte.String
	)
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return aki, fmt.Errorf("%w: reading AuthorityKeyIdentifier", ErrMalformedExtension)
	}

	if seq.PeekASN1Tag(asn1.Tag(0).ContextSpecific()) {
		var keyID []byte
		if !seq.ReadASN1Bytes(&keyID, asn1.Tag(0).ContextSpecific()) {
			return aki, fmt.Errorf("%w: reading keyIdentifier", ErrMalformedExtension)
		}
		aki.KeyIdentifier = keyID
	}
	if seq.PeekASN1Tag(asn1.Tag(1).Constructed().ContextSpecific()) {
		var issuer cryptobyte.String
		if !seq.ReadASN1(&issuer, asn1.Tag(1).Constructed().ContextSpecific()) {
			return aki, fmt.Errorf("%w: reading authorityCertIssuer", ErrMalformedExtension)
		}
		names, err := readGeneralNames(issuer)
		if err != nil {
			return aki, err
		}
		aki.AuthorityCertIssuer = names
	}
	if seq.PeekASN1Tag(asn1.Tag(2).ContextSpecific()) {
		var serial cryptobyte.String
		if !seq.ReadASN1(&serial, asn1.Tag(2).ContextSpecific()) {
			return aki, fmt.Errorf("%w: reading authorityCertSerialNumber", ErrMalformedExtension)
		}
		n := new(big.Int)
		s := retag(serial, asn1.INTEGER)
		if !s.ReadASN1Integer(n) {
			return aki, fmt.Errorf("%w: reading authorityCertSerialNumber", ErrMalformedExtension)
		}
		aki.AuthorityCertSerialNumber = n
	}
	if !seq.Empty() {
		return aki, fmt.Errorf("%w: trailing data in AuthorityKeyIdentifier", ErrMalformedExtension)
	}
	return aki, nil
}

//	AccessDescription ::= SEQUENCE {
//	  accessMethod          OBJECT IDENTIFIER,
//	  accessLocation        GeneralName }
type AccessDescription struct {
	Method   encoding_asn1.ObjectIdentifier
	Location GeneralName
}

// AuthorityInfoAccess ::= SEQUENCE SIZE (1..MAX) OF AccessDescription
type AuthorityInfoAccess []AccessDescription

func (aia AuthorityInfoAccess) String() string {
	parts := make([]string, len(aia))
	for i, ad := range aia {
		parts[i] = oid.Name(ad.Method) + " - " + ad.Location.String()
	}
	return strings.Join(parts, ", ")
}

func parseAuthorityInfoAccess(der cryptobyte.String) (AuthorityInfoAccess, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading AuthorityInfoAccess", ErrMalformedExtension)
	}
	var aia AuthorityInfoAccess
	for !seq.Empty() {
		var (
			desc cryptobyte.String
			ad   AccessDescription
		)
		if !seq.ReadASN1(&desc, asn1.SEQUENCE) || !desc.ReadASN1ObjectIdentifier(&ad.Method) {
			return nil, fmt.Errorf("%w: reading AccessDescription", ErrMalformedExtension)
		}
		gn, err := parseGeneralName(&desc)
		if err != nil {
			return nil, err
		}
		if !desc.Empty() {
			return nil, fmt.Errorf("%w: trailing data in AccessDescription", ErrMalformedExtension)
		}
		ad.Location = gn
		aia = append(aia, ad)
	}
	if len(aia) == 0 {
		return nil, fmt.Errorf("%w: empty AuthorityInfoAccess", ErrMalformedExtension)
	}
	return aia, nil
}

//	DistributionPoint ::= SEQUENCE {
//	  distributionPoint       [0]     DistributionPointName OPTIONAL,
//	  reasons                 [1]     ReasonFlags OPTIONAL,
//	  cRLIssuer               [2]     GeneralNames OPTIONAL }
//
//	DistributionPointName ::= CHOICE {
//	  fullName                [0]     GeneralNames,
//	  nameRelativeToCRLIssuer [1]     RelativeDistinguishedName }
type DistributionPoint struct {
	FullName                GeneralNames
	NameRelativeToCRLIssuer []AttributeTypeAndValue
	Reasons                 encoding_asn1.BitString
	CRLIssuer               GeneralNames
}

func (dp DistributionPoint) String() string {
	var parts []string
	for _, gn := range dp.FullName {
		parts = append(parts, gn.String())
	}
	if len(dp.NameRelativeToCRLIssuer) > 0 {
		parts = append(parts, "relative:"+Name{RDNs: [][]AttributeTypeAndValue{dp.NameRelativeToCRLIssuer}}.String())
	}
	for _, gn := range dp.CRLIssuer {
		parts = append(parts, "issuer:"+gn.String())
	}
	return strings.Join(parts, ", ")
}

// CRLDistributionPoints ::= SEQUENCE SIZE (1..MAX) OF DistributionPoint
type CRLDistributionPoints []DistributionPoint

func (dps CRLDistributionPoints) String() string {
	parts := make([]string, len(dps))
	for i, dp := range dps {
		parts[i] = dp.String()
	}
	return strings.Join(parts, "; ")
}

func parseCRLDistributionPoints(der cryptobyte.String) (CRLDistributionPoints, error) {
	var seq cryptobyte.String
	if !der.ReadASN1(&seq, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: reading CRLDistributionPoints", ErrMalformedExtension)
	}

	var dps CRLDistributionPoints
	for !seq.Empty() {
		var point cryptobyte.String
		if !seq.ReadASN1(&point, asn1.SEQUENCE) {
			return nil, fmt.Errorf("%w: reading DistributionPoint", ErrMalformedExtension)
		}
		dp, err := parseDistributionPoint(point)
		if err != nil {
			return nil, err
		}
		dps = append(dps, dp)
	}
	if len(dps) == 0 {
		return nil, fmt.Errorf("%w: empty CRLDistributionPoints", ErrMalformedExtension)
	}
	return dps, nil
}

func parseDistributionPoint(point cryptobyte.String) (DistributionPoint, error) {
	var dp DistributionPoint

	tagName := asn1.Tag(0).Constructed().ContextSpecific()
	if point.PeekASN1Tag(tagName) {
		var name cryptobyte.String
		if !point.ReadASN1(&name, tagName) {
			return dp, fmt.Errorf("%w: reading distributionPoint", ErrMalformedExtension)
		}
		switch {
		case name.PeekASN1Tag(asn1.Tag(0).Constructed().ContextSpecific()):
			var full cryptobyte.String
			if !name.ReadASN1(&full, asn1.Tag(0).Constructed().ContextSpecific()) {
				return dp, fmt.Errorf("%w: reading fullName", ErrMalformedExtension)
			}
			names, err := readGeneralNames(full)
			if err != nil {
				return dp, err
			}
			dp.FullName = names
		case name.PeekASN1Tag(asn1.Tag(1).Constructed().ContextSpecific()):
			var rdn cryptobyte.String
			if !name.ReadASN1(&rdn, asn1.Tag(1).Constructed().ContextSpecific()) {
				return dp, fmt.Errorf("%w: reading nameRelativeToCRLIssuer", ErrMalformedExtension)
			}
			for !rdn.Empty() {
				var (
					atvSeq cryptobyte.String
					atv    AttributeTypeAndValue
					raw    cryptobyte.String
				)
				if !rdn.ReadASN1(&atvSeq, asn1.SEQUENCE) ||
					!atvSeq.ReadASN1ObjectIdentifier(&atv.Type) ||
					!atvSeq.ReadAnyASN1(&raw, &atv.Tag) {
					return dp, fmt.Errorf("%w: reading nameRelativeToCRLIssuer", ErrMalformedExtension)
				}
				atv.Raw = raw
				dp.NameRelativeToCRLIssuer = append(dp.NameRelativeToCRLIssuer, atv)
			}
		}
		if !name.Empty() {
			return dp, fmt.Errorf("%w: reading DistributionPointName", ErrMalformedExtension)
		}
	}

	if point.PeekASN1Tag(asn1.Tag(1).ContextSpecific()) {
		var reasons cryptobyte.String
		if !point.ReadASN1(&reasons, asn1.Tag(1).ContextSpecific()) {
			return dp, fmt.Errorf("%w: reading reasons", ErrMalformedExtension)
		}
		s := retag(reasons, asn1.BIT_STRING)
		if !s.ReadASN1BitString(&dp.Reasons) {
			return dp, fmt.Errorf("%w: reading reasons", ErrMalformedExtension)
		}
	}

	tagIssuer := asn1.Tag(2).Constructed().ContextSpecific()
	if point.PeekASN1Tag(tagIssuer) {
		var issuer cryptobyte.String
		if !point.ReadASN1(&issuer, tagIssuer) {
			return dp, fmt.Errorf("%w: reading cRLIssuer", ErrMalformedExtension)
		}
		names, err := readGeneralNames(issuer)
		if err != nil {
			return dp, err
		}
		dp.CRLIssuer = names
	}

	if !point.Empty() {
		return dp, fmt.Errorf("%w: trailing data in DistributionPoint", ErrMalformedExtension)
	}
	return dp, nil
}

// retag rebuilds an implicitly tagged value under its universal tag so the
// regular readers can decode it.
func retag(content []byte, tag asn1.Tag) cryptobyte.String {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(tag, func(b *cryptobyte.Builder) {
		b.AddBytes(content)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil
	}
	return cryptobyte.String(der)
}
