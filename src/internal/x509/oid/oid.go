// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oid

import "encoding/asn1"

// Certificate extensions.
var (
	SubjectKeyIdentifier   = asn1.ObjectIdentifier{2, 5, 29, 14}
	KeyUsage               = asn1.ObjectIdentifier{2, 5, 29, 15}
	SubjectAltName         = asn1.ObjectIdentifier{2, 5, 29, 17}
	IssuerAltName          = asn1.ObjectIdentifier{2, 5, 29, 18}
	BasicConstraints       = asn1.ObjectIdentifier{2, 5, 29, 19}
	NameConstraints        = asn1.ObjectIdentifier{2, 5, 29, 30}
	CRLDistributionPoints  = asn1.ObjectIdentifier{2, 5, 29, 31}
	CertificatePolicies    = asn1.ObjectIdentifier{2, 5, 29, 32}
	AuthorityKeyIdentifier = asn1.ObjectIdentifier{2, 5, 29, 35}
	ExtKeyUsage            = asn1.ObjectIdentifier{2, 5, 29, 37}
	AuthorityInfoAccess    = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}
	SubjectInfoAccess      = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 11}
	CTPrecertificateSCTs   = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 11129, 2, 4, 2}
	CTPrecertificatePoison = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 11129, 2, 4, 3}
)

// Access methods used in Authority/Subject Information Access.
var (
	AccessMethodOCSP      = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 1}
	AccessMethodCAIssuers = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 2}
)

// Extended key usage purposes.
var (
	ExtKeyUsageAny             = asn1.ObjectIdentifier{2, 5, 29, 37, 0}
	ExtKeyUsageServerAuth      = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}
	ExtKeyUsageClientAuth      = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 2}
	ExtKeyUsageCodeSigning     = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 3}
	ExtKeyUsageEmailProtection = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 4}
	ExtKeyUsageTimeStamping    = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 8}
	ExtKeyUsageOCSPSigning     = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 9}
)

// Certificate policies and policy qualifiers.
var (
	AnyPolicy                 = asn1.ObjectIdentifier{2, 5, 29, 32, 0}
	PolicyDomainValidated     = asn1.ObjectIdentifier{2, 23, 140, 1, 2, 1}
	PolicyOrgValidated        = asn1.ObjectIdentifier{2, 23, 140, 1, 2, 2}
	PolicyIndividualVerified  = asn1.ObjectIdentifier{2, 23, 140, 1, 2, 3}
	PolicyExtendedValidation  = asn1.ObjectIdentifier{2, 23, 140, 1, 1}
	PolicyQualifierCPS        = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 2, 1}
	PolicyQualifierUserNotice = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 2, 2}
)

// Name attribute types.
var (
	CommonName         = asn1.ObjectIdentifier{2, 5, 4, 3}
	Surname            = asn1.ObjectIdentifier{2, 5, 4, 4}
	SerialNumber       = asn1.ObjectIdentifier{2, 5, 4, 5}
	Country            = asn1.ObjectIdentifier{2, 5, 4, 6}
	Locality           = asn1.ObjectIdentifier{2, 5, 4, 7}
	StateOrProvince    = asn1.ObjectIdentifier{2, 5, 4, 8}
	StreetAddress      = asn1.ObjectIdentifier{2, 5, 4, 9}
	Organization       = asn1.ObjectIdentifier{2, 5, 4, 10}
	OrganizationalUnit = asn1.ObjectIdentifier{2, 5, 4, 11}
	PostalCode         = asn1.ObjectIdentifier{2, 5, 4, 17}
	GivenName          = asn1.ObjectIdentifier{2, 5, 4, 42}
	DomainComponent    = asn1.ObjectIdentifier{0, 9, 2342, 19200300, 100, 1, 25}
	UserID             = asn1.ObjectIdentifier{0, 9, 2342, 19200300, 100, 1, 1}
	EmailAddress       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
)

// Signature and public key algorithms.
var (
	RSAEncryption           = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	SHA1WithRSAEncryption   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}
	SHA256WithRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	SHA384WithRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	SHA512WithRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	ECPublicKey             = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	ECDSAWithSHA256         = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	ECDSAWithSHA384         = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	ECDSAWithSHA512         = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
	Ed25519                 = asn1.ObjectIdentifier{1, 3, 101, 112}
)

var names = map[string]string{
	SubjectKeyIdentifier.String():   "subjectKeyIdentifier",
	KeyUsage.String():               "keyUsage",
	SubjectAltName.String():         "subjectAltName",
	IssuerAltName.String():          "issuerAltName",
	BasicConstraints.String():       "basicConstraints",
	NameConstraints.String():        "nameConstraints",
	CRLDistributionPoints.String():  "cRLDistributionPoints",
	CertificatePolicies.String():    "certificatePolicies",
	AuthorityKeyIdentifier.String(): "authorityKeyIdentifier",
	ExtKeyUsage.String():            "extKeyUsage",
	AuthorityInfoAccess.String():    "authorityInfoAccess",
	SubjectInfoAccess.String():      "subjectInfoAccess",
	CTPrecertificateSCTs.String():   "ctPrecertificateSCTs",
	CTPrecertificatePoison.String(): "ctPrecertificatePoison",

	AccessMethodOCSP.String():      "ocsp",
	AccessMethodCAIssuers.String(): "caIssuers",

	ExtKeyUsageAny.String():             "anyExtendedKeyUsage",
	ExtKeyUsageServerAuth.String():      "serverAuth",
	ExtKeyUsageClientAuth.String():      "clientAuth",
	ExtKeyUsageCodeSigning.String():     "codeSigning",
	ExtKeyUsageEmailProtection.String(): "emailProtection",
	ExtKeyUsageTimeStamping.String():    "timeStamping",
	ExtKeyUsageOCSPSigning.String():     "OCSPSigning",

	AnyPolicy.String():                 "anyPolicy",
	PolicyDomainValidated.String():     "domain-validated",
	PolicyOrgValidated.String():        "organization-validated",
	PolicyIndividualVerified.String():  "individual-validated",
	PolicyExtendedValidation.String():  "ev-guidelines",
	PolicyQualifierCPS.String():        "cps",
	PolicyQualifierUserNotice.String(): "unotice",

	RSAEncryption.String():           "rsaEncryption",
	SHA1WithRSAEncryption.String():   "sha1WithRSAEncryption",
	SHA256WithRSAEncryption.String(): "sha256WithRSAEncryption",
	SHA384WithRSAEncryption.String(): "sha384WithRSAEncryption",
	SHA512WithRSAEncryption.String(): "sha512WithRSAEncryption",
	ECPublicKey.String():             "id-ecPublicKey",
	ECDSAWithSHA256.String():         "ecdsa-with-SHA256",
	ECDSAWithSHA384.String():         "ecdsa-with-SHA384",
	ECDSAWithSHA512.String():         "ecdsa-with-SHA512",
	Ed25519.String():                 "Ed25519",

	CommonName.String():         "CN",
	Surname.String():            "SN",
	SerialNumber.String():       "serialNumber",
	Country.String():            "C",
	Locality.String():           "L",
	StateOrProvince.String():    "ST",
	StreetAddress.String():      "STREET",
	Organization.String():       "O",
	OrganizationalUnit.String(): "OU",
	PostalCode.String():         "postalCode",
	GivenName.String():          "GN",
	DomainComponent.String():    "DC",
	UserID.String():             "UID",
	EmailAddress.String():       "emailAddress",
}

// Name returns the short registered name of id, or its dotted form when the
// identifier is not in the registry.
func Name(id asn1.ObjectIdentifier) string {
	if n, ok := names[id.String()]; ok {
		return n
	}
	return id.String()
}
