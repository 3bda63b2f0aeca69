// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testcert

import (
	encoding_asn1 "encoding/asn1"
	"encoding/pem"
	"net"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// GoogleCom is the www.google.com leaf issued by Google Trust Services WR2.
// It carries KeyUsage, ExtKeyUsage, BasicConstraints, SKI, AKI, AIA, SAN,
// CertificatePolicies, CRLDistributionPoints and an SCT list, in that order.
const GoogleCom = `-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

// Known values of GoogleCom.
const (
	GoogleComMD5    = "6e431c001e361c5050030b4b8d9b1649"
	GoogleComSHA1   = "d55b91a8761f03c26be1a125df3a92ac226ecc16"
	GoogleComSHA224 = "bc10f3d756ee0c597eb14944ade1389b724b61b3807ebc9a2880f6ef"
	GoogleComSHA256 = "cf9bd95920bbb82f429e94cd4f3feb8561415d9e2417fee28505e46230a3e121"
	GoogleComSHA384 = "246068385140b12a0a115be65ef03ba3b61a32c414da19d3731bbb3281179a0ec525e8ca12cab613df848dfcd0e7b1c8"
	GoogleComSHA512 = "2f5ae3dcccb84a424d6749b781820e999b6e85f577366415f7c244d5aa27e21068e1a6cbd06218017c19a5e047cd48d9f91c64c64d95204a75e90424e6b3cd88"
	GoogleComSerial = "8b270e1ec0aacb550904c364ee3d1544"
)

// GoogleComDER returns the DER bytes of GoogleCom.
func GoogleComDER() []byte {
	block, _ := pem.Decode([]byte(GoogleCom))
	return block.Bytes
}

var namedCurveP256 = encoding_asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}

// Attribute is one AttributeTypeAndValue, written as its own RDN.
type Attribute struct {
	Type  encoding_asn1.ObjectIdentifier
	Tag   asn1.Tag
	Value []byte
}

// CN returns a UTF8String common name attribute.
func CN(s string) Attribute {
	return Attribute{Type: oid.CommonName, Tag: asn1.UTF8String, Value: []byte(s)}
}

// O returns a PrintableString organization attribute.
func O(s string) Attribute {
	return Attribute{Type: oid.Organization, Tag: asn1.PrintableString, Value: []byte(s)}
}

// Time is a validity time written with an explicit tag and content.
type Time struct {
	Tag   asn1.Tag
	Value string
}

// UTCTime encodes t as a UTCTime.
func UTCTime(t time.Time) Time {
	return Time{Tag: asn1.UTCTime, Value: t.UTC().Format("060102150405Z")}
}

// GeneralizedTime encodes t as a GeneralizedTime.
func GeneralizedTime(t time.Time) Time {
	return Time{Tag: asn1.GeneralizedTime, Value: t.UTC().Format("20060102150405Z")}
}

// Extension is one entry of the extension sequence.
type Extension struct {
	ID       encoding_asn1.ObjectIdentifier
	Critical bool
	// CriticalEncoding, when set, is written as the BOOLEAN content
	// regardless of Critical.
	CriticalEncoding []byte
	Value            []byte
}

// Template describes a synthetic certificate. The key and signature are
// placeholders; nothing here is verifiable.
type Template struct {
	// V1 omits the version field.
	V1         bool
	Serial     int64
	Issuer     []Attribute
	Subject    []Attribute
	NotBefore  Time
	NotAfter   Time
	Extensions []Extension
}

// Default returns a template valid during 2024 with no extensions.
func Default() Template {
	return Template{
		Serial:    4242,
		Issuer:    []Attribute{O("Test Org"), CN("Test CA")},
		Subject:   []Attribute{CN("test.example")},
		NotBefore: UTCTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		NotAfter:  UTCTime(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)),
	}
}

// With returns a copy of the default template carrying exts.
func With(exts ...Extension) Template {
	t := Default()
	t.Extensions = exts
	return t
}

// Build encodes the template. It panics on an encoding error.
func Build(t Template) []byte {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			if !t.V1 {
				b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
					b.AddASN1Int64(2)
				})
			}
			b.AddASN1Int64(t.Serial)
			addAlgorithm(b)
			addName(b, t.Issuer)
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				addTime(b, t.NotBefore)
				addTime(b, t.NotAfter)
			})
			addName(b, t.Subject)
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(oid.ECPublicKey)
					b.AddASN1ObjectIdentifier(namedCurveP256)
				})
				point := make([]byte, 65)
				point[0] = 0x04
				b.AddASN1BitString(point)
			})
			if len(t.Extensions) > 0 {
				b.AddASN1(asn1.Tag(3).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
					b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
						for _, ext := range t.Extensions {
							addExtension(b, ext)
						}
					})
				})
			}
		})
		addAlgorithm(b)
		b.AddASN1BitString([]byte{0xde, 0xad, 0xbe, 0xef})
	})
	return b.BytesOrPanic()
}

// PEM frames each DER certificate as a CERTIFICATE block.
func PEM(ders ...[]byte) string {
	var sb strings.Builder
	for _, der := range ders {
		sb.Write(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
	}
	return sb.String()
}

func addAlgorithm(b *cryptobyte.Builder) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid.SHA256WithRSAEncryption)
		b.AddASN1NULL()
	})
}

func addName(b *cryptobyte.Builder, attrs []Attribute) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, attr := range attrs {
			b.AddASN1(asn1.SET, func(b *cryptobyte.Builder) {
				b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(attr.Type)
					b.AddASN1(attr.Tag, func(b *cryptobyte.Builder) {
						b.AddBytes(attr.Value)
					})
				})
			})
		}
	})
}

func addTime(b *cryptobyte.Builder, t Time) {
	b.AddASN1(t.Tag, func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(t.Value))
	})
}

func addExtension(b *cryptobyte.Builder, ext Extension) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(ext.ID)
		switch {
		case ext.CriticalEncoding != nil:
			b.AddASN1(asn1.BOOLEAN, func(b *cryptobyte.Builder) {
				b.AddBytes(ext.CriticalEncoding)
			})
		case ext.Critical:
			b.AddASN1Boolean(true)
		}
		b.AddASN1OctetString(ext.Value)
	})
}

// GeneralName writes one GeneralName alternative.
type GeneralName func(b *cryptobyte.Builder)

// DNS is a dNSName.
func DNS(name string) GeneralName { return implicitString(2, name) }

// Email is an rfc822Name.
func Email(addr string) GeneralName { return implicitString(1, addr) }

// URI is a uniformResourceIdentifier.
func URI(uri string) GeneralName { return implicitString(6, uri) }

// IP is an iPAddress.
func IP(ip net.IP) GeneralName {
	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	return func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.Tag(7).ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddBytes(ip)
		})
	}
}

func implicitString(tag uint8, s string) GeneralName {
	return func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.Tag(tag).ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddBytes([]byte(s))
		})
	}
}

func payload(f func(b *cryptobyte.Builder)) []byte {
	b := cryptobyte.NewBuilder(nil)
	f(b)
	return b.BytesOrPanic()
}

// Raw returns a non-critical extension with an arbitrary payload.
func Raw(id encoding_asn1.ObjectIdentifier, value []byte) Extension {
	return Extension{ID: id, Value: value}
}

// SAN returns a SubjectAltName extension listing names in order.
func SAN(names ...GeneralName) Extension {
	return Extension{ID: oid.SubjectAltName, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, gn := range names {
				gn(b)
			}
		})
	})}
}

// KeyUsage returns a critical KeyUsage extension asserting bits.
func KeyUsage(bits ...int) Extension {
	highest := -1
	for _, bit := range bits {
		highest = max(highest, bit)
	}
	data := make([]byte, (highest+8)/8)
	for _, bit := range bits {
		data[bit/8] |= 0x80 >> (bit % 8)
	}
	padding := len(data)*8 - (highest + 1)
	return Extension{ID: oid.KeyUsage, Critical: true, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.BIT_STRING, func(b *cryptobyte.Builder) {
			b.AddUint8(uint8(padding))
			b.AddBytes(data)
		})
	})}
}

// BasicConstraints returns a critical BasicConstraints extension. A negative
// pathLen leaves the constraint out.
func BasicConstraints(ca bool, pathLen int) Extension {
	return Extension{ID: oid.BasicConstraints, Critical: true, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			if ca {
				b.AddASN1Boolean(true)
			}
			if pathLen >= 0 {
				b.AddASN1Int64(int64(pathLen))
			}
		})
	})}
}

// ExtKeyUsage returns an ExtKeyUsage extension listing purposes.
func ExtKeyUsage(purposes ...encoding_asn1.ObjectIdentifier) Extension {
	return Extension{ID: oid.ExtKeyUsage, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, p := range purposes {
				b.AddASN1ObjectIdentifier(p)
			}
		})
	})}
}

// Policies returns a CertificatePolicies extension with one unqualified
// PolicyInformation per identifier.
func Policies(ids ...encoding_asn1.ObjectIdentifier) Extension {
	return Extension{ID: oid.CertificatePolicies, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, id := range ids {
				b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(id)
				})
			}
		})
	})}
}

// AccessDescription is one AIA entry.
type AccessDescription struct {
	Method   encoding_asn1.ObjectIdentifier
	Location GeneralName
}

// AIA returns an AuthorityInfoAccess extension.
func AIA(descs ...AccessDescription) Extension {
	return Extension{ID: oid.AuthorityInfoAccess, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, d := range descs {
				b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(d.Method)
					d.Location(b)
				})
			}
		})
	})}
}

// CRLDistributionPoints returns a CRLDistributionPoints extension with one
// distribution point per name, each given as a fullName.
func CRLDistributionPoints(names ...GeneralName) Extension {
	return Extension{ID: oid.CRLDistributionPoints, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, gn := range names {
				b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
						b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
							gn(b)
						})
					})
				})
			}
		})
	})}
}

// SubjectKeyIdentifier returns an SKI extension.
func SubjectKeyIdentifier(id []byte) Extension {
	return Extension{ID: oid.SubjectKeyIdentifier, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1OctetString(id)
	})}
}

// AuthorityKeyIdentifier returns an AKI extension with keyIdentifier and,
// when serial is positive, an authorityCertSerialNumber.
func AuthorityKeyIdentifier(keyID []byte, serial int64) Extension {
	return Extension{ID: oid.AuthorityKeyIdentifier, Value: payload(func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1(asn1.Tag(0).ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddBytes(keyID)
			})
			if serial > 0 {
				b.AddASN1Int64WithTag(serial, asn1.Tag(2).ContextSpecific())
			}
		})
	})}
}
