// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	utcTimeFormat         = "060102150405Z0700"
	utcTimeNoSecFormat    = "0601021504Z0700"
	generalizedTimeFormat = "20060102150405Z0700"

	// DER forms: seconds present, no fraction, Zulu only.
	utcTimeDERFormat         = "060102150405Z"
	generalizedTimeDERFormat = "20060102150405Z"
)

var errNonDERTime = errors.New("not in DER form")

//	Time ::= CHOICE {
//	  utcTime        UTCTime,
//	  generalTime    GeneralizedTime }
//
// Time keeps the encoded value so that an undecodable time only fails when
// it is read.
type Time struct {
	Tag asn1.Tag
	Raw []byte
}

// UTC decodes t to a UTC timestamp truncated to whole seconds. UTCTime
// without seconds and zone offsets are accepted.
func (t Time) UTC() (time.Time, error) { return t.decode(false) }

// decode parses t. Strict decoding only accepts the DER forms
// YYMMDDHHMMSSZ and YYYYMMDDHHMMSSZ.
func (t Time) decode(strict bool) (time.Time, error) {
	s := string(t.Raw)

	var (
		parsed time.Time
		err    error
	)
	switch t.Tag {
	case asn1.UTCTime:
		switch {
		case strict && len(s) != len(utcTimeDERFormat):
			err = errNonDERTime
		case strict:
			parsed, err = time.Parse(utcTimeDERFormat, s)
		default:
			parsed, err = time.Parse(utcTimeFormat, s)
			if err != nil {
				parsed, err = time.Parse(utcTimeNoSecFormat, s)
			}
		}
		if err == nil && parsed.Year() >= 2050 {
			// UTCTime years 50..99 belong to the twentieth century.
			parsed = parsed.AddDate(-100, 0, 0)
		}
	case asn1.GeneralizedTime:
		switch {
		case strict && len(s) != len(generalizedTimeDERFormat):
			err = errNonDERTime
		case strict:
			parsed, err = time.Parse(generalizedTimeDERFormat, s)
		default:
			parsed, err = time.Parse(generalizedTimeFormat, s)
		}
	default:
		return time.Time{}, fmt.Errorf("%w: unexpected tag %d", ErrMalformedTime, t.Tag)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return parsed.UTC().Truncate(time.Second), nil
}

//	Validity ::= SEQUENCE {
//	  notBefore      Time,
//	  notAfter       Time }
type Validity struct {
	NotBefore Time
	NotAfter  Time
}

func parseValidity(der *cryptobyte.String, strict bool) (Validity, error) {
	var validity cryptobyte.String
	if !der.ReadASN1(&validity, asn1.SEQUENCE) {
		return Validity{}, fmt.Errorf("%w: reading validity", ErrMalformed)
	}

	var v Validity
	for _, dst := range []*Time{&v.NotBefore, &v.NotAfter} {
		var raw cryptobyte.String
		if !validity.ReadAnyASN1(&raw, &dst.Tag) {
			return Validity{}, fmt.Errorf("%w: reading validity time", ErrMalformed)
		}
		dst.Raw = raw
		if strict {
			if _, err := dst.decode(true); err != nil {
				return Validity{}, err
			}
		}
	}

	if !validity.Empty() {
		return Validity{}, fmt.Errorf("%w: trailing data in validity", ErrMalformed)
	}

	return v, nil
}
