// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"fmt"
	"time"

	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

func decodeTime(t x509der.Time, field string) (time.Time, error) {
	ts, err := t.UTC()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w: %s: %w", ErrCertificate, ErrCorruptTime, field, err)
	}
	return ts, nil
}

// NotBefore returns the start of the validity period in UTC, at second precision.
func (c *Certificate) NotBefore() (time.Time, error) {
	return decodeTime(c.cert.Validity.NotBefore, "notBefore")
}

// NotAfter returns the end of the validity period in UTC, at second precision.
func (c *Certificate) NotAfter() (time.Time, error) {
	return decodeTime(c.cert.Validity.NotAfter, "notAfter")
}

// IsTemporallyValidAt reports whether NotBefore <= t <= NotAfter. Both bounds
// are inclusive and t is truncated to whole seconds before comparing, so any
// instant within the second of NotAfter, such as NotAfter plus 500ms, is still
// valid. IsExpired and IsNotYetValid truncate the current time the same way.
func (c *Certificate) IsTemporallyValidAt(t time.Time) (bool, error) {
	nb, err := c.NotBefore()
	if err != nil {
		return false, err
	}
	na, err := c.NotAfter()
	if err != nil {
		return false, err
	}
	t = t.UTC().Truncate(time.Second)
	return !t.Before(nb) && !t.After(na), nil
}

// IsTemporallyValidNow is IsTemporallyValidAt with the current time.
func (c *Certificate) IsTemporallyValidNow() (bool, error) {
	return c.IsTemporallyValidAt(timeNow())
}

// IsExpired reports whether the current time is strictly after NotAfter.
//
// Unlike IsTemporallyValidAt the bound is exclusive: at exactly NotAfter the
// certificate is both temporally valid and not expired.
func (c *Certificate) IsExpired() (bool, error) {
	na, err := c.NotAfter()
	if err != nil {
		return false, err
	}
	return timeNow().UTC().Truncate(time.Second).After(na), nil
}

// IsNotYetValid reports whether the current time is strictly before NotBefore.
func (c *Certificate) IsNotYetValid() (bool, error) {
	nb, err := c.NotBefore()
	if err != nil {
		return false, err
	}
	return timeNow().UTC().Truncate(time.Second).Before(nb), nil
}
