// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/asn1"
	"fmt"
	"slices"

	x509der "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/der"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oid"
)

// ExtensionTable groups a certificate's extensions by identifier, keeping
// the order in which they were encoded. It is immutable once built.
type ExtensionTable struct {
	ids    []asn1.ObjectIdentifier
	groups map[string][]x509der.Extension
	count  int
}

// BuildExtensionTable groups exts by identifier. In strict mode an identifier
// that occurs more than once fails the build with ErrDuplicateExtension, so
// that no later lookup on the table can be ambiguous.
func BuildExtensionTable(exts []x509der.Extension, strict bool) (*ExtensionTable, error) {
	t := &ExtensionTable{
		groups: make(map[string][]x509der.Extension, len(exts)),
		count:  len(exts),
	}

	for _, ext := range exts {
		key := ext.ID.String()
		if _, seen := t.groups[key]; !seen {
			t.ids = append(t.ids, ext.ID)
		}
		t.groups[key] = append(t.groups[key], ext)
	}

	if strict {
		for _, id := range t.ids {
			if n := len(t.groups[id.String()]); n > 1 {
				return nil, fmt.Errorf("%w: %w: %s appears %d times", ErrDecode, ErrDuplicateExtension, oid.Name(id), n)
			}
		}
	}

	return t, nil
}

// ResolveSingle returns the decoded value of the extension id. It returns
// nil and no error when the extension is absent, ErrMultipleExtensionValues
// when it occurs more than once and ErrCorruptExtension when its payload was
// not decoded.
func (t *ExtensionTable) ResolveSingle(id asn1.ObjectIdentifier) (x509der.ExtensionValue, error) {
	group := t.groups[id.String()]
	switch len(group) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %w: %s appears %d times", ErrCertificate, ErrMultipleExtensionValues, oid.Name(id), len(group))
	}

	if group[0].Decoded == nil {
		return nil, corruptExtension(id)
	}
	return group[0].Decoded, nil
}

// ResolveAll returns the decoded values of every occurrence of the extension
// id, in encoding order. It fails with ErrCorruptExtension if any occurrence
// was not decoded.
func (t *ExtensionTable) ResolveAll(id asn1.ObjectIdentifier) ([]x509der.ExtensionValue, error) {
	group := t.groups[id.String()]
	values := make([]x509der.ExtensionValue, 0, len(group))
	for _, ext := range group {
		if ext.Decoded == nil {
			return nil, corruptExtension(id)
		}
		values = append(values, ext.Decoded)
	}
	return values, nil
}

func corruptExtension(id asn1.ObjectIdentifier) error {
	return fmt.Errorf("%w: %w: %s", ErrCertificate, ErrCorruptExtension, oid.Name(id))
}

// Len returns the number of extensions, counting repeats.
func (t *ExtensionTable) Len() int { return t.count }

// IDs returns the distinct extension identifiers in first-seen order.
func (t *ExtensionTable) IDs() []asn1.ObjectIdentifier { return slices.Clone(t.ids) }

// Lookup returns every occurrence of the extension id.
func (t *ExtensionTable) Lookup(id asn1.ObjectIdentifier) []x509der.Extension {
	return slices.Clone(t.groups[id.String()])
}

// IsCritical reports whether any occurrence of the extension id is marked critical.
func (t *ExtensionTable) IsCritical(id asn1.ObjectIdentifier) bool {
	return slices.ContainsFunc(t.groups[id.String()], func(ext x509der.Extension) bool {
		return ext.Critical
	})
}

// Assertion is the answer to "is this asserted?" for a value carried by an
// optional extension.
type Assertion int

const (
	// NotPresent means the extension carrying the value is absent.
	NotPresent Assertion = iota
	// NotAsserted means the extension is present and the value is not set.
	NotAsserted
	// Asserted means the extension is present and the value is set.
	Asserted
)

func assertion(set bool) Assertion {
	if set {
		return Asserted
	}
	return NotAsserted
}

// IsAsserted reports whether a is Asserted.
func (a Assertion) IsAsserted() bool { return a == Asserted }

// IsPresent reports whether the extension was present.
func (a Assertion) IsPresent() bool { return a != NotPresent }

func (a Assertion) String() string {
	switch a {
	case NotPresent:
		return "not present"
	case NotAsserted:
		return "false"
	case Asserted:
		return "true"
	}
	return fmt.Sprintf("Assertion(%d)", int(a))
}
