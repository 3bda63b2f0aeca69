// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package oid is the object identifier registry used by the certificate model.
// It names the [RFC 5280] extensions, access methods, extended key usages,
// policy identifiers and name attributes that the decoders and accessors
// dispatch on.
//
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
package oid
