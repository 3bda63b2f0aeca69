// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509der decodes the [RFC 5280] certificate structure and the payloads
// of the standard extensions on top of [cryptobyte].
//
// Parsing runs in one of two modes. Strict mode requires DER booleans, decodable
// validity times and name attributes, and decodable payloads for every
// recognized extension. Lenient mode keeps such values undecoded so that the
// failure surfaces later, when a caller actually asks for them.
//
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package x509der
