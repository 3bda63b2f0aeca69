// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides a read-only model of [X.509] certificates.
//
// A [Certificate] is decoded once, from DER, [PEM] or a [PKCS7] bundle, and
// never changes afterwards, so it can be shared between goroutines freely.
// Decoding is strict or lenient. Strict decoding rejects non-canonical
// encodings, undecodable extension payloads and repeated extensions up front.
// Lenient decoding accepts them and lets the accessor that reads the broken
// value fail instead.
//
// Accessors for optional extensions distinguish an absent extension from a
// present one that does not assert a value; see [Assertion]. Single-valued
// lookups go through an [ExtensionTable] and fail with
// [ErrMultipleExtensionValues] when an extension is repeated.
//
// Many certificates in one PEM text are read lazily with a [Reader]:
//
//	r := x509certs.CertsFromText(bundle, true, false)
//	for cert, err := range r.All() {
//		...
//	}
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
