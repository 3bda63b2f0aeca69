// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pem frames DER data in [RFC 7468] textual encoding.
//
// Blocks are selected by their label ("marker"); blocks with other labels are
// passed over. A BEGIN line without its END line is always an error. A block
// whose body does not decode, and input holding no accepted block at all, are
// errors unless the caller asked to skip invalid blocks.
//
// [RFC 7468]: https://www.rfc-editor.org/rfc/rfc7468
package x509pem
