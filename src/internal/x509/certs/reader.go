// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"iter"

	x509pem "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/pem"
)

// Reader decodes the CERTIFICATE blocks of a PEM text one at a time. It is
// single-pass and not safe for concurrent use.
//
//	r := x509certs.CertsFromText(text, false, true)
//	for r.Next() {
//		cert := r.Certificate()
//		...
//	}
//	if err := r.Err(); err != nil {
//		...
//	}
type Reader struct {
	blocks      *x509pem.Scanner
	skipInvalid bool
	strict      bool

	cert *Certificate
	err  error
}

// CertsFromText returns a Reader over the certificates of text. With
// skipInvalid, blocks that fail to decode are passed over; otherwise the
// first failure ends the sequence and is reported by Err. Framing errors
// from the PEM layer are always reported.
func CertsFromText(text []byte, skipInvalid, strict bool) *Reader {
	return &Reader{
		blocks:      x509pem.Blocks(text, skipInvalid, CertificateBlockType),
		skipInvalid: skipInvalid,
		strict:      strict,
	}
}

// CertsFromFile is CertsFromText over the contents of the named file.
func CertsFromFile(path string, skipInvalid, strict bool) (*Reader, error) {
	blocks, err := x509pem.BlocksFromFile(path, skipInvalid, CertificateBlockType)
	if err != nil {
		return nil, err
	}
	return &Reader{blocks: blocks, skipInvalid: skipInvalid, strict: strict}, nil
}

// Next decodes the next certificate. It returns false once the input is
// exhausted or an error stopped the reader.
func (r *Reader) Next() bool {
	r.cert = nil
	if r.err != nil {
		return false
	}

	for r.blocks.Next() {
		cert, err := Decode(r.blocks.Block().Bytes, r.strict)
		if err != nil {
			if r.skipInvalid {
				continue
			}
			r.err = err
			return false
		}
		r.cert = cert
		return true
	}

	r.err = r.blocks.Err()
	return false
}

// Certificate returns the certificate decoded by the last call to Next.
func (r *Reader) Certificate() *Certificate { return r.cert }

// Err returns the error that stopped the reader, if any.
func (r *Reader) Err() error { return r.err }

// All returns the remaining certificates as a sequence. The error that
// stopped the reader, if any, is yielded last with a nil certificate.
func (r *Reader) All() iter.Seq2[*Certificate, error] {
	return func(yield func(*Certificate, error) bool) {
		for r.Next() {
			if !yield(r.cert, nil) {
				return
			}
		}
		if r.err != nil {
			yield(nil, r.err)
		}
	}
}

// DecodeAll decodes every certificate of data. PEM text holding only
// CERTIFICATE blocks goes through a Reader, so skipInvalid applies; PEM text
// with PKCS7 blocks and binary input are handled by DecodeAny.
func DecodeAll(data []byte, skipInvalid, strict bool) ([]*Certificate, error) {
	if !IsPEM(data) || bytes.Contains(data, []byte("-----BEGIN "+PKCS7BlockType+"-----")) {
		return DecodeAny(data, strict)
	}

	var certs []*Certificate
	r := CertsFromText(data, skipInvalid, strict)
	for r.Next() {
		certs = append(certs, r.Certificate())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return certs, nil
}
