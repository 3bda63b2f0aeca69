// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"bytes"
	"encoding/pem"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
)

// ErrPEM is returned for framing failures: a BEGIN line without its END line,
// an undecodable block body, or input without any accepted block. Only
// undecodable bodies are passed over when invalid blocks are skipped.
var ErrPEM = errors.New("x509pem: invalid PEM")

const (
	beginPrefix = "-----BEGIN "
	endPrefix   = "-----END "
	dashes      = "-----"
)

// Block is one decoded PEM block.
type Block struct {
	Label string
	Bytes []byte
}

// Scanner walks the blocks of a PEM text in order. It is single-pass and
// stops for good at the first error.
//
//	s := x509pem.Blocks(text, false, "CERTIFICATE")
//	for s.Next() {
//		use(s.Block())
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Scanner struct {
	rest        []byte
	markers     []string
	skipInvalid bool

	found bool
	done  bool
	block Block
	err   error
}

// Blocks returns a scanner over the blocks of text whose label is one of
// markers. With no markers every label is accepted.
func Blocks(text []byte, skipInvalid bool, markers ...string) *Scanner {
	return &Scanner{rest: text, markers: markers, skipInvalid: skipInvalid}
}

// BlocksFromFile reads the named file and returns a scanner over its blocks.
func BlocksFromFile(path string, skipInvalid bool, markers ...string) (*Scanner, error) {
	text, err := gc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Blocks(text, skipInvalid, markers...), nil
}

// Next advances to the next accepted block. It returns false at the end of
// input or on error; Err tells the two apart.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	for {
		start := bytes.Index(s.rest, []byte(beginPrefix))
		if start < 0 {
			if !s.found {
				return s.fail(fmt.Errorf("%w: no %s block found", ErrPEM, s.describeMarkers()))
			}
			s.done = true
			return false
		}

		header := s.rest[start+len(beginPrefix):]
		labelEnd := bytes.Index(header, []byte(dashes))
		if labelEnd < 0 || bytes.ContainsAny(header[:labelEnd], "\r\n") {
			return s.fail(fmt.Errorf("%w: malformed BEGIN line", ErrPEM))
		}
		label := string(header[:labelEnd])

		end := []byte(endPrefix + label + dashes)
		endIdx := bytes.Index(header, end)
		if endIdx < 0 {
			return s.fail(fmt.Errorf("%w: missing END line for %q", ErrPEM, label))
		}

		blockEnd := start + len(beginPrefix) + endIdx + len(end)
		raw := s.rest[start:blockEnd]
		s.rest = s.rest[blockEnd:]

		if !s.accepts(label) {
			continue
		}

		block, _ := pem.Decode(raw)
		if block == nil {
			if s.skipInvalid {
				continue
			}
			return s.fail(fmt.Errorf("%w: undecodable %s block", ErrPEM, label))
		}

		s.found = true
		s.block = Block{Label: label, Bytes: block.Bytes}
		return true
	}
}

// Block returns the block produced by the last successful call to Next.
func (s *Scanner) Block() Block { return s.block }

// Err returns the error that stopped the scanner, if any.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) fail(err error) bool {
	s.err = err
	s.done = true
	s.block = Block{}
	return false
}

func (s *Scanner) accepts(label string) bool {
	return len(s.markers) == 0 || slices.Contains(s.markers, label)
}

func (s *Scanner) describeMarkers() string {
	if len(s.markers) == 0 {
		return "PEM"
	}
	return strings.Join(s.markers, "/")
}

// FromPEM decodes the first block of text with an accepted label and returns
// its bytes and label.
func FromPEM(text []byte, markers ...string) ([]byte, string, error) {
	s := Blocks(text, false, markers...)
	if s.Next() {
		b := s.Block()
		return b.Bytes, b.Label, nil
	}
	return nil, "", s.Err()
}

// FromPEMFile is FromPEM over the contents of the named file.
func FromPEMFile(path string, markers ...string) ([]byte, string, error) {
	text, err := gc.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return FromPEM(text, markers...)
}

// ToPEM encodes der as a single block labelled marker.
func ToPEM(der []byte, marker string) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: marker, Bytes: der})
}
