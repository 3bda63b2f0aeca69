// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-inspect is a command-line tool for reading X.509 certificates.
// It decodes certificates without fetching, verifying or modifying them.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-inspector/cmd/x509-inspect@latest
//
// # Usage
//
//	x509-inspect [FLAGS] [FILE...]
//	x509-inspect fingerprint [FLAGS] [FILE...]
//	x509-inspect version
//
// With no FILE, or when FILE is -, certificates are read from standard input.
// Each input may be PEM text, a DER certificate, or a DER PKCS#7 bundle.
//
// # Flags
//
//	-c, --config        Configuration file (JSON or YAML)
//	-l, --lenient       Decode leniently; unreadable fields are reported as problems
//	-k, --skip-invalid  Skip PEM blocks that fail to decode
//	    --fingerprint   Fingerprint algorithm (md5, sha1, sha224, sha256, sha384, sha512)
//	-f, --format        Output format: text, table, json or pem
//	    --color         Color the text headings: auto, always or never
//	    --at            RFC 3339 time used for the validity status (default: now)
//
// # Environment Variables
//
//	X509_INSPECT_CONFIG_FILE  Configuration file when --config is not given
//	X509_INSPECT_FORMAT       Output format
//	X509_INSPECT_FINGERPRINT  Fingerprint algorithm
//	NO_COLOR                  Disable colors in auto mode
//
// # Examples
//
// Show every field of a PEM bundle:
//
//	x509-inspect bundle.pem
//
// Summarize a DER certificate as a markdown table:
//
//	x509-inspect -f table cert.der
//
// Check the status at a given time as JSON:
//
//	x509-inspect --at 2030-01-01T00:00:00Z -f json cert.pem
//
// Look inside a certificate strict decoding rejects:
//
//	x509-inspect --lenient broken.pem
//
// Compare certificates by SHA-256 fingerprint:
//
//	cat *.pem | x509-inspect fingerprint --fingerprint sha256
package main
