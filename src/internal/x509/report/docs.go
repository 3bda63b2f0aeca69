// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509report turns decoded certificates into flat summaries and
// renders them as text, markdown tables or JSON.
//
// A summary never fails because one extension is corrupt: the accessor
// error is recorded in [Summary.Problems] and summarizing carries on, which
// makes the package suitable for inspecting certificates decoded leniently.
//
//	r := x509certs.CertsFromText(pemBytes, false, false)
//	summaries, err := x509report.SummarizeAll(r, x509report.Options{Fingerprint: "sha256"})
//	if err != nil {
//		...
//	}
//	fmt.Println(x509report.Table(summaries))
package x509report
