// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testcert builds certificate fixtures for tests: a real leaf
// certificate and synthetic DER certificates assembled from a Template, which
// can carry duplicate extensions, corrupt payloads and arbitrary validity times.
package testcert
