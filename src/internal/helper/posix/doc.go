// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix derives the program name shown in command usage lines.
//
//	cmd := &cobra.Command{
//		Use: posix.ExecutableName("x509-inspect") + " [FILE...]",
//	}
//
// Results for a few invocations:
//
//   - "/usr/local/bin/x509-inspect" gives "x509-inspect"
//   - "C:\bin\x509-inspect.exe" gives "x509-inspect", on any OS
//   - an empty os.Args gives the fallback
package posix
