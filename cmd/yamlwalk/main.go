// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// yamlwalk is a small inspection tool for the yaml package: it opens a
// file (or stdin), walks every document in it, and prints the resulting
// node structure as text or JSON. It exists to exercise the reader
// end to end, the way the teacher's own cmd/go-yaml tool exercises its
// library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
