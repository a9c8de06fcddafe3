// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import "github.com/yamlcore/yaml/internal/libyaml"

// ErrorKind identifies the category of a parsing or accessor failure. The
// set is closed: every error this package raises maps to exactly one kind.
type ErrorKind = libyaml.ErrorKind

// Mark is a position in the input stream: line, column, and byte index.
type Mark = libyaml.Mark

// Diagnose extracts the kind and source position carried by an error
// returned from this package, if it is one of the package's own structured
// errors. It reports ok=false for any other error, including one produced
// by a caller's own code wrapping a document's contents.
func Diagnose(err error) (kind ErrorKind, mark Mark, ok bool) {
	switch e := err.(type) {
	case libyaml.ParserError:
		return e.Kind, e.Mark, true
	case libyaml.ScannerError:
		return e.Kind, e.Mark, true
	case libyaml.ComposerError:
		return e.Kind, e.Mark, true
	case libyaml.ReaderError:
		return e.Kind, Mark{}, true
	default:
		return 0, Mark{}, false
	}
}
