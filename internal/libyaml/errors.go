// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for YAML parsing.
// Provides structured error reporting with line/column information and a
// closed set of error kinds.

package libyaml

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of a parsing failure. The set is closed:
// every fatal condition the reader pipeline can raise maps to exactly one of
// these kinds.
type ErrorKind int

const (
	// InvalidEncoding marks a malformed byte sequence in the input stream:
	// an invalid UTF surrogate, an overlong or otherwise invalid UTF-8
	// sequence.
	InvalidEncoding ErrorKind = iota
	// UnexpectedEOF marks the stream ending where more input was required.
	UnexpectedEOF
	// InvalidEscape marks a malformed escape sequence in a quoted scalar.
	InvalidEscape
	// InvalidTag marks a tag handle with no matching directive, or a
	// malformed verbatim tag.
	InvalidTag
	// RepeatedYamlDirective marks a second %YAML directive in one document.
	RepeatedYamlDirective
	// RepeatedTagDirective marks a %TAG directive reusing a handle already
	// bound in the same document.
	RepeatedTagDirective
	// TagWithNoSuffix marks a tag shorthand with an empty suffix.
	TagWithNoSuffix
	// EndOfSequence marks a malformed block sequence.
	EndOfSequence
	// EndOfSequenceFlow marks a malformed flow sequence (missing `]`/`,`).
	EndOfSequenceFlow
	// EndOfMapping marks a malformed block mapping.
	EndOfMapping
	// EndOfMappingFlow marks a malformed flow mapping (missing `}`/`,`).
	EndOfMappingFlow
	// UnexpectedToken marks a token that does not fit the current
	// production; the message carries the expected set.
	UnexpectedToken
	// AnchorNotFound marks an alias with no matching prior anchor.
	AnchorNotFound
	// KeyNotFound marks a mapping lookup (Node.AtKey) that found no matching
	// key, or a sequence index (Node.At) out of range.
	KeyNotFound
	// DuplicateAnchor marks an anchor name reused within one document. It is
	// non-fatal: the later definition silently wins.
	DuplicateAnchor
	// InvalidScalar marks a scalar that could not be converted to the
	// requested type by an As* accessor.
	InvalidScalar
	// WrongKind marks an accessor called against a node of the wrong kind,
	// such as Size on a scalar or AsInt on a mapping.
	WrongKind
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEncoding:
		return "InvalidEncoding"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidTag:
		return "InvalidTag"
	case RepeatedYamlDirective:
		return "RepeatedYamlDirective"
	case RepeatedTagDirective:
		return "RepeatedTagDirective"
	case TagWithNoSuffix:
		return "TagWithNoSuffix"
	case EndOfSequence:
		return "EndOfSequence"
	case EndOfSequenceFlow:
		return "EndOfSequenceFlow"
	case EndOfMapping:
		return "EndOfMapping"
	case EndOfMappingFlow:
		return "EndOfMappingFlow"
	case UnexpectedToken:
		return "UnexpectedToken"
	case AnchorNotFound:
		return "AnchorNotFound"
	case KeyNotFound:
		return "KeyNotFound"
	case DuplicateAnchor:
		return "DuplicateAnchor"
	case InvalidScalar:
		return "InvalidScalar"
	case WrongKind:
		return "WrongKind"
	}
	return "UnknownError"
}

// MarkedYAMLError is the common shape of every fatal parsing error: a kind,
// a problem message and mark, and an optional surrounding context.
type MarkedYAMLError struct {
	Kind ErrorKind

	ContextMark    Mark
	ContextMessage string

	Mark    Mark
	Message string
}

func (e MarkedYAMLError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "yaml: %s: ", e.Kind)
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&builder, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	return builder.String()
}

// ParserError is raised by the token-to-event parser (component F) and by
// directive/tag processing (component E).
type ParserError MarkedYAMLError

func (e ParserError) Error() string { return MarkedYAMLError(e).Error() }

// ScannerError is raised by the tokenizer (component C) and by scalar body
// materialization (component D).
type ScannerError MarkedYAMLError

func (e ScannerError) Error() string { return MarkedYAMLError(e).Error() }

// ComposerError is raised by the node builder (component G): unknown
// anchors, and any other structural error discovered while folding events
// into a node tree.
type ComposerError MarkedYAMLError

func (e ComposerError) Error() string { return MarkedYAMLError(e).Error() }

// ReaderError is raised by the stream/encoding layer (component A).
type ReaderError struct {
	Kind   ErrorKind
	Offset int
	Value  int
	Err    error
}

func (e ReaderError) Error() string {
	return fmt.Sprintf("yaml: %s: offset %d: %s", e.Kind, e.Offset, e.Err)
}

func (e ReaderError) Unwrap() error { return e.Err }

// YAMLError is an internal panic payload used to unwind the composer to its
// caller; the public API recovers it and returns it as a plain error.
type YAMLError struct {
	Err error
}

func (e *YAMLError) Error() string { return e.Err.Error() }
