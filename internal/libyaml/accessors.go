// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Public tree accessors (the consumer-facing half of component G): typed
// scalar conversion following the core schema, sequence/mapping indexing,
// and an iterator over a node's children. Conversion errors are raised here,
// at the call site, rather than during parsing.

package libyaml

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// resolvedTag returns the core-schema type a "?" or "!" sentinel tag resolves
// to, or the tag string itself when the node already carries an explicit
// tag such as !!binary or a custom tag.
func (n *Node) resolvedTag() string {
	switch n.Tag {
	case "?":
		return coreSchemaTag(n.Value)
	case "!":
		return STR_TAG
	default:
		return n.Tag
	}
}

// coreSchemaTag classifies a plain scalar's text per the core schema
// grammar: null, bool, int, float, or (by default) str.
func coreSchemaTag(value string) string {
	switch value {
	case "", "~", "null", "Null", "NULL":
		return NULL_TAG
	case "true", "True", "TRUE", "false", "False", "FALSE",
		"yes", "Yes", "YES", "no", "No", "NO",
		"on", "On", "ON", "off", "Off", "OFF":
		return BOOL_TAG
	}
	if isCoreInt(value) {
		return INT_TAG
	}
	if isCoreFloat(value) {
		return FLOAT_TAG
	}
	return STR_TAG
}

func isCoreInt(value string) bool {
	s := value
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s = s[2:]
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			if !isHex([]byte(s), i) {
				return false
			}
		}
		return true
	case len(s) > 1 && s[0] == '0':
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '7' {
				return false
			}
		}
		return true
	default:
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	}
}

func isCoreFloat(value string) bool {
	switch value {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF", "-.inf", "-.Inf", "-.INF",
		".nan", ".NaN", ".NAN":
		return true
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return false
	}
	// A bare integer literal parses fine as a float too, but it is not a
	// float per the core schema unless it contains '.' or an exponent.
	return strings.ContainsAny(value, ".eE") && !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X")
}

func parseCoreInt(value string) (int64, bool) {
	s, base := value, 10
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case len(s) > 1 && s[0] == '0':
		base = 8
	}
	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		return -int64(u), true
	}
	return int64(u), true
}

func parseCoreFloat(value string) (float64, bool) {
	switch value {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return posInf(), true
	case "-.inf", "-.Inf", "-.INF":
		return negInf(), true
	case ".nan", ".NaN", ".NAN":
		return nanVal(), true
	}
	f, err := strconv.ParseFloat(value, 64)
	return f, err == nil
}

func posInf() float64 { var f float64 = 1; return f / 0 * 1 }
func negInf() float64 { return -posInf() }
func nanVal() float64 { z := 0.0; return z / z }

// ResolvedTag returns the node's core-schema type: the long-form tag a
// "?"/"!" sentinel classifies to, or the node's own explicit tag otherwise.
// Unlike the raw Tag field, it never returns a sentinel.
func (n *Node) ResolvedTag() string {
	return n.resolvedTag()
}

// Size reports the number of elements in a sequence or key/value pairs in a
// mapping.
func (n *Node) Size() (int, error) {
	switch n.Kind {
	case SequenceNode:
		return len(n.Content), nil
	case MappingNode:
		return len(n.Content) / 2, nil
	default:
		return 0, newAccessorError(WrongKind, "Size", n)
	}
}

// At returns the i'th element of a sequence node.
func (n *Node) At(i int) (*Node, error) {
	if n.Kind != SequenceNode {
		return nil, newAccessorError(WrongKind, "At", n)
	}
	if i < 0 || i >= len(n.Content) {
		return nil, newAccessorError(KeyNotFound, "At", n)
	}
	return n.Content[i], nil
}

// AtKey looks up a mapping entry by structured key equality, per the
// documented rule that key comparison is by value, not identity.
func (n *Node) AtKey(key *Node) (*Node, error) {
	if n.Kind != MappingNode {
		return nil, newAccessorError(WrongKind, "AtKey", n)
	}
	if i := findKey(n, key); i >= 0 {
		return n.Content[i+1], nil
	}
	return nil, newAccessorError(KeyNotFound, "AtKey", n)
}

// AsScalar returns the node's materialized text. It is valid for any
// scalar node regardless of its resolved type.
func (n *Node) AsScalar() (string, error) {
	if n.Kind != ScalarNode {
		return "", newAccessorError(WrongKind, "AsScalar", n)
	}
	return n.Value, nil
}

// AsInt converts a scalar to an int64 following the core schema integer
// grammar (decimal, 0x/0X hex, leading-0 octal, optional sign). A quoted or
// otherwise explicitly-non-int-tagged scalar never resolves as an int, even
// if its text happens to look like one.
func (n *Node) AsInt() (int64, error) {
	if n.Kind != ScalarNode {
		return 0, newAccessorError(WrongKind, "AsInt", n)
	}
	if n.resolvedTag() != INT_TAG {
		return 0, newAccessorError(InvalidScalar, "AsInt", n)
	}
	if v, ok := parseCoreInt(n.Value); ok {
		return v, nil
	}
	return 0, newAccessorError(InvalidScalar, "AsInt", n)
}

// AsUint converts a scalar to a uint64, rejecting negative values.
func (n *Node) AsUint() (uint64, error) {
	v, err := n.AsInt()
	if err != nil || v < 0 {
		return 0, newAccessorError(InvalidScalar, "AsUint", n)
	}
	return uint64(v), nil
}

// AsFloat converts a scalar to a float64, accepting the core schema's
// .inf/.nan spellings in addition to ordinary decimal/exponent notation.
// As with AsInt, a scalar whose resolved tag is not float never converts,
// regardless of what its literal text looks like.
func (n *Node) AsFloat() (float64, error) {
	if n.Kind != ScalarNode {
		return 0, newAccessorError(WrongKind, "AsFloat", n)
	}
	if n.resolvedTag() != FLOAT_TAG {
		return 0, newAccessorError(InvalidScalar, "AsFloat", n)
	}
	if v, ok := parseCoreFloat(n.Value); ok {
		return v, nil
	}
	return 0, newAccessorError(InvalidScalar, "AsFloat", n)
}

// AsBool converts a scalar to a bool following the true/false/yes/no/on/off
// vocabulary. Each word is accepted in lowercase, Capitalized or UPPERCASE
// spelling; other mixed-case spellings do not resolve as bool.
func (n *Node) AsBool() (bool, error) {
	if n.Kind != ScalarNode {
		return false, newAccessorError(WrongKind, "AsBool", n)
	}
	if n.resolvedTag() != BOOL_TAG {
		return false, newAccessorError(InvalidScalar, "AsBool", n)
	}
	switch n.Value {
	case "true", "True", "TRUE", "yes", "Yes", "YES", "on", "On", "ON":
		return true, nil
	case "false", "False", "FALSE", "no", "No", "NO", "off", "Off", "OFF":
		return false, nil
	}
	return false, newAccessorError(InvalidScalar, "AsBool", n)
}

// AsBinary decodes a !!binary scalar's base64 body, ignoring embedded
// whitespace and line breaks as the YAML binary convention permits. Unlike
// the other typed accessors, binary is never inferred from a plain
// scalar's text: the !!binary tag must be explicit in the source.
func (n *Node) AsBinary() ([]byte, error) {
	if n.Kind != ScalarNode {
		return nil, newAccessorError(WrongKind, "AsBinary", n)
	}
	if n.Tag != BINARY_TAG {
		return nil, newAccessorError(InvalidScalar, "AsBinary", n)
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, n.Value)
	b, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, newAccessorError(InvalidScalar, "AsBinary", n)
	}
	return b, nil
}

// Iterator walks the children of a sequence or mapping node.
type Iterator struct {
	node *Node
	pos  int
}

// Iter returns an iterator over n's children: one node per call to Value
// for a sequence, one key/value pair per call to Pair for a mapping.
func (n *Node) Iter() *Iterator {
	return &Iterator{node: n}
}

// Next advances the iterator and reports whether a child remains.
func (it *Iterator) Next() bool {
	switch it.node.Kind {
	case SequenceNode:
		if it.pos >= len(it.node.Content) {
			return false
		}
		it.pos++
		return true
	case MappingNode:
		if it.pos >= len(it.node.Content) {
			return false
		}
		it.pos += 2
		return true
	default:
		return false
	}
}

// Value returns the current sequence element. It fails if the underlying
// node is not a sequence.
func (it *Iterator) Value() (*Node, error) {
	if it.node.Kind != SequenceNode {
		return nil, newAccessorError(WrongKind, "Value", it.node)
	}
	return it.node.Content[it.pos-1], nil
}

// Pair returns the current mapping key/value pair. It fails if the
// underlying node is not a mapping.
func (it *Iterator) Pair() (*Node, *Node, error) {
	if it.node.Kind != MappingNode {
		return nil, nil, newAccessorError(WrongKind, "Pair", it.node)
	}
	return it.node.Content[it.pos-2], it.node.Content[it.pos-1], nil
}

func newAccessorError(kind ErrorKind, op string, n *Node) error {
	return ComposerError{
		Kind:    kind,
		Mark:    Mark{Line: n.Line - 1, Column: n.Column - 1},
		Message: op + ": " + kind.String(),
	}
}
