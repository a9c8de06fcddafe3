// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node is the node-graph data model produced by the composer (component G):
// a tagged variant of scalar, sequence and mapping, carrying a resolved tag
// string and a source Mark.

package libyaml

// Kind identifies which of the three node shapes a Node holds.
type Kind int

const (
	ScalarNode Kind = iota
	SequenceNode
	MappingNode
	// documentNode is an internal wrapper used only while the composer is
	// assembling a document root; it never escapes to the public API.
	documentNode
)

// Style records how a node's source was written. It is presentation only:
// type resolution reads the node's Tag sentinel (a quoted "123" carries "!"
// and is never read back as an int), not its Style.
type Style int8

const (
	TaggedStyle       Style = 1 << iota // explicit tag present in the source
	DoubleQuotedStyle                   // "..."
	SingleQuotedStyle                   // '...'
	LiteralStyle                        // |
	FoldedStyle                         // >
	FlowStyle                           // [...] or {...}
)

// Node is one node of a parsed document tree.
//
// For a ScalarNode, Value holds the scalar's materialized text and Content
// is nil. For a SequenceNode, Content holds one entry per element. For a
// MappingNode, Content holds key and value alternating: Content[2*i] is the
// i'th key, Content[2*i+1] is its value.
type Node struct {
	Kind  Kind
	Tag   string
	Value string
	Style Style

	Content []*Node

	Anchor string

	Line, Column int
}

// nodeEqual implements the deep value equality that mapping key lookup is
// specified on: two nodes are equal when they have the same kind and, for
// scalars, the same resolved tag and text or, for collections, pairwise
// equal content in the same order (collection tags are not compared).
// Identity and anchors never factor in, so
// an alias and a second literal copy of the same structure are
// indistinguishable as keys.
func nodeEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ScalarNode:
		// Compare by resolved type, not the raw tag sentinel, so that a
		// plain 1 and a quoted "1" (resolved tags int vs str) are
		// correctly distinguished even though their literal text matches,
		// while two plain scalars with equivalent but differently-styled
		// source compare equal.
		return a.resolvedTag() == b.resolvedTag() && a.Value == b.Value
	case SequenceNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !nodeEqual(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	case MappingNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !nodeEqual(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	}
	return false
}
