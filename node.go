package yaml

import "github.com/yamlcore/yaml/internal/libyaml"

//-----------------------------------------------------------------------------
// Node-related type aliases and constants
//-----------------------------------------------------------------------------

type (
	// Node represents a YAML node in the document tree.
	// See internal/libyaml.Node.
	Node = libyaml.Node
	// Kind identifies the type of a YAML node.
	// See internal/libyaml.Kind.
	Kind = libyaml.Kind
	// Style controls the presentation of a YAML node.
	// See internal/libyaml.Style.
	Style = libyaml.Style
	// Iterator walks the children of a sequence or mapping node.
	// See internal/libyaml.Iterator.
	Iterator = libyaml.Iterator
)

// Re-export Kind constants
const (
	ScalarNode   = libyaml.ScalarNode
	SequenceNode = libyaml.SequenceNode
	MappingNode  = libyaml.MappingNode
)

// Re-export Style constants
const (
	TaggedStyle       = libyaml.TaggedStyle
	DoubleQuotedStyle = libyaml.DoubleQuotedStyle
	SingleQuotedStyle = libyaml.SingleQuotedStyle
	LiteralStyle      = libyaml.LiteralStyle
	FoldedStyle       = libyaml.FoldedStyle
	FlowStyle         = libyaml.FlowStyle
)

// Core schema tag strings, as returned by Node.ResolvedTag.
const (
	NULL_TAG   = libyaml.NULL_TAG
	BOOL_TAG   = libyaml.BOOL_TAG
	STR_TAG    = libyaml.STR_TAG
	INT_TAG    = libyaml.INT_TAG
	FLOAT_TAG  = libyaml.FLOAT_TAG
	SEQ_TAG    = libyaml.SEQ_TAG
	MAP_TAG    = libyaml.MAP_TAG
	BINARY_TAG = libyaml.BINARY_TAG
)
