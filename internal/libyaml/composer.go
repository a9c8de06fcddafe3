// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Composer stage: builds a node tree from a libyaml event stream.
// Registers anchors as soon as the node they label is constructed and
// resolves aliases by substituting the anchored node directly.

package libyaml

import (
	"fmt"
	"io"
)

// Composer produces a node tree out of a libyaml event stream.
type Composer struct {
	Parser   Parser
	event    Event
	doc      *Node
	anchors  map[string]*Node
	doneInit bool
}

// NewComposer creates a new composer from a byte slice.
func NewComposer(b []byte) *Composer {
	p := Composer{
		Parser: NewParser(),
	}
	if len(b) == 0 {
		b = []byte{'\n'}
	}
	p.Parser.SetInputString(b)
	return &p
}

// NewComposerFromReader creates a new composer from an io.Reader.
func NewComposerFromReader(r io.Reader) *Composer {
	p := Composer{
		Parser: NewParser(),
	}
	p.Parser.SetInputReader(r)
	return &p
}

func (p *Composer) init() {
	if p.doneInit {
		return
	}
	p.anchors = make(map[string]*Node)
	p.expect(STREAM_START_EVENT)
	p.doneInit = true
}

func (p *Composer) Destroy() {
	if p.event.Type != NO_EVENT {
		p.event.Delete()
	}
	p.Parser.Delete()
}

// expect consumes an event from the event stream and checks that it's of
// the expected type.
func (p *Composer) expect(e EventType) {
	if p.event.Type == NO_EVENT {
		if err := p.Parser.Parse(&p.event); err != nil {
			p.fail(err)
		}
	}
	if p.event.Type == STREAM_END_EVENT {
		failf("attempted to go past the end of stream; corrupted value?")
	}
	if p.event.Type != e {
		p.fail(fmt.Errorf("expected %s event but got %s", e, p.event.Type))
	}
	p.event.Delete()
	p.event.Type = NO_EVENT
}

// peek peeks at the next event in the event stream, puts the result into
// p.event and returns the event type.
func (p *Composer) peek() EventType {
	if p.event.Type != NO_EVENT {
		return p.event.Type
	}
	if err := p.Parser.Parse(&p.event); err != nil {
		p.fail(err)
	}
	return p.event.Type
}

func (p *Composer) fail(err error) { Fail(err) }

// anchor registers n under the given anchor name. An anchor is registered
// the moment the node it labels is constructed, before any children are
// composed, so an alias to the same name seen while the node's own content
// is still being built resolves to the node as far as it has been built.
func (p *Composer) anchor(n *Node, anchor []byte) {
	if anchor != nil {
		n.Anchor = string(anchor)
		p.anchors[n.Anchor] = n
	}
}

// Parse parses the next YAML node from the event stream, returning nil once
// the stream is exhausted.
func (p *Composer) Parse() *Node {
	p.init()
	switch p.peek() {
	case SCALAR_EVENT:
		return p.scalar()
	case ALIAS_EVENT:
		return p.alias()
	case MAPPING_START_EVENT:
		return p.mapping()
	case SEQUENCE_START_EVENT:
		return p.sequence()
	case DOCUMENT_START_EVENT:
		return p.document()
	case STREAM_END_EVENT:
		return nil
	default:
		panic("internal error: attempted to parse unknown event (please report): " + p.event.Type.String())
	}
}

func (p *Composer) parseChild(parent *Node) *Node {
	child := p.Parse()
	parent.Content = append(parent.Content, child)
	return child
}

func (p *Composer) document() *Node {
	// Anchors and the tag handle table are scoped to a single document;
	// each new document starts with a clean anchor namespace.
	p.anchors = make(map[string]*Node)
	n := &Node{Kind: documentNode}
	p.doc = n
	p.expect(DOCUMENT_START_EVENT)
	p.parseChild(n)
	p.expect(DOCUMENT_END_EVENT)
	return n.Content[0]
}

// alias resolves an alias event by substituting the node registered under
// the referenced anchor. The alias carries no node kind of its own: per the
// node data model, every reachable node is a scalar, sequence or mapping.
func (p *Composer) alias() *Node {
	name := string(p.event.Anchor)
	mark := p.event.StartMark
	target, ok := p.anchors[name]
	if !ok {
		p.fail(ComposerError{
			Kind:    AnchorNotFound,
			Mark:    mark,
			Message: fmt.Sprintf("found undefined alias %q", name),
		})
	}
	p.expect(ALIAS_EVENT)
	return target
}

// resolveTag computes the canonical tag string for a node given the tag
// carried by its event (already expanded to a full URI by the parser, or
// empty/"!" when no explicit tag was written) and its kind and style.
//
// Missing tags are left as a sentinel rather than eagerly resolved to a
// core-schema type: "?" for plain scalars and collections, "!" for
// non-plain scalars. Applying the core schema to "?" scalars happens later,
// at accessor time, in the public API.
func resolveTag(kind Kind, eventTag string, plainScalar bool) string {
	switch {
	case eventTag != "":
		return eventTag
	case kind == ScalarNode && plainScalar:
		return "?"
	case kind == ScalarNode:
		return "!"
	default:
		return "?"
	}
}

func (p *Composer) scalar() *Node {
	parsedStyle := p.event.ScalarStyle()
	var nodeStyle Style
	switch {
	case parsedStyle&DOUBLE_QUOTED_SCALAR_STYLE != 0:
		nodeStyle = DoubleQuotedStyle
	case parsedStyle&SINGLE_QUOTED_SCALAR_STYLE != 0:
		nodeStyle = SingleQuotedStyle
	case parsedStyle&LITERAL_SCALAR_STYLE != 0:
		nodeStyle = LiteralStyle
	case parsedStyle&FOLDED_SCALAR_STYLE != 0:
		nodeStyle = FoldedStyle
	}
	tag := string(p.event.Tag)
	if tag != "" {
		nodeStyle |= TaggedStyle
	}
	n := &Node{
		Kind:   ScalarNode,
		Tag:    resolveTag(ScalarNode, tag, parsedStyle == PLAIN_SCALAR_STYLE || parsedStyle == ANY_SCALAR_STYLE),
		Value:  string(p.event.Value),
		Style:  nodeStyle,
		Line:   p.event.StartMark.Line + 1,
		Column: p.event.StartMark.Column + 1,
	}
	p.anchor(n, p.event.Anchor)
	p.expect(SCALAR_EVENT)
	return n
}

func (p *Composer) sequence() *Node {
	n := &Node{
		Kind:   SequenceNode,
		Tag:    resolveTag(SequenceNode, string(p.event.Tag), false),
		Line:   p.event.StartMark.Line + 1,
		Column: p.event.StartMark.Column + 1,
	}
	if p.event.SequenceStyle()&FLOW_SEQUENCE_STYLE != 0 {
		n.Style |= FlowStyle
	}
	p.anchor(n, p.event.Anchor)
	p.expect(SEQUENCE_START_EVENT)
	for p.peek() != SEQUENCE_END_EVENT {
		p.parseChild(n)
	}
	p.expect(SEQUENCE_END_EVENT)
	return n
}

// mapping folds key/value event pairs into n.Content, keeping insertion
// order; a later duplicate key's value overwrites the earlier one's without
// disturbing the earlier key's position.
func (p *Composer) mapping() *Node {
	n := &Node{
		Kind:   MappingNode,
		Tag:    resolveTag(MappingNode, string(p.event.Tag), false),
		Line:   p.event.StartMark.Line + 1,
		Column: p.event.StartMark.Column + 1,
	}
	if p.event.MappingStyle()&FLOW_MAPPING_STYLE != 0 {
		n.Style |= FlowStyle
	}
	p.anchor(n, p.event.Anchor)
	p.expect(MAPPING_START_EVENT)
	for p.peek() != MAPPING_END_EVENT {
		k := p.Parse()
		v := p.Parse()
		if i := findKey(n, k); i >= 0 {
			n.Content[i+1] = v
			continue
		}
		n.Content = append(n.Content, k, v)
	}
	p.expect(MAPPING_END_EVENT)
	return n
}

// findKey returns the content index of an existing key equal to k, or -1.
func findKey(mapping *Node, k *Node) int {
	for i := 0; i < len(mapping.Content); i += 2 {
		if nodeEqual(mapping.Content[i], k) {
			return i
		}
	}
	return -1
}

func Fail(err error) {
	panic(&YAMLError{err})
}

func failf(format string, args ...any) {
	panic(&YAMLError{fmt.Errorf("yaml: "+format, args...)})
}
