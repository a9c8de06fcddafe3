// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// treeOpts ignores source-position fields: the expected trees below are
// hand-built and carry no meaningful Line/Column, so comparing them against
// a parsed tree should only look at shape, tag, and value.
var treeOpts = cmp.Options{
	cmpopts.IgnoreFields(Node{}, "Line", "Column", "Anchor", "Style"),
}

func scalar(tag, value string) *Node {
	return &Node{Kind: ScalarNode, Tag: tag, Value: value}
}

func TestTreeShapeMapping(t *testing.T) {
	p := Open([]byte("name: widget\ncount: 3\ntags: [a, b]\n"))
	defer p.Close()

	doc, err := p.NextDocument()
	if err != nil {
		t.Fatalf("NextDocument: %v", err)
	}

	want := &Node{
		Kind: MappingNode,
		Tag:  "?",
		Content: []*Node{
			scalar("?", "name"), scalar("?", "widget"),
			scalar("?", "count"), scalar("?", "3"),
			scalar("?", "tags"), {
				Kind:    SequenceNode,
				Tag:     "?",
				Content: []*Node{scalar("?", "a"), scalar("?", "b")},
			},
		},
	}

	if diff := cmp.Diff(want, doc, treeOpts...); diff != "" {
		t.Fatalf("document tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeShapeNestedMapping(t *testing.T) {
	p := Open([]byte("outer:\n  inner: 1\n"))
	defer p.Close()

	doc, err := p.NextDocument()
	if err != nil {
		t.Fatalf("NextDocument: %v", err)
	}

	want := &Node{
		Kind: MappingNode,
		Tag:  "?",
		Content: []*Node{
			scalar("?", "outer"),
			{
				Kind: MappingNode,
				Tag:  "?",
				Content: []*Node{
					scalar("?", "inner"), scalar("?", "1"),
				},
			},
		},
	}

	if diff := cmp.Diff(want, doc, treeOpts...); diff != "" {
		t.Fatalf("document tree mismatch (-want +got):\n%s", diff)
	}
}
