// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the Composer stage.

package libyaml

import (
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func parseOne(t *testing.T, src string) *Node {
	t.Helper()
	c := NewComposer([]byte(src))
	defer c.Destroy()
	n := c.Parse()
	assert.NotNil(t, n)
	return n
}

func TestComposerScalar(t *testing.T) {
	n := parseOne(t, "hello")
	assert.Equal(t, ScalarNode, n.Kind)
	assert.Equal(t, "hello", n.Value)
	assert.Equal(t, "?", n.Tag)
}

func TestComposerQuotedScalarIsNonSpecific(t *testing.T) {
	n := parseOne(t, `"123"`)
	assert.Equal(t, ScalarNode, n.Kind)
	assert.Equal(t, "123", n.Value)
	assert.Equal(t, "!", n.Tag)
}

func TestComposerExplicitTag(t *testing.T) {
	n := parseOne(t, "!!binary aGVsbG8=")
	assert.Equal(t, ScalarNode, n.Kind)
	assert.Equal(t, BINARY_TAG, n.Tag)
}

func TestComposerSequence(t *testing.T) {
	n := parseOne(t, "[1, 2, 3]")
	assert.Equal(t, SequenceNode, n.Kind)
	assert.Equal(t, 3, len(n.Content))
	assert.Equal(t, "1", n.Content[0].Value)
}

func TestComposerMapping(t *testing.T) {
	n := parseOne(t, "a: 1\nb: 2\n")
	assert.Equal(t, MappingNode, n.Kind)
	assert.Equal(t, 4, len(n.Content))
	assert.Equal(t, "a", n.Content[0].Value)
	assert.Equal(t, "1", n.Content[1].Value)
}

// DuplicateKey verifies that a repeated mapping key keeps its original
// position but takes the last value written, per the documented ordering
// invariant.
func TestComposerDuplicateKey(t *testing.T) {
	n := parseOne(t, "a: 1\nb: 2\na: 3\n")
	assert.Equal(t, MappingNode, n.Kind)
	assert.Equal(t, 4, len(n.Content))
	assert.Equal(t, "a", n.Content[0].Value)
	assert.Equal(t, "3", n.Content[1].Value)
	assert.Equal(t, "b", n.Content[2].Value)
}

func TestComposerAnchorAlias(t *testing.T) {
	n := parseOne(t, "a: &x hello\nb: *x\n")
	assert.Equal(t, MappingNode, n.Kind)
	value, key := n.Content[1], n.Content[2]
	alias := n.Content[3]
	assert.Equal(t, "b", key.Value)
	assert.Equal(t, value.Value, alias.Value)
}

func TestComposerUndefinedAliasFails(t *testing.T) {
	c := NewComposer([]byte("*missing\n"))
	defer c.Destroy()
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		ye, ok := r.(*YAMLError)
		assert.True(t, ok)
		var ce ComposerError
		assert.True(t, errorsAs(ye.Err, &ce))
		assert.Equal(t, AnchorNotFound, ce.Kind)
	}()
	c.Parse()
}

func TestComposerAnchorsDoNotCrossDocuments(t *testing.T) {
	c := NewComposer([]byte("--- &x a\n--- *x\n"))
	defer c.Destroy()
	first := c.Parse()
	assert.Equal(t, "a", first.Value)
	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()
	c.Parse()
}

func errorsAs(err error, target *ComposerError) bool {
	if ce, ok := err.(ComposerError); ok {
		*target = ce
		return true
	}
	return false
}
