// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the public tree accessors.

package libyaml

import (
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func TestAccessorsScalarConversions(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"0", int64(0)},
		{"-42", int64(-42)},
		{"0x1F", int64(31)},
		{"017", int64(15)},
	}
	for _, tc := range cases {
		n := parseOne(t, tc.src)
		got, err := n.AsInt()
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestAccessorsQuotedIntLooksLikeStringNotInt(t *testing.T) {
	n := parseOne(t, `"42"`)
	_, err := n.AsInt()
	assert.NotNil(t, err)
	s, err := n.AsScalar()
	assert.NoError(t, err)
	assert.Equal(t, "42", s)
}

func TestAccessorsFloat(t *testing.T) {
	n := parseOne(t, "3.5")
	f, err := n.AsFloat()
	assert.NoError(t, err)
	assert.Equal(t, 3.5, f)

	n = parseOne(t, ".inf")
	f, err = n.AsFloat()
	assert.NoError(t, err)
	assert.True(t, f > 0)
}

func TestAccessorsBool(t *testing.T) {
	for _, src := range []string{"true", "Yes", "ON"} {
		n := parseOne(t, src)
		b, err := n.AsBool()
		assert.NoError(t, err)
		assert.True(t, b)
	}
	for _, src := range []string{"false", "No", "off"} {
		n := parseOne(t, src)
		b, err := n.AsBool()
		assert.NoError(t, err)
		assert.False(t, b)
	}
}

func TestAccessorsBinary(t *testing.T) {
	n := parseOne(t, "!!binary aGVsbG8=")
	b, err := n.AsBinary()
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestAccessorsBinaryRequiresExplicitTag(t *testing.T) {
	n := parseOne(t, "aGVsbG8=")
	_, err := n.AsBinary()
	assert.NotNil(t, err)
}

func TestAccessorsSizeAndAt(t *testing.T) {
	n := parseOne(t, "[10, 20, 30]")
	size, err := n.Size()
	assert.NoError(t, err)
	assert.Equal(t, 3, size)

	elem, err := n.At(1)
	assert.NoError(t, err)
	v, err := elem.AsInt()
	assert.NoError(t, err)
	assert.Equal(t, int64(20), v)

	_, err = n.At(5)
	assert.NotNil(t, err)
}

func TestAccessorsAtOnScalarFails(t *testing.T) {
	n := parseOne(t, "hello")
	_, err := n.At(0)
	assert.NotNil(t, err)
}

func TestAccessorsAtKeyScalarLookup(t *testing.T) {
	n := parseOne(t, "one: 1\ntwo: 2\n")
	key := &Node{Kind: ScalarNode, Tag: STR_TAG, Value: "two"}
	v, err := n.AtKey(key)
	assert.NoError(t, err)
	got, err := v.AsInt()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestAccessorsAtKeyMissing(t *testing.T) {
	n := parseOne(t, "one: 1\n")
	key := &Node{Kind: ScalarNode, Tag: STR_TAG, Value: "three"}
	_, err := n.AtKey(key)
	assert.NotNil(t, err)
}

func TestAccessorsAtKeyStructuredKey(t *testing.T) {
	n := parseOne(t, "? [1, 2]\n: pair\n? {a: 1}\n: map\n")
	seqKey := &Node{Kind: SequenceNode, Content: []*Node{
		{Kind: ScalarNode, Tag: "?", Value: "1"},
		{Kind: ScalarNode, Tag: "?", Value: "2"},
	}}
	v, err := n.AtKey(seqKey)
	assert.NoError(t, err)
	s, err := v.AsScalar()
	assert.NoError(t, err)
	assert.Equal(t, "pair", s)

	mapKey := &Node{Kind: MappingNode, Content: []*Node{
		{Kind: ScalarNode, Tag: "?", Value: "a"},
		{Kind: ScalarNode, Tag: "?", Value: "1"},
	}}
	v, err = n.AtKey(mapKey)
	assert.NoError(t, err)
	s, err = v.AsScalar()
	assert.NoError(t, err)
	assert.Equal(t, "map", s)
}

func TestAccessorsIterSequence(t *testing.T) {
	n := parseOne(t, "[1, 2, 3]")
	it := n.Iter()
	var seen []string
	for it.Next() {
		v, err := it.Value()
		assert.NoError(t, err)
		s, err := v.AsScalar()
		assert.NoError(t, err)
		seen = append(seen, s)
	}
	assert.DeepEqual(t, []string{"1", "2", "3"}, seen)

	_, _, err := it.Pair()
	assert.NotNil(t, err)
}

func TestAccessorsIterMapping(t *testing.T) {
	n := parseOne(t, "a: 1\nb: 2\n")
	it := n.Iter()
	var keys []string
	for it.Next() {
		k, v, err := it.Pair()
		assert.NoError(t, err)
		ks, _ := k.AsScalar()
		vs, _ := v.AsScalar()
		keys = append(keys, ks+"="+vs)
	}
	assert.DeepEqual(t, []string{"a=1", "b=2"}, keys)

	_, err := it.Value()
	assert.NotNil(t, err)
}

func TestAccessorsNullScalar(t *testing.T) {
	for _, src := range []string{"~", "null", "---"} {
		n := parseOne(t, src)
		assert.Equal(t, NULL_TAG, n.resolvedTag())
	}
}
