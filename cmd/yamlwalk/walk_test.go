// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	yaml "github.com/yamlcore/yaml"
)

func parseDoc(t *testing.T, src string) *yaml.Node {
	t.Helper()
	p := yaml.Open([]byte(src))
	defer p.Close()
	doc, err := p.NextDocument()
	if err != nil {
		t.Fatalf("NextDocument: %v", err)
	}
	return doc
}

func TestWalkScalar(t *testing.T) {
	doc := parseDoc(t, "42\n")
	var entries []entry
	if err := walk(doc, 0, -1, &entries); err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Kind != "scalar" || entries[0].Value != "42" || entries[0].Tag != yaml.INT_TAG {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestWalkMapping(t *testing.T) {
	doc := parseDoc(t, "a: 1\nb: 2\n")
	var entries []entry
	if err := walk(doc, 0, -1, &entries); err != nil {
		t.Fatalf("walk: %v", err)
	}
	// mapping root, then key/value pairs for a and b.
	if entries[0].Kind != "mapping" {
		t.Fatalf("entries[0] = %+v, want mapping root", entries[0])
	}
	var keys []string
	for _, e := range entries {
		if e.Kind == "key" {
			keys = append(keys, e.Value)
		}
	}
	if strings.Join(keys, ",") != "a,b" {
		t.Fatalf("keys = %v, want [a b]", keys)
	}
}

func TestWalkMaxDepthElides(t *testing.T) {
	doc := parseDoc(t, "a:\n  b:\n    c: 1\n")
	var entries []entry
	if err := walk(doc, 0, 1, &entries); err != nil {
		t.Fatalf("walk: %v", err)
	}
	var sawElided bool
	for _, e := range entries {
		if e.Kind == elided {
			sawElided = true
		}
	}
	if !sawElided {
		t.Fatalf("expected an elided entry with max-depth 1, got %+v", entries)
	}
}

func TestPrintTextScalar(t *testing.T) {
	doc := parseDoc(t, "hello\n")
	var entries []entry
	if err := walk(doc, 0, -1, &entries); err != nil {
		t.Fatalf("walk: %v", err)
	}
	var buf bytes.Buffer
	if err := printText(&buf, entries); err != nil {
		t.Fatalf("printText: %v", err)
	}
	if !strings.Contains(buf.String(), `"hello"`) {
		t.Fatalf("printText output missing scalar value: %q", buf.String())
	}
}

func TestPrintJSONRoundTrips(t *testing.T) {
	doc := parseDoc(t, "[1, 2]\n")
	var entries []entry
	if err := walk(doc, 0, -1, &entries); err != nil {
		t.Fatalf("walk: %v", err)
	}
	var buf bytes.Buffer
	if err := printJSON(&buf, [][]entry{entries}); err != nil {
		t.Fatalf("printJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"sequence"`) {
		t.Fatalf("printJSON output missing sequence kind: %q", buf.String())
	}
}
