// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	yaml "github.com/yamlcore/yaml"
)

// entry is one line of a walk: a node's shape, resolved type, and (for a
// scalar) its text, plus how deep it sits in the tree.
type entry struct {
	Depth int    `json:"depth"`
	Kind  string `json:"kind"`
	Tag   string `json:"tag,omitempty"`
	Value string `json:"value,omitempty"`
}

// elided marks the point in the walk where maxDepth cut the traversal off.
const elided = "..."

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}

// walk flattens node into a depth-ordered list of entries, honoring
// maxDepth (a negative value means unlimited). A mapping contributes one
// entry per key it holds, followed immediately by that key's own subtree,
// so the output reads as an indented tree rather than a flat key/value list.
func walk(node *yaml.Node, depth, maxDepth int, out *[]entry) error {
	if maxDepth >= 0 && depth > maxDepth {
		*out = append(*out, entry{Depth: depth, Kind: elided})
		return nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		s, err := node.AsScalar()
		if err != nil {
			return err
		}
		*out = append(*out, entry{Depth: depth, Kind: kindName(node.Kind), Tag: node.ResolvedTag(), Value: s})
		return nil

	case yaml.SequenceNode:
		*out = append(*out, entry{Depth: depth, Kind: kindName(node.Kind)})
		it := node.Iter()
		for it.Next() {
			v, err := it.Value()
			if err != nil {
				return err
			}
			if err := walk(v, depth+1, maxDepth, out); err != nil {
				return err
			}
		}
		return nil

	case yaml.MappingNode:
		*out = append(*out, entry{Depth: depth, Kind: kindName(node.Kind)})
		it := node.Iter()
		for it.Next() {
			k, v, err := it.Pair()
			if err != nil {
				return err
			}
			ks, err := k.AsScalar()
			if err != nil {
				// A structured key: fall back to its kind rather than failing
				// the whole walk over a key this tool cannot render inline.
				ks = kindName(k.Kind)
			}
			*out = append(*out, entry{Depth: depth + 1, Kind: "key", Value: ks})
			if err := walk(v, depth+2, maxDepth, out); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("yamlwalk: unrecognized node kind %v", node.Kind)
	}
}

func printText(w io.Writer, entries []entry) error {
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Depth)
		switch {
		case e.Kind == elided:
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, elided); err != nil {
				return err
			}
		case e.Kind == "key":
			if _, err := fmt.Fprintf(w, "%s- %s:\n", indent, e.Value); err != nil {
				return err
			}
		case e.Tag != "":
			if _, err := fmt.Fprintf(w, "%s%s<%s> %q\n", indent, e.Kind, e.Tag, e.Value); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, e.Kind); err != nil {
				return err
			}
		}
	}
	return nil
}

func printJSON(w io.Writer, documents [][]entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents)
}
