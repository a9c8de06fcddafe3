// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yaml reads YAML 1.2 documents into a lightweight node tree.
//
// A Parser is obtained with Open or OpenReader and walked document by
// document with NextDocument. Each returned Node exposes its kind, tag
// and value through typed accessors, with no intermediate decoding into
// application-defined Go types.
package yaml

import (
	"io"

	"github.com/yamlcore/yaml/internal/libyaml"
)

// Parser reads a sequence of YAML documents from a byte stream.
type Parser struct {
	composer *libyaml.Composer
}

// Open returns a Parser reading YAML documents out of b.
func Open(b []byte) *Parser {
	return &Parser{composer: libyaml.NewComposer(b)}
}

// OpenReader returns a Parser reading YAML documents out of r.
func OpenReader(r io.Reader) *Parser {
	return &Parser{composer: libyaml.NewComposerFromReader(r)}
}

// NextDocument returns the root node of the next document in the stream,
// or nil once the stream is exhausted. Anchors and the default tag handle
// table are scoped to a single document and do not carry over between
// calls. A malformed document is reported as an error; the parser should
// not be reused after one.
func (p *Parser) NextDocument() (node *Node, err error) {
	defer handleErr(&err)
	return p.composer.Parse(), nil
}

// Close releases the resources held by the parser.
func (p *Parser) Close() {
	p.composer.Destroy()
}

// handleErr recovers from the panic a composer or parser failure raises
// internally and turns it into an ordinary error return.
func handleErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(*libyaml.YAMLError); ok {
			*err = e.Err
		} else {
			panic(v)
		}
	}
}
