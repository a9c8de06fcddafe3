// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"strings"
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func TestParserSingleDocument(t *testing.T) {
	p := Open([]byte("a: 1\nb: 2\n"))
	defer p.Close()

	doc, err := p.NextDocument()
	assert.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, MappingNode, doc.Kind)

	doc, err = p.NextDocument()
	assert.NoError(t, err)
	assert.IsNil(t, doc)
}

func TestParserMultipleDocuments(t *testing.T) {
	p := Open([]byte("--- 1\n--- 2\n--- 3\n"))
	defer p.Close()

	var values []string
	for {
		doc, err := p.NextDocument()
		assert.NoError(t, err)
		if doc == nil {
			break
		}
		s, err := doc.AsScalar()
		assert.NoError(t, err)
		values = append(values, s)
	}
	assert.DeepEqual(t, []string{"1", "2", "3"}, values)
}

func TestParserMalformedDocumentReturnsError(t *testing.T) {
	p := Open([]byte("a: [1, 2\n"))
	defer p.Close()

	_, err := p.NextDocument()
	assert.NotNil(t, err)
}

func TestOpenReader(t *testing.T) {
	p := OpenReader(strings.NewReader("x: y\n"))
	defer p.Close()

	doc, err := p.NextDocument()
	assert.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, MappingNode, doc.Kind)
}
