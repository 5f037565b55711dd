// SPDX-License-Identifier: MIT

// Package loader - YAML codec.
//
// Format:
//
//	id: toy
//	kind: gpr
//	compartments:
//	  - {id: c, name: cytosol}
//	metabolites:
//	  - {id: A, compartment: c}
//	reactions:
//	  - id: R1
//	    reversible: false
//	    lower_bound: 0
//	    upper_bound: .inf      # or omitted
//	    rule: g1 or g2
//	    stoichiometry:         # ordered mapping metabolite: coefficient
//	      A: -1
//	      B: 2
package loader

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping node, keeping key order.
func (c *Coefficients) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: stoichiometry must be a mapping", ErrInvalidDocument, node.Line)
	}
	out := make(Coefficients, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var v float64
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: coefficient of %q: %w", ErrInvalidDocument, val.Line, key.Value, err)
		}
		out = append(out, Coefficient{Metabolite: key.Value, Value: v})
	}
	*c = out

	return nil
}

// MarshalYAML encodes the terms as an ordered mapping node.
func (c Coefficients) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, t := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.Metabolite},
			numberNode(t.Value),
		)
	}

	return node, nil
}

// numberNode tags integral values as !!int so they render without a tag.
func numberNode(v float64) *yaml.Node {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	tag := "!!float"
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		tag = "!!int"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}

// DecodeYAML reads one Document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("loader: decode yaml: %w", err)
	}

	return &doc, nil
}

// EncodeYAML writes doc with two-space indentation.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encode yaml: %w", err)
	}

	return enc.Close()
}
