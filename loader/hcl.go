// SPDX-License-Identifier: MIT

// Package loader - HCL codec.
//
// Format:
//
//	model "toy" {
//	  kind = "gpr"
//
//	  compartment "c" { name = "cytosol" }
//	  metabolite "A" { compartment = "c" }
//	  gene "g1" {}
//
//	  reaction "R1" {
//	    reversible  = false
//	    lower_bound = 0
//	    upper_bound = inf
//	    rule        = "g1 or g2"
//
//	    metabolite "A" { coefficient = -1 }
//	    metabolite "B" { coefficient = 2 }
//	  }
//	}
//
// The evaluation context exposes `inf`, so `-inf` and `inf` are legal bound
// values; both decode as unbounded.
package loader

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// infIdent is the variable bound to +Inf during evaluation.
const infIdent = "inf"

// hclRoot represents the top-level structure of a model file for decoding.
type hclRoot struct {
	Models []*hclModel `hcl:"model,block"`
}

type hclModel struct {
	ID           string            `hcl:"id,label"`
	Kind         string            `hcl:"kind,optional"`
	Compartments []*hclCompartment `hcl:"compartment,block"`
	Metabolites  []*hclMetabolite  `hcl:"metabolite,block"`
	Genes        []*hclGene        `hcl:"gene,block"`
	Reactions    []*hclReaction    `hcl:"reaction,block"`
}

type hclCompartment struct {
	ID   string `hcl:"id,label"`
	Name string `hcl:"name,optional"`
}

type hclMetabolite struct {
	ID          string `hcl:"id,label"`
	Name        string `hcl:"name,optional"`
	Compartment string `hcl:"compartment,optional"`
}

type hclGene struct {
	ID   string `hcl:"id,label"`
	Name string `hcl:"name,optional"`
}

type hclReaction struct {
	ID         string         `hcl:"id,label"`
	Name       string         `hcl:"name,optional"`
	Reversible *bool          `hcl:"reversible,optional"`
	LowerBound hcl.Expression `hcl:"lower_bound,optional"`
	UpperBound hcl.Expression `hcl:"upper_bound,optional"`
	Rule       string         `hcl:"rule,optional"`
	Terms      []*hclTerm     `hcl:"metabolite,block"`
}

type hclTerm struct {
	Metabolite  string  `hcl:"id,label"`
	Coefficient float64 `hcl:"coefficient"`
}

// evalContext exposes the constants available in expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{infIdent: cty.PositiveInfinity},
	}
}

// DecodeHCL parses src (filename is used in diagnostics) into a Document.
// The file must contain exactly one model block.
func DecodeHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to parse HCL file %s: %w", filename, diags)
	}

	ctx := evalContext()
	var root hclRoot
	diags = gohcl.DecodeBody(file.Body, ctx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to decode HCL file %s: %w", filename, diags)
	}
	if len(root.Models) != 1 {
		return nil, fmt.Errorf("%w: %s: want exactly one model block, got %d", ErrInvalidDocument, filename, len(root.Models))
	}

	doc, diags := root.Models[0].document(ctx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to decode HCL file %s: %w", filename, diags)
	}

	return doc, nil
}

// document translates the decoded blocks into a Document, evaluating bounds.
func (hm *hclModel) document(ctx *hcl.EvalContext) (*Document, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	doc := &Document{ID: hm.ID, Kind: Kind(hm.Kind)}
	for _, c := range hm.Compartments {
		doc.Compartments = append(doc.Compartments, CompartmentDoc{ID: c.ID, Name: c.Name})
	}
	for _, m := range hm.Metabolites {
		doc.Metabolites = append(doc.Metabolites, MetaboliteDoc{ID: m.ID, Name: m.Name, Compartment: m.Compartment})
	}
	for _, g := range hm.Genes {
		doc.Genes = append(doc.Genes, GeneDoc{ID: g.ID, Name: g.Name})
	}
	for _, r := range hm.Reactions {
		lo, loDiags := boundValue(r.LowerBound, ctx)
		hi, hiDiags := boundValue(r.UpperBound, ctx)
		diags = append(diags, loDiags...)
		diags = append(diags, hiDiags...)
		rd := ReactionDoc{
			ID:         r.ID,
			Name:       r.Name,
			Reversible: r.Reversible,
			LowerBound: lo,
			UpperBound: hi,
			Rule:       r.Rule,
		}
		for _, t := range r.Terms {
			rd.Stoichiometry = append(rd.Stoichiometry, Coefficient{Metabolite: t.Metabolite, Value: t.Coefficient})
		}
		doc.Reactions = append(doc.Reactions, rd)
	}

	return doc, diags
}

// boundValue evaluates an optional bound. Absent, null and infinite values
// all yield nil.
func boundValue(expr hcl.Expression, ctx *hcl.EvalContext) (*float64, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(ctx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil || !num.IsKnown() {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid bound",
			Detail:   "A flux bound must be a number, inf or -inf.",
			Subject:  expr.Range().Ptr(),
		})
	}
	f, _ := num.AsBigFloat().Float64()

	return finiteOrNil(&f), diags
}

// finiteOrNil maps ±inf to nil so HCL and YAML documents agree on "unbounded".
func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsInf(*v, 0) || math.IsNaN(*v) {
		return nil
	}

	return v
}

// EncodeHCL writes doc as a single model block.
func EncodeHCL(w io.Writer, doc *Document) error {
	f := hclwrite.NewEmptyFile()
	mb := f.Body().AppendNewBlock("model", []string{doc.ID}).Body()
	if doc.Kind != "" {
		mb.SetAttributeValue("kind", cty.StringVal(string(doc.Kind)))
	}

	for _, c := range doc.Compartments {
		b := mb.AppendNewBlock("compartment", []string{c.ID}).Body()
		setOptionalString(b, "name", c.Name)
	}
	for _, m := range doc.Metabolites {
		b := mb.AppendNewBlock("metabolite", []string{m.ID}).Body()
		setOptionalString(b, "name", m.Name)
		setOptionalString(b, "compartment", m.Compartment)
	}
	for _, g := range doc.Genes {
		b := mb.AppendNewBlock("gene", []string{g.ID}).Body()
		setOptionalString(b, "name", g.Name)
	}

	for _, r := range doc.Reactions {
		mb.AppendNewline()
		b := mb.AppendNewBlock("reaction", []string{r.ID}).Body()
		setOptionalString(b, "name", r.Name)
		if r.Reversible != nil {
			b.SetAttributeValue("reversible", cty.BoolVal(*r.Reversible))
		}
		setBound(b, "lower_bound", r.LowerBound)
		setBound(b, "upper_bound", r.UpperBound)
		setOptionalString(b, "rule", r.Rule)
		for _, t := range r.Stoichiometry {
			tb := b.AppendNewBlock("metabolite", []string{t.Metabolite}).Body()
			tb.SetAttributeValue("coefficient", cty.NumberFloatVal(t.Value))
		}
	}

	if _, err := w.Write(f.Bytes()); err != nil {
		return fmt.Errorf("loader: encode hcl: %w", err)
	}

	return nil
}

func setOptionalString(b *hclwrite.Body, name, v string) {
	if v != "" {
		b.SetAttributeValue(name, cty.StringVal(v))
	}
}

// setBound writes a finite bound as a number and an infinite one as `inf`/`-inf`.
func setBound(b *hclwrite.Body, name string, v *float64) {
	switch {
	case v == nil:
	case math.IsInf(*v, 0):
		var toks hclwrite.Tokens
		if *v < 0 {
			toks = append(toks, &hclwrite.Token{Type: hclsyntax.TokenMinus, Bytes: []byte("-")})
		}
		toks = append(toks, &hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(infIdent)})
		b.SetAttributeRaw(name, toks)
	default:
		b.SetAttributeValue(name, cty.NumberFloatVal(*v))
	}
}
