// SPDX-License-Identifier: MIT

// Package gpr - compiled rule expressions.
//
// Parse builds a small AST (identifier / not / n-ary and-or) and compiles it
// once into a closure tree; Eval only runs the closures.
package gpr

import (
	"strings"
)

// Predicate is a compiled rule: it reports whether the rule holds for the
// given gene-activity map.
type Predicate func(state map[string]bool) bool

// opKind distinguishes the two n-ary operators.
type opKind int

const (
	opOr opKind = iota
	opAnd
)

// Binding strengths used by the canonical printer.
const (
	precOr = iota + 1
	precAnd
	precNot
)

// node is an AST node.
type node interface {
	compile() Predicate
	write(sb *strings.Builder, parentPrec int)
	collect(seen map[string]struct{}, out []string) []string
}

type identNode struct{ name string }

func (n *identNode) compile() Predicate {
	name := n.name

	return func(state map[string]bool) bool { return state[name] }
}

func (n *identNode) write(sb *strings.Builder, _ int) { sb.WriteString(n.name) }

func (n *identNode) collect(seen map[string]struct{}, out []string) []string {
	if _, ok := seen[n.name]; ok {
		return out
	}
	seen[n.name] = struct{}{}

	return append(out, n.name)
}

type notNode struct{ operand node }

func (n *notNode) compile() Predicate {
	inner := n.operand.compile()

	return func(state map[string]bool) bool { return !inner(state) }
}

func (n *notNode) write(sb *strings.Builder, _ int) {
	sb.WriteString("not ")
	n.operand.write(sb, precNot)
}

func (n *notNode) collect(seen map[string]struct{}, out []string) []string {
	return n.operand.collect(seen, out)
}

type naryNode struct {
	op    opKind
	terms []node
}

func (n *naryNode) compile() Predicate {
	preds := make([]Predicate, len(n.terms))
	for i, t := range n.terms {
		preds[i] = t.compile()
	}
	if n.op == opAnd {
		return func(state map[string]bool) bool {
			for _, p := range preds {
				if !p(state) {
					return false
				}
			}

			return true
		}
	}

	return func(state map[string]bool) bool {
		for _, p := range preds {
			if p(state) {
				return true
			}
		}

		return false
	}
}

func (n *naryNode) write(sb *strings.Builder, parentPrec int) {
	prec, sep := precOr, " or "
	if n.op == opAnd {
		prec, sep = precAnd, " and "
	}
	paren := prec < parentPrec
	if paren {
		sb.WriteByte('(')
	}
	for i, t := range n.terms {
		if i > 0 {
			sb.WriteString(sep)
		}
		t.write(sb, prec)
	}
	if paren {
		sb.WriteByte(')')
	}
}

func (n *naryNode) collect(seen map[string]struct{}, out []string) []string {
	for _, t := range n.terms {
		out = t.collect(seen, out)
	}

	return out
}

// Expr is a compiled GPR rule. The zero value is not usable; obtain one via
// Parse or MustParse. An Expr is immutable and safe for concurrent Eval.
type Expr struct {
	source string
	root   node // nil for the constant-true rule
	pred   Predicate
	genes  []string
}

// Parse compiles rule text. Blank text yields the constant-true rule.
//
// Implementation:
//   - Stage 1: tokenize on whitespace and parentheses.
//   - Stage 2: recursive descent with precedence not > and > or.
//   - Stage 3: reject trailing tokens, compile the AST into closures.
//
// Errors:
//   - *SyntaxError (matches ErrSyntax) with the offending byte offset.
func Parse(text string) (*Expr, error) {
	if strings.TrimSpace(text) == "" {
		return &Expr{source: text, pred: alwaysTrue}, nil
	}
	p := &parser{toks: tokenize(text)}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.fail(t, "unexpected %s %q", t.kind, t.text)
	}

	return &Expr{
		source: text,
		root:   root,
		pred:   root.compile(),
		genes:  root.collect(make(map[string]struct{}), nil),
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures with literal rules.
func MustParse(text string) *Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return e
}

func alwaysTrue(map[string]bool) bool { return true }

// Eval reports whether the rule holds; identifiers absent from state are false.
func (e *Expr) Eval(state map[string]bool) bool { return e.pred(state) }

// EvalActive evaluates the rule against a list of active gene IDs.
func (e *Expr) EvalActive(active ...string) bool {
	state := make(map[string]bool, len(active))
	for _, g := range active {
		state[g] = true
	}

	return e.pred(state)
}

// Predicate returns the compiled closure.
func (e *Expr) Predicate() Predicate { return e.pred }

// Source returns the rule text exactly as given to Parse.
func (e *Expr) Source() string { return e.source }

// IsConstant reports whether the rule is the constant-true (blank) rule.
func (e *Expr) IsConstant() bool { return e.root == nil }

// Genes returns the referenced identifiers in order of first appearance.
func (e *Expr) Genes() []string {
	out := make([]string, len(e.genes))
	copy(out, e.genes)

	return out
}

// UsesNegation reports whether the rule contains a "not" operator, i.e.
// whether it may be non-monotone in the active gene set.
func (e *Expr) UsesNegation() bool {
	return e.root != nil && hasNot(e.root)
}

func hasNot(n node) bool {
	switch v := n.(type) {
	case *notNode:
		return true
	case *naryNode:
		for _, t := range v.terms {
			if hasNot(t) {
				return true
			}
		}
	}

	return false
}

// String returns a canonical form with minimal parentheses and lower-case
// keywords; the constant rule renders as the empty string.
func (e *Expr) String() string {
	if e.root == nil {
		return ""
	}
	var sb strings.Builder
	e.root.write(&sb, 0)

	return sb.String()
}
