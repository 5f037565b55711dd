// SPDX-License-Identifier: MIT

package gpr

import "fmt"

// parser is a recursive-descent parser over a token slice.
type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) fail(t token, format string, args ...any) error {
	return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseOr: and { "or" and }
func (p *parser) parseOr() (node, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	terms := []node{first}
	for p.peek().kind == tokOr {
		p.next()
		n, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		terms = append(terms, n)
	}
	if len(terms) == 1 {
		return first, nil
	}

	return flatten(opOr, terms), nil
}

// parseAnd: unary { "and" unary }
func (p *parser) parseAnd() (node, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	terms := []node{first}
	for p.peek().kind == tokAnd {
		p.next()
		n, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		terms = append(terms, n)
	}
	if len(terms) == 1 {
		return first, nil
	}

	return flatten(opAnd, terms), nil
}

// parseUnary: "not" unary | atom
func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokNot {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &notNode{operand: operand}, nil
	}

	return p.parseAtom()
}

// parseAtom: IDENT | "(" expr ")"
func (p *parser) parseAtom() (node, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		return &identNode{name: t.text}, nil
	case tokLParen:
		if p.peek().kind == tokRParen {
			return nil, p.fail(p.peek(), "empty parentheses")
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.fail(closing, "expected %s, found %s", tokRParen, closing.kind)
		}

		return inner, nil
	default:
		return nil, p.fail(t, "expected identifier or %s, found %s", tokLParen, t.kind)
	}
}

// flatten merges nested nodes of the same operator so "a and (b and c)"
// becomes one three-way conjunction.
func flatten(op opKind, terms []node) node {
	out := make([]node, 0, len(terms))
	for _, t := range terms {
		if n, ok := t.(*naryNode); ok && n.op == op {
			out = append(out, n.terms...)
			continue
		}
		out = append(out, t)
	}

	return &naryNode{op: op, terms: out}
}
