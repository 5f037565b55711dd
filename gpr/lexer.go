// SPDX-License-Identifier: MIT

package gpr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind enumerates lexical classes of the rule grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
	tokIdent
)

// String is used in syntax error messages.
func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of rule"
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokAnd:
		return `"and"`
	case tokOr:
		return `"or"`
	case tokNot:
		return `"not"`
	default:
		return "identifier"
	}
}

// token is one lexeme with its byte offset.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenize splits rule text on whitespace and parentheses.
// Complexity: O(n).
func tokenize(src string) []token {
	toks := make([]token, 0, 8)
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i += size
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i += size
		default:
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if unicode.IsSpace(r) || r == '(' || r == ')' {
					break
				}
				i += size
			}
			word := src[start:i]
			toks = append(toks, token{kind: classify(word), text: word, pos: start})
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)})
}

// classify maps a word to a keyword kind or tokIdent.
func classify(word string) tokenKind {
	switch {
	case strings.EqualFold(word, "and"):
		return tokAnd
	case strings.EqualFold(word, "or"):
		return tokOr
	case strings.EqualFold(word, "not"):
		return tokNot
	default:
		return tokIdent
	}
}
