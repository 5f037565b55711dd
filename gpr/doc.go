// Package gpr compiles gene-protein-reaction (GPR) association rules into
// reusable predicates over a gene-activity map.
//
// What & Why:
//
//	A GPR rule states which genes must be active for a reaction to proceed,
//	e.g. "b0351 or (b1241 and b1242)". Rule text comes from model files and is
//	treated as data: it is parsed by a dedicated recursive-descent parser over a
//	restricted grammar and never handed to a general-purpose evaluator.
//
// Grammar (keywords are case-insensitive):
//
//	expr  := or
//	or    := and { "or" and }
//	and   := unary { "and" unary }
//	unary := "not" unary | atom
//	atom  := IDENT | "(" expr ")"
//
// An identifier is any maximal run of characters other than whitespace and
// parentheses, so ids like "G_1234.1" or "s0001" need no quoting. Blank rule
// text compiles to the constant-true predicate.
//
// Evaluation:
//
//	Expr.Eval(state) looks every identifier up in state; missing identifiers
//	count as inactive (false). Rules that do not use "not" are monotone: adding
//	genes to the active set never turns a true rule false.
//
// Complexity:
//
//	Parse is O(n) in the rule length; Eval is O(number of AST nodes).
package gpr
