// SPDX-License-Identifier: MIT

package gpr

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel matched by every parse failure.
var ErrSyntax = errors.New("gpr: syntax error")

// SyntaxError describes where a rule failed to parse.
// Pos is the byte offset into the rule text.
type SyntaxError struct {
	Pos int
	Msg string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gpr: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) true for any *SyntaxError.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
