// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jval/lex"
)

// ErrGrammar is matched by every *Error under errors.Is.
var ErrGrammar = errors.New("grammar error")

// Error is the concrete type of errors reported by the parser.
type Error struct {
	Context  string     // what the parser was reading, e.g., "array"
	Expected []lex.Kind // the token kinds acceptable at this point, if any
	Got      lex.Token  // the token actually found
	Pos      int        // index of Got in the token sequence
}

// Line reports the 0-based line of the offending token.
func (e *Error) Line() int { return e.Got.Line }

// Error satisfies the error interface. The line is reported 1-based.
func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("line %d: %s at %v", e.Line()+1, e.Context, e.Got)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line()+1, e.Context, tokLabel(e.Expected, e.Got))
}

// Is reports whether target is ErrGrammar.
func (e *Error) Is(target error) bool { return target == ErrGrammar }

// tokLabel makes a human-readable summary string for the given token kinds.
func tokLabel(kinds []lex.Kind, got lex.Token) string {
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

func fault(s Stream, context string, kinds ...lex.Kind) *Error {
	return &Error{Context: context, Expected: kinds, Got: s.First(), Pos: s.Pos()}
}
