// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lex

import (
	"errors"
	"fmt"
)

// ErrLex is matched by every *Error under errors.Is.
var ErrLex = errors.New("lexical error")

// A Fault classifies a lexical error.
type Fault byte

// Constants defining the valid Fault values.
const (
	NumError      Fault = iota + 1 // malformed number literal
	InvalidSymbol                  // unrecognized character or constant
	Unterminated                   // end of input inside a string
	BadEscape                      // rejected or truncated escape sequence
)

var faultStr = [...]string{
	NumError:      "invalid number",
	InvalidSymbol: "invalid symbol",
	Unterminated:  "unterminated string",
	BadEscape:     "invalid escape",
}

func (f Fault) String() string {
	if f == 0 || int(f) >= len(faultStr) {
		return "unknown fault"
	}
	return faultStr[f]
}

// Error is the concrete type of errors reported by the tokenizer.
type Error struct {
	Fault  Fault
	Line   int    // 0-based line where the fault was detected
	Detail string // optional description of the offending input

	err error
}

// Error satisfies the error interface. The line is reported 1-based.
func (e *Error) Error() string {
	msg := fmt.Sprintf("line %d: %v", e.Line+1, e.Fault)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is ErrLex.
func (e *Error) Is(target error) bool { return target == ErrLex }

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }
