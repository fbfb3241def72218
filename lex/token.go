// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package lex implements the tokenizer for JSON text.
//
// Tokenize converts a complete input string into a slice of tokens, or reports
// the first lexical fault as an error of concrete type *lex.Error:
//
//	toks, err := lex.Tokenize(`{"a": [1, true]}`)
//	if err != nil {
//	   log.Fatalf("Tokenize: %v", err)
//	}
//
// The treatment of backslash escapes in string literals is selected by the
// Escapes field of a Tokenizer; see EscapeMode.
package lex

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	EOF     Kind = iota // end of input; never produced by Tokenize
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	EOF:     "end of input",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid token"
	}
	return kindStr[k]
}

// A Token is a single lexical unit of JSON text.
type Token struct {
	Kind Kind
	Num  float64 // for Number
	Text string  // for String, with escapes handled per the EscapeMode

	// The 0-based line on which the token ended, for error reporting.
	Line int
}

// String renders t for use in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("number %s", strconv.FormatFloat(t.Num, 'g', -1, 64))
	case String:
		return fmt.Sprintf("string %q", t.Text)
	}
	return t.Kind.String()
}
