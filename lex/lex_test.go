// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lex_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jval/lex"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignoreLines drops line numbers from token comparisons.
var ignoreLines = cmpopts.IgnoreFields(lex.Token{}, "Line")

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []lex.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []lex.Token{{Kind: lex.True}, {Kind: lex.False}, {Kind: lex.Null}}},
		{"[true,null]", []lex.Token{
			{Kind: lex.LSquare}, {Kind: lex.True}, {Kind: lex.Comma}, {Kind: lex.Null}, {Kind: lex.RSquare},
		}},
		{"{false:1}", []lex.Token{
			{Kind: lex.LBrace}, {Kind: lex.False}, {Kind: lex.Colon}, {Kind: lex.Number, Num: 1}, {Kind: lex.RBrace},
		}},

		// Punctuation
		{"{ [ ] } , :", []lex.Token{
			{Kind: lex.LBrace}, {Kind: lex.LSquare}, {Kind: lex.RSquare},
			{Kind: lex.RBrace}, {Kind: lex.Comma}, {Kind: lex.Colon},
		}},

		// Strings
		{`"" "a b c"`, []lex.Token{{Kind: lex.String}, {Kind: lex.String, Text: "a b c"}}},
		{`"a\tb c\n"`, []lex.Token{{Kind: lex.String, Text: "a\tb c\n"}}},
		{`"say \"hi\""`, []lex.Token{{Kind: lex.String, Text: `say "hi"`}}},
		{`"{[,:]}"`, []lex.Token{{Kind: lex.String, Text: "{[,:]}"}}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-10 +7`, []lex.Token{
			{Kind: lex.Number, Num: 0},
			{Kind: lex.Number, Num: -1},
			{Kind: lex.Number, Num: 5139},
			{Kind: lex.Number, Num: 2.3},
			{Kind: lex.Number, Num: 5e9},
			{Kind: lex.Number, Num: 3.6e4},
			{Kind: lex.Number, Num: -0.001e-10},
			{Kind: lex.Number, Num: 7},
		}},
		{`[1,2]`, []lex.Token{
			{Kind: lex.LSquare}, {Kind: lex.Number, Num: 1}, {Kind: lex.Comma},
			{Kind: lex.Number, Num: 2}, {Kind: lex.RSquare},
		}},

		// Pending tokens at end of input.
		{`15`, []lex.Token{{Kind: lex.Number, Num: 15}}},
		{`null`, []lex.Token{{Kind: lex.Null}}},
	}

	for _, test := range tests {
		got, err := lex.Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, ignoreLines); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeDocument(t *testing.T) {
	const input = `
        {
            "name": "Owen Lynch",
            "info": {
                "age": 16
            }
        }
        `
	want := []lex.Token{
		{Kind: lex.LBrace, Line: 1},
		{Kind: lex.String, Text: "name", Line: 2},
		{Kind: lex.Colon, Line: 2},
		{Kind: lex.String, Text: "Owen Lynch", Line: 2},
		{Kind: lex.Comma, Line: 2},
		{Kind: lex.String, Text: "info", Line: 3},
		{Kind: lex.Colon, Line: 3},
		{Kind: lex.LBrace, Line: 3},
		{Kind: lex.String, Text: "age", Line: 4},
		{Kind: lex.Colon, Line: 4},
		{Kind: lex.Number, Num: 16, Line: 4},
		{Kind: lex.RBrace, Line: 5},
		{Kind: lex.RBrace, Line: 6},
	}
	got, err := lex.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens: (-want, +got)\n%s", diff)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		fault lex.Fault
		line  int
		estr  string
	}{
		{`{"x": 1q}`, lex.NumError, 0, `line 1: invalid number: unexpected 'q' in number`},
		{"[1,\n2,\n3x]", lex.NumError, 2, `line 3: invalid number: unexpected 'x' in number`},
		{`[1.2.3]`, lex.NumError, 0, `line 1: invalid number: "1.2.3"`},
		{`[1e]`, lex.NumError, 0, `line 1: invalid number: "1e"`},
		{`[-]`, lex.NumError, 0, `line 1: invalid number: "-"`},
		{`[+-1]`, lex.NumError, 0, `line 1: invalid number: "+-1"`},
		{`{"a":1:}`, lex.NumError, 0, `line 1: invalid number: unexpected ':' in number`},

		{`@`, lex.InvalidSymbol, 0, `line 1: invalid symbol: unexpected '@'`},
		{"\n\n True", lex.InvalidSymbol, 2, `line 3: invalid symbol: unexpected 'T'`},
		{`[nul]`, lex.InvalidSymbol, 0, `line 1: invalid symbol: unknown constant "nul"`},
		{`truth`, lex.InvalidSymbol, 0, `line 1: invalid symbol: unknown constant "truth"`},
		{`[true1]`, lex.InvalidSymbol, 0, `line 1: invalid symbol: unexpected '1' in constant`},
		{`{'a': 1}`, lex.InvalidSymbol, 0, `line 1: invalid symbol: unexpected '\''`},

		{`"what did you`, lex.Unterminated, 0, `line 1: unterminated string: missing closing quotation mark`},
		{`["a\"]`, lex.Unterminated, 0, `line 1: unterminated string: missing closing quotation mark`},

		{`"tail\u12"`, lex.BadEscape, 0, `line 1: invalid escape: incomplete escape sequence`},
	}

	for _, test := range tests {
		toks, err := lex.Tokenize(test.input)
		var lerr *lex.Error
		if !errors.As(err, &lerr) {
			t.Errorf("Tokenize %#q: got (%v, %v), want *lex.Error", test.input, toks, err)
			continue
		} else if toks != nil {
			t.Errorf("Tokenize %#q: got tokens %v with error", test.input, toks)
		}
		if lerr.Fault != test.fault || lerr.Line != test.line {
			t.Errorf("Tokenize %#q: got %v at line %d, want %v at line %d",
				test.input, lerr.Fault, lerr.Line, test.fault, test.line)
		}
		if got := err.Error(); got != test.estr {
			t.Errorf("Tokenize %#q: error %q, want %q", test.input, got, test.estr)
		}
		if !errors.Is(err, lex.ErrLex) {
			t.Errorf("Tokenize %#q: error %v does not match ErrLex", test.input, err)
		}
	}
}

func TestEscapeModes(t *testing.T) {
	tests := []struct {
		input string
		mode  lex.EscapeMode
		want  string
		fault lex.Fault
	}{
		{`"a\nb"`, lex.DecodeEscapes, "a\nb", 0},
		{`"a\"b"`, lex.DecodeEscapes, `a"b`, 0},
		{`"été"`, lex.DecodeEscapes, "été", 0},
		{`"\q"`, lex.DecodeEscapes, "�", 0},
		{`"\u12"`, lex.DecodeEscapes, "", lex.BadEscape},

		{`"a\nb"`, lex.RawEscapes, `a\nb`, 0},
		{`"a\"b"`, lex.RawEscapes, `a\"b`, 0},
		{`"\\"`, lex.RawEscapes, `\\`, 0},
		{`"\u12"`, lex.RawEscapes, `\u12`, 0},

		{`"plain"`, lex.RejectEscapes, "plain", 0},
		{`"a\nb"`, lex.RejectEscapes, "", lex.BadEscape},
	}
	for _, test := range tests {
		toks, err := lex.Tokenizer{Escapes: test.mode}.Tokenize(test.input)
		if test.fault != 0 {
			var lerr *lex.Error
			if !errors.As(err, &lerr) || lerr.Fault != test.fault {
				t.Errorf("Tokenize %#q [mode %d]: got %v, want %v", test.input, test.mode, err, test.fault)
			}
			continue
		} else if err != nil {
			t.Errorf("Tokenize %#q [mode %d]: unexpected error: %v", test.input, test.mode, err)
			continue
		}
		want := []lex.Token{{Kind: lex.String, Text: test.want}}
		if diff := cmp.Diff(want, toks); diff != "" {
			t.Errorf("Tokenize %#q [mode %d]: (-want, +got)\n%s", test.input, test.mode, diff)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  lex.Token
		want string
	}{
		{lex.Token{Kind: lex.EOF}, "end of input"},
		{lex.Token{Kind: lex.LBrace}, `"{"`},
		{lex.Token{Kind: lex.Colon}, `":"`},
		{lex.Token{Kind: lex.True}, "true"},
		{lex.Token{Kind: lex.Number, Num: 16}, "number 16"},
		{lex.Token{Kind: lex.Number, Num: -0.25}, "number -0.25"},
		{lex.Token{Kind: lex.String, Text: "a\tb"}, `string "a\tb"`},
		{lex.Token{Kind: lex.Kind(200)}, "invalid token"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("String %+v: got %q, want %q", test.tok, got, test.want)
		}
	}
}
