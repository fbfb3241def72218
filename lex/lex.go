// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jval/internal/escape"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

// EscapeMode selects how backslash escapes in string literals are handled.
type EscapeMode byte

// Constants defining the valid EscapeMode values.
const (
	// DecodeEscapes decodes the standard JSON escapes. Unknown escapes become
	// the Unicode replacement rune; a truncated escape is a BadEscape fault.
	DecodeEscapes EscapeMode = iota

	// RawEscapes copies the text between the quotes verbatim, backslashes
	// included. An escaped quotation mark does not end the string.
	RawEscapes

	// RejectEscapes reports a BadEscape fault for any backslash in a string.
	RejectEscapes
)

// A Tokenizer converts JSON text into tokens. The zero value is ready for use
// and decodes escapes. A Tokenizer has no mutable state and may be shared.
type Tokenizer struct {
	Escapes EscapeMode
}

// Tokenize tokenizes text with the default settings.
func Tokenize(text string) ([]Token, error) { return Tokenizer{}.Tokenize(text) }

// Tokenize converts text into a sequence of tokens in source order. In case
// of a lexical fault, tokenization stops and an error of concrete type *Error
// is returned with no tokens.
//
// A number or constant ends at a delimiter: a comma, a closing bracket or
// brace, or whitespace; a constant may also end at a colon.  A number or
// constant pending at the end of the input is completed.
func (t Tokenizer) Tokenize(text string) ([]Token, error) {
	s := &scan{mode: t.Escapes, buf: bytebufferpool.Get()}
	defer bytebufferpool.Put(s.buf)

	for _, ch := range text {
		if err := s.step(ch); err != nil {
			return nil, err
		}
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	return s.out, nil
}

type state byte

const (
	normal state = iota
	inString
	inNumber
	inSymbol
)

// scan holds the working state of a single call to Tokenize.
type scan struct {
	mode  EscapeMode
	state state
	buf   *bytebufferpool.ByteBuffer // text of the pending token
	esc   bool                       // the last string rune was an unpaired backslash
	line  int
	out   []Token
}

func (s *scan) step(ch rune) error {
	switch s.state {
	case inString:
		return s.stringRune(ch)

	case inNumber:
		if isNumRune(ch) {
			s.buf.WriteByte(byte(ch))
			return nil
		} else if !isNumDelim(ch) {
			return s.failf(NumError, "unexpected %q in number", ch)
		} else if err := s.closeNumber(); err != nil {
			return err
		}
		return s.normal(ch)

	case inSymbol:
		if isLower(ch) {
			s.buf.WriteByte(byte(ch))
			return nil
		} else if !isSymDelim(ch) {
			return s.failf(InvalidSymbol, "unexpected %q in constant", ch)
		} else if err := s.closeSymbol(); err != nil {
			return err
		}
		return s.normal(ch)
	}
	return s.normal(ch)
}

func (s *scan) normal(ch rune) error {
	if k, ok := selfDelim(ch); ok {
		s.emit(Token{Kind: k})
		return nil
	}
	switch {
	case ch == '"':
		s.begin(inString)
	case isNumStart(ch):
		s.begin(inNumber)
		s.buf.WriteByte(byte(ch))
	case isLower(ch):
		s.begin(inSymbol)
		s.buf.WriteByte(byte(ch))
	case ch == '\n':
		s.line++
	case isSpace(ch):
		// skip
	default:
		return s.failf(InvalidSymbol, "unexpected %q", ch)
	}
	return nil
}

func (s *scan) stringRune(ch rune) error {
	if ch == '\n' {
		s.line++
	}
	if s.esc {
		s.esc = false
	} else if ch == '"' {
		return s.closeString()
	} else if ch == '\\' {
		if s.mode == RejectEscapes {
			return s.failf(BadEscape, "escapes are not accepted")
		}
		s.esc = true
	}
	s.buf.B = utf8.AppendRune(s.buf.B, ch)
	return nil
}

func (s *scan) closeString() error {
	var text string
	if s.mode == DecodeEscapes {
		dec, err := escape.Decode(mem.B(s.buf.B))
		if err != nil {
			return s.fail(BadEscape, err)
		}
		text = dec
	} else {
		text = s.buf.String()
	}
	s.emit(Token{Kind: String, Text: text})
	s.state = normal
	return nil
}

func (s *scan) closeNumber() error {
	v, ok := parseNumber(s.buf.String())
	if !ok {
		return s.failf(NumError, "%q", s.buf.B)
	}
	s.emit(Token{Kind: Number, Num: v})
	s.state = normal
	return nil
}

var constants = [...]struct {
	text string
	kind Kind
}{
	{"true", True},
	{"false", False},
	{"null", Null},
}

func (s *scan) closeSymbol() error {
	word := mem.B(s.buf.B)
	for _, c := range constants {
		if word.Equal(mem.S(c.text)) {
			s.emit(Token{Kind: c.kind})
			s.state = normal
			return nil
		}
	}
	return s.failf(InvalidSymbol, "unknown constant %q", s.buf.B)
}

// finish completes the token pending at the end of the input, if any.
func (s *scan) finish() error {
	switch s.state {
	case inString:
		return s.failf(Unterminated, "missing closing quotation mark")
	case inNumber:
		return s.closeNumber()
	case inSymbol:
		return s.closeSymbol()
	}
	return nil
}

func (s *scan) begin(st state) {
	s.buf.Reset()
	s.esc = false
	s.state = st
}

func (s *scan) emit(tok Token) {
	tok.Line = s.line
	s.out = append(s.out, tok)
}

func (s *scan) fail(f Fault, err error) error {
	return &Error{Fault: f, Line: s.line, Detail: err.Error(), err: err}
}

func (s *scan) failf(f Fault, msg string, args ...any) error {
	return &Error{Fault: f, Line: s.line, Detail: fmt.Sprintf(msg, args...)}
}

// parseNumber parses the text of a number literal as a float64.
// A leading "+" is permitted when a digit follows it.
func parseNumber(text string) (float64, bool) {
	if t, ok := strings.CutPrefix(text, "+"); ok {
		if t == "" || !isDigit(rune(t[0])) {
			return 0, false
		}
		text = t
	}
	v, err := fastfloat.Parse(text)
	return v, err == nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isLower(ch rune) bool    { return 'a' <= ch && ch <= 'z' }

func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-'
}

func isNumDelim(ch rune) bool { return ch == ',' || ch == ']' || ch == '}' || isSpace(ch) }
func isSymDelim(ch rune) bool { return ch == ':' || isNumDelim(ch) }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return EOF, false
}
