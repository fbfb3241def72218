// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package syntax

import "github.com/creachadair/jval/lex"

// A Stream is an immutable view of the unconsumed suffix of a token sequence.
// Advancing a Stream returns a new view; the original is unchanged.
type Stream struct {
	toks []lex.Token
	pos  int
}

// NewStream returns a view of all of toks. The caller must not modify toks
// while the stream is in use.
func NewStream(toks []lex.Token) Stream { return Stream{toks: toks} }

// Empty reports whether s has no remaining tokens.
func (s Stream) Empty() bool { return s.pos >= len(s.toks) }

// Pos reports the index in the original sequence of the first token of s.
func (s Stream) Pos() int { return s.pos }

// First returns the first remaining token of s. If s is empty, it returns an
// EOF token on the line of the last token in the sequence.
func (s Stream) First() lex.Token {
	if !s.Empty() {
		return s.toks[s.pos]
	} else if n := len(s.toks); n > 0 {
		return lex.Token{Kind: lex.EOF, Line: s.toks[n-1].Line}
	}
	return lex.Token{Kind: lex.EOF}
}

// Rest returns a view of s without its first token. The rest of an empty
// stream is empty.
func (s Stream) Rest() Stream {
	if s.Empty() {
		return s
	}
	return Stream{toks: s.toks, pos: s.pos + 1}
}
