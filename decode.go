// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"github.com/creachadair/jval/lex"
	"github.com/creachadair/jval/syntax"
)

var (
	// ErrLex matches any lexical error reported by Decode.
	ErrLex = lex.ErrLex

	// ErrGrammar matches any grammar error reported by Decode.
	ErrGrammar = syntax.ErrGrammar
)

// Decode decodes text as a single JSON value with the default settings.
func Decode(text string) (Value, error) { return new(Decoder).Decode(text) }

// A Decoder decodes JSON text into values. The zero value is ready for use.
// Once configured, a Decoder may be used concurrently.
type Decoder struct {
	escapes  lex.EscapeMode
	maxDepth int
}

// Escapes configures how d treats backslash escapes in string literals.
// The default is lex.DecodeEscapes.
func (d *Decoder) Escapes(mode lex.EscapeMode) { d.escapes = mode }

// LimitDepth configures d to reject input with more than n levels of nested
// objects and arrays. If n <= 0, nesting is not limited; this is the default.
func (d *Decoder) LimitDepth(n int) { d.maxDepth = n }

// Decode decodes text as a single JSON value. Decoding stops at the first
// fault; there is no partial result. A lexical fault is reported as a
// *lex.Error, a grammar fault as a *syntax.Error.
func (d *Decoder) Decode(text string) (Value, error) {
	toks, err := lex.Tokenizer{Escapes: d.escapes}.Tokenize(text)
	if err != nil {
		return nil, err
	}
	tree, err := syntax.Parser{MaxDepth: d.maxDepth}.Parse(toks)
	if err != nil {
		return nil, err
	}
	return Reduce(tree), nil
}
