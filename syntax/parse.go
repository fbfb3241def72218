// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"fmt"
	"slices"

	"github.com/creachadair/jval/lex"
	"github.com/creachadair/mds/mapset"
)

/*
Grammar:

     Object = "{" DictStart "}" | "[" ArrayStart "]"
            | String | Number | Bool | Null
  DictStart = String ":" Object DictEntry | ε
  DictEntry = "," String ":" Object DictEntry | ε
 ArrayStart = Object ArrayEntry | ε
 ArrayEntry = "," Object ArrayEntry | ε

The FIRST and FOLLOW sets of each nonterminal are disjoint, so one token of
lookahead chooses every production.  The right-recursive entry rules are
consumed by loops, so only nesting deepens the call stack.
*/

var firstObject = []lex.Kind{
	lex.LBrace, lex.LSquare, lex.String, lex.Number, lex.True, lex.False, lex.Null,
}

var startsObject = mapset.New(firstObject...)

// A Parser builds syntax trees from tokens. The zero value is ready for use.
// A Parser has no mutable state and may be shared.
type Parser struct {
	// If positive, the maximum number of nested objects and arrays.
	MaxDepth int
}

// Parse parses toks with the default settings.
func Parse(toks []lex.Token) (Object, error) { return Parser{}.Parse(toks) }

// Parse parses toks as a single JSON value and returns its syntax tree.
// All of toks must be consumed. In case of error, no tree is returned and the
// error has concrete type *Error.
func (p Parser) Parse(toks []lex.Token) (Object, error) {
	obj, rest, err := p.object(NewStream(toks), 0)
	if err != nil {
		return nil, err
	} else if !rest.Empty() {
		return nil, fault(rest, "after value", lex.EOF)
	}
	return obj, nil
}

// object parses an Object at the front of s.
func (p Parser) object(s Stream, depth int) (Object, Stream, error) {
	switch tok := s.First(); tok.Kind {
	case lex.LBrace:
		if err := p.enter(s, depth); err != nil {
			return nil, s, err
		}
		d, rest, err := p.dict(s.Rest(), depth+1)
		if err != nil {
			return nil, rest, err
		}
		return d, rest.Rest(), nil // rest.First() == RBrace

	case lex.LSquare:
		if err := p.enter(s, depth); err != nil {
			return nil, s, err
		}
		a, rest, err := p.array(s.Rest(), depth+1)
		if err != nil {
			return nil, rest, err
		}
		return a, rest.Rest(), nil // rest.First() == RSquare

	case lex.String:
		return String(tok.Text), s.Rest(), nil
	case lex.Number:
		return Number(tok.Num), s.Rest(), nil
	case lex.True, lex.False:
		return Bool(tok.Kind == lex.True), s.Rest(), nil
	case lex.Null:
		return Null{}, s.Rest(), nil
	}
	return nil, s, fault(s, "value", firstObject...)
}

// dict parses DictStart and its DictEntry chain.
// Precondition: the "{" has been consumed.
// Postcondition: the first token of the result stream is "}".
func (p Parser) dict(s Stream, depth int) (*Dict, Stream, error) {
	if s.First().Kind == lex.RBrace {
		return &Dict{}, s, nil
	}
	head, s, err := p.member(s, depth, lex.String, lex.RBrace)
	if err != nil {
		return nil, s, err
	}
	tail := head
	for {
		switch s.First().Kind {
		case lex.RBrace:
			return &Dict{Start: head}, s, nil
		case lex.Comma:
			next, rest, err := p.member(s.Rest(), depth, lex.String)
			if err != nil {
				return nil, rest, err
			}
			tail.Rest = next
			tail, s = next, rest
		default:
			return nil, s, fault(s, "object", lex.Comma, lex.RBrace)
		}
	}
}

// member parses a single `String ":" Object` sequence. The want kinds are
// reported if the key is missing.
func (p Parser) member(s Stream, depth int, want ...lex.Kind) (*DictEntry, Stream, error) {
	key := s.First()
	if key.Kind != lex.String {
		return nil, s, fault(s, "object key", want...)
	}
	s = s.Rest()
	if s.First().Kind != lex.Colon {
		return nil, s, fault(s, fmt.Sprintf("object member %q", key.Text), lex.Colon)
	}
	val, rest, err := p.object(s.Rest(), depth)
	if err != nil {
		return nil, rest, err
	}
	return &DictEntry{Key: key.Text, Value: val}, rest, nil
}

// array parses ArrayStart and its ArrayEntry chain.
// Precondition: the "[" has been consumed.
// Postcondition: the first token of the result stream is "]".
func (p Parser) array(s Stream, depth int) (*Array, Stream, error) {
	if k := s.First().Kind; k == lex.RSquare {
		return &Array{}, s, nil
	} else if !startsObject.Has(k) {
		return nil, s, fault(s, "array", append(slices.Clone(firstObject), lex.RSquare)...)
	}
	val, s, err := p.object(s, depth)
	if err != nil {
		return nil, s, err
	}
	head := &ArrayEntry{Value: val}
	tail := head
	for {
		switch s.First().Kind {
		case lex.RSquare:
			return &Array{Start: head}, s, nil
		case lex.Comma:
			val, rest, err := p.object(s.Rest(), depth)
			if err != nil {
				return nil, rest, err
			}
			tail.Rest = &ArrayEntry{Value: val}
			tail, s = tail.Rest, rest
		default:
			return nil, s, fault(s, "array", lex.Comma, lex.RSquare)
		}
	}
}

// enter checks that opening a container at s does not exceed p.MaxDepth.
func (p Parser) enter(s Stream, depth int) error {
	if p.MaxDepth > 0 && depth >= p.MaxDepth {
		return fault(s, fmt.Sprintf("nesting depth exceeds %d", p.MaxDepth))
	}
	return nil
}
