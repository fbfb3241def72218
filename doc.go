// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jval decodes JSON text into a tree of values.
//
// # Decoding
//
// Call Decode to convert a complete JSON text into a Value:
//
//	v, err := jval.Decode(`{"name": "Owen Lynch", "info": {"age": 16}}`)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// The concrete type of a Value is one of:
//
//	JSON type  | Go type      | Notes
//	---------- | ------------ | ---------------------------------------
//	object     | jval.Object  | map[string]Value; the last duplicate key wins
//	array      | jval.Array   | []Value, in source order
//	number     | jval.Number  | float64
//	string     | jval.String  | escapes decoded per the Decoder setting
//	true/false | jval.Bool    |
//	null       | jval.Null    |
//
// # Pipeline
//
// Decoding runs in three phases, each available separately:
//
//  1. lex.Tokenize converts text into tokens.
//  2. syntax.Parse builds a syntax tree from the tokens.
//  3. Reduce converts the syntax tree into a Value.
//
// # Errors
//
// Decoding stops at the first fault. A lexical fault is reported as an error
// of concrete type *lex.Error, which carries the kind of fault and its line.
// A grammar fault is reported as a *syntax.Error, which describes the token
// that was found and the tokens that were expected. Use errors.Is with ErrLex
// or ErrGrammar to distinguish them:
//
//	if _, err := jval.Decode(input); errors.Is(err, jval.ErrGrammar) {
//	   log.Printf("Malformed input: %v", err)
//	}
//
// # Options
//
// A Decoder selects non-default settings:
//
//	var dec jval.Decoder
//	dec.Escapes(lex.RawEscapes) // keep backslashes verbatim
//	dec.LimitDepth(64)          // reject deeply nested input
//	v, err := dec.Decode(input)
package jval
