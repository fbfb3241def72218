// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package syntax defines the syntax tree for JSON text, and a recursive
// descent parser that builds syntax trees from the tokens of package lex.
//
// The bodies of objects and arrays are singly-linked lists of entries.
// A *Dict or *Array holds the start of its list; a nil Start denotes an empty
// container, and a nil Rest ends the list. Trees are not modified once Parse
// has returned them.
package syntax

// An Object is a node of the syntax tree. Its concrete type is one of *Dict,
// *Array, String, Number, Bool, or Null.
type Object interface{ isObject() }

// A Dict is an object. Its entries are in source order, and may repeat keys.
type Dict struct {
	Start *DictEntry
}

// A DictEntry is a single key-value member of a Dict.
type DictEntry struct {
	Key   string
	Value Object
	Rest  *DictEntry
}

// Len reports the number of entries in d.
func (d *Dict) Len() int {
	var n int
	for e := d.Start; e != nil; e = e.Rest {
		n++
	}
	return n
}

// An Array is an array. Its entries are in source order.
type Array struct {
	Start *ArrayEntry
}

// An ArrayEntry is a single element of an Array.
type ArrayEntry struct {
	Value Object
	Rest  *ArrayEntry
}

// Len reports the number of entries in a.
func (a *Array) Len() int {
	var n int
	for e := a.Start; e != nil; e = e.Rest {
		n++
	}
	return n
}

// A String is a string literal.
type String string

// A Number is a numeric literal.
type Number float64

// A Bool is the constant true or false.
type Bool bool

// Null is the constant null.
type Null struct{}

func (*Dict) isObject()  {}
func (*Array) isObject() {}
func (String) isObject() {}
func (Number) isObject() {}
func (Bool) isObject()   {}
func (Null) isObject()   {}
