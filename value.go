// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

// A Value is a decoded JSON value. Its concrete type is one of Array, Object,
// Number, String, Bool, or Null.
type Value interface{ isValue() }

// An Array is an ordered sequence of values.
type Array []Value

// An Object is an unordered mapping from keys to values.
type Object map[string]Value

// A Number is a numeric value. All JSON numbers decode as float64.
type Number float64

// A String is a string value.
type String string

// A Bool is a Boolean value, true or false.
type Bool bool

// Null represents the null constant.
type Null struct{}

func (Array) isValue()  {}
func (Object) isValue() {}
func (Number) isValue() {}
func (String) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
