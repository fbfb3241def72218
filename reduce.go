// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"

	"github.com/creachadair/jval/syntax"
)

// Reduce converts a syntax tree into a value tree. Array elements keep their
// source order. Object members are stored in source order, so when a key
// repeats, the last occurrence wins.
//
// Reduce panics if node is nil or not one of the node types of package syntax.
func Reduce(node syntax.Object) Value {
	switch t := node.(type) {
	case *syntax.Dict:
		return reduceDict(t)
	case *syntax.Array:
		return reduceArray(t)
	case syntax.String:
		return String(t)
	case syntax.Number:
		return Number(t)
	case syntax.Bool:
		return Bool(t)
	case syntax.Null:
		return Null{}
	}
	panic(fmt.Sprintf("jval: cannot reduce %T", node))
}

func reduceDict(d *syntax.Dict) Object {
	obj := make(Object)
	for e := d.Start; e != nil; e = e.Rest {
		obj[e.Key] = Reduce(e.Value)
	}
	return obj
}

func reduceArray(a *syntax.Array) Array {
	arr := make(Array, 0, a.Len())
	for e := a.Start; e != nil; e = e.Rest {
		arr = append(arr, Reduce(e.Value))
	}
	return arr
}
