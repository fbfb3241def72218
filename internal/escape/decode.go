// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the escape sequences of JSON string literals.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported by Decode for an escape sequence that is cut off
// by the end of the input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Decode decodes the body of a JSON string literal. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A surrogate
// pair of \u escapes is combined into a single rune. Unknown escapes, invalid
// hex digits, and unpaired surrogates are replaced by the Unicode replacement
// rune. Decode reports ErrIncomplete for a truncated escape sequence.
//
// The result never aliases src.
func Decode(src mem.RO) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}

	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return "", ErrIncomplete
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)

		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			u, rest, ok := decodeUnicode(src)
			if !ok {
				return "", ErrIncomplete
			}
			dec = utf8.AppendRune(dec, u)
			src = rest
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	dec = mem.Append(dec, src)
	return string(dec), nil
}

// decodeUnicode decodes the four hex digits following a \u escape, consuming
// a second \u escape if the first denotes the high half of a surrogate pair.
// It reports false if fewer than four bytes remain.
func decodeUnicode(src mem.RO) (rune, mem.RO, bool) {
	if src.Len() < 4 {
		return 0, src, false
	}
	r := parseHex(src.SliceTo(4))
	src = src.SliceFrom(4)
	if r < 0 {
		return utf8.RuneError, src, true
	} else if !utf16.IsSurrogate(r) {
		return r, src, true
	}

	// A high surrogate must be followed at once by \uDC00..\uDFFF.
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo := parseHex(src.Slice(2, 6)); lo >= 0 {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				return pair, src.SliceFrom(6), true
			}
		}
	}
	return utf8.RuneError, src, true
}

// parseHex returns the value of the hexadecimal digits in data, or -1 if data
// contains a non-hex byte.
func parseHex(data mem.RO) rune {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return -1
		}
	}
	return v
}
