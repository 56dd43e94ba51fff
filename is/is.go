// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

// Package is defines the single-code-point character classes used as the
// prelude's built-in named patterns (char, digit, alpha, alnum, blank,
// space, upper, lower). Every class is locale-independent and ASCII-only:
// this is a scan-pattern engine, not a Unicode property engine, so classes
// are deliberately narrower than their unicode.Is* namesakes.
package is

// ClassFunc reports whether r belongs to a single-code-point class.
// Embedders of the pattern engine can register further classes of this
// shape with Context.DefineClass without hand-rolling a Builtin pattern.
type ClassFunc func(r rune) bool

// Char accepts any code point at all; the engine always filters out the
// EOD and decode-error sentinels itself before testing a class, so a
// ClassFunc never has to recognize them.
func Char(r rune) bool { return true }

// Digit accepts the ASCII digits 0-9.
func Digit(r rune) bool { return '0' <= r && r <= '9' }

// Alpha accepts ASCII letters, upper or lower case.
func Alpha(r rune) bool { return Upper(r) || Lower(r) }

// Alnum accepts anything Digit or Alpha accepts.
func Alnum(r rune) bool { return Digit(r) || Alpha(r) }

// Blank accepts the space and horizontal tab.
func Blank(r rune) bool { return r == ' ' || r == '\t' }

// Space accepts any ASCII whitespace: space, tab, newline, carriage
// return, form feed, or vertical tab.
func Space(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Upper accepts ASCII uppercase letters.
func Upper(r rune) bool { return 'A' <= r && r <= 'Z' }

// Lower accepts ASCII lowercase letters.
func Lower(r rune) bool { return 'a' <= r && r <= 'z' }
