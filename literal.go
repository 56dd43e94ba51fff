// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import "github.com/rwxrob/patscan/tk"

// literalPattern matches an exact sequence of code points. It backs
// quoted strings, single \-escaped characters, and decimal character
// codes in the pattern DSL. Grounded on LiteralPattern/literalMatcher
// in original_source/ss.c.
type literalPattern struct {
	base
	runes []rune
}

func newLiteral(runes []rune) *literalPattern {
	return &literalPattern{runes: append([]rune(nil), runes...)}
}

func (p *literalPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	for _, want := range p.runes {
		if got := cur.read(); got != want || got == tk.EOD {
			return nil, false
		}
	}
	end := cur.pos
	m := &Match{loc: loc, end: end}
	bindIfPresent(p, sc, m)
	return m, true
}
