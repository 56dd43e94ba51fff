// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"github.com/rwxrob/patscan/is"
	"github.com/rwxrob/patscan/tk"
)

// builtinPattern consumes exactly one code point and succeeds when
// class holds for it. It backs every prelude entry (char, digit,
// alpha, ...) as well as any class an embedder registers with
// Context.DefineClass. Grounded on the family of *Matcher functions
// (charMatcher, digitMatcher, ...) in original_source/ss.c, which are
// one-off hand-written duplicates of this same shape; here they
// collapse to a single type parameterized by an is.ClassFunc.
type builtinPattern struct {
	base
	name  string
	class is.ClassFunc
}

func newBuiltin(name string, class is.ClassFunc) *builtinPattern {
	return &builtinPattern{name: name, class: class}
}

func (p *builtinPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	r := cur.read()
	if r == tk.EOD || r == tk.ErrCode || !p.class(r) {
		return nil, false
	}
	m := &Match{loc: loc, end: cur.pos}
	bindIfPresent(p, sc, m)
	return m, true
}
