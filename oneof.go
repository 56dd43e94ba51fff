// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// oneOfPattern is ordered choice: branches are tried in written order
// and the first success wins. Unlike AllOf, OneOf passes the *outer*
// scope straight through to each branch (not a fresh sub-scope) so that
// a bound primitive inside a successful branch lands its capture in the
// right place; between failed attempts the outer scope's staging area
// is cancelled so a rejected branch never leaks a capture. Grounded on
// OneOfPattern/oneOfMatcher in original_source/ss.c.
type oneOfPattern struct {
	base
	subs []Pattern
}

func newOneOf(subs []Pattern) *oneOfPattern {
	return &oneOfPattern{subs: subs}
}

func (p *oneOfPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	for _, child := range p.subs {
		saved := *cur
		if m, ok := child.match(ctx, sc, cur); ok {
			return m, true
		}
		*cur = saved
		sc.cancel()
	}
	return nil, false
}
