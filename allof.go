// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// allOfPattern is concatenation: every sub-pattern must match in order
// against a fresh sub-scope. Grounded on AllOfPattern/allOfMatcher in
// original_source/ss.c.
type allOfPattern struct {
	base
	subs []Pattern
}

func newAllOf(subs []Pattern) *allOfPattern {
	return &allOfPattern{subs: subs}
}

func (p *allOfPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	sub := newScope()
	for _, child := range p.subs {
		if _, ok := child.match(ctx, sub, cur); !ok {
			// Cursor is left wherever the failing child stopped; restoring
			// it is the caller's job at the next alternation boundary. The
			// sub-scope is simply discarded (never committed).
			return nil, false
		}
	}
	sub.commit()
	end := cur.pos
	m := &Match{loc: loc, end: end, scope: sub}
	bindIfPresent(p, sc, m)
	return m, true
}
