// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// justOnePattern is grouping: it matches its sub-pattern exactly once,
// in a fresh sub-scope, and is the variant a "(...)" bracket compiles
// to. Grounded on JustOnePattern/justOneMatcher in
// original_source/ss.c.
type justOnePattern struct {
	base
	sub Pattern
}

func newJustOne(sub Pattern) *justOnePattern {
	return &justOnePattern{sub: sub}
}

func (p *justOnePattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	sub := newScope()
	m, ok := p.sub.match(ctx, sub, cur)
	sub.commit()
	if !ok {
		return nil, false
	}
	bindIfPresent(p, sc, m)
	return m, true
}
