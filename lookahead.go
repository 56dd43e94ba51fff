// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// hasNextPattern is "^..." : a positive, zero-width lookahead. The
// cursor is always restored to where it started, win or lose, and the
// outcome is always reported as an empty match at that position rather
// than passing through the probed child's own match — per SPEC_FULL.md
// §9 this fixes the reference's scope-leaking behavior (ss.c's
// hasNextMatcher returns the child's match, scope and all) so that
// a lookahead can never surface a capture it only probed, keeping
// lookahead provably side-effect free even for bound sub-patterns.
type hasNextPattern struct {
	base
	sub Pattern
}

func newHasNext(sub Pattern) *hasNextPattern { return &hasNextPattern{sub: sub} }

func (p *hasNextPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	saved := *cur
	sub := newScope()
	_, ok := p.sub.match(ctx, sub, cur)
	*cur = saved
	if !ok {
		return nil, false
	}
	m := emptyMatch(loc)
	bindIfPresent(p, sc, m)
	return m, true
}

// notNextPattern is "~..." : a negative, zero-width lookahead. The
// probe runs with a nil scope (so even if it succeeds, no capture is
// ever staged anywhere) and the cursor is always restored. Grounded on
// NotNextPattern/notNextMatcher in original_source/ss.c.
type notNextPattern struct {
	base
	sub Pattern
}

func newNotNext(sub Pattern) *notNextPattern { return &notNextPattern{sub: sub} }

func (p *notNextPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	saved := *cur
	_, ok := p.sub.match(ctx, nil, cur)
	*cur = saved
	if ok {
		return nil, false
	}
	m := emptyMatch(loc)
	bindIfPresent(p, sc, m)
	return m, true
}
