// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// zeroOrOnePattern is "[...]": the sub-pattern may match zero or one
// times. Grounded on ZeroOrOnePattern/zeroOrOneMatcher in
// original_source/ss.c.
type zeroOrOnePattern struct {
	base
	sub Pattern
}

func newZeroOrOne(sub Pattern) *zeroOrOnePattern { return &zeroOrOnePattern{sub: sub} }

func (p *zeroOrOnePattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	saved := *cur
	sub := newScope()
	m, ok := p.sub.match(ctx, sub, cur)
	sub.commit()
	if !ok {
		*cur = saved
		m = emptyMatch(loc)
	}
	bindIfPresent(p, sc, m)
	return m, true
}

// zeroOrMorePattern is "{...}": greedy repetition, zero or more times,
// chained through Match.Next in input order. Grounded on
// ZeroOrMorePattern/zeroOrMoreMatcher in original_source/ss.c.
type zeroOrMorePattern struct {
	base
	sub Pattern
}

func newZeroOrMore(sub Pattern) *zeroOrMorePattern { return &zeroOrMorePattern{sub: sub} }

func (p *zeroOrMorePattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	loc := cur.pos
	start := *cur
	first, ok := attemptOnce(ctx, p.sub, cur)
	if !ok {
		*cur = start
		m := emptyMatch(loc)
		bindIfPresent(p, sc, m)
		return m, true
	}
	last := first
	for {
		saved := *cur
		next, ok := attemptOnce(ctx, p.sub, cur)
		if !ok {
			*cur = saved
			break
		}
		last.next = next
		last = next
	}
	bindIfPresent(p, sc, first)
	return first, true
}

// oneOrMorePattern is "<...>": like zeroOrMorePattern but at least one
// match is required. Grounded on OneOrMorePattern/oneOrMoreMatcher in
// original_source/ss.c.
type oneOrMorePattern struct {
	base
	sub Pattern
}

func newOneOrMore(sub Pattern) *oneOrMorePattern { return &oneOrMorePattern{sub: sub} }

func (p *oneOrMorePattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	first, ok := attemptOnce(ctx, p.sub, cur)
	if !ok {
		return nil, false
	}
	last := first
	for {
		saved := *cur
		next, ok := attemptOnce(ctx, p.sub, cur)
		if !ok {
			*cur = saved
			break
		}
		last.next = next
		last = next
	}
	bindIfPresent(p, sc, first)
	return first, true
}

// attemptOnce runs pat against a fresh sub-scope, committing it on
// success. It is shared by ZeroOrMore and OneOrMore since every
// repetition attempt is isolated in its own capture scope.
func attemptOnce(ctx *Context, pat Pattern, cur *cursor) (*Match, bool) {
	sub := newScope()
	m, ok := pat.match(ctx, sub, cur)
	sub.commit()
	return m, ok
}
