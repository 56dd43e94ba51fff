// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import "fmt"

// namedPattern defers to whatever is registered under name in the
// owning Context's registry, resolved at *match* time rather than at
// compile time. This is what lets a pattern recurse (by naming itself)
// or be redefined mid-session and have later matches see the new
// definition. SPEC_FULL.md §4.4 is explicit about match-time
// resolution; this overrides the reference's eager compile-time lookup
// in ss_compileNamed (see DESIGN.md).
type namedPattern struct {
	base
	name string
}

func newNamed(name string) *namedPattern { return &namedPattern{name: name} }

func (p *namedPattern) match(ctx *Context, sc *scope, cur *cursor) (*Match, bool) {
	target, ok := ctx.lookup(p.name)
	if !ok {
		ctx.errorf(ErrUndefined, "undefined pattern %q", p.name)
		return nil, false
	}
	m, ok := target.match(ctx, sc, cur)
	if !ok {
		return nil, false
	}
	bindIfPresent(p, sc, m)
	return m, true
}

func (p *namedPattern) String() string { return fmt.Sprintf("Named(%s)", p.name) }
