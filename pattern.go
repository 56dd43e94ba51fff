// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// Pattern is a compiled, immutable value describing a matchable shape.
// It is produced by Context.Compile, registered by name with
// Context.Define, and consumed by Context.Start. The set of concrete implementations is closed to this
// package: match is unexported, so no external package can add a new
// pattern variant, matching the reference design's closed tagged union
// (ss_Pattern's single ss_Matcher function pointer, dispatched here
// through Go's own interface dispatch instead of a hand-rolled switch).
type Pattern interface {
	// match attempts to consume a prefix of cur. scope, if non-nil, is
	// the scope of the enclosing primitive; a pattern carrying a binding
	// name inserts its own Match into scope under that name on success.
	// cur is mutated in place on success; callers that may retry save
	// a value copy beforehand and restore it on failure.
	match(ctx *Context, scope *scope, cur *cursor) (*Match, bool)

	// binding returns the :name suffix attached to this pattern, if any.
	binding() string
}

// base is embedded by every concrete pattern to hold the optional
// capture name attached by a trailing ":name" in the source and to
// supply the binding() method uniformly.
type base struct {
	bind string
}

func (b base) binding() string { return b.bind }

// withBinding attaches name to p and returns p, used by the compiler
// right after a primitive is produced. p must be one of this package's
// own pattern types (a *base-embedding value), since binding is part of
// the closed interface.
func withBinding(p Pattern, name string) Pattern {
	switch v := p.(type) {
	case *literalPattern:
		v.bind = name
	case *allOfPattern:
		v.bind = name
	case *oneOfPattern:
		v.bind = name
	case *justOnePattern:
		v.bind = name
	case *zeroOrOnePattern:
		v.bind = name
	case *zeroOrMorePattern:
		v.bind = name
	case *oneOrMorePattern:
		v.bind = name
	case *hasNextPattern:
		v.bind = name
	case *notNextPattern:
		v.bind = name
	case *builtinPattern:
		v.bind = name
	case *namedPattern:
		v.bind = name
	}
	return p
}

// bindIfPresent inserts match under p's binding name into scope, if p
// has a binding and scope is non-nil. Used by every matcher right
// before it returns a success.
func bindIfPresent(p Pattern, scope *scope, match *Match) {
	if name := p.binding(); name != "" && scope != nil {
		scope.put(name, match)
	}
}

// Match is a record of a successful consumption: the byte span it
// covers in the *original* input, any named captures made while
// matching (Scope), and a sibling chain (Next) linking the successive
// repetitions of a ZeroOrMore/OneOrMore match in input order.
type Match struct {
	loc, end int
	scope    *scope
	next     *Match
}

// Loc returns the byte offset, into the original input, where this
// match begins.
func (m *Match) Loc() int { return m.loc }

// End returns the byte offset, into the original input, just past
// where this match ends. Loc <= End always; lookahead matches and
// empty repetitions have Loc == End.
func (m *Match) End() int { return m.end }

// Next returns the next match in a repetition's sibling chain, or nil
// if m is not part of a repetition or is its last element.
func (m *Match) Next() *Match { return m.next }

// Get returns the sub-match captured under name within m, if any. Only
// commits made at or above the scope of m's own primitive are visible;
// captures made inside a failed OneOf branch are never visible here.
func (m *Match) Get(name string) (*Match, bool) {
	if m == nil || m.scope == nil {
		return nil, false
	}
	return m.scope.get(name)
}

func emptyMatch(at int) *Match {
	return &Match{loc: at, end: at}
}
