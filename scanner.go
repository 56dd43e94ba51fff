// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

// Scanner wraps a compiled Pattern and an owning cursor over input
// text, exposing anchored (Match) and sliding (Find) search. Grounded
// on the stateful (Buf, Cur) pairing at the heart of rwxrob-scan's
// scan.R, narrowed here to the one pattern/cursor pair a Scanner owns.
type Scanner struct {
	ctx *Context
	pat Pattern
	cur cursor

	last *Match
}

// Start returns a Scanner positioned at the beginning of text, ready to
// Match or Find pat against it using format to decode code points.
func (ctx *Context) Start(format Format, pat Pattern, text string) *Scanner {
	return &Scanner{
		ctx: ctx,
		pat: pat,
		cur: newCursor([]byte(text), format),
	}
}

// Match attempts pat at the scanner's current position and succeeds
// only if the match consumes all the way to the end of the input: an
// anchored, full-text match. The scanner's cursor is left at the start
// position regardless of outcome; call Find to advance through text.
func (s *Scanner) Match() (*Match, bool) {
	cur := s.cur
	top := newScope()
	m, ok := s.pat.match(s.ctx, top, &cur)
	if !ok || !cur.atEnd() {
		return nil, false
	}
	top.commit()
	s.last = m
	return m, true
}

// Find slides the scanner's cursor forward one code point at a time
// until pat matches or the input is exhausted, checking the
// end-of-input sentinel before every read (fixing the reference's
// unchecked-read bug noted in SPEC_FULL.md §9: ss_find in ss.c reads
// one more code point than it checks for, running one past the end).
// On success the scanner's cursor is advanced to the match's End and
// the match is returned and remembered for Last.
func (s *Scanner) Find() (*Match, bool) {
	for {
		cur := s.cur
		top := newScope()
		if m, ok := s.pat.match(s.ctx, top, &cur); ok {
			top.commit()
			s.cur.pos = m.end
			s.last = m
			return m, true
		}
		if s.cur.atEnd() {
			return nil, false
		}
		s.cur.read()
	}
}

// Last returns the most recent successful match produced by Match or
// Find, or (nil, false) if neither has yet succeeded. This is an
// ambient convenience absent from the reference implementation, which
// never stored the last match; it falls out naturally once Find is
// meant to be called in a loop.
func (s *Scanner) Last() (*Match, bool) {
	if s.last == nil {
		return nil, false
	}
	return s.last, true
}
