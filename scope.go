// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"github.com/rwxrob/structs/qstack"
)

// stagedEntry is a single pending binding waiting to be folded into
// a scope's live table, or discarded.
type stagedEntry struct {
	key string
	val *Match
}

// scope is a mapping from binding name to Match with
// staged/commit/cancel transactional semantics. Staged entries keep
// their insertion order; the committed table is a plain Go map and
// does not. Get only ever consults
// the committed table: a matcher that probes a branch puts its captures
// into the staging area and the caller decides, once the branch's
// overall success or failure is known, whether to commit or cancel.
//
// The staging area is a github.com/rwxrob/structs/qstack.QStack, the
// same dependency the teacher reaches for whenever it needs a
// short-lived LIFO of pending values (Snapped, Parsing in scan.go).
// Commit pops the whole stack, reverses it back to push order, and
// applies each entry to the live table oldest-pushed-first, so a later Put under the same key
// always wins over both an earlier staged entry and an earlier
// committed one.
type scope struct {
	live   map[string]*Match
	staged *qstack.QStack[stagedEntry]
}

// newScope returns an empty, ready-to-use scope.
func newScope() *scope {
	return &scope{
		live:   map[string]*Match{},
		staged: qstack.New[stagedEntry](),
	}
}

// put stages a binding. It is not visible to get until commit.
func (s *scope) put(key string, val *Match) {
	if s == nil {
		return
	}
	s.staged.Push(stagedEntry{key, val})
}

// get looks up a binding in the committed table only.
func (s *scope) get(key string) (*Match, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.live[key]
	return m, ok
}

// commit folds every staged entry into the live table, oldest first,
// so later puts shadow earlier ones, then clears the staging area.
func (s *scope) commit() {
	if s == nil {
		return
	}
	entries := drainOldestFirst(s.staged)
	for _, e := range entries {
		s.live[e.key] = e.val
	}
}

// cancel discards every staged entry without applying it.
func (s *scope) cancel() {
	if s == nil {
		return
	}
	drainOldestFirst(s.staged)
}

// drainOldestFirst pops every entry off a LIFO stack and returns them
// in the order they were originally pushed.
func drainOldestFirst(st *qstack.QStack[stagedEntry]) []stagedEntry {
	var reversed []stagedEntry
	for st.Len() > 0 {
		reversed = append(reversed, st.Pop())
	}
	out := make([]stagedEntry, len(reversed))
	for i, e := range reversed {
		out[len(reversed)-1-i] = e
	}
	return out
}
