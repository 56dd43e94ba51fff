// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"fmt"

	"github.com/rwxrob/to"
)

// Context owns a registry of named patterns and the sticky error state
// for the last failed operation. A Context is single-threaded:
// compiling or matching against it concurrently with a Define on
// another goroutine is not safe, exactly as in the reference. Grounded
// on ss_Context/ss_init in original_source/ss.c and on scan.R's own
// Init/error-field shape in rwxrob-scan/scan.go.
type Context struct {
	patterns map[string]Pattern

	errnum Error
	errmsg string
}

// New creates a Context seeded with the eight prelude built-ins
// (char, digit, alpha, alnum, blank, space, upper, lower).
func New() *Context {
	ctx := &Context{
		patterns: map[string]Pattern{},
	}
	loadPrelude(ctx)
	return ctx
}

// Define registers pat under name in ctx's registry, replacing any
// earlier definition. Because Named patterns resolve at match time,
// redefining a name takes effect for every match performed after
// Define returns, including recursive self-references.
func (ctx *Context) Define(name string, pat Pattern) {
	ctx.patterns[name] = pat
}

// lookup resolves name against the registry.
func (ctx *Context) lookup(name string) (Pattern, bool) {
	pat, ok := ctx.patterns[name]
	return pat, ok
}

// Compile parses text (in the given Format) into a Pattern using ctx's
// current registry. On a syntax or format error it returns (nil, error)
// and also leaves the sticky error state set; callers that
// don't need the Go error value can instead inspect Errnum/Errmsg.
func (ctx *Context) Compile(format Format, text string) (Pattern, error) {
	ctx.Errclr()
	c := newCompiler(ctx, []byte(text), format)
	pat := c.compileFull()
	if ctx.errnum != ErrNone {
		return nil, fmt.Errorf("%s: %s", ctx.errnum, ctx.errmsg)
	}
	return pat, nil
}

// Errnum returns the kind of the last sticky error, or ErrNone.
func (ctx *Context) Errnum() Error { return ctx.errnum }

// Errmsg returns the message of the last sticky error, or "".
func (ctx *Context) Errmsg() string { return ctx.errmsg }

// Errclr clears the sticky error state, making the Context usable for
// a fresh operation.
func (ctx *Context) Errclr() {
	ctx.errnum = ErrNone
	ctx.errmsg = ""
}

// errorf sets the sticky error state unless one is already set, so
// that an operation built of several internal sub-steps always reports
// the first failure, never a later one masking it. Every non-string
// value in args is rendered with to.Human (the teacher's own dependency
// for turning arbitrary Go values into readable text, see expr.go's
// to.Human calls) before formatting, whatever verb it fills.
func (ctx *Context) errorf(kind Error, format string, args ...any) {
	if ctx.errnum != ErrNone {
		return
	}
	humanized := make([]any, len(args))
	for i, a := range args {
		if _, isStr := a.(string); isStr {
			humanized[i] = a
			continue
		}
		humanized[i] = to.Human(a)
	}
	ctx.errnum = kind
	ctx.errmsg = fmt.Sprintf(format, humanized...)
}
