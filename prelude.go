// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import "github.com/rwxrob/patscan/is"

// preludeClasses lists every built-in named pattern seeded into a
// fresh Context's registry. Grounded on ss_prelude in
// original_source/ss.c.
var preludeClasses = []struct {
	name  string
	class is.ClassFunc
}{
	{"char", is.Char},
	{"digit", is.Digit},
	{"alpha", is.Alpha},
	{"alnum", is.Alnum},
	{"blank", is.Blank},
	{"space", is.Space},
	{"upper", is.Upper},
	{"lower", is.Lower},
}

// loadPrelude seeds ctx's registry with the eight built-in classes.
// Called once from New.
func loadPrelude(ctx *Context) {
	for _, c := range preludeClasses {
		ctx.patterns[c.name] = newBuiltin(c.name, c.class)
	}
}

// DefineClass registers a further single-code-point named pattern
// backed by class, without the caller having to hand-roll a Builtin
// pattern value. This is a natural small extension the reference C
// API, with its closed ss_Pattern tagged union, could not offer as
// cheaply; it is grounded on the ClassFunc registration convention
// documented by the sibling rwxrob/pegn package.
func (ctx *Context) DefineClass(name string, class is.ClassFunc) {
	ctx.Define(name, newBuiltin(name, class))
}
