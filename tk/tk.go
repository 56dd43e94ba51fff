// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

// Package tk holds the small set of sentinel code-point values shared by
// every other package in the module.
package tk

const (

	// EOD is returned by a cursor's read once every code point of the
	// input has been consumed. Since rune is alias for int32 and Unicode
	// (currently) ends well below 1<<31-1 we are safe to use the largest
	// possible valid rune value as the end-of-data sentinel.
	EOD rune = 1<<31 - 1 // max int32

	// ErrCode is returned by a cursor's read when the input could not be
	// decoded (malformed UTF-8 in Chars format). Kept distinct from EOD so
	// callers can tell "nothing left" apart from "something broken".
	ErrCode rune = 1<<31 - 2
)
