// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"fmt"
	"log"
)

// Position contains the human-friendly information about the position
// within a given input. Computing it requires walking the full bytes
// buffer from the start and counting lines, so it is deliberately kept
// separate from the Pointer every read updates and is only computed on
// demand for diagnostics. Note that all values begin with 1 and not 0.
type Position struct {
	Rune    rune // code point at this location
	BufByte int  // byte offset in the buffer
	BufRune int  // code-point offset in the buffer
	Line    int  // line offset
	LByte   int  // line column byte offset
	LRune   int  // line column code-point offset
}

// String fulfills the fmt.Stringer interface by printing the Position
// in a human-friendly way:
//
//	U+1F47F '👿' 1,3-5 (3-5)
//	             | | |  | |
//	          line | |  | overall byte offset
//	line rune offset |  overall rune offset
//	  line byte offset
func (p Position) String() string {
	return fmt.Sprintf(`%U %q %v,%v-%v (%v-%v)`,
		p.Rune, p.Rune,
		p.Line, p.LRune, p.LByte,
		p.BufRune, p.BufByte,
	)
}

// Print prints the Position itself in String form. See String.
func (p Position) Print() { fmt.Println(p.String()) }

// Log calls log.Println on Position itself in String form. See String.
func (p Position) Log() { log.Println(p.String()) }

// position walks c.buf from the start up to byte offset upto, counting
// lines and rune offsets, and returns the resulting Position for the
// code point beginning at upto. \r\n, \r, and \n each count as a single
// line break.
func position(buf []byte, upto int, atRune rune) Position {
	pos := Position{Rune: atRune, BufByte: 1, BufRune: 1, Line: 1, LByte: 1, LRune: 1}
	i := 0
	for i < upto && i < len(buf) {
		r, size := decodeRune(buf[i:])
		if size == 0 {
			size = 1
			r = rune(buf[i])
		}
		pos.BufByte += size
		pos.BufRune++
		pos.LByte += size
		pos.LRune++
		if r == '\n' || (r == '\r' && !startsCRLF(buf, i)) || isLoneCR(buf, i, size) {
			pos.Line++
			pos.LByte = 1
			pos.LRune = 1
		}
		i += size
	}
	return pos
}

// startsCRLF reports whether buf[i] begins a "\r\n" sequence.
func startsCRLF(buf []byte, i int) bool {
	return i+1 < len(buf) && buf[i] == '\r' && buf[i+1] == '\n'
}

// isLoneCR reports whether the code point consumed at i was a bare '\r'
// not already accounted for as part of a "\r\n" pair.
func isLoneCR(buf []byte, i, size int) bool {
	return size == 1 && buf[i] == '\r' && !startsCRLF(buf, i)
}

// Position computes the human-friendly Position of the cursor's last
// scanned code point. See Position for field meanings.
func (c *cursor) Position() Position {
	return position(c.buf, c.B, c.R)
}

// Report prints the current cursor position followed by, if set, the
// sticky error message and its own position, mirroring the preview
// shown by Pointer.String.
func (ctx *Context) Report(c *cursor) {
	c.Position().Print()
	if ctx.errnum != ErrNone {
		log.Printf("error: %s at %s", ctx.errmsg, c.Position())
	}
}
