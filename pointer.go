// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"fmt"
)

// PointerView caps how many bytes of upcoming input Pointer.String
// shows after the last scanned code point; 0 turns the preview off.
var PointerView = 10

// Pointer is the raw bookkeeping a cursor carries for its most
// recently scanned code point: which buffer it belongs to, the rune
// itself, and its byte span. Every read of a cursor overwrites these
// four fields in place, which is why they stay this bare rather than
// gaining accessor methods — Width and String both derive from them
// instead of caching anything themselves. The field order must never
// change. Line/column reporting lives in Position, built on demand
// from these same offsets.
type Pointer struct {
	Buf *[]byte
	R   rune
	B   int
	E   int
}

// Width reports how many bytes the last scanned code point occupied,
// 0 for a Pointer that has never read anything.
func (p Pointer) Width() int { return p.E - p.B }

// String renders the last scanned code point, its byte span, and (Buf
// permitting) a short preview of what follows, capped by PointerView.
func (p Pointer) String() string {
	head := fmt.Sprintf("%q %v-%v", p.R, p.B, p.E)
	if p.Buf == nil || PointerView <= 0 {
		return head
	}
	buf := *p.Buf
	stop := p.E + PointerView
	if stop > len(buf) {
		stop = len(buf)
	}
	if stop <= p.E {
		return head
	}
	return fmt.Sprintf("%s  %q", head, buf[p.E:stop])
}
