// Copyright 2022 Robert S. Muhlestein.
// SPDX-License-Identifier: Apache-2.0

package patscan

import (
	"github.com/rwxrob/patscan/is"
	"github.com/rwxrob/patscan/tk"
	"github.com/rwxrob/structs/qstack"
)

// compiler is a recursive-descent parser from pattern source text to a
// compiled Pattern, driven by a two-code-point lookahead pair
// (ch1, ch2) exactly like the reference's ss_Compiler. Grounded
// line-for-line on the ss_compile* family in original_source/ss.c.
type compiler struct {
	ctx *Context
	cur cursor

	ch1, ch2 rune

	// openers tracks the stack of currently-open bracket shapes; no error
	// message reads it (the "Mismatched brackets" message names the opener
	// held by compileCompound itself). The recursive-descent call stack
	// remains the actual parser state, per SPEC_FULL.md §4.3.
	openers *qstack.QStack[rune]
}

func newCompiler(ctx *Context, buf []byte, format Format) *compiler {
	c := &compiler{
		ctx:     ctx,
		cur:     newCursor(buf, format),
		openers: qstack.New[rune](),
	}
	c.advance()
	c.advance()
	return c
}

// advance shifts ch2 into ch1 and reads the next code point into ch2.
func (c *compiler) advance() {
	c.ch1 = c.ch2
	c.ch2 = c.cur.read()
	if c.ch2 == tk.ErrCode {
		c.ctx.errorf(ErrFormat, "malformed input at %s", c.cur.Position())
	}
}

func isOpening(r rune) bool {
	return r == '(' || r == '{' || r == '[' || r == '<'
}

func isClosing(r rune) bool {
	return r == ')' || r == '}' || r == ']' || r == '>'
}

func areMatching(open, close rune) bool {
	switch open {
	case '(':
		return close == ')'
	case '{':
		return close == '}'
	case '[':
		return close == ']'
	case '<':
		return close == '>'
	}
	return false
}

// isBreak reports whether ch1 (with one more code point of lookahead
// in ch2) terminates a run of literal text. Note that quote characters
// and digits are deliberately absent: outside of a compound or an
// explicit break they are ordinary literal text, exactly as in the
// reference isbreak.
func isBreak(ch1, ch2 rune) bool {
	if ch1 == '^' || ch1 == '~' {
		if isOpening(ch2) || ch2 == '*' || ch2 == '?' {
			return true
		}
	}
	if isOpening(ch1) {
		return true
	}
	return ch1 == '*' || ch1 == '?' || ch1 == '\\'
}

func isEnd(r rune) bool { return r == tk.EOD }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// whitespace skips a run of space characters. Only meaningful inside a
// compound, where whitespace is not significant.
func (c *compiler) whitespace() {
	for isSpace(c.ch1) {
		c.advance()
	}
}

// compileFull parses the entire source as a sequence of literal text
// runs and patterns, returning their concatenation. Compiling an empty
// source yields an AllOf of zero children.
func (c *compiler) compileFull() Pattern {
	var pieces []Pattern
	for {
		pat := c.compileText()
		if pat == nil {
			pat = c.compilePattern()
		}
		if pat == nil {
			break
		}
		pieces = append(pieces, pat)
	}
	return newAllOf(pieces)
}

// compileText consumes a maximal run of non-break code points as a
// single Literal, preserving whitespace verbatim.
func (c *compiler) compileText() Pattern {
	if isEnd(c.ch1) {
		return nil
	}
	if isBreak(c.ch1, c.ch2) {
		return nil
	}
	var runes []rune
	for !isBreak(c.ch1, c.ch2) && !isEnd(c.ch1) {
		runes = append(runes, c.ch1)
		c.advance()
	}
	return newLiteral(runes)
}

// compilePattern is "primitive | '~' primitive | '^' primitive | named".
func (c *compiler) compilePattern() Pattern {
	pat := c.compilePrimitive()
	if pat != nil || c.ctx.errnum != ErrNone {
		return pat
	}
	pat = c.compileNotNext()
	if pat != nil || c.ctx.errnum != ErrNone {
		return pat
	}
	pat = c.compileHasNext()
	if pat != nil || c.ctx.errnum != ErrNone {
		return pat
	}
	return c.compileNamed()
}

// compilePrimitive is "(string | charEsc | codeDec | compound) [':' name]".
func (c *compiler) compilePrimitive() Pattern {
	pat := c.compileString()
	if pat == nil {
		pat = c.compileChar()
	}
	if pat == nil {
		pat = c.compileCode()
	}
	if pat == nil {
		pat = c.compileCompound()
	}
	if pat == nil {
		return nil
	}

	if c.ch1 != ':' {
		return pat
	}
	c.advance()

	name := c.parseName()
	if name == "" {
		c.ctx.errorf(ErrSyntax, "Invalid binding name")
		return nil
	}
	return withBinding(pat, name)
}

// compileString parses a quoted literal: '"' ... '"', '`' ... '`', or
// '\'' ... '\''. No escape processing happens inside the quotes.
func (c *compiler) compileString() Pattern {
	var quote rune
	switch c.ch1 {
	case '"', '`', '\'':
		quote = c.ch1
	default:
		return nil
	}
	c.advance()

	var runes []rune
	for c.ch1 != quote {
		if isEnd(c.ch1) {
			c.ctx.errorf(ErrSyntax, "Unterminated string")
			return nil
		}
		runes = append(runes, c.ch1)
		c.advance()
	}
	c.advance()
	return newLiteral(runes)
}

// compileChar parses a single backslash-escaped code point.
func (c *compiler) compileChar() Pattern {
	if c.ch1 != '\\' {
		return nil
	}
	c.advance()
	if isEnd(c.ch1) {
		c.ctx.errorf(ErrSyntax, "Unterminated pattern")
		return nil
	}
	r := c.ch1
	c.advance()
	return newLiteral([]rune{r})
}

// compileCode parses a decimal character code, e.g. "65" for 'A'.
func (c *compiler) compileCode() Pattern {
	if !is.Digit(c.ch1) {
		return nil
	}
	var code rune
	for is.Alnum(c.ch1) {
		if !is.Digit(c.ch1) {
			c.ctx.errorf(ErrSyntax, "Non-digit at end of character code")
			return nil
		}
		code = code*10 + (c.ch1 - '0')
		c.advance()
	}
	return newLiteral([]rune{code})
}

// parseName consumes a run of identifier characters ('_' or alnum)
// and returns it, possibly empty.
func (c *compiler) parseName() string {
	var runes []rune
	for c.ch1 == '_' || is.Alnum(c.ch1) {
		runes = append(runes, c.ch1)
		c.advance()
	}
	return string(runes)
}

// compileNamed parses a bare identifier, or the reserved '*'/'?'
// shorthands (resolving to "splat"/"quark"), into a deferred
// reference resolved against the registry at match time.
func (c *compiler) compileNamed() Pattern {
	if !is.Alpha(c.ch1) && c.ch1 != '_' && c.ch1 != '*' && c.ch1 != '?' {
		return nil
	}

	var name string
	switch c.ch1 {
	case '*':
		name = "splat"
		c.advance()
	case '?':
		name = "quark"
		c.advance()
	default:
		name = c.parseName()
	}
	return newNamed(name)
}

// compileNotNext parses "'~' primitive".
func (c *compiler) compileNotNext() Pattern {
	if c.ch1 != '~' {
		return nil
	}
	c.advance()
	c.whitespace()

	pat := c.compilePrimitive()
	if pat == nil {
		if c.ctx.errnum == ErrNone {
			c.ctx.errorf(ErrSyntax, "Expected sub-pattern")
		}
		return nil
	}
	return newNotNext(pat)
}

// compileHasNext parses "'^' primitive".
func (c *compiler) compileHasNext() Pattern {
	if c.ch1 != '^' {
		return nil
	}
	c.advance()
	c.whitespace()

	pat := c.compilePrimitive()
	if pat == nil {
		if c.ctx.errnum == ErrNone {
			c.ctx.errorf(ErrSyntax, "Expected sub-pattern")
		}
		return nil
	}
	return newHasNext(pat)
}

// compileCompound parses one of the four bracket shapes into branches
// of an OneOf-of-AllOfs, then wraps the result in the multiplicity
// variant the bracket shape selects.
func (c *compiler) compileCompound() Pattern {
	if !isOpening(c.ch1) {
		return nil
	}
	open := c.ch1
	c.openers.Push(open)
	c.advance()
	c.whitespace()

	var branches []Pattern
	for !isClosing(c.ch1) {
		if isEnd(c.ch1) {
			c.ctx.errorf(ErrSyntax, "Unterminated pattern")
			c.openers.Pop()
			return nil
		}

		var pieces []Pattern
		for {
			pat := c.compilePattern()
			if pat == nil {
				if c.ctx.errnum == ErrNone {
					c.ctx.errorf(ErrSyntax, "Expected sub-pattern")
				}
				c.openers.Pop()
				return nil
			}
			pieces = append(pieces, pat)
			c.whitespace()
			if c.ch1 == '|' || isClosing(c.ch1) {
				break
			}
		}

		if c.ch1 == '|' {
			c.advance()
		}
		branches = append(branches, newAllOf(pieces))
		c.whitespace()
	}

	if !areMatching(open, c.ch1) {
		c.ctx.errorf(ErrSyntax, "Mismatched brackets: %s", string(open))
		c.openers.Pop()
		return nil
	}
	c.openers.Pop()
	c.advance()

	var inner Pattern
	if len(branches) == 1 {
		inner = branches[0]
	} else {
		inner = newOneOf(branches)
	}

	switch open {
	case '(':
		return newJustOne(inner)
	case '{':
		return newZeroOrMore(inner)
	case '[':
		return newZeroOrOne(inner)
	case '<':
		return newOneOrMore(inner)
	}
	return nil
}
