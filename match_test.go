package patscan_test

import (
	"fmt"

	"github.com/rwxrob/patscan"
)

func ExampleMatch_lookaheadSideEffectFree() {
	// match(P) == match(AllOf(HasNext(Q), P)) whenever Q matches at the
	// start of S; HasNext never consumes input nor leaks a capture bound
	// inside the probed sub-pattern.
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `^( digit ):x( digit ):y`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `5`)
	m, ok := s.Match()
	if !ok {
		fmt.Println("no match")
		return
	}
	_, xok := m.Get("x")
	y, yok := m.Get("y")
	fmt.Println(xok, yok, y.Loc(), y.End())
	// Output:
	// false true 0 1
}

func ExampleMatch_negationDuality() {
	// NotNext(NotNext(P)) succeeds iff HasNext(P) succeeds, consuming no
	// input either way. Find (not the anchored Match) is used here since
	// both sides are zero-width and the input is not itself empty.
	ctx := patscan.New()

	doubleNeg, err := ctx.Compile(patscan.Bytes, `~(~'a')`)
	if err != nil {
		fmt.Println(err)
		return
	}
	hasNext, err := ctx.Compile(patscan.Bytes, `^('a')`)
	if err != nil {
		fmt.Println(err)
		return
	}

	s1 := ctx.Start(patscan.Bytes, doubleNeg, `a`)
	m1, ok1 := s1.Find()
	s2 := ctx.Start(patscan.Bytes, hasNext, `a`)
	m2, ok2 := s2.Find()

	fmt.Println(ok1, m1.Loc(), m1.End())
	fmt.Println(ok2, m2.Loc(), m2.End())
	// Output:
	// true 0 0
	// true 0 0
}

func ExampleMatch_optionalSubsumes() {
	// ZeroOrOne(P) succeeds both where P succeeds and where P fails.
	present, _ := matchAll(`['a']`, `a`)
	absent, _ := matchAll(`['a']`, ``)
	fmt.Println(present, absent)
	// Output:
	// true true
}

func ExampleMatch_repetitionChain() {
	// Every success of ZeroOrMore(P) yields a chain of sibling matches
	// whose consecutive end/loc values are equal. Binding the repetition
	// itself is what lets a caller retrieve the chain head intact, since
	// the enclosing AllOf otherwise only reports its own outer span.
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `{digit}:all`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `123`)
	m, ok := s.Match()
	if !ok {
		fmt.Println("no match")
		return
	}
	all, _ := m.Get("all")
	for n := all; n != nil; n = n.Next() {
		fmt.Print(n.Loc(), "-", n.End(), " ")
	}
	fmt.Println()
	// Output:
	// 0-1 1-2 2-3
}

func ExampleMatch_scopeShadowing() {
	// Binding the same key at two nested levels leaves the outermost
	// binding visible through Get.
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( ( 'a' ):x ):x`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `a`)
	m, ok := s.Match()
	if !ok {
		fmt.Println("no match")
		return
	}
	x, ok := m.Get("x")
	fmt.Println(ok, x.Loc(), x.End())
	// Output:
	// true 0 1
}

func ExampleMatch_oneOfCancelsOnFailure() {
	// A capture staged inside a failed OneOf branch never leaks into the
	// scope of the branch that actually won.
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( ( 'a' ):x | ( 'b' ):y ):picked`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `b`)
	m, ok := s.Match()
	if !ok {
		fmt.Println("no match")
		return
	}
	picked, _ := m.Get("picked")
	_, xok := picked.Get("x")
	y, yok := picked.Get("y")
	fmt.Println(xok, yok, y.Loc(), y.End())
	// Output:
	// false true 0 1
}
