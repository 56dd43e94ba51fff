package patscan_test

import (
	"fmt"

	"github.com/rwxrob/patscan"
)

func ExampleScanner_Find() {
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( 'apple' | 'orange' | 'pear' )`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `I ate an apple.`)
	m, ok := s.Find()
	fmt.Println(ok, m.Loc(), m.End())
	// Output:
	// true 9 14
}

func ExampleScanner_Find_none() {
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `'kiwi'`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `I ate an apple.`)
	_, ok := s.Find()
	fmt.Println(ok)
	// Output:
	// false
}

func ExampleScanner_Last() {
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( digit )`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `a1b2c3`)
	for {
		if _, ok := s.Find(); !ok {
			break
		}
	}
	m, ok := s.Last()
	fmt.Println(ok, m.Loc(), m.End())
	// Output:
	// true 5 6
}

func ExampleContext_findPositioning() {
	// Find never reports a later match if an earlier starting position
	// would also have matched: the first hit found scanning left to
	// right is always the shortest-prefix one.
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( digit )`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, `ab3cd5`)
	m, ok := s.Find()
	fmt.Println(ok, m.Loc())
	// Output:
	// true 2
}
