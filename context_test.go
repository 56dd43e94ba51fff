package patscan_test

import (
	"fmt"

	"github.com/rwxrob/patscan"
)

func ExampleNew() {
	ctx := patscan.New()
	fmt.Println(ctx.Errnum())
	// Output:
	// none
}

func ExampleContext_Define() {
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( 'z' )`)
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx.Define("zed", pat)

	full, err := ctx.Compile(patscan.Bytes, `( zed )`)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := ctx.Start(patscan.Bytes, full, "z")
	m, ok := s.Match()
	fmt.Println(ok, m.Loc(), m.End())
	// Output:
	// true 0 1
}

func ExampleContext_Errclr() {
	ctx := patscan.New()
	_, err := ctx.Compile(patscan.Bytes, `(`)
	fmt.Println(err != nil, ctx.Errnum())
	ctx.Errclr()
	fmt.Println(ctx.Errnum())
	// Output:
	// true syntax
	// none
}

func ExampleContext_Compile_undefinedAtMatchTime() {
	ctx := patscan.New()
	pat, err := ctx.Compile(patscan.Bytes, `( nope )`)
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}
	s := ctx.Start(patscan.Bytes, pat, "anything")
	_, ok := s.Match()
	fmt.Println(ok, ctx.Errnum())
	// Output:
	// false undefined
}
