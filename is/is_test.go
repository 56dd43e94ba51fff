package is_test

import (
	"fmt"

	"github.com/rwxrob/patscan/is"
)

func ExampleDigit() {
	fmt.Println(is.Digit('5'), is.Digit('x'), is.Digit(' '))
	// Output:
	// true false false
}

func ExampleAlpha() {
	fmt.Println(is.Alpha('Q'), is.Alpha('q'), is.Alpha('5'))
	// Output:
	// true true false
}

func ExampleAlnum() {
	fmt.Println(is.Alnum('Q'), is.Alnum('5'), is.Alnum('_'))
	// Output:
	// true true false
}

func ExampleBlank() {
	fmt.Println(is.Blank(' '), is.Blank('\t'), is.Blank('\n'))
	// Output:
	// true true false
}

func ExampleSpace() {
	fmt.Println(is.Space('\n'), is.Space('\r'), is.Space('Q'))
	// Output:
	// true true false
}

func ExampleUpper() {
	fmt.Println(is.Upper('Q'), is.Upper('q'))
	// Output:
	// true false
}

func ExampleLower() {
	fmt.Println(is.Lower('q'), is.Lower('Q'))
	// Output:
	// true false
}

func ExampleChar() {
	fmt.Println(is.Char('x'), is.Char(' '), is.Char(0))
	// Output:
	// true true true
}
