package vercmp_test

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/vercmp"
)

func Example() {
	a, b := "1.2", "1.5.1"

	fmt.Println(vercmp.Compare(a, b))
	fmt.Println(vercmp.CompareTo(a, b, vercmp.OpLe))
	fmt.Println(vercmp.CompareTo(a, b, vercmp.OpGt))

	// Output:
	// -1
	// true
	// false
}

func ExampleParse() {
	v := vercmp.Parse("1.2.alpha")

	fmt.Println(v.PartCount())
	for _, p := range v.Parts() {
		fmt.Println(p.IsNumeric(), p.String())
	}

	// Output:
	// 3
	// true 1
	// true 2
	// false alpha
}

func ExampleVersion_CompareTo() {
	a := vercmp.Parse("1.2")
	b := vercmp.Parse("1.2.0.0")

	fmt.Println(a.CompareTo(b, vercmp.OpEq))
	fmt.Println(a.CompareTo(b, vercmp.OpLt))

	// Output:
	// true
	// false
}

func ExampleSort() {
	versions := []string{"1.10", "1.2", "1.9"}
	vercmp.Sort(versions)

	fmt.Println(strings.Join(versions, " "))

	// Output:
	// 1.2 1.9 1.10
}

func ExampleParseConstraint() {
	c, err := vercmp.ParseConstraint(">=1.2.3")
	if err != nil {
		panic(err)
	}

	fmt.Println(c.Satisfies("1.5.0"))
	fmt.Println(c.Satisfies("1.0.0"))

	// Output:
	// true
	// false
}
