package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cssbuilder/selector"
)

// Example demonstrates a plain chained composition.
func Example() {
	s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
	fmt.Println(s.Stringify())

	// Output:
	// a[href$=".png"]:focus
}

// ExampleID shows repeatable class fragments after an id.
func ExampleID() {
	s := selector.ID("main").Class("container").Class("editable")
	fmt.Println(s.Stringify())

	// Output:
	// #main.container.editable
}

// ExampleCombine shows combinator joins, including nesting.
func ExampleCombine() {
	hovered := selector.Element("p").PseudoClass("hover")
	adjacent := selector.Combine(hovered, selector.CombinatorAdjacent, selector.Element("img"))
	fmt.Println(adjacent.Stringify())

	nested := selector.Combine(
		selector.Element("ul"),
		selector.CombinatorChild,
		selector.Combine(selector.Element("li"), selector.CombinatorGeneral, selector.Element("li")),
	)
	fmt.Println(nested.Stringify())

	// Output:
	// p:hover + img
	// ul > li ~ li
}

// ExampleBuilder_Err shows how violations surface on a chain.
func ExampleBuilder_Err() {
	s := selector.Element("div").ID("main").ID("second")
	fmt.Println(errors.Is(s.Err(), selector.ErrDuplicateSelector))
	fmt.Println(s.Stringify())

	// Output:
	// true
	// div#main
}
