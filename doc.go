// Package cssbuilder is a compact exercise library around object factories
// and fluent string building — construct value objects, round-trip them
// through text codecs, and compose CSS selector strings with chained calls.
//
// 🚀 What is cssbuilder?
//
//	A small, synchronous, dependency-light library that brings together:
//		• Selector builder: chained element/id/class/attr/pseudo fragments,
//		  strict CSS category ordering & uniqueness, combinator joins
//		• Shapes: rectangle value objects with computed accessors
//		• Codec: JSON & YAML serialize/deserialize round-trip helpers
//
// ✨ Why choose cssbuilder?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics, in-code docs
//   - Pure values – no I/O, no globals, every chain independent
//
// Under the hood, everything is organized under three subpackages:
//
//	selector/ — the fluent CSS selector builder: facade entry points,
//	            chained fragment methods, combinators, Stringify/Build
//	shape/    — Rectangle value object: Area, Perimeter, Scale
//	codec/    — ToJSON/FromJSON and ToYAML/FromYAML helpers
//
// Quick chained example:
//
//	selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
//	// → a[href$=".png"]:focus
//
// Dive into the examples/ directory for runnable scenarios covering chain
// composition, combinator nesting, and object round-trips.
//
//	go get github.com/katalvlaran/cssbuilder
package cssbuilder
