// SPDX-License-Identifier: MIT
// Package: cssbuilder/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - Stateless facade: every entry point constructs a fresh *Builder and
//     immediately applies the corresponding operation, so independent chains
//     never share state and may be interleaved or reused freely.
//   - All chaining behavior, ordering/uniqueness enforcement, and rendering
//     live on Builder (types.go, methods.go); this file only seeds chains.
//   - Determinism: the rendered text depends solely on the sequence of calls
//     on one chain; same calls ⇒ identical Stringify output.
//   - Safety: never panic; violations are recorded as sentinel errors on the
//     chain and read back via Err()/Build().

package selector

// Element starts a new chain with a type fragment: the value is appended
// verbatim (e.g. Element("div") renders "div").
func Element(value string) *Builder {
	return new(Builder).Element(value)
}

// ID starts a new chain with an id fragment: renders "#"+value.
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class starts a new chain with a class fragment: renders "."+value.
func Class(value string) *Builder {
	return new(Builder).Class(value)
}

// Attr starts a new chain with an attribute fragment: renders "["+value+"]".
// The value is the already-formatted attribute body, e.g. `href$=".png"`.
func Attr(value string) *Builder {
	return new(Builder).Attr(value)
}

// PseudoClass starts a new chain with a pseudo-class fragment: renders
// ":"+value.
func PseudoClass(value string) *Builder {
	return new(Builder).PseudoClass(value)
}

// PseudoElement starts a new chain with a pseudo-element fragment: renders
// "::"+value.
func PseudoElement(value string) *Builder {
	return new(Builder).PseudoElement(value)
}

// Combine starts a new chain holding two complete selectors joined by a
// combinator token: renders
//
//	first.Stringify() + " " + combinator + " " + second.Stringify()
//
// Operands are duck-typed through Stringifier; nesting Combine results
// produces correctly nested compound selectors. See Builder.Combine for the
// exact read semantics.
func Combine(first Stringifier, combinator string, second Stringifier) *Builder {
	return new(Builder).Combine(first, combinator, second)
}
