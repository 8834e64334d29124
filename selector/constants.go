// Package selector defines shared constants used by the selector builder,
// ensuring consistent fragment prefixes and combinator tokens across the
// facade and the Builder methods.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   canonical names of the public operations, useful for diagnostics.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element operation.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID operation.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class operation.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr operation.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass operation.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement operation.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name for the Combine operation.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Fragment Prefixes
//   the literal text each fragment kind contributes around its value.
//-----------------------------------------------------------------------------

const (
	// idPrefix precedes an id fragment value.
	idPrefix = "#"
	// classPrefix precedes a class fragment value.
	classPrefix = "."
	// attrOpen and attrClose bracket an attribute fragment value.
	attrOpen  = "["
	attrClose = "]"
	// pseudoClassPrefix precedes a pseudo-class fragment value.
	pseudoClassPrefix = ":"
	// pseudoElementPrefix precedes a pseudo-element fragment value.
	pseudoElementPrefix = "::"
	// combinatorPad separates a combinator token from the selectors it joins.
	combinatorPad = " "
)

//-----------------------------------------------------------------------------
// Combinator Tokens
//   the four CSS relational tokens accepted between two complete selectors.
//   Combine takes the token as a plain string, so any caller-supplied token
//   is also accepted; these names cover the standard set.
//-----------------------------------------------------------------------------

const (
	// CombinatorDescendant matches descendants (whitespace combinator).
	CombinatorDescendant = " "
	// CombinatorChild matches direct children.
	CombinatorChild = ">"
	// CombinatorAdjacent matches the immediately following sibling.
	CombinatorAdjacent = "+"
	// CombinatorGeneral matches any following sibling.
	CombinatorGeneral = "~"
)
