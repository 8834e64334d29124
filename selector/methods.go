// SPDX-License-Identifier: MIT
// Package: cssbuilder/selector
//
// methods.go — the chained fragment operations and Combine.
//
// Design contract (strict):
//   - Every fragment method returns its receiver to permit chaining.
//   - Check order within each method: duplicate-of-self first (element, id,
//     pseudo-element only), then order-violation against strictly later
//     categories. Repeating the current category is never an order violation.
//   - A violating call records the sentinel and mutates NOTHING else; once a
//     chain holds an error, every later fragment call is a no-op.
//   - Combine is a top-level join, not a fragment category: it performs no
//     duplicate/order checks and sets no category flags.

package selector

// appendFragment is the single mutation path for all fragment methods. It
// enforces the uniqueness and ordering rules for cat, then appends the given
// chunks to the accumulated text.
// Complexity: O(numCategories + Σlen(chunks)) per call.
func (b *Builder) appendFragment(cat category, chunks ...string) *Builder {
	// Frozen chain: the first violation wins, later calls are no-ops.
	if b.err != nil {
		return b
	}

	// Duplicate-of-self is checked before ordering (element/id/pseudo-element).
	if cat.unique() && b.seen[cat] {
		b.err = ErrDuplicateSelector

		return b
	}

	// A fragment of any strictly later category freezes out this one.
	for later := cat + 1; later < numCategories; later++ {
		if b.seen[later] {
			b.err = ErrSelectorOrder

			return b
		}
	}

	// Append the formatted chunks and record the category.
	for _, chunk := range chunks {
		b.text.WriteString(chunk)
	}
	b.seen[cat] = true

	return b
}

// Element appends value verbatim as the type fragment (e.g. "div").
// Records ErrDuplicateSelector if an element fragment already exists, and
// ErrSelectorOrder if any later-category fragment was appended before it.
func (b *Builder) Element(value string) *Builder {
	return b.appendFragment(catElement, value)
}

// ID appends "#"+value (e.g. "#main"). Records ErrDuplicateSelector if an id
// fragment already exists, and ErrSelectorOrder after class, attribute,
// pseudo-class or pseudo-element fragments.
func (b *Builder) ID(value string) *Builder {
	return b.appendFragment(catID, idPrefix, value)
}

// Class appends "."+value (e.g. ".container"). Repeatable. Records
// ErrSelectorOrder after attribute, pseudo-class or pseudo-element fragments.
func (b *Builder) Class(value string) *Builder {
	return b.appendFragment(catClass, classPrefix, value)
}

// Attr appends "["+value+"]" with value taken as the already-formatted
// attribute body (e.g. `href$=".png"`). Repeatable. Records ErrSelectorOrder
// after pseudo-class or pseudo-element fragments.
func (b *Builder) Attr(value string) *Builder {
	return b.appendFragment(catAttr, attrOpen, value, attrClose)
}

// PseudoClass appends ":"+value (e.g. ":focus"). Repeatable. Records
// ErrSelectorOrder after a pseudo-element fragment.
func (b *Builder) PseudoClass(value string) *Builder {
	return b.appendFragment(catPseudoClass, pseudoClassPrefix, value)
}

// PseudoElement appends "::"+value (e.g. "::before"). Records
// ErrDuplicateSelector if a pseudo-element fragment already exists; no order
// check applies since it is the last category.
func (b *Builder) PseudoElement(value string) *Builder {
	return b.appendFragment(catPseudoElement, pseudoElementPrefix, value)
}

// Combine appends left.Stringify(), a single space, the literal combinator
// token, a single space, then right.Stringify(). Both operands are read
// through the Stringifier contract only: any implementation is accepted and
// no completeness validation is performed — a broken chain contributes the
// text it accumulated before its violation.
// Complexity: O(len(left) + len(right)).
func (b *Builder) Combine(left Stringifier, combinator string, right Stringifier) *Builder {
	// Frozen chain stays frozen; Combine itself never fails.
	if b.err != nil {
		return b
	}

	b.text.WriteString(left.Stringify())
	b.text.WriteString(combinatorPad)
	b.text.WriteString(combinator)
	b.text.WriteString(combinatorPad)
	b.text.WriteString(right.Stringify())

	return b
}
