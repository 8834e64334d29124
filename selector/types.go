// SPDX-License-Identifier: MIT
// Package: cssbuilder/selector
//
// types.go — the Builder state record, the fragment category scale, and the
// Stringifier read-side contract.
//
// Design contract (strict):
//   - One concrete state shape: {accumulated text, seen-per-category flags,
//     first recorded error}. No tagged variants, no shared process state.
//   - Builders are created only by the facade entry points in api.go; the
//     zero value is a valid empty chain.
//   - All mutation flows through the chained fragment methods in methods.go;
//     Stringify/Err/Build are pure reads.

package selector

import "strings"

// category positions a fragment kind on the fixed CSS ordering scale.
// Smaller values come first inside a selector.
type category uint8

const (
	catElement category = iota
	catID
	catClass
	catAttr
	catPseudoClass
	catPseudoElement

	// numCategories bounds the seen-flag array; keep it last.
	numCategories
)

// categoryNames maps each category to its human-readable label, aligned with
// the wording of ErrSelectorOrder.
var categoryNames = [numCategories]string{
	catElement:       "element",
	catID:            "id",
	catClass:         "class",
	catAttr:          "attribute",
	catPseudoClass:   "pseudo-class",
	catPseudoElement: "pseudo-element",
}

// String returns the human-readable label of the category.
func (c category) String() string {
	// Defensive: out-of-range values identify themselves instead of panicking.
	if c >= numCategories {
		return "unknown"
	}

	return categoryNames[c]
}

// unique reports whether the category may occur at most once per chain.
// Only element, id and pseudo-element carry the uniqueness rule.
func (c category) unique() bool {
	return c == catElement || c == catID || c == catPseudoElement
}

// Stringifier is the read-side contract accepted by Combine: anything able
// to render itself as selector text qualifies. *Builder implements it, but
// Combine deliberately accepts any implementation and performs no
// completeness validation of the operand.
type Stringifier interface {
	// Stringify returns the selector text; it must be pure and idempotent.
	Stringify() string
}

// Builder accumulates one independent selector expression.
//
// The text grows strictly append-only through the fragment methods; the seen
// flags record which categories have contributed at least one fragment; err
// holds the first recorded violation, after which the chain is frozen.
//
// A Builder must not be copied once any method has been called (it embeds a
// strings.Builder); pass the *Builder the facade returned.
type Builder struct {
	// text is the incrementally accumulated selector output.
	text strings.Builder

	// seen marks categories that already contributed a fragment.
	seen [numCategories]bool

	// err is the first violation recorded on this chain, or nil.
	err error
}

// compile-time check: *Builder satisfies the contract Combine consumes.
var _ Stringifier = (*Builder)(nil)

// Stringify returns the accumulated selector text exactly as built so far.
// Pure read: no side effects, callable any number of times, idempotent, and
// unaffected by a recorded violation (it reports the text as of the last
// successful append).
// Complexity: O(1) — strings.Builder holds the assembled string.
func (b *Builder) Stringify() string {
	return b.text.String()
}

// Err returns the first violation recorded on this chain, or nil when every
// call so far succeeded. Branch with errors.Is against ErrDuplicateSelector
// and ErrSelectorOrder.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the accumulated selector text together with the first
// recorded violation. On a clean chain the error is nil and the text equals
// Stringify().
func (b *Builder) Build() (string, error) {
	return b.text.String(), b.err
}
