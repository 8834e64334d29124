// SPDX-License-Identifier: MIT
// Package: cssbuilder/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Message texts are part of the public contract: callers assert on them
//     verbatim, so sentinels carry the exact strings, are defined without a
//     package prefix, and are NEVER wrapped with method context.
//   • Builder methods MUST NOT panic at runtime; every violation is recorded
//     on the chain and surfaced through Err()/Build().

package selector

import "errors"

// ErrDuplicateSelector indicates that an element, id or pseudo-element
// fragment was appended a second time to the same chain. Those three kinds
// may occur at most once per selector; class, attribute and pseudo-class
// fragments repeat freely and never produce this error.
// Usage: if errors.Is(b.Err(), ErrDuplicateSelector) { /* reject chain */ }.
var ErrDuplicateSelector = errors.New(
	"Element, id and pseudo-element should not occur more than one time inside the selector")

// ErrSelectorOrder indicates that a fragment was appended after a fragment
// of a strictly later category, breaking the fixed CSS category order.
// Appending more fragments of the current category is always allowed.
// Usage: if errors.Is(b.Err(), ErrSelectorOrder) { /* reject chain */ }.
var ErrSelectorOrder = errors.New(
	"Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Check order (required): each fragment method tests duplicate-of-self
//    first (element/id/pseudo-element only), then order-violation. A chain
//    that already holds an element reports ErrDuplicateSelector for a second
//    Element call even when later-category fragments are present too.
//
// 2) Failure semantics: a violating call records the sentinel and changes
//    nothing else — the accumulated text and the per-category bookkeeping
//    stay exactly as they were, and all later fragment calls on that chain
//    are no-ops. Stringify therefore always returns the text as of the last
//    successful append.
//
// 3) Testing guidance: assert with errors.Is against the sentinels AND, for
//    the contract messages, against err.Error() verbatim.
