// Package selector provides a fluent builder for CSS selector strings:
// compose element, id, class, attribute, pseudo-class and pseudo-element
// fragments through chained calls, join complete selectors with combinators,
// and render the result with Stringify.
//
// The package offers the following key components:
//
//   - Facade entry points (one fresh *Builder per call):
//     – Element, ID, Class, Attr, PseudoClass, PseudoElement: start a chain
//     with the corresponding fragment.
//     – Combine: start a chain from two already-built selectors joined by a
//     combinator token.
//   - Builder:
//     – chained fragment methods, each returning the same *Builder;
//     – Stringify: the accumulated selector text, idempotent;
//     – Build / Err: the text together with the first recorded violation.
//   - Stringifier: the minimal read-side contract accepted by Combine; any
//     value with Stringify() string qualifies, not only *Builder.
//   - Combinator tokens: CombinatorDescendant, CombinatorChild,
//     CombinatorAdjacent, CombinatorGeneral.
//
// Guarantees:
//
//   - Category order is enforced: element → id → class → attribute →
//     pseudo-class → pseudo-element; appending a fragment of an earlier
//     category after a later one records ErrSelectorOrder.
//   - Uniqueness is enforced for element, id and pseudo-element; a repeat
//     records ErrDuplicateSelector. Class, attribute and pseudo-class
//     fragments may repeat freely.
//   - A failed call mutates nothing: neither the text nor the category
//     bookkeeping changes, and every later fragment call on that chain is a
//     no-op. The first violation is preserved and exposed via Err/Build.
//   - Facade calls never share state; interleaved chains are independent and
//     any finished chain may be fed to Combine any number of times.
//   - No method panics at runtime; all failures surface as sentinel errors
//     checked with errors.Is.
//
// See individual function documentation for detailed contracts and the exact
// text each fragment kind contributes.
package selector
