// Package selector contains unit tests for the Builder state record and the
// fragment-append mechanics: check order, freeze-on-error, and flag hygiene.
package selector

import (
	"errors"
	"testing"
)

// TestCategoryScale verifies the category labels and the uniqueness rule.
func TestCategoryScale(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. Labels align with the ErrSelectorOrder wording.
	wantNames := []string{"element", "id", "class", "attribute", "pseudo-class", "pseudo-element"}
	for c := catElement; c < numCategories; c++ {
		if got := c.String(); got != wantNames[c] {
			t.Errorf("category %d label: expected %q, got %q", c, wantNames[c], got)
		}
	}

	// 2. Out-of-range categories identify themselves without panicking.
	if got := numCategories.String(); got != "unknown" {
		t.Errorf("out-of-range label: expected %q, got %q", "unknown", got)
	}

	// 3. Only element, id and pseudo-element are unique.
	uniq := map[category]bool{catElement: true, catID: true, catPseudoElement: true}
	for c := catElement; c < numCategories; c++ {
		if got := c.unique(); got != uniq[c] {
			t.Errorf("%s.unique(): expected %v, got %v", c, uniq[c], got)
		}
	}
}

// TestAppendFragment_CheckOrder verifies that duplicate-of-self is tested
// before ordering, per the documented check order.
func TestAppendFragment_CheckOrder(t *testing.T) {
	t.Parallel() // allow parallel execution

	// Element after class is both a duplicate and an order violation;
	// the duplicate check fires first.
	b := new(Builder).Element("div").Class("c").Element("div")
	if !errors.Is(b.Err(), ErrDuplicateSelector) {
		t.Fatalf("Element/Class/Element: expected ErrDuplicateSelector, got %v", b.Err())
	}

	// Without a prior element, the same late call is an order violation.
	b2 := new(Builder).Class("c").Element("div")
	if !errors.Is(b2.Err(), ErrSelectorOrder) {
		t.Fatalf("Class/Element: expected ErrSelectorOrder, got %v", b2.Err())
	}
}

// TestAppendFragment_FailureMutatesNothing verifies that a violating call
// leaves the text and every category flag untouched, and that the chain is
// frozen afterwards.
func TestAppendFragment_FailureMutatesNothing(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. Order violation: the element flag must NOT be set by the failed call.
	b := new(Builder).Class("c")
	before := b.Stringify()
	b.Element("div") // violates ordering
	if b.seen[catElement] {
		t.Error("failed Element call set the element flag")
	}
	if got := b.Stringify(); got != before {
		t.Errorf("failed Element call changed text: %q → %q", before, got)
	}

	// 2. Frozen chain: later calls are no-ops even when individually valid.
	b.Class("later").PseudoClass("hover")
	if got := b.Stringify(); got != before {
		t.Errorf("frozen chain accepted fragments: %q → %q", before, got)
	}
	if b.seen[catPseudoClass] {
		t.Error("frozen chain set the pseudo-class flag")
	}

	// 3. The first violation is preserved, not overwritten.
	if !errors.Is(b.Err(), ErrSelectorOrder) {
		t.Errorf("first violation lost: got %v", b.Err())
	}

	// 4. Duplicate violation behaves the same way.
	d := new(Builder).ID("one")
	wantText := d.Stringify()
	d.ID("two")
	if got := d.Stringify(); got != wantText {
		t.Errorf("failed ID call changed text: %q → %q", wantText, got)
	}
	if !errors.Is(d.Err(), ErrDuplicateSelector) {
		t.Errorf("duplicate ID: expected ErrDuplicateSelector, got %v", d.Err())
	}
}

// TestRepeatSameCategory verifies that repeating the current category is
// never an order violation for class, attribute and pseudo-class.
func TestRepeatSameCategory(t *testing.T) {
	t.Parallel() // allow parallel execution

	tests := []struct {
		name string
		b    *Builder
		want string
	}{
		{"class twice", new(Builder).Class("a").Class("b"), ".a.b"},
		{"attr twice", new(Builder).Attr("x").Attr("y"), "[x][y]"},
		{"pseudo-class twice", new(Builder).PseudoClass("hover").PseudoClass("focus"), ":hover:focus"},
	}
	for _, tc := range tests {
		if err := tc.b.Err(); err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if got := tc.b.Stringify(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

// TestCombine_FrozenChainStaysFrozen verifies that Combine is a no-op on a
// chain that already holds a violation.
func TestCombine_FrozenChainStaysFrozen(t *testing.T) {
	t.Parallel() // allow parallel execution

	broken := new(Builder).ID("a").ID("b") // frozen with ErrDuplicateSelector
	before := broken.Stringify()
	broken.Combine(Element("p"), CombinatorChild, Element("em"))
	if got := broken.Stringify(); got != before {
		t.Errorf("frozen chain combined: %q → %q", before, got)
	}
}
