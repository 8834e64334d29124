// Package shape provides small geometric value objects with computed
// accessors, starting with Rectangle.
//
// Values are plain records: constructors return them by value, accessor
// methods are pure, and transforming methods return a fresh value leaving
// the original untouched. No validation is performed on dimensions.
package shape

// Rectangle is an axis-aligned rectangle described by its side lengths.
type Rectangle struct {
	// Width is the horizontal side length.
	Width float64

	// Height is the vertical side length.
	Height float64
}

// NewRectangle constructs a Rectangle with the given side lengths.
// Complexity: O(1)
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width × Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2 × (Width + Height).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Scale returns a new Rectangle with both sides multiplied by factor.
// The receiver is not modified.
func (r Rectangle) Scale(factor float64) Rectangle {
	return Rectangle{Width: r.Width * factor, Height: r.Height * factor}
}
