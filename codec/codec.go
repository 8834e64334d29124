// Package codec provides thin serialize/deserialize helpers: render a value
// to JSON or YAML text, and parse such text back into a caller-supplied
// destination whose concrete type carries the value's methods.
//
// The helpers add nothing on top of the underlying codecs beyond the
// string-in/string-out shape and uniform error wrapping; they exist so
// callers round-trip values without touching codec packages directly.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNilTarget indicates that a deserialize helper received a nil
// destination. Parsing needs a concrete value to populate.
// Usage: if errors.Is(err, ErrNilTarget) { /* pass a pointer */ }.
var ErrNilTarget = errors.New("codec: nil deserialize target")

// ToJSON returns the JSON text form of v.
// Marshal failures are wrapped with context and returned as-is otherwise.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: marshal json: %w", err)
	}

	return string(data), nil
}

// FromJSON parses JSON text into dst. The concrete type of dst supplies the
// behavior of the reconstructed value: parse into *shape.Rectangle and the
// result answers Area() like any constructed Rectangle.
func FromJSON(data string, dst any) error {
	if dst == nil {
		return ErrNilTarget
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("codec: unmarshal json: %w", err)
	}

	return nil
}

// ToYAML returns the YAML text form of v.
func ToYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: marshal yaml: %w", err)
	}

	return string(data), nil
}

// FromYAML parses YAML text into dst, mirroring FromJSON.
func FromYAML(data string, dst any) error {
	if dst == nil {
		return ErrNilTarget
	}
	if err := yaml.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("codec: unmarshal yaml: %w", err)
	}

	return nil
}
