// Package codec provides JSON text helpers that restore behavior on
// deserialized values. Serialization itself is plain encoding/json; the
// point of FromJSON is that methods declared on the target type (its
// "prototype") are callable on the result without any field copying or
// re-validation.
package codec

import (
	"encoding/json"
	"fmt"
)

// ToJSON serializes v into JSON text. Struct keys follow field declaration
// order, slices render as JSON arrays.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize to JSON: %w", err)
	}
	return string(data), nil
}

// FromJSON parses text into a fresh value of T. The method set of T is the
// capability set attached to the parsed data: behavior is restored
// structurally, not copied, so any method on T (or *T) works on the result
// right away.
func FromJSON[T any](text string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return nil, fmt.Errorf("unable to parse JSON: %w", err)
	}
	return v, nil
}
