// Package optional provides the presence-tracking container used by
// generated nullable types.
//
// The zero Value is absent, so a struct made of Values starts with every
// field unset.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value holds either a present T or nothing.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// SomeZero returns a present Value holding the zero value of T.
func SomeZero[T any]() Value[T] {
	var zero T
	return Some(zero)
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// OrZero returns the held value, or the zero value of T when absent.
func (v Value[T]) OrZero() T {
	if !v.present {
		var zero T
		return zero
	}

	return v.value
}

// OrElse returns the held value, or def when absent.
func (v Value[T]) OrElse(def T) T {
	if !v.present {
		return def
	}

	return v.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (v Value[T]) Ptr() *T {
	if !v.present {
		return nil
	}

	c := v.value

	return &c
}

// IsZero reports whether v is absent. It lets encoding/json omit absent
// values with the omitzero option.
func (v Value[T]) IsZero() bool {
	return !v.present
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if !v.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", v.value)
}

var jsonNull = []byte("null")

// MarshalJSON encodes an absent value as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present {
		return jsonNull, nil
	}

	return json.Marshal(v.value)
}

// UnmarshalJSON decodes null as absent and anything else as a present value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("optional: %w", err)
	}

	*v = Some(value)

	return nil
}
