package models

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a value and remembers whether it was supplied at all, so that
// an omitted field and a field explicitly set to its zero value can be told apart.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON marks the field as set whenever the key is present in the payload.
// A JSON null is treated as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// NonEmpty reports whether a string field is present and not empty. Updates only
// apply string fields that pass this check.
func NonEmpty[S ~string](o Optional[S]) (S, bool) {
	if !o.Set || o.Value == "" {
		return "", false
	}
	return o.Value, true
}
