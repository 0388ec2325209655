package ty

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Opt is an optional value that remembers whether it was ever set,
// so that "absent" and "zero" stay distinguishable in requests and config.
type Opt[T interface{}] struct {
	Value T
	Set   bool
}

func OptWrap[T interface{}](value T) Opt[T] {
	return Opt[T]{
		Value: value,
		Set:   true,
	}
}

// S sets the value.
func (i *Opt[T]) S(v T) {
	i.Value = v
	i.Set = true
}

// U unsets the value.
func (i *Opt[T]) U() {
	var zero T
	i.Value = zero
	i.Set = false
}

func (i *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		i.Set = false
		return nil
	}
	if err := json.Unmarshal(data, &i.Value); err != nil {
		return err
	}
	i.Set = true
	return nil
}

func (i Opt[T]) MarshalJSON() ([]byte, error) {
	if !i.Set {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

// UnmarshalYAML implements yaml.Unmarshaler for Opt[T]
func (i *Opt[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && (value.Value == "null" || value.Value == "~") {
		i.Set = false
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	i.Value = v
	i.Set = true
	return nil
}

// MarshalYAML implements yaml.Marshaler for Opt[T]
func (i Opt[T]) MarshalYAML() (interface{}, error) {
	if !i.Set {
		return nil, nil
	}
	return i.Value, nil
}
