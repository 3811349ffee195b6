package orderedlist

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode is returned when encoded list contents cannot be decoded.
	ErrDecode = errors.New("orderedlist: cannot decode list")

	// ErrNoComparator is returned when decoding into a list whose element
	// type has no natural ordering and no comparator was provided.
	ErrNoComparator = errors.New("orderedlist: no comparator for element type")

	// ErrNilComparator is the panic value of NewWithComparator when given a nil comparator.
	ErrNilComparator = errors.New("orderedlist: nil comparator")
)

var (
	_ yaml.Marshaler   = (*OrderedList[int])(nil)
	_ yaml.Unmarshaler = (*OrderedList[int])(nil)
)

// MarshalJSON encodes the list as a JSON array, head to tail.
func (l *OrderedList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}

// UnmarshalJSON decodes a JSON array and inserts every element, so unsorted
// input still produces a sorted list. Existing elements are kept.
func (l *OrderedList[T]) UnmarshalJSON(data []byte) error {
	if err := l.resolveComparator(); err != nil {
		return err
	}

	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	l.InsertAll(values...)

	return nil
}

// MarshalYAML encodes the list as a YAML sequence, head to tail.
func (l *OrderedList[T]) MarshalYAML() (any, error) {
	return l.Entries(), nil
}

// UnmarshalYAML decodes a YAML sequence and inserts every element.
// Existing elements are kept.
func (l *OrderedList[T]) UnmarshalYAML(value *yaml.Node) error {
	if err := l.resolveComparator(); err != nil {
		return err
	}

	var values []T
	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	l.InsertAll(values...)

	return nil
}
