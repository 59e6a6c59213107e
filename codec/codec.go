// Package codec centralizes element encoding for seglist snapshots.
//
// Codec selection is a format boundary: a snapshot records the name of the
// codec that wrote it, and Load refuses to decode with a different one.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshots store the codec name in their header; this resolves it on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MarshalSlice encodes one segment's elements as a single payload.
func MarshalSlice[T any](c Codec, values []T) ([]byte, error) {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("codec %s: marshal %d elements: %w", c.Name(), len(values), err)
	}
	return b, nil
}

// UnmarshalSlice decodes a payload written by MarshalSlice.
func UnmarshalSlice[T any](c Codec, data []byte) ([]T, error) {
	if c == nil {
		c = Default
	}
	var out []T
	if err := c.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("codec %s: unmarshal: %w", c.Name(), err)
	}
	return out, nil
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
