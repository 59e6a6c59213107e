package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
//   - Any element type encoding/json understands works: numbers, strings,
//     structs with exported fields, maps, slices.
//   - Channels, funcs and complex numbers are not supported.
//
// If you need a binary encoding, implement Codec and pass it to
// snapshot.WithCodec. Custom codecs must be registered with the same name on
// load.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// Existing snapshots are self-describing, so changing Default never breaks
// loading them.
var Default Codec = GoJSON{}
