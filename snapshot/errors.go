package snapshot

import "errors"

var (
	// ErrInvalidSnapshot is returned for malformed or truncated input.
	ErrInvalidSnapshot = errors.New("snapshot: invalid snapshot")

	// ErrChecksumMismatch is returned when a frame payload fails its CRC32C.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")

	// ErrUnknownCodec is returned when the recorded codec cannot be resolved.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")

	// ErrUnknownCompression is returned for an unsupported compression byte.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)
