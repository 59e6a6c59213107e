package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
// Used for list positions stored in roaring bitmaps.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
// Used for varint counts decoded from snapshot headers.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int", ErrOverflow, v)
	}
	return int(v), nil
}
