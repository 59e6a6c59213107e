// Package conv provides safe integer type conversion utilities.
//
// Use cases:
//   - Validating untrusted data from disk (snapshot header counts)
//   - Converting list positions to the uint32 domain of roaring bitmaps
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
