// Package hash provides the checksum used by seglist snapshot frames.
//
// # CRC32-Castagnoli (CRC32C)
//
// Every segment frame in a snapshot carries a CRC32C of its encoded payload.
// The implementation is github.com/klauspost/crc32, a drop-in fork of
// hash/crc32 with faster hardware paths on amd64 and arm64.
//
// # Usage
//
//	checksum := hash.CRC32C(data)
package hash
