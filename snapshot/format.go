package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/seglist/internal/conv"
)

const (
	magic   = "SGL1"
	version = 1

	// maxPayloadBytes bounds a single frame so corrupt lengths cannot force
	// huge allocations.
	maxPayloadBytes = 1 << 30

	// maxPrealloc caps slices and segments sized from untrusted header
	// counts.
	maxPrealloc = 1 << 16
)

// Header describes a snapshot stream.
type Header struct {
	Version         uint8
	Compression     Compression
	Codec           string
	SegmentCapacity int
	Len             int
}

func (h Header) appendTo(b []byte) []byte {
	b = append(b, magic...)
	b = append(b, h.Version, byte(h.Compression), byte(len(h.Codec)))
	b = append(b, h.Codec...)
	b = binary.AppendUvarint(b, uint64(h.SegmentCapacity))
	return binary.AppendUvarint(b, uint64(h.Len))
}

// ReadHeader decodes the header at the start of r without reading frames.
func ReadHeader(r io.Reader) (Header, error) {
	return readHeader(bufio.NewReader(r))
}

func readHeader(r *bufio.Reader) (Header, error) {
	var h Header

	var fixed [7]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return h, truncated(err)
	}
	if string(fixed[:4]) != magic {
		return h, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, fixed[:4])
	}
	h.Version = fixed[4]
	if h.Version != version {
		return h, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, h.Version)
	}
	h.Compression = Compression(fixed[5])
	if h.Compression > CompressionLZ4 {
		return h, fmt.Errorf("%w: %d", ErrUnknownCompression, fixed[5])
	}

	name := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return h, truncated(err)
	}
	h.Codec = string(name)

	c, err := binary.ReadUvarint(r)
	if err != nil {
		return h, truncated(err)
	}
	if c == 0 || c > math.MaxInt32 {
		return h, fmt.Errorf("%w: segment capacity %d", ErrInvalidSnapshot, c)
	}
	h.SegmentCapacity = int(c)

	n, err := binary.ReadUvarint(r)
	if err != nil {
		return h, truncated(err)
	}
	if h.Len, err = conv.Uint64ToInt(n); err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	return h, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated", ErrInvalidSnapshot)
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		return zstd.NewWriter(w)
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

// decompressor returns a buffered body reader and a release func.
func decompressor(r *bufio.Reader, c Compression) (*bufio.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}
		return bufio.NewReader(dec), dec.Close, nil
	case CompressionLZ4:
		return bufio.NewReader(lz4.NewReader(r)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}
