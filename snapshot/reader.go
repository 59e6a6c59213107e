package snapshot

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/codec"
	"github.com/hupe1980/seglist/internal/hash"
	"github.com/hupe1980/seglist/internal/resource"
)

// Read decodes a snapshot into a new list with the recorded segment
// capacity and the default allocator. A recorded capacity larger than both
// the element count and maxPrealloc is reduced to the element count, so a
// corrupt header cannot reserve slots the stream never fills.
func Read[T any](r io.Reader, opts ...Option) (*seglist.List[T], error) {
	return read[T](context.Background(), r, newOptions(opts))
}

func read[T any](ctx context.Context, r io.Reader, o *options) (*seglist.List[T], error) {
	h, values, err := collect[T](ctx, r, o)
	if err != nil {
		return nil, err
	}
	l, err := seglist.New(seglist.WithSegmentCapacity[T](segmentCapacity(h)))
	if err != nil {
		return nil, err
	}
	if _, err := l.InsertSlice(l.End(), values); err != nil {
		l.Clear()
		return nil, err
	}
	return l, nil
}

// ReadInto replaces the contents of dst with the decoded snapshot. The
// elements are laid out using dst's own segment capacity and allocator.
// On error dst is unchanged.
func ReadInto[T any](r io.Reader, dst *seglist.List[T], opts ...Option) error {
	return readInto(context.Background(), r, dst, newOptions(opts))
}

func readInto[T any](ctx context.Context, r io.Reader, dst *seglist.List[T], o *options) error {
	_, values, err := collect[T](ctx, r, o)
	if err != nil {
		return err
	}
	return dst.AssignSlice(values)
}

// collect decodes and validates the whole stream before anything is built
// from it. Memory grows with the decoded elements, not the header counts.
func collect[T any](ctx context.Context, r io.Reader, o *options) (Header, []T, error) {
	var (
		hdr    Header
		values []T
	)
	err := decode(ctx, r, o, func(h Header) error {
		hdr = h
		values = make([]T, 0, min(h.Len, maxPrealloc))
		return nil
	}, func(frame []T) error {
		values = append(values, frame...)
		return nil
	})
	if err != nil {
		return Header{}, nil, err
	}
	return hdr, values, nil
}

// segmentCapacity is the capacity Read rebuilds with. h.Len has been
// checked against the decoded elements by then.
func segmentCapacity(h Header) int {
	if h.SegmentCapacity <= maxPrealloc || h.SegmentCapacity <= h.Len {
		return h.SegmentCapacity
	}
	return max(h.Len, 1)
}

// decode validates the whole stream, calling start once after the header
// and emit for every frame in order.
func decode[T any](ctx context.Context, r io.Reader, o *options, start func(Header) error, emit func([]T) error) error {
	if o.rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, o.rc)
	}
	br := bufio.NewReader(r)

	h, err := readHeader(br)
	if err != nil {
		return err
	}
	c, err := o.resolveCodec(h.Codec)
	if err != nil {
		return err
	}
	body, release, err := decompressor(br, h.Compression)
	if err != nil {
		return err
	}
	defer release()

	if err := start(h); err != nil {
		return err
	}

	var payload []byte
	total := 0
	for {
		n, err := binary.ReadUvarint(body)
		if err != nil {
			return truncated(err)
		}
		if n == 0 {
			break
		}
		if n > uint64(h.SegmentCapacity) || n > uint64(h.Len-total) {
			return fmt.Errorf("%w: frame of %d elements", ErrInvalidSnapshot, n)
		}

		size, err := binary.ReadUvarint(body)
		if err != nil {
			return truncated(err)
		}
		if size > maxPayloadBytes {
			return fmt.Errorf("%w: frame payload of %d bytes", ErrInvalidSnapshot, size)
		}
		if uint64(cap(payload)) < size {
			payload = make([]byte, size)
		}
		payload = payload[:size]
		if _, err := io.ReadFull(body, payload); err != nil {
			return truncated(err)
		}

		var sum [4]byte
		if _, err := io.ReadFull(body, sum[:]); err != nil {
			return truncated(err)
		}
		if binary.LittleEndian.Uint32(sum[:]) != hash.CRC32C(payload) {
			return ErrChecksumMismatch
		}

		values, err := codec.UnmarshalSlice[T](c, payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if uint64(len(values)) != n {
			return fmt.Errorf("%w: frame decoded %d of %d elements", ErrInvalidSnapshot, len(values), n)
		}
		if err := emit(values); err != nil {
			return err
		}
		total += int(n)
	}

	if total != h.Len {
		return fmt.Errorf("%w: %d of %d elements", ErrInvalidSnapshot, total, h.Len)
	}
	return nil
}
