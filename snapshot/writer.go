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

// Write encodes l to w. Each segment becomes one checksummed frame, so
// Read restores the same segment layout.
func Write[T any](w io.Writer, l *seglist.List[T], opts ...Option) error {
	return write(context.Background(), w, l, newOptions(opts))
}

func write[T any](ctx context.Context, w io.Writer, l *seglist.List[T], o *options) error {
	name := o.codec.Name()
	if name == "" || len(name) > 255 {
		return fmt.Errorf("%w: codec name %q", ErrUnknownCodec, name)
	}
	if o.compression > CompressionLZ4 {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(o.compression))
	}
	if o.rc != nil {
		w = resource.NewRateLimitedWriter(ctx, w, o.rc)
	}

	hdr := Header{
		Version:         version,
		Compression:     o.compression,
		Codec:           name,
		SegmentCapacity: l.SegmentCapacity(),
		Len:             l.Len(),
	}

	if _, err := w.Write(hdr.appendTo(nil)); err != nil {
		return err
	}
	body, err := compressor(w, o.compression)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(body)
	var frame []byte
	for seg := range l.Segments() {
		if len(seg) == 0 {
			continue
		}
		payload, err := codec.MarshalSlice(o.codec, seg)
		if err != nil {
			_ = body.Close()
			return err
		}
		frame = binary.AppendUvarint(frame[:0], uint64(len(seg)))
		frame = binary.AppendUvarint(frame, uint64(len(payload)))
		_, _ = bw.Write(frame)
		_, _ = bw.Write(payload)
		frame = binary.LittleEndian.AppendUint32(frame[:0], hash.CRC32C(payload))
		_, _ = bw.Write(frame)
	}
	// count 0 terminates the body
	_ = bw.WriteByte(0)

	if err := bw.Flush(); err != nil {
		_ = body.Close()
		return err
	}
	return body.Close()
}
