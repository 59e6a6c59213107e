package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/codec"
	"github.com/hupe1980/seglist/internal/hash"
	"github.com/hupe1980/seglist/testutil"
)

type job struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// upperCodec is a custom codec that only loads when supplied explicitly.
type upperCodec struct{}

func (upperCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (upperCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (upperCodec) Name() string                       { return "custom" }

func newList(t *testing.T, capacity int, values ...int) *seglist.List[int] {
	t.Helper()
	l, err := seglist.FromSlice(values, seglist.WithSegmentCapacity[int](capacity))
	require.NoError(t, err)
	return l
}

func encode(t *testing.T, l *seglist.List[int], opts ...Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l, opts...))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	compressions := []Compression{CompressionNone, CompressionZstd, CompressionLZ4}
	sizes := []int{0, 1, 3, 10, 257}

	for _, c := range compressions {
		for _, n := range sizes {
			t.Run(c.String(), func(t *testing.T) {
				src := newList(t, 3, testutil.Sequence(n)...)
				data := encode(t, src, WithCompression(c))

				got, err := Read[int](bytes.NewReader(data))
				require.NoError(t, err)
				assert.Equal(t, src.ToSlice(), got.ToSlice())
				assert.Equal(t, 3, got.SegmentCapacity())
				assert.Equal(t, src.SegmentCount(), got.SegmentCount())
			})
		}
	}
}

func TestRoundTrip_Struct(t *testing.T) {
	src := seglist.Of(job{1, "build"}, job{2, "test"}, job{3, "deploy"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, WithCodec(codec.GoJSON{}), WithCompression(CompressionZstd)))

	h, err := ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Header{
		Version:         version,
		Compression:     CompressionZstd,
		Codec:           "go-json",
		SegmentCapacity: seglist.DefaultSegmentCapacity,
		Len:             3,
	}, h)

	got, err := Read[job](&buf)
	require.NoError(t, err)
	assert.Equal(t, src.ToSlice(), got.ToSlice())
}

func TestReadInto_Resegments(t *testing.T) {
	data := encode(t, newList(t, 2, 1, 2, 3, 4, 5, 6, 7))

	dst := newList(t, 5, 100, 200)
	require.NoError(t, ReadInto(bytes.NewReader(data), dst))

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, dst.ToSlice())
	assert.Equal(t, 5, dst.SegmentCapacity())
	assert.Equal(t, 2, dst.SegmentCount())
}

func TestReadInto_ErrorLeavesDestination(t *testing.T) {
	data := encode(t, newList(t, 2, 1, 2, 3, 4, 5))
	data = data[:len(data)-3]

	dst := newList(t, 4, 9, 8, 7)
	err := ReadInto(bytes.NewReader(data), dst)
	require.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.Equal(t, []int{9, 8, 7}, dst.ToSlice())
}

func TestRead_Corruption(t *testing.T) {
	src := newList(t, 3, 0, 1, 2, 3, 4)
	valid := encode(t, src)
	hdrLen := len(Header{
		Version:         version,
		Codec:           codec.Default.Name(),
		SegmentCapacity: 3,
		Len:             5,
	}.appendTo(nil))

	// first frame: count, payload length, payload, crc
	payloadLen := int(valid[hdrLen+1])

	mutate := func(f func(b []byte) []byte) []byte {
		b := bytes.Clone(valid)
		return f(b)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidSnapshot},
		{"bad magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), ErrInvalidSnapshot},
		{"bad version", mutate(func(b []byte) []byte { b[4] = 9; return b }), ErrInvalidSnapshot},
		{"bad compression", mutate(func(b []byte) []byte { b[5] = 9; return b }), ErrUnknownCompression},
		{"truncated header", valid[:6], ErrInvalidSnapshot},
		{"truncated body", valid[:len(valid)-1], ErrInvalidSnapshot},
		{"payload flipped", mutate(func(b []byte) []byte { b[hdrLen+2] ^= 0xff; return b }), ErrChecksumMismatch},
		{"checksum flipped", mutate(func(b []byte) []byte { b[hdrLen+2+payloadLen] ^= 0x01; return b }), ErrChecksumMismatch},
		{"count too large", mutate(func(b []byte) []byte { b[hdrLen-1] = 6; return b }), ErrInvalidSnapshot},
		{"count too small", mutate(func(b []byte) []byte { b[hdrLen-1] = 4; return b }), ErrInvalidSnapshot},
		{"zero capacity", mutate(func(b []byte) []byte { b[hdrLen-2] = 0; return b }), ErrInvalidSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Read[int](bytes.NewReader(tt.data))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, l)
		})
	}
}

func TestRead_FrameLargerThanCapacity(t *testing.T) {
	// capacity 3 recorded, one frame of four elements
	payload := []byte("[1,2,3,4]")
	data := Header{Version: version, Codec: "json", SegmentCapacity: 3, Len: 4}.appendTo(nil)
	data = append(data, 4, byte(len(payload)))
	data = append(data, payload...)
	data = append(data, 0, 0, 0, 0, 0)

	_, err := Read[int](bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestRead_OversizedCapacity(t *testing.T) {
	frame := func(hdr Header, payload string) []byte {
		data := hdr.appendTo(nil)
		data = append(data, 1, byte(len(payload)))
		data = append(data, payload...)
		data = binary.LittleEndian.AppendUint32(data, hash.CRC32C([]byte(payload)))
		return append(data, 0)
	}

	t.Run("capacity reduced to length", func(t *testing.T) {
		data := frame(Header{Version: version, Codec: codec.Default.Name(), SegmentCapacity: 1 << 26, Len: 1}, "[7]")

		h, err := ReadHeader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 1<<26, h.SegmentCapacity)

		l, err := Read[int64](bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, l.ToSlice())
		assert.Equal(t, 1, l.SegmentCapacity())
		assert.Equal(t, 1, l.Capacity())
	})

	t.Run("length not backed by frames", func(t *testing.T) {
		data := frame(Header{Version: version, Codec: codec.Default.Name(), SegmentCapacity: 1 << 26, Len: 1 << 26}, "[7]")

		l, err := Read[int64](bytes.NewReader(data))
		require.ErrorIs(t, err, ErrInvalidSnapshot)
		assert.Nil(t, l)
	})

	t.Run("moderate capacity kept", func(t *testing.T) {
		data := frame(Header{Version: version, Codec: codec.Default.Name(), SegmentCapacity: maxPrealloc, Len: 1}, "[7]")

		l, err := Read[int64](bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, maxPrealloc, l.SegmentCapacity())
	})
}

func TestCodecResolution(t *testing.T) {
	data := encode(t, newList(t, 4, 1, 2, 3), WithCodec(upperCodec{}))

	_, err := Read[int](bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnknownCodec)

	got, err := Read[int](bytes.NewReader(data), WithCodec(upperCodec{}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.ToSlice())

	// a mismatched codec option falls back to the recorded built-in
	data = encode(t, newList(t, 4, 1, 2, 3), WithCodec(codec.JSON{}))
	got, err = Read[int](bytes.NewReader(data), WithCodec(codec.GoJSON{}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.ToSlice())
}

func TestWrite_UnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, newList(t, 4, 1), WithCompression(Compression(7)))
	require.ErrorIs(t, err, ErrUnknownCompression)
	assert.Zero(t, buf.Len())
	assert.Equal(t, "compression(7)", Compression(7).String())
}

func TestIOLimit(t *testing.T) {
	src := newList(t, 8, testutil.Sequence(100)...)
	data := encode(t, src, WithIOLimit(1<<20), WithCompression(CompressionLZ4))

	got, err := Read[int](bytes.NewReader(data), WithIOLimit(1<<20))
	require.NoError(t, err)
	assert.Equal(t, src.ToSlice(), got.ToSlice())
}

func TestCompressionShrinksRepetitiveData(t *testing.T) {
	l, err := seglist.NewFilled(4096, 7)
	require.NoError(t, err)

	plain := encode(t, l)
	zstdData := encode(t, l, WithCompression(CompressionZstd))
	lz4Data := encode(t, l, WithCompression(CompressionLZ4))

	assert.Less(t, len(zstdData), len(plain))
	assert.Less(t, len(lz4Data), len(plain))
}
