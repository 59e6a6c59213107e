package snapshot

import (
	"fmt"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/codec"
	"github.com/hupe1980/seglist/internal/resource"
)

// Compression selects how the frame body is compressed.
type Compression uint8

const (
	// CompressionNone stores frames as-is.
	CompressionNone Compression = iota
	// CompressionZstd compresses the body with Zstandard.
	CompressionZstd
	// CompressionLZ4 compresses the body with LZ4 frames.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *seglist.Logger
	rc          *resource.Controller
}

// Option configures snapshot reading and writing.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      seglist.NoopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCodec sets the element codec used for writing.
//
// On read the codec named in the header is used; a codec passed here is
// preferred when its name matches, which is how custom codecs are loaded.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the body compression used for writing.
// Readers take the compression from the header.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger enables Info records for Save and Load.
// Pass nil to disable logging.
func WithLogger(l *seglist.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = seglist.NoopLogger()
		}
		o.logger = l
	}
}

// WithIOLimit throttles snapshot IO to bytesPerSec (0 means unlimited).
// The limit applies to the raw, compressed stream.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.rc = nil
		if bytesPerSec > 0 {
			o.rc = resource.NewController(resource.Config{IOLimitBytesPerSec: bytesPerSec})
		}
	}
}

func (o *options) resolveCodec(name string) (codec.Codec, error) {
	if o.codec != nil && o.codec.Name() == name {
		return o.codec, nil
	}
	if c, ok := codec.ByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}
