package snapshot

import (
	"bytes"
	"context"
	"time"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/blobstore"
)

// Save writes l to store under name.
func Save[T any](ctx context.Context, store blobstore.Store, name string, l *seglist.List[T], opts ...Option) (err error) {
	o := newOptions(opts)
	start := time.Now()

	var buf bytes.Buffer
	defer func() {
		o.logger.LogSnapshot(ctx, "save", name, l.Len(), buf.Len(), time.Since(start), err)
	}()

	if err = write(ctx, &buf, l, o); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Load reads the snapshot stored under name into a new list.
// A missing blob yields an error matching blobstore.ErrNotFound.
func Load[T any](ctx context.Context, store blobstore.Store, name string, opts ...Option) (l *seglist.List[T], err error) {
	o := newOptions(opts)
	start := time.Now()

	var size int
	defer func() {
		n := 0
		if l != nil {
			n = l.Len()
		}
		o.logger.LogSnapshot(ctx, "load", name, n, size, time.Since(start), err)
	}()

	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	size = len(data)
	return read[T](ctx, bytes.NewReader(data), o)
}

// LoadInto replaces dst with the snapshot stored under name.
// On error dst is unchanged.
func LoadInto[T any](ctx context.Context, store blobstore.Store, name string, dst *seglist.List[T], opts ...Option) (err error) {
	o := newOptions(opts)
	start := time.Now()

	var size int
	defer func() {
		o.logger.LogSnapshot(ctx, "load", name, dst.Len(), size, time.Since(start), err)
	}()

	data, err := store.Get(ctx, name)
	if err != nil {
		return err
	}
	size = len(data)
	return readInto(ctx, bytes.NewReader(data), dst, o)
}
