package pebble

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/pebble"

	"github.com/hupe1980/seglist/blobstore"
)

// Store implements blobstore.Store on an embedded pebble database.
// Blob names are stored as keys under rootPrefix.
type Store struct {
	db     *pebble.DB
	prefix string
	owned  bool
}

var _ blobstore.Store = (*Store)(nil)

// Open opens (or creates) a pebble database in dir and returns a Store
// that owns it. Close releases the database.
func Open(dir, rootPrefix string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble: open %s: %w", dir, err)
	}
	s := NewStore(db, rootPrefix)
	s.owned = true
	return s, nil
}

// NewStore wraps an existing database. The caller keeps ownership of db.
func NewStore(db *pebble.DB, rootPrefix string) *Store {
	return &Store{db: db, prefix: normalizePrefix(rootPrefix)}
}

func normalizePrefix(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func (s *Store) key(name string) []byte {
	return []byte(s.prefix + name)
}

// Put stores data durably under name.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Set(s.key(name), data, pebble.Sync)
}

// Get returns a copy of the blob.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, closer, err := s.db.Get(s.key(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", blobstore.ErrNotFound, name)
		}
		return nil, err
	}
	defer closer.Close()

	// val is only valid until closer.Close
	return slices.Clone(val), nil
}

// Delete removes a blob. Missing blobs are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Delete(s.key(name), pebble.Sync)
}

// List returns the names with the given prefix in key order.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	lower := s.key(prefix)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upperBound(lower),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var names []string
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names = append(names, strings.TrimPrefix(string(iter.Key()), s.prefix))
	}
	return names, iter.Error()
}

// Close closes the database if the Store opened it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// upperBound returns the smallest key greater than every key with prefix p,
// or nil when no such key exists.
func upperBound(p []byte) []byte {
	end := slices.Clone(p)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
