package blobstore

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hupe1980/seglist/internal/fs"
	"github.com/hupe1980/seglist/internal/mmap"
)

const tmpPrefix = ".tmp-"

// LocalStore implements Store using the local file system.
// Blob names may contain '/' to address sub-directories of the root.
type LocalStore struct {
	root string
	fs   fs.FileSystem
	seq  atomic.Uint64
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithFileSystem routes all file operations through fsys.
// Reads then go through fsys instead of a memory mapping.
func WithFileSystem(fsys fs.FileSystem) LocalOption {
	return func(s *LocalStore) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string, opts ...LocalOption) *LocalStore {
	s := &LocalStore{root: root, fs: fs.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Put writes data to a temporary file and renames it into place, so readers
// never observe a partial blob.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.path(name)
	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, tmpPrefix+filepath.Base(target)+"-"+s.nextSuffix())
	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer s.fs.Remove(tmp) //nolint:errcheck // no-op after a successful rename

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.fs.Rename(tmp, target)
}

func (s *LocalStore) nextSuffix() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatUint(s.seq.Add(1), 36)
}

// Get returns the blob contents. On the local file system the blob is read
// through a read-only memory mapping.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := s.fs.(fs.LocalFS); !ok {
		return fs.ReadFile(s.fs, s.path(name))
	}

	m, err := mmap.Open(s.path(name))
	if err != nil {
		return nil, err
	}
	defer m.Close()

	// The mapping dies with Close; hand out a copy.
	return slices.Clone(m.Bytes()), nil
}

// Delete removes a blob.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.fs.Remove(s.path(name))
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}

// List walks the root and returns slash-separated names with the prefix.
// Temporary files of in-flight writes are skipped.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	if err := s.walk(ctx, "", prefix, &names); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func (s *LocalStore) walk(ctx context.Context, rel, prefix string, names *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := s.fs.ReadDir(s.path(rel))
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tmpPrefix) {
			continue
		}
		name := path.Join(rel, e.Name())
		if e.IsDir() {
			// skip subtrees that cannot contain the prefix
			if !strings.HasPrefix(name+"/", prefix) && !strings.HasPrefix(prefix, name+"/") {
				continue
			}
			if err := s.walk(ctx, name, prefix, names); err != nil {
				return err
			}
			continue
		}
		if strings.HasPrefix(name, prefix) {
			*names = append(*names, name)
		}
	}
	return nil
}
