package blobstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	vfs "github.com/hupe1980/kcluster/internal/fs"
	"github.com/hupe1980/kcluster/internal/mmap"
)

var tmpSeq atomic.Uint64

// LocalStore implements BlobStore using the local file system.
type LocalStore struct {
	root string
	fsys vfs.FileSystem
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return newLocalStoreFS(root, vfs.Default)
}

func newLocalStoreFS(root string, fsys vfs.FileSystem) *LocalStore {
	return &LocalStore{root: root, fsys: fsys}
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open maps the file read-only. Point files are scanned front to back,
// so the mapping is advised as sequential.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(s.path(name))
	if err != nil {
		return nil, err
	}
	if err := m.Advise(mmap.AccessSequential); err != nil {
		_ = m.Close()
		return nil, err
	}
	return &localBlob{m: m}, nil
}

// Create writes to a temporary file that is renamed into place on Close.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path := s.path(name)
	dir := filepath.Dir(path)
	if err := s.fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for {
		tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+tmpSuffix())
		f, err := s.fsys.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &localWritableBlob{fsys: s.fsys, f: f, tmp: tmp, path: path}, nil
	}
}

func tmpSuffix() string {
	n := uint64(time.Now().UnixNano()) + tmpSeq.Add(1)
	return strconv.FormatUint(n, 36)
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.(*localWritableBlob).abort()
		return err
	}
	return w.Close()
}

// List returns slash-separated names relative to the root.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(filepath.Base(rel), ".") {
			return nil
		}
		if strings.HasPrefix(rel, prefix) {
			names = append(names, rel)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	data := b.m.Bytes()
	if off >= int64(len(data)) {
		return nil, io.EOF
	}
	end := off + length
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return io.NopCloser(io.NewSectionReader(b.m, off, end-off)), nil
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return int64(b.m.Size())
}

func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Bytes(), nil
}

type localWritableBlob struct {
	fsys vfs.FileSystem
	f    vfs.File
	tmp  string
	path string
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.f.Sync()
}

// Close syncs the temporary file and renames it into place. On any
// failure the temporary file is removed and the target is untouched.
func (w *localWritableBlob) Close() error {
	if err := w.f.Sync(); err != nil {
		_ = w.abort()
		return err
	}
	if err := w.f.Close(); err != nil {
		_ = w.fsys.Remove(w.tmp)
		return err
	}
	if err := w.fsys.Rename(w.tmp, w.path); err != nil {
		_ = w.fsys.Remove(w.tmp)
		return err
	}
	return nil
}

func (w *localWritableBlob) abort() error {
	_ = w.f.Close()
	return w.fsys.Remove(w.tmp)
}
