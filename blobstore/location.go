package blobstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Scheme prefixes understood by ParseLocation.
const (
	SchemeS3    = "s3"
	SchemeMinIO = "minio"
)

// ErrInvalidLocation is returned for URIs that name no bucket.
var ErrInvalidLocation = errors.New("blobstore: invalid location")

// ErrUnknownScheme is returned when no store factory is registered for a scheme.
var ErrUnknownScheme = errors.New("blobstore: unknown scheme")

// Location addresses a blob or a prefix of blobs.
// Local paths have an empty Scheme and Bucket.
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

// ParseLocation splits s3://bucket/key and minio://bucket/key URIs.
// Anything else is treated as a local path.
func ParseLocation(uri string) (Location, error) {
	for _, scheme := range []string{SchemeS3, SchemeMinIO} {
		rest, ok := strings.CutPrefix(uri, scheme+"://")
		if !ok {
			continue
		}
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, uri)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	}
	if uri == "" {
		return Location{}, fmt.Errorf("%w: empty path", ErrInvalidLocation)
	}
	return Location{Key: uri}, nil
}

// IsPrefix reports whether the location names a directory-like prefix
// rather than a single blob.
func (l Location) IsPrefix() bool {
	return l.Key == "" || strings.HasSuffix(l.Key, "/")
}

func (l Location) String() string {
	if l.Scheme == "" {
		return l.Key
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

// StoreFactory builds the store for one bucket of a scheme.
type StoreFactory func(bucket string) (BlobStore, error)

// Resolver maps locations to stores. Stores are built once per scheme and bucket.
type Resolver struct {
	mu        sync.Mutex
	factories map[string]StoreFactory
	stores    map[string]BlobStore
}

// NewResolver returns a resolver that only knows local paths.
func NewResolver() *Resolver {
	return &Resolver{
		factories: make(map[string]StoreFactory),
		stores:    make(map[string]BlobStore),
	}
}

// Register installs the factory for scheme.
func (r *Resolver) Register(scheme string, f StoreFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[scheme] = f
}

// Resolve returns the store holding loc and the blob name within it.
// A local prefix resolves to a store rooted at that directory and an empty name.
func (r *Resolver) Resolve(loc Location) (BlobStore, string, error) {
	if loc.Scheme == "" {
		if loc.IsPrefix() {
			return NewLocalStore(filepath.Clean(loc.Key)), "", nil
		}
		return NewLocalStore(filepath.Dir(loc.Key)), filepath.Base(loc.Key), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := loc.Scheme + "://" + loc.Bucket
	if s, ok := r.stores[cacheKey]; ok {
		return s, loc.Key, nil
	}
	f, ok := r.factories[loc.Scheme]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownScheme, loc.Scheme)
	}
	s, err := f(loc.Bucket)
	if err != nil {
		return nil, "", err
	}
	r.stores[cacheKey] = s
	return s, loc.Key, nil
}
