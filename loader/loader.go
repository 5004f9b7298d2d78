package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/internal/resource"
	"github.com/hupe1980/kcluster/model"
)

const bytesPerValue = 8

// Option configures a Loader.
type Option func(*Loader)

// WithCodec sets the codec used for JSONL records.
func WithCodec(c codec.Codec) Option {
	return func(l *Loader) {
		l.codec = c
	}
}

// WithController bounds fetch concurrency, read throughput and decoded memory.
func WithController(rc *resource.Controller) Option {
	return func(l *Loader) {
		l.rc = rc
	}
}

// WithResolver sets the resolver used for s3:// and minio:// sources.
func WithResolver(r *blobstore.Resolver) Option {
	return func(l *Loader) {
		l.resolver = r
	}
}

// Loader reads points of a fixed dimension from one or more sources.
type Loader struct {
	dim      int
	codec    codec.Codec
	rc       *resource.Controller
	resolver *blobstore.Resolver
}

// New creates a loader for points with dim coordinates.
func New(dim int, opts ...Option) (*Loader, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}

	l := &Loader{
		dim:   dim,
		codec: codec.Default,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.resolver == nil {
		l.resolver = blobstore.NewResolver()
	}
	if l.rc == nil {
		l.rc = resource.NewController(resource.Config{})
	}
	return l, nil
}

// Dimension returns the number of coordinates per point.
func (l *Loader) Dimension() int {
	return l.dim
}

type job struct {
	store  blobstore.BlobStore
	name   string
	source string
}

// Load reads every source and returns the points in argument order.
// Sources are fetched concurrently; the first error cancels the rest.
// Decoded coordinates are charged to the controller's memory budget record
// by record while parsing, and released when Load returns.
func (l *Loader) Load(ctx context.Context, sources ...string) ([]*model.Point, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	jobs, err := l.expand(ctx, sources)
	if err != nil {
		return nil, err
	}

	var reserved atomic.Int64
	defer func() { l.rc.ReleaseMemory(reserved.Load()) }()

	results := make([][]Record, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			if err := l.rc.AcquireFetch(gctx); err != nil {
				return err
			}
			defer l.rc.ReleaseFetch()

			perRecord := int64(l.dim) * bytesPerValue
			reserve := func() error {
				if err := l.rc.AcquireMemory(perRecord); err != nil {
					return err
				}
				reserved.Add(perRecord)
				return nil
			}

			recs, err := l.loadBlob(gctx, j.store, j.name, j.source, reserve)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range results {
		total += len(recs)
	}

	points := make([]*model.Point, 0, total)
	for _, recs := range results {
		for _, rec := range recs {
			points = append(points, model.NewPoint(len(points), rec.Values, rec.Label))
		}
	}
	return points, nil
}

// LoadBlob reads and parses a single blob. source names it in errors.
// The loader's memory budget is not charged.
func (l *Loader) LoadBlob(ctx context.Context, store blobstore.BlobStore, name, source string) ([]Record, error) {
	return l.loadBlob(ctx, store, name, source, nil)
}

func (l *Loader) loadBlob(ctx context.Context, store blobstore.BlobStore, name, source string, reserve func() error) ([]Record, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", source, err)
	}
	defer blob.Close()

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", source, err)
	}
	defer raw.Close()

	format, comp := Detect(name)
	r, err := Decompress(resource.NewRateLimitedReader(ctx, raw, l.rc), comp)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return parse(r, source, format, l.dim, l.codec, reserve)
}

func (l *Loader) expand(ctx context.Context, sources []string) ([]job, error) {
	var jobs []job
	for _, src := range sources {
		loc, err := blobstore.ParseLocation(src)
		if err != nil {
			return nil, err
		}
		store, name, err := l.resolver.Resolve(loc)
		if err != nil {
			return nil, err
		}

		if !loc.IsPrefix() {
			jobs = append(jobs, job{store: store, name: name, source: src})
			continue
		}

		names, err := store.List(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("loader: list %s: %w", src, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPrefix, src)
		}
		for _, n := range names {
			sub := loc
			if loc.Scheme == "" {
				sub.Key = filepath.Join(loc.Key, filepath.FromSlash(n))
			} else {
				sub.Key = n
			}
			jobs = append(jobs, job{store: store, name: n, source: sub.String()})
		}
	}
	return jobs, nil
}
