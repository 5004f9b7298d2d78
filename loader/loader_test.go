package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/internal/resource"
	"github.com/hupe1980/kcluster/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func labels(points []*model.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label()
	}
	return out
}

func TestNew(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	l, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Dimension())

	_, err = l.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestLoad_OrderAndIDs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.jsonl")
	writeFile(t, a, "1 2 3 a0\n4 5 6 a1\n")
	writeFile(t, b, `{"values":[7,8,9],"label":"b0"}`+"\n")

	l, err := New(3, WithController(resource.NewController(resource.Config{MaxConcurrentFetches: 1})))
	require.NoError(t, err)

	points, err := l.Load(context.Background(), b, a)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, []string{"b0", "a0", "a1"}, labels(points))
	for i, p := range points {
		assert.Equal(t, i, p.ID())
		assert.Equal(t, model.Unassigned, p.Cluster())
		assert.Equal(t, 3, p.Dimension())
	}
	assert.Equal(t, []float64{4, 5, 6}, points[2].Values())
}

func TestLoad_Compressed(t *testing.T) {
	dir := t.TempDir()

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	data := enc.EncodeAll([]byte("1 2 x\n3 4 y\n"), nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(dir, "points.txt.zst")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	l, err := New(2)
	require.NoError(t, err)

	points, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, labels(points))
}

func TestLoad_LocalPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in", "2.txt"), "3 3\n")
	writeFile(t, filepath.Join(dir, "in", "1.txt"), "1 1\n2 2\n")

	l, err := New(2)
	require.NoError(t, err)

	points, err := l.Load(context.Background(), filepath.Join(dir, "in")+string(filepath.Separator))
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{1, 1}, points[0].Values())
	assert.Equal(t, []float64{3, 3}, points[2].Values())
}

func TestLoad_RemoteScheme(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "runs/a.txt", []byte("1 1 p\n")))
	require.NoError(t, store.Put(ctx, "runs/b.txt", []byte("2 2 q\n")))
	require.NoError(t, store.Put(ctx, "other.txt", []byte("9 9 z\n")))

	r := blobstore.NewResolver()
	r.Register(blobstore.SchemeS3, func(bucket string) (blobstore.BlobStore, error) {
		assert.Equal(t, "bucket", bucket)
		return store, nil
	})

	l, err := New(2, WithResolver(r))
	require.NoError(t, err)

	points, err := l.Load(ctx, "s3://bucket/runs/", "s3://bucket/other.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q", "z"}, labels(points))

	_, err = l.Load(ctx, "s3://bucket/missing/")
	assert.ErrorIs(t, err, ErrEmptyPrefix)

	_, err = l.Load(ctx, "minio://bucket/a.txt")
	assert.ErrorIs(t, err, blobstore.ErrUnknownScheme)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	writeFile(t, bad, "1 2 3\n1 2\n")

	l, err := New(3)
	require.NoError(t, err)

	_, err = l.Load(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = l.Load(context.Background(), bad)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, bad, recErr.Source)
	assert.Equal(t, 2, recErr.Line)
}

func TestLoad_MemoryBudget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.txt")
	writeFile(t, path, "1 2 3\n4 5 6\n")

	rc := resource.NewController(resource.Config{MemoryLimitBytes: 3 * 8})
	l, err := New(3, WithController(rc))
	require.NoError(t, err)

	_, err = l.Load(context.Background(), path)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

	rc = resource.NewController(resource.Config{MemoryLimitBytes: 6 * 8})
	l, err = New(3, WithController(rc))
	require.NoError(t, err)

	points, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, points, 2)
	assert.Zero(t, rc.MemoryUsage())
}

func TestLoad_MemoryBudgetStopsDecoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.txt")
	// The third line is malformed; with room for one record, decoding must
	// stop at the second line before ever reaching it.
	writeFile(t, path, "1 2 3\n4 5 6\n7 8\n")

	rc := resource.NewController(resource.Config{MemoryLimitBytes: 3 * 8})
	l, err := New(3, WithController(rc))
	require.NoError(t, err)

	_, err = l.Load(context.Background(), path)
	require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Contains(t, err.Error(), path+":2:")

	var recErr *RecordError
	assert.False(t, errors.As(err, &recErr))
	assert.Zero(t, rc.MemoryUsage())
}

func TestLoad_Canceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.txt")
	writeFile(t, path, "1 2 3\n")

	l, err := New(3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
