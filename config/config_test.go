package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, 0, f.K)
	assert.Equal(t, 3, f.Dimension)
	assert.Equal(t, 100, f.MaxIterations)
	assert.Equal(t, "text", f.Format)
	assert.Equal(t, "go-json", f.Codec)

	// K has no default.
	assert.ErrorIs(t, f.Validate(), ErrInvalid)

	f.K = 2
	assert.NoError(t, f.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kcluster.yaml")
	doc := `
k: 4
max_iterations: 20
format: json
log:
  level: debug
io:
  rate_limit_bytes_per_sec: 1048576
s3:
  region: eu-central-1
  use_path_style: true
minio:
  access_key: admin
  secret_key: hunter2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	assert.Equal(t, 4, f.K)
	assert.Equal(t, 3, f.Dimension, "missing keys keep defaults")
	assert.Equal(t, 20, f.MaxIterations)
	assert.Equal(t, "json", f.Format)
	assert.Equal(t, "text", f.Log.Format)
	assert.Equal(t, int64(1048576), f.IO.RateLimitBytesPerSec)
	assert.Equal(t, int64(4), f.IO.MaxConcurrentFetches)
	assert.Equal(t, "eu-central-1", f.S3.Region)
	assert.True(t, f.S3.UsePathStyle)
	assert.Equal(t, "localhost:9000", f.MinIO.Endpoint)

	level, err := f.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	out, err := f.Dump()
	require.NoError(t, err)
	assert.Contains(t, out, "k: 4")
	assert.NotContains(t, out, "hunter2")
	assert.Equal(t, "hunter2", f.MinIO.SecretKey)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse([]byte("k: [1, 2"))
	assert.Error(t, err)

	_, err = Parse([]byte("k: four"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*File)
	}{
		{"zero dimension", func(f *File) { f.Dimension = 0 }},
		{"negative iterations", func(f *File) { f.MaxIterations = -1 }},
		{"format", func(f *File) { f.Format = "xml" }},
		{"codec", func(f *File) { f.Codec = "msgpack" }},
		{"log level", func(f *File) { f.Log.Level = "loud" }},
		{"log format", func(f *File) { f.Log.Format = "logfmt" }},
		{"io", func(f *File) { f.IO.MemoryLimitBytes = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			f.K = 2
			tt.mutate(f)
			assert.ErrorIs(t, f.Validate(), ErrInvalid)
		})
	}
}
