package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestMapping_OpenReadClose(t *testing.T) {
	content := []byte("0 0 0\n0 0 1\n")
	m, err := Open(writeFile(t, content))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())

	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "0 0 1", string(buf))

	// Past the end.
	n, err = m.ReadAt(make([]byte, 10), 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	// Partial read.
	buf3 := make([]byte, 10)
	n, err = m.ReadAt(buf3, 6)
	assert.Equal(t, 6, n)
	assert.Equal(t, io.EOF, err)

	_, err = m.ReadAt(buf, -1)
	assert.Equal(t, ErrInvalidOffset, err)
}

func TestMapping_EmptyFile(t *testing.T) {
	m, err := Open(writeFile(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessSequential))
}

func TestMapping_Advise(t *testing.T) {
	m, err := Open(writeFile(t, make([]byte, 8192)))
	require.NoError(t, err)

	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Advise(AccessWillNeed))

	require.NoError(t, m.Close())
	assert.Equal(t, ErrClosed, m.Advise(AccessSequential))
}

func TestMapping_CloseIdempotent(t *testing.T) {
	m, err := Open(writeFile(t, []byte("x")))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.Equal(t, ErrClosed, err)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
