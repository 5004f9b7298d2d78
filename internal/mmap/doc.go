// Package mmap provides read-only memory-mapped file access.
//
// Local point files are mapped instead of read so the loader can scan
// large inputs without copying them through a buffer first.
//
// # Usage
//
//	m, err := mmap.Open("cloud.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (advice is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent; callers must
// not use Bytes() after Close returns.
package mmap
