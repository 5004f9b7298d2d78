// Package fs abstracts the file operations used to write blobs atomically
// to the local filesystem, so that tests can inject I/O failures.
//
//   - [LocalFS]: the os package
//   - [FaultyFS]: wraps a FileSystem and fails writes, syncs, closes or
//     renames for matching file names
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
package fs
