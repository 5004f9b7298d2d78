// Package blobstore abstracts where point files are read from and where
// clustering reports are written to.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads through a read-only mmap
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Addressing
//
// ParseLocation accepts s3://bucket/key, minio://bucket/key and plain
// local paths. A Resolver turns a Location into a store and a blob name;
// remote schemes are registered by the caller:
//
//	r := blobstore.NewResolver()
//	r.Register(blobstore.SchemeS3, func(bucket string) (blobstore.BlobStore, error) {
//	    return s3.NewStore(client, bucket, ""), nil
//	})
//	store, name, err := r.Resolve(loc)
package blobstore
