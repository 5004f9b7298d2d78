// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	client := s3.NewFromConfig(cfg)
//	store := kcs3.NewStore(client, "my-bucket", "runs/")
//
//	blob, err := store.Open(ctx, "points.txt.zst")
//
// # Features
//
//   - Range reads for point files
//   - Multipart streaming uploads for reports (feature/s3/manager)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
