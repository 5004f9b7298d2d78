// Package minio reads point files from, and writes reports to, MinIO or any
// other S3-compatible server through the minio-go client.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	})
//	store := kcminio.NewStore(client, "datasets", "runs/")
//	names, err := store.List(ctx, "2024/")
//
// The kcluster CLI registers this store for "minio://bucket/key" sources.
package minio
