package main

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/kcluster/blobstore"
	minioblob "github.com/hupe1980/kcluster/blobstore/minio"
	s3blob "github.com/hupe1980/kcluster/blobstore/s3"
	"github.com/hupe1980/kcluster/config"
)

// newResolver registers the remote schemes. Clients are built on first use,
// so purely local runs never touch cloud credentials.
func newResolver(ctx context.Context, cfg *config.File) *blobstore.Resolver {
	r := blobstore.NewResolver()

	var (
		s3Once   sync.Once
		s3Client *s3.Client
		s3Err    error
	)
	r.Register(blobstore.SchemeS3, func(bucket string) (blobstore.BlobStore, error) {
		s3Once.Do(func() {
			s3Client, s3Err = newS3Client(ctx, cfg.S3)
		})
		if s3Err != nil {
			return nil, s3Err
		}
		return s3blob.NewStore(s3Client, bucket, ""), nil
	})

	var (
		minioOnce   sync.Once
		minioClient *minio.Client
		minioErr    error
	)
	r.Register(blobstore.SchemeMinIO, func(bucket string) (blobstore.BlobStore, error) {
		minioOnce.Do(func() {
			minioClient, minioErr = newMinIOClient(cfg.MinIO)
		})
		if minioErr != nil {
			return nil, minioErr
		}
		return minioblob.NewStore(minioClient, bucket, ""), nil
	})

	return r
}

func newS3Client(ctx context.Context, c config.S3) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	}), nil
}

func newMinIOClient(c config.MinIO) (*minio.Client, error) {
	creds := credentials.NewEnvMinio()
	if c.AccessKey != "" {
		creds = credentials.NewStaticV4(c.AccessKey, c.SecretKey, "")
	}
	return minio.New(c.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: c.Secure,
	})
}
