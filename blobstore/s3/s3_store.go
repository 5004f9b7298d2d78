package s3

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/kcluster/blobstore"
)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	uploader *manager.Uploader
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	upload UploadConfig
}

// WithUploadConfig overrides the multipart upload settings.
func WithUploadConfig(cfg UploadConfig) Option {
	return func(o *storeOptions) {
		o.upload = cfg
	}
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "runs/").
func NewStore(client Client, bucket, rootPrefix string, opts ...Option) *Store {
	o := storeOptions{upload: DefaultUploadConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		uploader: newUploader(client, o.upload),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open returns a blob backed by ranged GETs.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := openBlob(ctx, s.client, s.bucket, s.key(name))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create starts a streaming upload that completes on Close.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &baseWritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:            aws.String(s.bucket),
			Key:               aws.String(key),
			Body:              pr,
			ChecksumAlgorithm: types.ChecksumAlgorithmCrc32c,
		})
		// Unblock the writer if the upload failed early.
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Put uploads data with a CRC32C checksum. Payloads smaller than one part
// go out in a single PutObject; larger ones use the multipart uploader.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if int64(len(data)) < s.uploader.PartSize {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:         aws.String(s.bucket),
			Key:            aws.String(s.key(name)),
			Body:           bytes.NewReader(data),
			ContentLength:  aws.Int64(int64(len(data))),
			ChecksumCRC32C: aws.String(computeCRC32C(data)),
		})
		return err
	}
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(s.bucket),
		Key:               aws.String(s.key(name)),
		Body:              bytes.NewReader(data),
		ChecksumAlgorithm: types.ChecksumAlgorithmCrc32c,
	})
	return err
}

// List returns keys under prefix relative to the store's root prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	if strings.HasSuffix(prefix, "/") {
		fullPrefix += "/"
	}
	return listObjects(ctx, s.client, s.bucket, fullPrefix, s.prefix)
}
