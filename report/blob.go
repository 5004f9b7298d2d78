package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
)

// WriteBlob renders rep into a new blob. A ".zst" name suffix compresses
// the output with zstd.
func WriteBlob(ctx context.Context, store blobstore.BlobStore, name string, f Format, rep *Report, c codec.Codec) (err error) {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", name, err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", name, cerr)
		}
	}()

	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		enc, err := zstd.NewWriter(wb)
		if err != nil {
			return err
		}
		if err := Write(enc, f, rep, c); err != nil {
			return errors.Join(err, enc.Close())
		}
		return enc.Close()
	}

	return Write(wb, f, rep, c)
}
