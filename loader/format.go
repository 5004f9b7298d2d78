package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format is a record layout.
type Format int

const (
	// FormatText is whitespace-separated values with an optional label.
	FormatText Format = iota
	// FormatJSONL is one JSON object per line.
	FormatJSONL
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSONL:
		return "jsonl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Compression is a stream encoding detected from the name suffix.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Detect derives compression and record format from a blob name.
func Detect(name string) (Format, Compression) {
	lower := strings.ToLower(name)

	comp := CompressionNone
	switch {
	case strings.HasSuffix(lower, ".zst"):
		comp = CompressionZstd
		lower = strings.TrimSuffix(lower, ".zst")
	case strings.HasSuffix(lower, ".lz4"):
		comp = CompressionLZ4
		lower = strings.TrimSuffix(lower, ".lz4")
	}

	if strings.HasSuffix(lower, ".jsonl") {
		return FormatJSONL, comp
	}
	return FormatText, comp
}

// Decompress wraps r according to c. The returned closer releases decoder
// resources; it does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("loader: zstd: %w", err)
		}
		return zstdReadCloser{dec}, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("loader: unsupported compression %v", c)
	}
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
