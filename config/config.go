// Package config holds the settings of the kcluster command, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/report"
)

// DefaultDimension is the dimension of the classic 3D point cloud input.
const DefaultDimension = 3

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// File is the YAML document.
type File struct {
	K             int    `yaml:"k"`
	Dimension     int    `yaml:"dimension"`
	MaxIterations int    `yaml:"max_iterations"`
	Seed          int64  `yaml:"seed"`
	Format        string `yaml:"format"`
	Codec         string `yaml:"codec"`
	Output        string `yaml:"output"`
	Log           Log    `yaml:"log"`
	IO            IO     `yaml:"io"`
	S3            S3     `yaml:"s3"`
	MinIO         MinIO  `yaml:"minio"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// IO bounds how inputs are fetched.
type IO struct {
	RateLimitBytesPerSec int64 `yaml:"rate_limit_bytes_per_sec"`
	MemoryLimitBytes     int64 `yaml:"memory_limit_bytes"`
	MaxConcurrentFetches int64 `yaml:"max_concurrent_fetches"`
}

// S3 configures the AWS client used for s3:// locations.
type S3 struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// MinIO configures the client used for minio:// locations.
type MinIO struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Default returns the built-in settings. K has no default.
func Default() *File {
	return &File{
		Dimension:     DefaultDimension,
		MaxIterations: kcluster.DefaultMaxIterations,
		Format:        "text",
		Codec:         codec.Default.Name(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		IO: IO{
			MaxConcurrentFetches: 4,
		},
		MinIO: MinIO{
			Endpoint: "localhost:9000",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document over the defaults.
func Parse(raw []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return f, nil
}

// Validate checks the clustering parameters and enumerated fields.
func (f *File) Validate() error {
	var errs []error
	if f.K < 1 {
		errs = append(errs, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalid, f.K))
	}
	if f.Dimension < 1 {
		errs = append(errs, fmt.Errorf("%w: dimension must be >= 1, got %d", ErrInvalid, f.Dimension))
	}
	if f.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("%w: max_iterations must be >= 1, got %d", ErrInvalid, f.MaxIterations))
	}
	if _, err := report.ParseFormat(f.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, ok := codec.ByName(f.Codec); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown codec %q", ErrInvalid, f.Codec))
	}
	if _, err := f.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if lf := strings.ToLower(f.Log.Format); lf != "text" && lf != "json" {
		errs = append(errs, fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalid, f.Log.Format))
	}
	if f.IO.RateLimitBytesPerSec < 0 || f.IO.MemoryLimitBytes < 0 || f.IO.MaxConcurrentFetches < 0 {
		errs = append(errs, fmt.Errorf("%w: io limits must not be negative", ErrInvalid))
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return level, nil
}

// Dump returns the settings as YAML with secrets masked.
func (f *File) Dump() (string, error) {
	c := *f
	if c.MinIO.SecretKey != "" {
		c.MinIO.SecretKey = "***"
	}
	out, err := yaml.Marshal(&c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
