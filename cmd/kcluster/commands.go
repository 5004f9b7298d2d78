package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/config"
	"github.com/hupe1980/kcluster/internal/resource"
	"github.com/hupe1980/kcluster/loader"
	"github.com/hupe1980/kcluster/model"
	"github.com/hupe1980/kcluster/report"
)

var errNoSources = errors.New("at least one <source> is required")

func runCommand() *cli.Command {
	return &cli.Command{
		Name:        "run",
		Usage:       "Cluster the points of one or more sources",
		UsageText:   "kcluster run -k N [OPTIONS...] <source>...",
		Description: "Sources are local paths, s3://bucket/key or minio://bucket/key; a trailing '/' reads every blob under the prefix. Points are numbered in argument order.",
		Flags:       runFlags(),
		Action:      runAction,
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Load sources and print point statistics without clustering",
		UsageText: "kcluster inspect [OPTIONS...] <source>...",
		Flags:     commonFlags(),
		Action:    inspectAction,
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "Print the effective configuration as YAML",
		UsageText: "kcluster config [OPTIONS...]",
		Flags:     runFlags(),
		Action:    configAction,
	}
}

// session bundles what every command needs after settings are resolved.
type session struct {
	cfg      *config.File
	logger   *kcluster.Logger
	codec    codec.Codec
	resolver *blobstore.Resolver
}

func newSession(c *cli.Context, validate func(*config.File) error) (*session, error) {
	cfg, err := loadSettings(c)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	logger, err := newLogger(c, cfg)
	if err != nil {
		return nil, err
	}
	cdc, ok := codec.ByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", config.ErrInvalid, cfg.Codec)
	}
	return &session{
		cfg:      cfg,
		logger:   logger,
		codec:    cdc,
		resolver: newResolver(c.Context, cfg),
	}, nil
}

func (s *session) load(ctx context.Context, sources []string) ([]*model.Point, error) {
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:     s.cfg.IO.MemoryLimitBytes,
		MaxConcurrentFetches: s.cfg.IO.MaxConcurrentFetches,
		IOLimitBytesPerSec:   s.cfg.IO.RateLimitBytesPerSec,
	})
	l, err := loader.New(s.cfg.Dimension,
		loader.WithCodec(s.codec),
		loader.WithController(rc),
		loader.WithResolver(s.resolver),
	)
	if err != nil {
		return nil, err
	}

	points, err := l.Load(ctx, sources...)
	s.logger.LogLoad(ctx, strings.Join(sources, ","), len(points), err)
	return points, err
}

func runAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoSources
	}
	s, err := newSession(c, (*config.File).Validate)
	if err != nil {
		return err
	}
	ctx := c.Context

	format, err := report.ParseFormat(s.cfg.Format)
	if err != nil {
		return err
	}

	points, err := s.load(ctx, c.Args().Slice())
	if err != nil {
		return err
	}

	metrics := &kcluster.BasicMetricsCollector{}
	opts := []kcluster.Option{
		kcluster.WithLogger(s.logger),
		kcluster.WithMetricsCollector(metrics),
	}
	if s.cfg.Seed != 0 {
		opts = append(opts, kcluster.WithSeed(s.cfg.Seed))
	}

	clusterer, err := kcluster.New(kcluster.Config{
		K:             s.cfg.K,
		Dimension:     s.cfg.Dimension,
		MaxIterations: s.cfg.MaxIterations,
	}, opts...)
	if err != nil {
		return err
	}

	res, err := clusterer.Run(points)
	if err != nil {
		return err
	}

	stats := metrics.GetStats()
	s.logger.DebugContext(ctx, "run metrics",
		"iterations", stats.IterationCount,
		"point_moves", stats.PointMoves,
		"duration_ns", stats.RunAvgNanos,
	)

	if c.Bool("verify") {
		if err := res.Verify(len(points)); err != nil {
			return err
		}
	}

	rep, err := report.New(res, points)
	if err != nil {
		return err
	}

	if s.cfg.Output == "" {
		return report.Write(c.App.Writer, format, rep, s.codec)
	}

	loc, err := blobstore.ParseLocation(s.cfg.Output)
	if err != nil {
		return err
	}
	if loc.IsPrefix() {
		return fmt.Errorf("output %q names a prefix, not a blob", s.cfg.Output)
	}
	store, name, err := s.resolver.Resolve(loc)
	if err != nil {
		return err
	}
	return report.WriteBlob(ctx, store, name, format, rep, s.codec)
}

func inspectAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoSources
	}
	s, err := newSession(c, func(cfg *config.File) error {
		if cfg.Dimension < 1 {
			return fmt.Errorf("%w: dimension must be >= 1, got %d", config.ErrInvalid, cfg.Dimension)
		}
		return nil
	})
	if err != nil {
		return err
	}

	points, err := s.load(c.Context, c.Args().Slice())
	if err != nil {
		return err
	}

	labeled := 0
	for _, p := range points {
		if p.Label() != "" {
			labeled++
		}
	}

	w := c.App.Writer
	fmt.Fprintf(w, "points: %d\n", len(points))
	fmt.Fprintf(w, "dimension: %d\n", s.cfg.Dimension)
	fmt.Fprintf(w, "labeled: %d\n", labeled)
	return nil
}

func configAction(c *cli.Context) error {
	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	out, err := cfg.Dump()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, out)
	return err
}
