package main

import (
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/config"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"KCLUSTER_CONFIG"},
		},
		&cli.IntFlag{
			Name:    "dimension",
			Aliases: []string{"d"},
			Usage:   "Number of coordinates per point",
			Value:   config.DefaultDimension,
			EnvVars: []string{"KCLUSTER_DIMENSION"},
		},
		&cli.StringFlag{
			Name:    "codec",
			Usage:   "JSON codec for JSONL input and JSON reports (go-json|json)",
			Value:   "go-json",
			EnvVars: []string{"KCLUSTER_CODEC"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"KCLUSTER_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "text or json",
			Value:   "text",
			EnvVars: []string{"KCLUSTER_LOG_FORMAT"},
		},
	}
}

func runFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.IntFlag{
			Name:    "k",
			Usage:   "Number of clusters",
			EnvVars: []string{"KCLUSTER_K"},
		},
		&cli.IntFlag{
			Name:    "max-iterations",
			Usage:   "Upper bound on assign/recompute passes",
			Value:   kcluster.DefaultMaxIterations,
			EnvVars: []string{"KCLUSTER_MAX_ITERATIONS"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "Seed for choosing initial centroids (0 seeds from the clock)",
			EnvVars: []string{"KCLUSTER_SEED"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format (text|json)",
			Value:   "text",
			EnvVars: []string{"KCLUSTER_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report destination: path, s3://bucket/key or minio://bucket/key (default stdout)",
			EnvVars: []string{"KCLUSTER_OUTPUT"},
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "Check that the clusters partition the input before reporting",
		},
	)
}

// loadSettings layers defaults, the config file and explicitly set flags.
func loadSettings(c *cli.Context) (*config.File, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	overrideInt := func(name string, dst *int) {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}
	overrideString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}

	overrideInt("k", &cfg.K)
	overrideInt("dimension", &cfg.Dimension)
	overrideInt("max-iterations", &cfg.MaxIterations)
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	overrideString("format", &cfg.Format)
	overrideString("codec", &cfg.Codec)
	overrideString("output", &cfg.Output)
	overrideString("log-level", &cfg.Log.Level)
	overrideString("log-format", &cfg.Log.Format)

	return cfg, nil
}

func newLogger(c *cli.Context, cfg *config.File) (*kcluster.Logger, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return kcluster.NewLogger(slog.NewJSONHandler(c.App.ErrWriter, opts)), nil
	}
	return kcluster.NewLogger(slog.NewTextHandler(c.App.ErrWriter, opts)), nil
}
