// Command kcluster partitions point files into k clusters with Lloyd's algorithm.
//
//	kcluster run -k 3 points.txt
//	kcluster run -k 5 --format json --output s3://bucket/report.json s3://bucket/points/
//	kcluster inspect points.jsonl.zst
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "kcluster",
		Usage:     "k-means clustering of point files",
		UsageText: "kcluster COMMAND [OPTIONS...] <source>...",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			runCommand(),
			inspectCommand(),
			configCommand(),
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kcluster: %v\n", err)
		os.Exit(1)
	}
}
