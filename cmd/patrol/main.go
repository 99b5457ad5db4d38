package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/guard-patrol/internal/config"
	"github.com/vancomm/guard-patrol/internal/logging"
	"github.com/vancomm/guard-patrol/internal/patrol"
	"github.com/vancomm/guard-patrol/internal/render"
)

var (
	log = logrus.New()

	inputPath string
	workers   int
	showMap   bool
	verbose   bool
)

func init() {
	const (
		defaultInputPath = "-"
		usage            = "grid file path, - for stdin"
	)
	flag.StringVar(&inputPath, "file", defaultInputPath, usage)
	flag.StringVar(&inputPath, "f", defaultInputPath, usage+" (shorthand)")
	flag.IntVar(&workers, "workers", -1, "placement search workers, 0 for one per CPU (default from PATROL_WORKERS)")
	flag.BoolVar(&showMap, "render", false, "print the grid with the patrol overlaid")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	opts := logging.Options{
		Development: config.Development(),
		Verbose:     verbose,
		File:        config.LogFile(),
	}
	if err := logging.Configure(log, opts); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	patrol.Log = log
}

func openInput() (io.ReadCloser, error) {
	if inputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inputPath)
}

func run(ctx context.Context, in io.Reader, out io.Writer, colored bool) error {
	grid, start, err := patrol.ParseGrid(in)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}

	log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"start":  start.String(),
	}).Debug("grid parsed")

	report, err := patrol.Analyze(ctx, grid, start, workers)
	if err != nil {
		return err
	}

	if showMap {
		fmt.Fprint(out, render.Report(grid, start, report, colored))
	}
	fmt.Fprintln(out, report.Visited)
	fmt.Fprintln(out, report.LoopPlacements)

	return nil
}

func main() {
	flag.Parse()

	setupLogging()

	if workers < 0 {
		var err error
		if workers, err = config.Workers(); err != nil {
			log.Fatal(err)
		}
	}

	in, err := openInput()
	if err != nil {
		log.Fatalf("unable to open %s: %s", inputPath, err)
	}
	defer in.Close()

	if err := run(context.Background(), in, os.Stdout, render.IsTerminal(os.Stdout)); err != nil {
		log.Error(err)
		in.Close()
		os.Exit(1)
	}
}
