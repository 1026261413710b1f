// SPDX-License-Identifier: EPL-2.0

// Command audwave prints waveform series for audio files.
//
//	audwave [-config audwave.yaml] [-style bars] [-width 320] file...
//	audwave -samples 64 -strategy cosine file...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/waveform"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = logger.WithContext(ctx)
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Ef(ctx, "audwave: %+v", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	envPath    string
	style      string
	width      float64
	samples    int
	strategy   waveform.Strategy
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("audwave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "audwave.yaml", "YAML configuration file (missing file uses defaults)")
	fs.StringVar(&opts.envPath, "env", ".env", "optional env file with AUDWAVE_* overrides")
	fs.StringVar(&opts.style, "style", "bars", "style used to size the series")
	fs.Float64Var(&opts.width, "width", 320, "viewport width in points")
	fs.IntVar(&opts.samples, "samples", 0, "exact sample count; overrides -style and -width")
	fs.TextVar(&opts.strategy, "strategy", waveform.Smooth, "upsample strategy with -samples: smooth, cosine, linear, hold, none")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		return nil, errors.New("no input files")
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if err := godotenv.Load(opts.envPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load %v", opts.envPath)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return err
	}

	x, err := cfg.FileExtractor()
	if err != nil {
		return err
	}

	w, err := audwave.New(cfg, x)
	if err != nil {
		return err
	}

	lines := make([]string, len(opts.files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range opts.files {
		fctx := logger.WithContext(gctx)
		g.Go(func() error {
			line, err := render(fctx, w, opts, file)
			if err != nil {
				return errors.Wrapf(err, "file %v", file)
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return errors.Wrapf(err, "write")
		}
	}

	return nil
}

func render(ctx context.Context, w *audwave.Waveform, opts *options, file string) (string, error) {
	if opts.samples > 0 {
		series, duration, err := w.Samples(ctx, file, opts.samples, opts.strategy)
		if err != nil {
			return "", err
		}
		return format(file, opts.strategy.String(), duration.String(), series), nil
	}

	res, err := w.Render(ctx, file, opts.style, opts.width)
	if err != nil {
		return "", err
	}
	return format(file, res.Style, res.Duration.String(), res.Samples), nil
}

func format(file, label, duration string, series []float32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s\t%s\t%d\t", file, label, duration, len(series))
	for i, v := range series {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.4f", v)
	}
	return b.String()
}
