// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/cli"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/config"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/errs"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/genelist"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/gprofiler"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/logger"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/output"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/version"
)

// RunContext drives the whole pipeline: load → query → persist → summary.
// Machine output (summary) goes to stdout, diagnostics to stderr; the return
// value is the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("funcenrich")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "funcenrich version %s\n", version.Version)
		return 0
	}

	level := zapcore.InfoLevel
	if opts.Quiet {
		level = zapcore.WarnLevel
	}
	if err := logger.Init(level); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	genes, err := genelist.Load(opts.Input)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Info("gene list loaded",
		zap.String("file", opts.Input), zap.Int("genes", len(genes)))

	var terms []enrich.Term
	if opts.Demo {
		logger.Warn("demo mode: using canned results, skipping network query")
		terms = gprofiler.Demo(genes)
	} else {
		client := gprofiler.New(config.FromEnv(), opts.Organism)
		terms, err = client.Profile(ctx, genes)
		if err != nil {
			return fail(stderr, err)
		}
	}
	logger.Info("enrichment complete", zap.Int("terms", len(terms)))

	if err := output.SaveTSV(opts.Output, terms); err != nil {
		// The summary is already computed and still useful; the run is
		// reported as failed via the exit code regardless.
		_ = output.WriteSummary(outw, terms, opts.Top)
		_ = outw.Flush()
		return fail(stderr, err)
	}
	logger.Info("results written", zap.String("file", opts.Output))

	if err := output.WriteSummary(outw, terms, opts.Top); err != nil {
		return fail(stderr, err)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "error:", err)
	return errs.ExitCode(err)
}
