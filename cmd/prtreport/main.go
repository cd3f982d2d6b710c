// Command prtreport generates models for the initial shapes of a job file
// and prints a summary report of the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/chazu/prtkit/internal/config"
	"github.com/chazu/prtkit/internal/job"
	"github.com/chazu/prtkit/internal/logger"
	"github.com/chazu/prtkit/pkg/generator"
	"github.com/chazu/prtkit/pkg/kernel/sdfx"
	"github.com/chazu/prtkit/pkg/report"
	"github.com/chazu/prtkit/pkg/rules"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "prtreport:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prtreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *flags.Job == "" {
		return fmt.Errorf("missing -job")
	}

	cfg, err := config.Load(*flags.Config)
	if err != nil {
		return err
	}
	flags.Apply(cfg)

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log := logger.New(cfg.Logging.Level, fileCfg, stderr)
	defer func() { _ = log.Sync() }()

	j, err := job.Load(*flags.Job)
	if err != nil {
		return err
	}
	log.Info("job loaded",
		zap.String("path", *flags.Job),
		zap.Int("shapes", len(j.Shapes)),
		zap.Int("attributeSets", len(j.Attributes)),
	)

	gen := generator.New(
		j.Shapes,
		sdfx.New(cfg.Generation.MeshCells),
		rules.NewEvaluator(cfg.Generation.RuleTimeout),
		generator.WithLogger(log),
	)
	results, err := gen.Generate(ctx, j.RuleSource, j.Attributes)
	if err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	summary := report.Summarize(results)
	if err := report.Write(stdout, summary); err != nil {
		return err
	}
	if cfg.Report.Matrix {
		if err := report.WriteMatrices(stdout, results, cfg.Report.Strict); err != nil {
			return err
		}
	}

	if n := summary.Failures(); n > 0 {
		log.Warn("some initial shapes failed", zap.Int("failed", n), zap.Int("total", summary.Count))
	}
	return nil
}
