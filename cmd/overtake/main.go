// Package main provides the overtake CLI: it trains the overtaking
// classifier on a CSV file and reports its accuracy on held-out rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/overtake/internal/config"
	"github.com/born-ml/overtake/internal/nn"
	"github.com/born-ml/overtake/internal/trainer"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("overtake %s\n", version)
		return
	}

	if err := run(os.Args[1:]); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("overtake", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	dataPath := fs.String("data", "", "Override CSV data path")
	epochs := fs.Int("epochs", 0, "Number of passes over the training set")
	trainN := fs.Int("train", 0, "Number of training samples")
	testN := fs.Int("test", 0, "Number of test samples")
	hidden := fs.Int("hidden", 0, "Hidden layer size")
	lr := fs.Float64("lr", 0, "Learning rate")
	seed := fs.Int64("seed", 0, "PRNG seed")
	unseeded := fs.Bool("unseeded", false, "Seed from the clock instead of -seed")
	logEvery := fs.Int("log-every", 0, "Log every N epochs")
	noRows := fs.Bool("no-rows", false, "Skip per-sample test rows")
	quiet := fs.Bool("quiet", false, "Only log warnings and errors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			return err
		}
	}

	overrides := config.Overrides{
		DataPath:     *dataPath,
		Epochs:       *epochs,
		HiddenNodes:  *hidden,
		LearningRate: *lr,
		TrainSamples: *trainN,
		TestSamples:  *testN,
		LogEvery:     *logEvery,
	}
	// Only flags the user actually passed override pointer fields.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			overrides.Seed = seed
		case "unseeded":
			repeatable := !*unseeded
			overrides.Repeatable = &repeatable
		case "no-rows":
			rows := !*noRows
			overrides.ReportRows = &rows
		}
	})
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("starting",
		"version", version,
		"cpu", cpuid.CPU.BrandName,
		"cores", cpuid.CPU.LogicalCores,
		"data", cfg.DataPath,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := trainer.Run(ctx, trainer.RunConfig{
		DataPath: cfg.DataPath,
		Network: nn.Config{
			InputNodes:   cfg.InputNodes,
			HiddenNodes:  cfg.HiddenNodes,
			OutputNodes:  cfg.OutputNodes,
			LearningRate: cfg.LearningRate,
		},
		Epochs:       cfg.Epochs,
		TrainSamples: cfg.TrainSamples,
		TestSamples:  cfg.TestSamples,
		Seed:         cfg.Seed,
		Repeatable:   cfg.Repeatable,
		LogEvery:     cfg.LogEvery,
		ReportRows:   cfg.ReportRows,
		Logger:       logger,
	}, os.Stdout)
	return err
}
