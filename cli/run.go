package cli

// This file contains the run command: workload generation, strategy
// selection and the timed benchmark loop.

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/sumbench/sumbench/dataset"
	"github.com/sumbench/sumbench/model"
	"github.com/sumbench/sumbench/reduce"
	"github.com/sumbench/sumbench/report"
)

const (
	defaultSize    = 100_000_000
	defaultWorkers = 4
)

func (a *App) run(ctx *cli.Context) error {
	cfg := dataset.Config{
		Size: ctx.Int("size"),
		Min:  ctx.Int64("min"),
		Max:  ctx.Int64("max"),
	}
	workers := ctx.Int("workers")
	repeat := ctx.Int("repeat")

	kinds, err := selectKinds(ctx.Args().First())
	if err != nil {
		return err
	}

	if err := validateRun(cfg, workers, repeat); err != nil {
		return err
	}

	// Partitions must be non-empty, so a tiny dataset degenerates to a
	// single worker instead of failing.
	if cfg.Size < workers {
		a.logger.Warn().
			Int("size", cfg.Size).
			Int("workers", workers).
			Msg("Dataset smaller than worker count, falling back to one worker")
		workers = 1
	}

	a.logger.Info().
		Int("size", cfg.Size).
		Int64("min", cfg.Min).
		Int64("max", cfg.Max).
		Msg("Generating dataset")

	data, err := dataset.Generate(cfg)
	if err != nil {
		return err
	}
	reference := dataset.Sum(data)

	harness := reduce.NewHarness(a.logger)
	for i := 0; i < repeat; i++ {
		rep := model.Report{
			Size:      len(data),
			Workers:   workers,
			Reference: reference,
		}
		for _, kind := range kinds {
			sample, err := harness.Run(kind, data, workers)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}
			rep.Samples = append(rep.Samples, sample)
		}
		report.Render(os.Stdout, rep)
	}
	return nil
}

// selectKinds resolves the strategy argument. An empty argument and
// "all" both select the whole matrix.
func selectKinds(arg string) ([]reduce.Kind, error) {
	if arg == "" || arg == "all" {
		return reduce.Kinds(), nil
	}
	kind, err := reduce.ParseKind(arg)
	if err != nil {
		return nil, err
	}
	return []reduce.Kind{kind}, nil
}

// validateRun aggregates every invalid flag into one error, so the
// user sees all problems at once and nothing runs partially.
func validateRun(cfg dataset.Config, workers, repeat int) error {
	var errs *multierror.Error
	if err := cfg.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if workers <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: worker count %d, want > 0", reduce.ErrInvalidArgument, workers))
	}
	if repeat <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: repeat count %d, want > 0", reduce.ErrInvalidArgument, repeat))
	}
	return errs.ErrorOrNil()
}
