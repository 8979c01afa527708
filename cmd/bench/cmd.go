package bench

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npbench/npbench/internal/bench"
	"github.com/npbench/npbench/internal/gen"
)

func NewBenchCommand() *cobra.Command {
	var (
		dataset      string
		output       string
		exactTimeout time.Duration
		trials       int
		maxSteps     int
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Runs every solver over a benchmark dataset and writes result files",
		Long: `Runs the exact solver and every heuristic for each of the five problems
over a dataset produced by "npbench generate", timing each run and scoring
heuristics against the exact optimum. When no dataset file is given, a fresh
one is generated in memory from the seed.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if dataset == "" {
				return nil
			}
			if _, err := os.Stat(dataset); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("dataset file (%s) not found", dataset)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var suite gen.Suite
			if dataset != "" {
				var err error
				if suite, err = gen.LoadSuite(dataset); err != nil {
					return err
				}
			} else {
				suite = gen.NewSuite(seed)
			}

			cfg := bench.Config{
				ExactTimeout: exactTimeout,
				Trials:       trials,
				MaxSteps:     maxSteps,
				Seed:         seed,
				Logger:       logrus.StandardLogger(),
			}
			results := bench.RunAll(cmd.Context(), cfg, suite)
			if err := bench.WriteResults(output, results); err != nil {
				return err
			}
			logrus.WithField("dir", output).Info("benchmark results written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "dataset file from 'npbench generate' (generated in memory when empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "results", "results output directory")
	cmd.Flags().DurationVar(&exactTimeout, "timeout", time.Minute, "per-instance exact solver timeout")
	cmd.Flags().IntVar(&trials, "trials", 1000, "randomized MAX-3SAT trial budget")
	cmd.Flags().IntVar(&maxSteps, "steps", 10000, "local search step budget")
	cmd.Flags().Int64Var(&seed, "seed", 42, "heuristic RNG seed")
	return cmd
}
