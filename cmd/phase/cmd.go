package phase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npbench/npbench/internal/phase"
)

func NewPhaseCommand() *cobra.Command {
	var (
		numVars []int
		samples int
		output  string
		backend string
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Runs the 3-SAT phase transition experiment",
		Long: `Sweeps the clause-to-variable ratio of random 3-CNF formulas and records,
per ratio, the fraction of satisfiable formulas and the mean number of
conflicts reported by a CDCL solver. Writes one JSON result file per n.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch backend {
			case "gophersat", "gini":
				return nil
			}
			return fmt.Errorf("unknown backend %q (want gophersat or gini)", backend)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var b phase.Backend = phase.GophersatBackend{}
			if backend == "gini" {
				b = phase.GiniBackend{}
			}
			if err := os.MkdirAll(output, 0o755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}

			for _, n := range numVars {
				results, err := phase.Run(cmd.Context(), phase.Config{
					NumVars:         n,
					SamplesPerAlpha: samples,
					Seed:            seed,
					Backend:         b,
					Logger:          logrus.StandardLogger(),
				})
				if err != nil {
					return err
				}
				path := filepath.Join(output, fmt.Sprintf("phase_results_n%d.json", n))
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling results: %w", err)
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				logrus.WithFields(logrus.Fields{"n": n, "path": path}).Info("phase results written")
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&numVars, "n", []int{25, 50, 75}, "variable counts to sweep")
	cmd.Flags().IntVar(&samples, "samples", 150, "samples per ratio")
	cmd.Flags().StringVarP(&output, "output", "o", "data", "results output directory")
	cmd.Flags().StringVar(&backend, "backend", "gophersat", "CDCL backend (gophersat or gini)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "formula generator seed")
	return cmd
}
