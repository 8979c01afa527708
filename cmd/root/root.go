package root

import (
	"github.com/spf13/cobra"

	"github.com/npbench/npbench/cmd/bench"
	"github.com/npbench/npbench/cmd/generate"
	"github.com/npbench/npbench/cmd/phase"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "npbench",
		Short: "npbench compares exact and approximate algorithms on NP-hard problems",
		Long: `A laboratory for comparing exact and approximate algorithms on five
classic NP-hard problems: 3-SAT/MAX-3SAT, minimum vertex cover, maximum
clique, graph coloring, and minimum set cover.`,
	}

	// add sub-commands
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(bench.NewBenchCommand())
	rootCmd.AddCommand(phase.NewPhaseCommand())

	return rootCmd
}
