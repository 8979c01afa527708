package generate

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npbench/npbench/internal/gen"
)

func NewGenerateCommand() *cobra.Command {
	var (
		output string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates the synthetic benchmark datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := gen.NewSuite(seed)
			if err := gen.WriteSuite(output, suite); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"path":      output,
				"sat":       len(suite.SAT),
				"graphs":    len(suite.Graphs),
				"set_cover": len(suite.SetCover),
			}).Info("dataset written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "datasets.json", "dataset output path")
	cmd.Flags().Int64Var(&seed, "seed", 1000, "generator seed")
	return cmd
}
