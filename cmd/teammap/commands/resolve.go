package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/teammap/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the location of every team member and write the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, _ := cmd.Flags().GetString("roster")
			dataset, _ := cmd.Flags().GetString("dataset")
			overrides, _ := cmd.Flags().GetString("overrides")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				RosterPath:    roster,
				DatasetPath:   dataset,
				OverridesPath: overrides,
				Concurrency:   concurrency,
			})
		},
	}

	cmd.Flags().StringP("roster", "r", "", "Path to the team roster (default from settings)")
	cmd.Flags().StringP("dataset", "d", "", "Path to the resolved dataset (default from settings)")
	cmd.Flags().StringP("overrides", "o", "", "Additional alias and location override file")
	cmd.Flags().IntP("concurrency", "c", 0, "Maximum number of members resolved in parallel")

	return cmd
}
