package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/teammap/internal/app"
)

func (c *CLI) newGeoJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geojson",
		Short: "Export the resolved dataset as a GeoJSON feature collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset, _ := cmd.Flags().GetString("dataset")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Export(cmd.Context(), app.ExportOptions{
				DatasetPath: dataset,
				OutputPath:  output,
			})
		},
	}

	cmd.Flags().StringP("dataset", "d", "", "Path to the resolved dataset (default from settings)")
	cmd.Flags().StringP("output", "o", "", "Path of the feature collection to write (default from settings)")

	return cmd
}
