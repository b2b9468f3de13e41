package cli

import (
	"fmt"

	"github.com/epeers/deficits/internal/chart"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the chart to CHART_PATH and exit",
		Long: `Render the chart to the file named by CHART_PATH.

The format follows the extension: .png or .svg.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runPipeline(cmd, opts)
			if err != nil {
				return err
			}
			if err := chart.NewRenderer().RenderFile(opts.Config.ChartPath, result.Merged, result.Averages, result.Palette); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", opts.Config.ChartPath)
			return nil
		},
	}
}
