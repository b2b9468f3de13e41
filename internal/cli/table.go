package cli

import (
	"github.com/epeers/deficits/internal/services"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command.
func NewTableCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "table",
		Short:         "Print the merged fiscal-year table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runPipeline(cmd, opts)
			if err != nil {
				return err
			}
			return services.FormatTable(cmd.OutOrStdout(), result.Merged)
		},
	}
}
