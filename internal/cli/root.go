package cli

import (
	"github.com/epeers/deficits/config"
	"github.com/epeers/deficits/internal/app"
	"github.com/spf13/cobra"
)

// RootOptions holds what every command needs to run the pipeline.
type RootOptions struct {
	Config *config.Config

	// NewLoader builds the raw series loader. Tests swap in fixtures.
	NewLoader func(cfg *config.Config) app.SeriesLoader
}

// DefaultRootOptions wires the cache-backed loader
func DefaultRootOptions(cfg *config.Config) *RootOptions {
	return &RootOptions{
		Config: cfg,
		NewLoader: func(cfg *config.Config) app.SeriesLoader {
			return app.NewLoader(cfg)
		},
	}
}

// NewRootCommand creates the deficits command. Without a subcommand it runs
// the pipeline, prints the merged table and serves the chart viewer until
// interrupted.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deficits",
		Short: "US budget deficits by administration",
		Long: `Charts US federal deficits as a percent of GDP for fiscal years 1970-2010,
attributing each fiscal year to the president responsible for its budget.

Raw data is downloaded once into CACHE_DIR and reused afterwards.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts)
		},
	}

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

func runPipeline(cmd *cobra.Command, opts *RootOptions) (*app.Result, error) {
	return app.Run(cmd.Context(), opts.NewLoader(opts.Config))
}
