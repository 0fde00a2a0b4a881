package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluxfield/tablestack/internal/cmd/output"
	"github.com/fluxfield/tablestack/pkg/logging"
	"github.com/fluxfield/tablestack/pkg/stacker"
	"github.com/fluxfield/tablestack/pkg/tables"
)

var (
	stackWorkers       int
	stackForceParallel bool
	stackTableTypes    string
)

// stackCmd represents the stack command.
var stackCmd = &cobra.Command{
	Use:   "stack <directory>",
	Short: "Stack per-site data files into one merged file per table",
	Long: `Stack consolidates the previously unpacked data files in a directory
into one merged file per logical table, written under a stackedFiles
subdirectory.

Site-date tables stack every file; site-all tables stack only the most
recent publication per site. Lab tables and reference sidecars are
copied or consolidated instead of stacked.

Examples:
  tablestack stack ./downloads/temp_monthly
  tablestack stack ./downloads/temp_monthly --workers 4
  tablestack stack ./downloads/temp_monthly --workers 2 --force-parallel
  tablestack stack ./data --table-types ./custom_table_types.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runStack,
}

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.Flags().IntVarP(&stackWorkers, "workers", "w", 1, "worker count (requesting more than available cores is an error)")
	stackCmd.Flags().BoolVar(&stackForceParallel, "force-parallel", false, "use the requested worker count as-is, skipping size-based scaling")
	stackCmd.Flags().StringVar(&stackTableTypes, "table-types", "", "path to a table-type dictionary YAML replacing the embedded default")

	if err := viper.BindPFlag("workers", stackCmd.Flags().Lookup("workers")); err != nil {
		panic(err)
	}
}

func runStack(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	opts := []stacker.Option{
		stacker.WithWorkers(stackWorkers),
		stacker.WithForceParallel(stackForceParallel),
	}
	if stackTableTypes != "" {
		data, err := os.ReadFile(stackTableTypes)
		if err != nil {
			return err
		}
		dict, err := tables.ParseTableTypeDictionary(data)
		if err != nil {
			return err
		}
		opts = append(opts, stacker.WithTableTypes(dict))
	}

	s, err := stacker.New(args[0], opts...)
	if err != nil {
		return err
	}

	summary, err := s.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Stacking failed")
		return err
	}

	return output.RenderSummary(cmd.OutOrStdout(), summary)
}
