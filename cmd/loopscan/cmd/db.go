package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claimsight/loopscan/internal/database"
	"github.com/claimsight/loopscan/internal/report"
	"github.com/claimsight/loopscan/internal/source"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Scan edge records from the configured MySQL table",
	Long: `db runs the same scan as the file mode, but reads records from the
MySQL table named in the configuration file instead of a file.

With --sorted, the query adds ORDER BY on the key columns, so the
streaming aggregator's sortedness precondition holds by construction.

Example:
  loopscan db --config loopscan.yaml --sorted --summary`,
	Args: cobra.NoArgs,
	RunE: runDB,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

func runDB(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if err := cfg.ValidateSource(); err != nil {
		return err
	}

	ctx := cmd.Context()

	dbManager := database.NewManager(cfg)
	if err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Ping(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	log.Debugw("scanning records from database",
		"host", cfg.Source.Host,
		"table", cfg.Query.Table,
		"sorted", sortedMode,
	)

	src := &source.QuerySource{
		DB:     dbManager.Source,
		Query:  cfg.Query,
		Sorted: sortedMode,
	}
	result, err := runAggregation(ctx, cfg, log, src)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Format())

	if showSummary {
		report.Summary{
			Mode:     result.Stats.Mode,
			Records:  result.Stats.Records,
			Groups:   result.Stats.Groups,
			Result:   result.Format(),
			Duration: result.Stats.Duration,
		}.Print(cmd.ErrOrStderr())
	}
	return nil
}
