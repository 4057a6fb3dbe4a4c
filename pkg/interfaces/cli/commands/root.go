// Package commands implements the bundletrack command tree. Commands are
// thin adapters: they wire loaders, stores, and services together and hand
// results to the output package.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Global flag values
var (
	flagConfigFile string
	flagDataDir    string
	flagBundleFile string
	flagBranchFile string
	flagLedgerFile string
	flagLogLevel   string
)

// cfg and logger are initialized by PersistentPreRunE so every subcommand
// can use them
var (
	cfg    *viper.Viper
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bundletrack",
	Short: "Bundle recommendation browser and branch sales ledger",
	Long: `bundletrack serves recommendation, search, and sales-tracking queries
over a CSV bundle-analysis dataset and an append-only sales ledger.

Dataset column names are resolved by alias matching, so renamed exports
load without configuration. See the schema_overrides config key to pin a
logical field to an exact column.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(flagConfigFile)
		if err != nil {
			return err
		}

		logger, err = newLogger(resolveLogLevel())
		return err
	},
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./bundletrack.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: ./data)")
	rootCmd.PersistentFlags().StringVar(&flagBundleFile, "bundle-file", "", "bundle dataset CSV (default: <data-dir>/bundle_analysis.csv)")
	rootCmd.PersistentFlags().StringVar(&flagBranchFile, "branch-file", "", "branch directory CSV (default: <data-dir>/branch_list.csv)")
	rootCmd.PersistentFlags().StringVar(&flagLedgerFile, "ledger-file", "", "sales ledger CSV (default: <data-dir>/bundle_sales_log.csv)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(rollupCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(branchesCmd)
}
