package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/bundletrack/pkg/interfaces/cli/output"
)

var (
	flagRollupWindow string
	flagTotalsWindow string
	flagExportWindow string
	flagExportOut    string
)

var rollupCmd = &cobra.Command{
	Use:   "rollup",
	Short: "Show per-branch performance across the directory",
	Long: `Rollup prints one row per directory branch, including branches with no
recorded sales. A branch is Active when it has at least one sale inside
the window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		window, err := parseWindow(flagRollupWindow, now)
		if err != nil {
			return err
		}

		svc, err := newRollupService()
		if err != nil {
			return err
		}

		rows, err := svc.Rollup(window)
		if err != nil {
			return err
		}

		output.PrintRollup(os.Stdout, rows, now)
		return nil
	},
}

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show ledger-wide totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := parseWindow(flagTotalsWindow, time.Now())
		if err != nil {
			return err
		}

		svc, err := newRollupService()
		if err != nil {
			return err
		}

		totals, err := svc.Totals(window)
		if err != nil {
			return err
		}

		output.PrintTotals(os.Stdout, totals)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the branch performance table to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		window, err := parseWindow(flagExportWindow, now)
		if err != nil {
			return err
		}

		svc, err := newRollupService()
		if err != nil {
			return err
		}

		rows, err := svc.Rollup(window)
		if err != nil {
			return err
		}

		out := flagExportOut
		if out == "" {
			out = fmt.Sprintf("branch_performance_%s.csv", now.Format("20060102"))
		}

		if err := output.ExportRollupCSV(out, rows, now); err != nil {
			return err
		}

		fmt.Printf("Exported %d branches to %s\n", len(rows), out)
		return nil
	},
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List the branch directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		directory, err := loadDirectory()
		if err != nil {
			return err
		}

		branches, err := directory.List()
		if err != nil {
			return err
		}

		for _, branch := range branches {
			fmt.Println(branch.Name)
		}
		return nil
	},
}

func init() {
	rollupCmd.Flags().StringVar(&flagRollupWindow, "window", "7d", "time window: all, 7d, 30d, quarter")
	totalsCmd.Flags().StringVar(&flagTotalsWindow, "window", "7d", "time window: all, 7d, 30d, quarter")
	exportCmd.Flags().StringVar(&flagExportWindow, "window", "7d", "time window: all, 7d, 30d, quarter")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output file (default: branch_performance_<date>.csv)")
}
