package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/bundletrack/pkg/interfaces/cli/output"
)

var (
	flagSellBranch    string
	flagSellIndex     int
	flagSummaryBranch string
	flagSummaryWindow string
	flagRecentBranch  string
	flagRecentAll     bool
	flagRecentWindow  string
	flagRecentLimit   int
)

var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Record a bundle as sold for a branch",
	Long: `Sell appends one sale event to the ledger for the bundle at the given
dataset index (shown by top and search output). The branch must exist in
the branch directory. Selling the same bundle repeatedly is allowed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(flagSellBranch)
		if err != nil {
			return err
		}

		c, err := loadCatalog()
		if err != nil {
			return err
		}

		bundle, err := c.BundleByIndex(flagSellIndex)
		if err != nil {
			return err
		}

		event, err := newLedgerService().RecordSale(sess, bundle)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s: %s + %s for %s\n",
			event.BundleID, event.PartA, event.PartB, event.Branch)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a branch's sales summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSummaryBranch == "" {
			return fmt.Errorf("--branch is required")
		}

		window, err := parseWindow(flagSummaryWindow, time.Now())
		if err != nil {
			return err
		}

		summary, err := newLedgerService().Summary(flagSummaryBranch, window)
		if err != nil {
			return err
		}

		output.PrintSummary(os.Stdout, summary)
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent sales for a branch, or across all branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newLedgerService()

		if flagRecentAll {
			window, err := parseWindow(flagRecentWindow, time.Now())
			if err != nil {
				return err
			}
			events, err := svc.RecentAll(window, flagRecentLimit)
			if err != nil {
				return err
			}
			output.PrintEvents(os.Stdout, events)
			return nil
		}

		if flagRecentBranch == "" {
			return fmt.Errorf("--branch is required unless --all is set")
		}

		events, err := svc.Recent(flagRecentBranch, flagRecentLimit)
		if err != nil {
			return err
		}
		output.PrintEvents(os.Stdout, events)
		return nil
	},
}

func init() {
	sellCmd.Flags().StringVar(&flagSellBranch, "branch", "", "selling branch name (required)")
	sellCmd.Flags().IntVar(&flagSellIndex, "index", -1, "dataset index of the bundle (required)")
	_ = sellCmd.MarkFlagRequired("branch")
	_ = sellCmd.MarkFlagRequired("index")

	summaryCmd.Flags().StringVar(&flagSummaryBranch, "branch", "", "branch name (required)")
	summaryCmd.Flags().StringVar(&flagSummaryWindow, "window", "all", "time window: all, 7d, 30d, quarter")

	recentCmd.Flags().StringVar(&flagRecentBranch, "branch", "", "branch name")
	recentCmd.Flags().BoolVar(&flagRecentAll, "all", false, "list activity across all branches")
	recentCmd.Flags().StringVar(&flagRecentWindow, "window", "all", "time window for --all: all, 7d, 30d, quarter")
	recentCmd.Flags().IntVar(&flagRecentLimit, "limit", 10, "maximum rows to show")
}
