package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/application/services/catalog"
	"github.com/vsinha/bundletrack/pkg/interfaces/cli/output"
)

var (
	flagTopMetric   string
	flagTopLimit    int
	flagSearchRank  string
	flagSearchLimit int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top bundles by confidence or customer count",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		metric, err := parseMetric(flagTopMetric)
		if err != nil {
			return err
		}

		output.PrintRanked(os.Stdout, c.TopByMetric(metric, flagTopLimit))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <part-number>",
	Short: "Find compatible parts by partial part number",
	Long: `Search finds bundles where either part identifier contains the query
as a case-insensitive substring; searching "4783" matches "47833556".
Results exclude bundles without a positive customer count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		query := args[0]
		var result dto.SearchResult
		switch flagSearchRank {
		case "customers":
			result = c.SearchRankedByCustomers(query, flagSearchLimit)
		case "confidence":
			result = c.SearchRankedByConfidence(query, flagSearchLimit)
		default:
			return fmt.Errorf("invalid rank %q (expected: customers or confidence)", flagSearchRank)
		}

		output.PrintSearch(os.Stdout, query, result)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset overview metrics and confidence distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		output.PrintStats(os.Stdout, c.Stats())
		fmt.Println()
		output.PrintDistribution(os.Stdout, c.ConfidenceDistribution())
		return nil
	},
}

func parseMetric(value string) (catalog.Metric, error) {
	switch value {
	case "confidence":
		return catalog.MetricConfidence, nil
	case "customers":
		return catalog.MetricCustomers, nil
	default:
		return catalog.MetricConfidence, fmt.Errorf("invalid metric %q (expected: confidence or customers)", value)
	}
}

func init() {
	topCmd.Flags().StringVar(&flagTopMetric, "metric", "confidence", "ranking metric: confidence or customers")
	topCmd.Flags().IntVar(&flagTopLimit, "limit", 20, "maximum rows to show")

	searchCmd.Flags().StringVar(&flagSearchRank, "rank", "customers", "secondary ranking: customers or confidence")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 20, "maximum rows to show")
}
