// Package output renders query results for the terminal and for CSV
// export. All rendering writes to an io.Writer so commands stay testable.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/application/services/rollup"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
)

// PrintRanked renders a top-N query result
func PrintRanked(w io.Writer, result dto.RankedBundles) {
	if result.Degraded {
		fmt.Fprintf(w, "Note: ranking column not found in dataset; showing rows unranked.\n\n")
	}
	for i, bundle := range result.Bundles {
		fmt.Fprintf(w, "%2d. %s\n", i+1, bundleLine(bundle))
	}
	if len(result.Bundles) == 0 {
		fmt.Fprintln(w, "No bundles available.")
	}
}

// PrintSearch renders a part search result, reporting the full match count
// when the listing was truncated
func PrintSearch(w io.Writer, query string, result dto.SearchResult) {
	if result.TotalMatches == 0 {
		fmt.Fprintf(w, "No compatible parts found for %q.\n", query)
		return
	}

	if result.Degraded {
		fmt.Fprintf(w, "Note: ranking columns missing from dataset; matches may be unfiltered or unranked.\n\n")
	}
	fmt.Fprintf(w, "Found %d compatible parts for %q\n\n", result.TotalMatches, query)
	for i, bundle := range result.Bundles {
		fmt.Fprintf(w, "%2d. %s\n", i+1, bundleLine(bundle))
	}
	if result.TotalMatches > len(result.Bundles) {
		fmt.Fprintf(w, "\nShowing top %d of %d results.\n", len(result.Bundles), result.TotalMatches)
	}
}

// PrintStats renders dataset overview metrics, leaving out aggregates
// whose source column is absent
func PrintStats(w io.Writer, stats dto.DatasetStats) {
	fmt.Fprintf(w, "Bundles:        %d\n", stats.BundleCount)
	if stats.HasCustomers {
		fmt.Fprintf(w, "Customers:      %d\n", stats.TotalCustomers)
	}
	if stats.HasConfidence {
		fmt.Fprintf(w, "Avg confidence: %.1f%%\n", stats.AvgConfidence)
	}
	if stats.HasRevenue {
		fmt.Fprintf(w, "Revenue:        $%s\n", stats.TotalRevenue.StringFixed(0))
	}
}

// PrintDistribution renders the confidence histogram
func PrintDistribution(w io.Writer, bins []dto.ConfidenceBin) {
	if bins == nil {
		fmt.Fprintln(w, "Confidence column not found in dataset.")
		return
	}
	for _, bin := range bins {
		fmt.Fprintf(w, "%-8s %d\n", bin.Label, bin.Count)
	}
}

// PrintSummary renders a branch summary
func PrintSummary(w io.Writer, summary dto.BranchSummary) {
	fmt.Fprintf(w, "Branch:  %s\n", summary.Branch)
	fmt.Fprintf(w, "Sales:   %d\n", summary.Count)
	fmt.Fprintf(w, "Revenue: $%s\n", summary.TotalRevenue.StringFixed(0))
}

// PrintEvents renders sale events newest first
func PrintEvents(w io.Writer, events []*entities.SaleEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No sales recorded.")
		return
	}
	for _, event := range events {
		fmt.Fprintf(w, "%-19s  %-16s  %s + %s  $%s\n",
			event.RawTimestamp,
			event.Branch,
			event.PartA,
			event.PartB,
			event.Revenue.StringFixed(0))
	}
}

// PrintRollup renders the per-branch rollup table
func PrintRollup(w io.Writer, rows []dto.RollupRow, now time.Time) {
	fmt.Fprintf(w, "%-18s %-10s %-14s %-14s %s\n",
		"Branch", "Status", "Bundles Sold", "Revenue", "Last Activity")
	for _, row := range rows {
		fmt.Fprintf(w, "%-18s %-10s %-14d $%-13s %s\n",
			row.Branch,
			row.Status,
			row.BundlesSold,
			row.Revenue.StringFixed(0),
			rollup.LastActivityAge(row, now))
	}
}

// PrintTotals renders ledger-wide totals
func PrintTotals(w io.Writer, totals dto.LedgerTotals) {
	fmt.Fprintf(w, "Bundles sold:    %d\n", totals.BundlesSold)
	fmt.Fprintf(w, "Revenue:         $%s\n", totals.Revenue.StringFixed(0))
	fmt.Fprintf(w, "Active branches: %d\n", totals.ActiveBranches)
	fmt.Fprintf(w, "Avg confidence:  %.1f%%\n", totals.AvgConfidence)
}

func bundleLine(bundle *entities.Bundle) string {
	line := fmt.Sprintf("%s + %s", bundle.PartA, bundle.PartB)
	if bundle.DescA != "" || bundle.DescB != "" {
		line = fmt.Sprintf("%s (%s / %s)", line, orNA(bundle.DescA), orNA(bundle.DescB))
	}
	if bundle.HasCustomers {
		line += fmt.Sprintf("  %d customers", bundle.Customers)
	}
	if bundle.HasConfidence {
		line += fmt.Sprintf("  %.1f%% confidence", bundle.Confidence)
	}
	if bundle.HasRevenue {
		line += fmt.Sprintf("  $%s revenue ($%s/unit)",
			bundle.Revenue.StringFixed(0),
			bundle.PerUnitRevenue().StringFixed(0))
	}
	return line
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
