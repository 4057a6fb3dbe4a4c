package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/application/services/rollup"
)

// ExportRollupCSV writes the per-branch rollup table to a CSV file, the
// same layout the admin dashboard's export produced
func ExportRollupCSV(path string, rows []dto.RollupRow, now time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"branch", "status", "bundles_sold", "revenue", "last_activity"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Branch,
			row.Status.String(),
			strconv.Itoa(row.BundlesSold),
			row.Revenue.StringFixed(0),
			rollup.LastActivityAge(row, now),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write export row for %s: %w", row.Branch, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
