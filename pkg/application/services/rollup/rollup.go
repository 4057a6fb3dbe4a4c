// Package rollup builds the cross-branch aggregate views consumed by
// administrators.
package rollup

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// Service aggregates the sales ledger across branches
type Service struct {
	store     repositories.LedgerStore
	directory repositories.BranchDirectory
}

// NewService creates a rollup service over the ledger and directory
func NewService(store repositories.LedgerStore, directory repositories.BranchDirectory) *Service {
	return &Service{store: store, directory: directory}
}

// Rollup returns one row per directory branch, in directory order,
// including branches with no matching ledger events. The directory is
// authoritative: sales recorded under a branch missing from it do not
// appear here (they still count in Totals).
func (s *Service) Rollup(window entities.Window) ([]dto.RollupRow, error) {
	branches, err := s.directory.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	events, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	byBranch := make(map[string][]*entities.SaleEvent)
	for _, event := range events {
		if inWindow(event, window) {
			byBranch[event.Branch] = append(byBranch[event.Branch], event)
		}
	}

	rows := make([]dto.RollupRow, 0, len(branches))
	for _, branch := range branches {
		row := dto.RollupRow{
			Branch:  branch.Name,
			Status:  dto.Inactive,
			Revenue: decimal.Zero,
		}

		for _, event := range byBranch[branch.Name] {
			row.BundlesSold++
			row.Revenue = row.Revenue.Add(event.Revenue)
			if event.TimeValid && (row.LastActivity == nil || event.Timestamp.After(*row.LastActivity)) {
				ts := event.Timestamp
				row.LastActivity = &ts
			}
		}

		if row.BundlesSold > 0 {
			row.Status = dto.Active
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Totals aggregates the raw ledger over the window. It deliberately scans
// the ledger directly rather than summing the per-branch table, so events
// recorded under branches absent from the directory still count toward
// system-wide figures.
func (s *Service) Totals(window entities.Window) (dto.LedgerTotals, error) {
	totals := dto.LedgerTotals{Revenue: decimal.Zero}

	events, err := s.store.ReadAll()
	if err != nil {
		return totals, fmt.Errorf("failed to read ledger: %w", err)
	}

	var confidenceSum float64
	activeBranches := make(map[string]bool)
	for _, event := range events {
		if !inWindow(event, window) {
			continue
		}
		totals.BundlesSold++
		totals.Revenue = totals.Revenue.Add(event.Revenue)
		confidenceSum += event.Confidence
		activeBranches[event.Branch] = true
	}

	totals.ActiveBranches = len(activeBranches)
	if totals.BundlesSold > 0 {
		totals.AvgConfidence = confidenceSum / float64(totals.BundlesSold)
	}

	return totals, nil
}

// LastActivityAge renders a rollup row's last activity the way the admin
// table shows it: hours for same-day activity, days otherwise, "Never"
// when the branch has no dated events.
func LastActivityAge(row dto.RollupRow, now time.Time) string {
	if row.LastActivity == nil {
		return "Never"
	}

	age := now.Sub(*row.LastActivity)
	if days := int(age.Hours() / 24); days > 0 {
		return fmt.Sprintf("%d days ago", days)
	}
	return fmt.Sprintf("%d hours ago", int(age.Hours()))
}

func inWindow(event *entities.SaleEvent, window entities.Window) bool {
	if window.All {
		return true
	}
	return event.TimeValid && window.Contains(event.Timestamp)
}
