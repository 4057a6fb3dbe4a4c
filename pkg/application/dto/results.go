package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
)

// RankedBundles is the result of a top-N catalog query
type RankedBundles struct {
	Bundles []*entities.Bundle
	// Degraded is set when the requested metric column was not resolved in
	// the dataset and the rows came back unranked in original order.
	// Consumers should present the data as unranked.
	Degraded bool
}

// SearchResult is the result of a part substring search. TotalMatches
// reports the full match count even when Bundles was truncated to the
// query limit, so callers can show "N total, showing top limit".
type SearchResult struct {
	Bundles      []*entities.Bundle
	TotalMatches int
	// Degraded is set when the customer or rank column was not resolved in
	// the dataset: matches then come back unfiltered, unranked, or both.
	Degraded bool
}

// DatasetStats summarizes the loaded bundle dataset. Each aggregate has a
// Has* guard because its source column may be absent from the snapshot.
type DatasetStats struct {
	BundleCount int

	TotalCustomers entities.Quantity
	HasCustomers   bool

	AvgConfidence float64
	HasConfidence bool

	TotalRevenue decimal.Decimal
	HasRevenue   bool
}

// ConfidenceBin is one bucket of the confidence distribution
type ConfidenceBin struct {
	Label string
	Low   float64
	High  float64
	Count int
}

// BranchSummary aggregates a branch's ledger activity over a window
type BranchSummary struct {
	Branch       string
	Count        int
	TotalRevenue decimal.Decimal
}

// BranchStatus represents a branch's activity state within a window
type BranchStatus int

const (
	Inactive BranchStatus = iota
	Active
)

// String method for BranchStatus enum
func (s BranchStatus) String() string {
	switch s {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// RollupRow is one branch's entry in the admin rollup table. LastActivity
// is nil for branches with no dated ledger events in the window.
type RollupRow struct {
	Branch       string
	Status       BranchStatus
	BundlesSold  int
	Revenue      decimal.Decimal
	LastActivity *time.Time
}

// LedgerTotals aggregates the whole ledger over a window
type LedgerTotals struct {
	BundlesSold    int
	Revenue        decimal.Decimal
	ActiveBranches int
	AvgConfidence  float64
}
