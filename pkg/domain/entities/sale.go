package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleTimeFormat is the timestamp layout used in the ledger store.
// Zero-padded so stored timestamps sort lexicographically.
const SaleTimeFormat = "2006-01-02 15:04:05"

// SaleStatus represents the lifecycle state of a sale event
type SaleStatus int

const (
	Sold SaleStatus = iota
)

// String method for SaleStatus enum
func (s SaleStatus) String() string {
	switch s {
	case Sold:
		return "Sold"
	default:
		return "Unknown"
	}
}

// SaleEvent represents one "bundle marked sold" record in the ledger.
// Events are append-only: never updated or deleted once written.
type SaleEvent struct {
	Timestamp time.Time
	// RawTimestamp preserves the stored text when parsing fails so the
	// event can still be listed; TimeValid guards windowed aggregates.
	RawTimestamp string
	TimeValid    bool

	Branch     string
	BundleID   string
	PartA      PartNumber
	PartB      PartNumber
	Customers  Quantity
	Confidence float64
	Revenue    decimal.Decimal
	Status     SaleStatus
}

// NewSaleEvent creates a validated SaleEvent from a catalog bundle.
// Branch membership in the directory is the caller's responsibility.
func NewSaleEvent(branch string, bundle *Bundle, at time.Time) (*SaleEvent, error) {
	if branch == "" {
		return nil, fmt.Errorf("branch name cannot be empty")
	}
	if bundle == nil {
		return nil, fmt.Errorf("bundle cannot be nil")
	}

	return &SaleEvent{
		Timestamp:    at,
		RawTimestamp: at.Format(SaleTimeFormat),
		TimeValid:    true,
		Branch:       branch,
		BundleID:     bundle.ID(),
		PartA:        bundle.PartA,
		PartB:        bundle.PartB,
		Customers:    bundle.Customers,
		Confidence:   bundle.Confidence,
		Revenue:      bundle.Revenue,
		Status:       Sold,
	}, nil
}
