package entities

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/shopspring/decimal"
)

// PartNumber represents a unique part identifier
type PartNumber string

// Quantity represents an integer quantity value
type Quantity int64

// Bundle represents one compatible-part pair from the analysis dataset.
// Optional metrics carry a Has* flag because the source dataset may lack
// the column entirely or leave individual cells blank.
type Bundle struct {
	Index int // position in the source dataset, assigned at load

	PartA PartNumber
	PartB PartNumber

	DescA string
	DescB string

	ManufacturerA string
	ManufacturerB string

	Customers    Quantity
	HasCustomers bool

	Confidence    float64
	HasConfidence bool

	Revenue    decimal.Decimal
	HasRevenue bool
}

// NewBundle creates a validated Bundle
func NewBundle(index int, partA, partB PartNumber) (*Bundle, error) {
	if index < 0 {
		return nil, fmt.Errorf("index cannot be negative, got %d", index)
	}
	if string(partA) == "" {
		return nil, fmt.Errorf("part A cannot be empty")
	}
	if string(partB) == "" {
		return nil, fmt.Errorf("part B cannot be empty")
	}

	return &Bundle{
		Index: index,
		PartA: partA,
		PartB: partB,
	}, nil
}

// ID returns the ledger identifier for this bundle, derived from its
// position in the loaded dataset. Stable across queries within one load,
// but not across dataset reloads; use PairKey for reload-stable identity.
func (b *Bundle) ID() string {
	return fmt.Sprintf("BDL-%05d", b.Index)
}

// PairKey returns a content-based key for the part pair, stable across
// dataset reloads and independent of row order.
func (b *Bundle) PairKey() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s", strings.ToUpper(string(b.PartA)), strings.ToUpper(string(b.PartB)))
	return fmt.Sprintf("%016x", h.Sum64())
}

// HasCustomerDemand reports whether the bundle has a known, positive
// customer count. Ranked search views exclude bundles without demand.
func (b *Bundle) HasCustomerDemand() bool {
	return b.HasCustomers && b.Customers > 0
}

// PerUnitRevenue derives a per-customer revenue figure. The source data is
// ambiguous about whether revenue is a per-sale value or a total across all
// customers, so the raw Revenue field stays exposed alongside this derived
// reading and callers choose which interpretation fits their view.
func (b *Bundle) PerUnitRevenue() decimal.Decimal {
	if b.HasRevenue && b.HasCustomers && b.Customers > 0 {
		return b.Revenue.Div(decimal.NewFromInt(int64(b.Customers))).Floor()
	}
	return b.Revenue
}

// MatchesPart reports whether query is a case-insensitive substring of
// either part identifier. Partial queries match: "4783" matches "47833556".
func (b *Bundle) MatchesPart(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(string(b.PartA)), q) ||
		strings.Contains(strings.ToLower(string(b.PartB)), q)
}
