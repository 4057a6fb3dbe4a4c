// Package schema resolves logical dataset fields to the physical columns
// actually present in a snapshot. Bundle analysis exports change column
// names between runs (Part_1, partnumber1, ...), so resolution works by
// ordered case-insensitive alias substring matching rather than fixed
// headers.
package schema

import (
	"fmt"
	"strings"
)

// Field is a logical field name in the bundle dataset
type Field string

const (
	FieldPartA         Field = "part_a"
	FieldPartB         Field = "part_b"
	FieldCustomers     Field = "customers"
	FieldConfidence    Field = "confidence"
	FieldRevenue       Field = "revenue"
	FieldDescA         Field = "desc_a"
	FieldDescB         Field = "desc_b"
	FieldManufacturerA Field = "manufacturer_a"
	FieldManufacturerB Field = "manufacturer_b"
)

// FieldMap holds the resolved logical-field to physical-column mapping for
// one dataset snapshot. A missing entry means the field is absent and every
// dependent operation degrades instead of failing.
type FieldMap map[Field]string

// Has reports whether the logical field resolved to a column
func (m FieldMap) Has(field Field) bool {
	_, ok := m[field]
	return ok
}

// Column returns the physical column for a logical field
func (m FieldMap) Column(field Field) (string, bool) {
	col, ok := m[field]
	return col, ok
}

// DefaultAliases returns the candidate substrings per logical field,
// ordered by specificity. The first alias that matches any column wins,
// scanning columns in their declared order.
func DefaultAliases() map[Field][]string {
	return map[Field][]string{
		FieldPartA:         {"part_1", "part1", "partnumber1"},
		FieldPartB:         {"part_2", "part2", "partnumber2"},
		FieldCustomers:     {"customer", "customers", "customer_base"},
		FieldConfidence:    {"confidence", "enhanced_confidence", "conf"},
		FieldRevenue:       {"revenue", "annual_revenue", "revenue_potential"},
		FieldDescA:         {"description_1", "desc_1", "desc1", "part1_desc", "part_1_description"},
		FieldDescB:         {"description_2", "desc_2", "desc2", "part2_desc", "part_2_description"},
		FieldManufacturerA: {"manufacturer_1", "mfg_1", "mfg1"},
		FieldManufacturerB: {"manufacturer_2", "mfg_2", "mfg2"},
	}
}

// Resolve maps each logical field to the first column whose lowercased name
// contains one of the field's aliases, trying aliases in priority order.
// Deterministic for a given column order and alias list. Fields that match
// nothing are simply absent from the result; Resolve never fails.
func Resolve(columns []string, aliases map[Field][]string) FieldMap {
	resolved := make(FieldMap, len(aliases))

	for field, candidates := range aliases {
		if col, ok := matchColumn(columns, candidates); ok {
			resolved[field] = col
		}
	}

	return resolved
}

// ResolveWithOverrides resolves like Resolve, then pins overridden fields
// to their configured column. Substring matching can bind the wrong column
// when names share a prefix (confidence vs confidence_delta); an override
// makes the binding explicit. An override naming a column that is not in
// the header is an error.
func ResolveWithOverrides(columns []string, aliases map[Field][]string, overrides map[Field]string) (FieldMap, error) {
	resolved := Resolve(columns, aliases)

	for field, col := range overrides {
		if !containsColumn(columns, col) {
			return nil, fmt.Errorf("schema override for %s: column %q not in dataset header", field, col)
		}
		resolved[field] = col
	}

	return resolved, nil
}

func matchColumn(columns []string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		want := strings.ToLower(candidate)
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), want) {
				return col, true
			}
		}
	}
	return "", false
}

func containsColumn(columns []string, name string) bool {
	for _, col := range columns {
		if col == name {
			return true
		}
	}
	return false
}
