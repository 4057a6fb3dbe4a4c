package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/schema"
)

// mustCreateBundle is a helper for tests - panics on validation error
func mustCreateBundle(index int, partA, partB string) *entities.Bundle {
	bundle, err := entities.NewBundle(index, entities.PartNumber(partA), entities.PartNumber(partB))
	if err != nil {
		panic(err)
	}
	return bundle
}

// BuildSampleBundles builds a small bundle dataset covering the ranking
// edge cases: missing metrics, zero customer counts, and substring-
// overlapping part numbers.
func BuildSampleBundles() []*entities.Bundle {
	withMetrics := func(b *entities.Bundle, customers int64, confidence float64, revenue int64) *entities.Bundle {
		b.Customers = entities.Quantity(customers)
		b.HasCustomers = true
		b.Confidence = confidence
		b.HasConfidence = true
		b.Revenue = decimal.NewFromInt(revenue)
		b.HasRevenue = true
		return b
	}

	noCustomers := mustCreateBundle(3, "47839999", "55001111")
	noCustomers.Confidence = 95.0
	noCustomers.HasConfidence = true

	zeroCustomers := withMetrics(mustCreateBundle(4, "47830000", "55002222"), 0, 91.0, 500)

	noConfidence := mustCreateBundle(5, "66001111", "66002222")
	noConfidence.Customers = 55
	noConfidence.HasCustomers = true

	return []*entities.Bundle{
		withMetrics(mustCreateBundle(0, "47833556", "99112233"), 42, 87.5, 12600),
		withMetrics(mustCreateBundle(1, "47835000", "88110000"), 80, 72.0, 8000),
		withMetrics(mustCreateBundle(2, "12345678", "87654321"), 10, 99.9, 1000),
		noCustomers,
		zeroCustomers,
		noConfidence,
	}
}

// SampleFieldMap returns the field map matching BuildSampleBundles, as if
// every metric column resolved
func SampleFieldMap() schema.FieldMap {
	return schema.FieldMap{
		schema.FieldPartA:      "Part_1",
		schema.FieldPartB:      "Part_2",
		schema.FieldCustomers:  "Customer_Count",
		schema.FieldConfidence: "Confidence_Score",
		schema.FieldRevenue:    "Revenue_Potential",
	}
}
