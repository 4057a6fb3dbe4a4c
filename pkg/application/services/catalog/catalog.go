// Package catalog serves read-only recommendation and search queries over
// one loaded bundle dataset. The dataset is immutable for the catalog's
// lifetime; every query is a filtered, sorted projection.
package catalog

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/schema"
)

// Metric selects the ranking column for top-N queries
type Metric int

const (
	MetricConfidence Metric = iota
	MetricCustomers
)

// String method for Metric enum
func (m Metric) String() string {
	switch m {
	case MetricConfidence:
		return "confidence"
	case MetricCustomers:
		return "customers"
	default:
		return "unknown"
	}
}

// Catalog is an in-memory read-only view over the bundle dataset
type Catalog struct {
	bundles []*entities.Bundle
	byIndex map[int]*entities.Bundle
	fields  schema.FieldMap
	logger  *zap.Logger
}

// Option configures a Catalog
type Option func(*Catalog)

// WithLogger sets the catalog's logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates a catalog over loaded bundles and their resolved field map
func New(bundles []*entities.Bundle, fields schema.FieldMap, opts ...Option) *Catalog {
	c := &Catalog{
		bundles: bundles,
		byIndex: make(map[int]*entities.Bundle, len(bundles)),
		fields:  fields,
		logger:  zap.NewNop(),
	}
	for _, bundle := range bundles {
		c.byIndex[bundle.Index] = bundle
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the number of loaded bundles
func (c *Catalog) Size() int {
	return len(c.bundles)
}

// Fields returns the resolved schema field map for inspection
func (c *Catalog) Fields() schema.FieldMap {
	return c.fields
}

// BundleByIndex returns the bundle at the given source dataset position
func (c *Catalog) BundleByIndex(index int) (*entities.Bundle, error) {
	bundle, ok := c.byIndex[index]
	if !ok {
		return nil, fmt.Errorf("no bundle at dataset index %d", index)
	}
	return bundle, nil
}

// TopByMetric returns up to n bundles ranked descending by the metric.
// Rows missing the metric value are excluded before ranking; ties keep
// original dataset order. When the metric's column was never resolved the
// first n rows come back in original order with Degraded set.
func (c *Catalog) TopByMetric(metric Metric, n int) dto.RankedBundles {
	if n <= 0 {
		return dto.RankedBundles{}
	}

	if !c.fields.Has(metricField(metric)) {
		c.logger.Info("metric column unresolved, returning unranked rows",
			zap.String("metric", metric.String()))
		return dto.RankedBundles{Bundles: c.firstN(n), Degraded: true}
	}

	var ranked []*entities.Bundle
	for _, bundle := range c.bundles {
		if hasMetric(bundle, metric) {
			ranked = append(ranked, bundle)
		}
	}

	sortByMetricDesc(ranked, metric)

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return dto.RankedBundles{Bundles: ranked}
}

// SearchRankedByCustomers finds bundles whose part identifiers contain
// query, ranked descending by customer count. Bundles without a positive
// customer count are excluded, unless the customer column never resolved:
// then every match is kept and the result comes back Degraded.
func (c *Catalog) SearchRankedByCustomers(query string, limit int) dto.SearchResult {
	return c.searchRanked(query, limit, MetricCustomers)
}

// SearchRankedByConfidence is the branch-tracking search variant: same
// matching rules, ranked descending by confidence instead
func (c *Catalog) SearchRankedByConfidence(query string, limit int) dto.SearchResult {
	return c.searchRanked(query, limit, MetricConfidence)
}

func (c *Catalog) searchRanked(query string, limit int, rankBy Metric) dto.SearchResult {
	if limit <= 0 {
		return dto.SearchResult{}
	}

	filterDemand := c.fields.Has(schema.FieldCustomers)
	if !filterDemand {
		c.logger.Info("customer column unresolved, search keeps all matches",
			zap.String("query", query))
	}

	var matches []*entities.Bundle
	for _, bundle := range c.bundles {
		if !bundle.MatchesPart(query) {
			continue
		}
		if filterDemand && !bundle.HasCustomerDemand() {
			continue
		}
		matches = append(matches, bundle)
	}

	total := len(matches)
	degraded := !filterDemand
	if c.fields.Has(metricField(rankBy)) {
		sortByMetricDesc(matches, rankBy)
	} else {
		degraded = true
	}

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return dto.SearchResult{Bundles: matches, TotalMatches: total, Degraded: degraded}
}

// Stats summarizes the dataset for overview displays. Aggregates whose
// source column is unresolved report their Has* guard unset.
func (c *Catalog) Stats() dto.DatasetStats {
	stats := dto.DatasetStats{
		BundleCount:  len(c.bundles),
		TotalRevenue: decimal.Zero,
	}

	var confidenceSum float64
	var confidenceCount int
	for _, bundle := range c.bundles {
		if bundle.HasCustomers {
			stats.TotalCustomers += bundle.Customers
			stats.HasCustomers = true
		}
		if bundle.HasConfidence {
			confidenceSum += bundle.Confidence
			confidenceCount++
		}
		if bundle.HasRevenue {
			stats.TotalRevenue = stats.TotalRevenue.Add(bundle.Revenue)
			stats.HasRevenue = true
		}
	}

	if confidenceCount > 0 {
		stats.AvgConfidence = confidenceSum / float64(confidenceCount)
		stats.HasConfidence = true
	}

	return stats
}

// ConfidenceDistribution buckets bundle confidence into the overview
// histogram bins. Returns nil when the confidence column is unresolved.
func (c *Catalog) ConfidenceDistribution() []dto.ConfidenceBin {
	if !c.fields.Has(schema.FieldConfidence) {
		return nil
	}

	bins := []dto.ConfidenceBin{
		{Label: "0-50%", Low: 0, High: 50},
		{Label: "50-70%", Low: 50, High: 70},
		{Label: "70-80%", Low: 70, High: 80},
		{Label: "80-90%", Low: 80, High: 90},
		{Label: "90-100%", Low: 90, High: 100},
	}

	for _, bundle := range c.bundles {
		if !bundle.HasConfidence {
			continue
		}
		for i := range bins {
			if inBin(bundle.Confidence, bins[i], i == 0) {
				bins[i].Count++
				break
			}
		}
	}

	return bins
}

func (c *Catalog) firstN(n int) []*entities.Bundle {
	if n > len(c.bundles) {
		n = len(c.bundles)
	}
	return c.bundles[:n]
}

func metricField(metric Metric) schema.Field {
	if metric == MetricCustomers {
		return schema.FieldCustomers
	}
	return schema.FieldConfidence
}

func hasMetric(bundle *entities.Bundle, metric Metric) bool {
	if metric == MetricCustomers {
		return bundle.HasCustomerDemand()
	}
	return bundle.HasConfidence
}

func metricValue(bundle *entities.Bundle, metric Metric) float64 {
	if metric == MetricCustomers {
		if !bundle.HasCustomerDemand() {
			return -1
		}
		return float64(bundle.Customers)
	}
	if !bundle.HasConfidence {
		return -1
	}
	return bundle.Confidence
}

// sortByMetricDesc sorts descending by metric value; rows missing the
// value sort last. Stable so ties keep dataset order.
func sortByMetricDesc(bundles []*entities.Bundle, metric Metric) {
	sort.SliceStable(bundles, func(i, j int) bool {
		return metricValue(bundles[i], metric) > metricValue(bundles[j], metric)
	})
}

// inBin uses right-inclusive bins, with the lowest bound included so a
// 0.0 confidence still lands in the first bucket
func inBin(value float64, bin dto.ConfidenceBin, first bool) bool {
	if first && value == bin.Low {
		return true
	}
	return value > bin.Low && value <= bin.High
}
