package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
	"github.com/vsinha/bundletrack/pkg/domain/schema"
)

// Loader handles loading bundle and branch data from CSV files
type Loader struct {
	logger    *zap.Logger
	overrides map[schema.Field]string
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithLogger sets the logger used for row-level warnings
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithSchemaOverrides pins logical fields to explicit column names,
// bypassing alias matching for those fields
func WithSchemaOverrides(overrides map[schema.Field]string) LoaderOption {
	return func(l *Loader) {
		l.overrides = overrides
	}
}

// NewLoader creates a new CSV loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadBundles loads the bundle dataset from a CSV file. Column names are
// resolved through the schema alias lists, so exports with renamed headers
// load without code changes. Rows with empty part identifiers are skipped;
// optional metric cells that fail to parse load as absent values.
func (l *Loader) LoadBundles(filename string) ([]*entities.Bundle, schema.FieldMap, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", repositories.ErrDatasetUnavailable, filename)
		}
		return nil, nil, fmt.Errorf("failed to open bundle file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read bundle CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, nil, fmt.Errorf("%w: %s is empty", repositories.ErrDatasetUnavailable, filename)
	}

	header := records[0]
	fields, err := schema.ResolveWithOverrides(header, schema.DefaultAliases(), l.overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("bundle CSV %s: %w", filename, err)
	}

	if !fields.Has(schema.FieldPartA) || !fields.Has(schema.FieldPartB) {
		return nil, nil, fmt.Errorf("bundle CSV %s: unable to resolve part number columns from header %v", filename, header)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[col] = i
	}

	var bundles []*entities.Bundle
	for i, record := range records[1:] {
		partA := cellFor(record, colIndex, fields, schema.FieldPartA)
		partB := cellFor(record, colIndex, fields, schema.FieldPartB)

		bundle, err := entities.NewBundle(i, entities.PartNumber(partA), entities.PartNumber(partB))
		if err != nil {
			l.logger.Warn("skipping invalid bundle row",
				zap.Int("row", i+2),
				zap.Error(err))
			continue
		}

		bundle.DescA = cellFor(record, colIndex, fields, schema.FieldDescA)
		bundle.DescB = cellFor(record, colIndex, fields, schema.FieldDescB)
		bundle.ManufacturerA = cellFor(record, colIndex, fields, schema.FieldManufacturerA)
		bundle.ManufacturerB = cellFor(record, colIndex, fields, schema.FieldManufacturerB)

		if raw := cellFor(record, colIndex, fields, schema.FieldCustomers); raw != "" {
			if customers, ok := parseCount(raw); ok {
				bundle.Customers = entities.Quantity(customers)
				bundle.HasCustomers = true
			}
		}

		if raw := cellFor(record, colIndex, fields, schema.FieldConfidence); raw != "" {
			if confidence, err := strconv.ParseFloat(raw, 64); err == nil {
				bundle.Confidence = confidence
				bundle.HasConfidence = true
			}
		}

		if raw := cellFor(record, colIndex, fields, schema.FieldRevenue); raw != "" {
			if revenue, err := decimal.NewFromString(normalizeCurrency(raw)); err == nil {
				bundle.Revenue = revenue
				bundle.HasRevenue = true
			}
		}

		bundles = append(bundles, bundle)
	}

	l.logger.Info("loaded bundle dataset",
		zap.String("file", filename),
		zap.Int("bundles", len(bundles)),
		zap.Int("resolved_fields", len(fields)))

	return bundles, fields, nil
}

// cellFor returns the trimmed cell value for a logical field, or "" when
// the field is unresolved or the row is short
func cellFor(record []string, colIndex map[string]int, fields schema.FieldMap, field schema.Field) string {
	col, ok := fields.Column(field)
	if !ok {
		return ""
	}
	idx, ok := colIndex[col]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseCount parses an integer count that may be exported as a float ("42.0")
func parseCount(raw string) (int64, bool) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// normalizeCurrency strips display formatting from exported currency cells
func normalizeCurrency(raw string) string {
	raw = strings.TrimPrefix(raw, "$")
	return strings.ReplaceAll(raw, ",", "")
}
