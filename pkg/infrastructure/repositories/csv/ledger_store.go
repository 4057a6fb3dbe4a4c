package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// ledgerHeader is the fixed column layout of the sales ledger store
var ledgerHeader = []string{
	"timestamp", "branch_name", "bundle_id", "part1", "part2",
	"customers", "confidence", "revenue_estimate", "status",
}

// LedgerStore persists sale events to a CSV file. Writes go through
// O_APPEND behind a mutex, so there is no read-modify-write window for a
// concurrent appender to race against.
type LedgerStore struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// Verify interface compliance
var _ repositories.LedgerStore = (*LedgerStore)(nil)

// LedgerOption configures a LedgerStore
type LedgerOption func(*LedgerStore)

// WithLedgerLogger sets the logger used for malformed-row warnings
func WithLedgerLogger(logger *zap.Logger) LedgerOption {
	return func(s *LedgerStore) {
		s.logger = logger
	}
}

// NewLedgerStore creates a ledger store backed by the CSV file at path.
// The file is created on first append.
func NewLedgerStore(path string, opts ...LedgerOption) *LedgerStore {
	s := &LedgerStore{path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append durably writes one sale event to the end of the ledger. The
// header row is written once, when the file is new or empty.
func (s *LedgerStore) Append(event *entities.SaleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	needHeader := true
	if info, err := os.Stat(s.path); err == nil && info.Size() > 0 {
		needHeader = false
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file %s: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if needHeader {
		if err := writer.Write(ledgerHeader); err != nil {
			return fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	record := []string{
		event.Timestamp.Format(entities.SaleTimeFormat),
		event.Branch,
		event.BundleID,
		string(event.PartA),
		string(event.PartB),
		strconv.FormatInt(int64(event.Customers), 10),
		strconv.FormatFloat(event.Confidence, 'f', 1, 64),
		event.Revenue.String(),
		event.Status.String(),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write ledger row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger row: %w", err)
	}

	s.logger.Debug("appended sale event",
		zap.String("branch", event.Branch),
		zap.String("bundle_id", event.BundleID))

	return nil
}

// ReadAll loads every event in the ledger. A missing file yields an empty
// ledger, not an error. Rows with too few columns are skipped; rows whose
// timestamp fails to parse are kept with TimeValid unset so listings can
// still show them while windowed aggregates leave them out.
func (s *LedgerStore) ReadAll() ([]*entities.SaleEvent, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger file %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger CSV: %w", err)
	}

	var events []*entities.SaleEvent
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == "timestamp" {
			continue
		}
		if len(record) < len(ledgerHeader) {
			s.logger.Warn("skipping malformed ledger row",
				zap.Int("row", i+1),
				zap.Int("columns", len(record)))
			continue
		}

		event := &entities.SaleEvent{
			RawTimestamp: record[0],
			Branch:       record[1],
			BundleID:     record[2],
			PartA:        entities.PartNumber(record[3]),
			PartB:        entities.PartNumber(record[4]),
			Status:       entities.Sold,
		}

		if ts, err := time.ParseInLocation(entities.SaleTimeFormat, record[0], time.Local); err == nil {
			event.Timestamp = ts
			event.TimeValid = true
		}

		if customers, err := strconv.ParseInt(record[5], 10, 64); err == nil {
			event.Customers = entities.Quantity(customers)
		}
		if confidence, err := strconv.ParseFloat(record[6], 64); err == nil {
			event.Confidence = confidence
		}
		if revenue, err := decimal.NewFromString(record[7]); err == nil {
			event.Revenue = revenue
		}

		events = append(events, event)
	}

	return events, nil
}
