// Package ledger records "bundle marked sold" events and serves the
// read-side aggregates built from them.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// Service owns the append-only sales ledger. Duplicate sales for the same
// part pair are legal: a branch can sell one pair to many customers.
type Service struct {
	store  repositories.LedgerStore
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the wall clock, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a ledger service over the given store
func NewService(store repositories.LedgerStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordSale appends one sale event for the session's branch and returns
// the persisted event. The session must have been opened through the
// branch directory; no further membership check happens here.
func (s *Service) RecordSale(session *entities.Session, bundle *entities.Bundle) (*entities.SaleEvent, error) {
	if session == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}

	event, err := entities.NewSaleEvent(session.Branch, bundle, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(event); err != nil {
		return nil, fmt.Errorf("failed to record sale for %s: %w", session.Branch, err)
	}

	s.logger.Info("recorded sale",
		zap.String("branch", session.Branch),
		zap.String("bundle_id", event.BundleID),
		zap.String("session_id", session.ID.String()))

	return event, nil
}

// Summary aggregates a branch's sales over the window. An empty or
// missing ledger yields a zero summary. Events without a parsable
// timestamp count toward all-time summaries but never toward windowed
// ones.
func (s *Service) Summary(branch string, window entities.Window) (dto.BranchSummary, error) {
	summary := dto.BranchSummary{Branch: branch, TotalRevenue: decimal.Zero}

	events, err := s.store.ReadAll()
	if err != nil {
		return summary, fmt.Errorf("failed to read ledger: %w", err)
	}

	for _, event := range events {
		if event.Branch != branch || !inWindow(event, window) {
			continue
		}
		summary.Count++
		summary.TotalRevenue = summary.TotalRevenue.Add(event.Revenue)
	}

	return summary, nil
}

// Recent returns up to limit of the branch's sales, newest first. Events
// with an unparsable timestamp sort last rather than being dropped.
func (s *Service) Recent(branch string, limit int) ([]*entities.SaleEvent, error) {
	events, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var matched []*entities.SaleEvent
	for _, event := range events {
		if event.Branch == branch {
			matched = append(matched, event)
		}
	}

	sortNewestFirst(matched)
	return truncate(matched, limit), nil
}

// RecentAll returns up to limit sales across every branch within the
// window, newest first. Feeds the admin recent-activity view.
func (s *Service) RecentAll(window entities.Window, limit int) ([]*entities.SaleEvent, error) {
	events, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var matched []*entities.SaleEvent
	for _, event := range events {
		if inWindow(event, window) {
			matched = append(matched, event)
		}
	}

	sortNewestFirst(matched)
	return truncate(matched, limit), nil
}

// inWindow reports whether an event counts for the window. All-time
// windows include events with unparsable timestamps; bounded windows
// require a valid timestamp.
func inWindow(event *entities.SaleEvent, window entities.Window) bool {
	if window.All {
		return true
	}
	return event.TimeValid && window.Contains(event.Timestamp)
}

// sortNewestFirst orders events descending by timestamp, time-invalid
// events last, stable within ties
func sortNewestFirst(events []*entities.SaleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.TimeValid != b.TimeValid {
			return a.TimeValid
		}
		return a.Timestamp.After(b.Timestamp)
	})
}

func truncate(events []*entities.SaleEvent, limit int) []*entities.SaleEvent {
	if limit > 0 && len(events) > limit {
		return events[:limit]
	}
	return events
}
