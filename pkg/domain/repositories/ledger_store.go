package repositories

import "github.com/vsinha/bundletrack/pkg/domain/entities"

// LedgerStore provides durable access to the append-only sales ledger.
// Append must not rewrite existing rows; concurrent appenders may interleave
// and the stored file is not required to be time-ordered.
type LedgerStore interface {
	Append(event *entities.SaleEvent) error
	ReadAll() ([]*entities.SaleEvent, error)
}
