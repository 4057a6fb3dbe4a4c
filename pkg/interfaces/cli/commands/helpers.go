package commands

import (
	"fmt"
	"time"

	"github.com/vsinha/bundletrack/pkg/application/services/catalog"
	"github.com/vsinha/bundletrack/pkg/application/services/ledger"
	"github.com/vsinha/bundletrack/pkg/application/services/rollup"
	"github.com/vsinha/bundletrack/pkg/application/services/session"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
	csvrepo "github.com/vsinha/bundletrack/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/bundletrack/pkg/infrastructure/repositories/memory"
)

func newLoader() *csvrepo.Loader {
	return csvrepo.NewLoader(
		csvrepo.WithLogger(logger),
		csvrepo.WithSchemaOverrides(resolveSchemaOverrides()),
	)
}

func loadCatalog() (*catalog.Catalog, error) {
	bundles, fields, err := newLoader().LoadBundles(resolveBundlePath())
	if err != nil {
		return nil, err
	}
	return catalog.New(bundles, fields, catalog.WithLogger(logger)), nil
}

func loadDirectory() (repositories.BranchDirectory, error) {
	branches, err := newLoader().LoadBranches(resolveBranchPath())
	if err != nil {
		return nil, err
	}
	return memory.NewBranchDirectory(branches), nil
}

func newLedgerService() *ledger.Service {
	store := csvrepo.NewLedgerStore(resolveLedgerPath(), csvrepo.WithLedgerLogger(logger))
	return ledger.NewService(store, ledger.WithLogger(logger))
}

func newRollupService() (*rollup.Service, error) {
	directory, err := loadDirectory()
	if err != nil {
		return nil, err
	}
	store := csvrepo.NewLedgerStore(resolveLedgerPath(), csvrepo.WithLedgerLogger(logger))
	return rollup.NewService(store, directory), nil
}

func openSession(branch string) (*entities.Session, error) {
	directory, err := loadDirectory()
	if err != nil {
		return nil, err
	}
	return session.NewService(directory).Open(branch)
}

// parseWindow maps the --window flag to a time range
func parseWindow(value string, now time.Time) (entities.Window, error) {
	switch value {
	case "", "all":
		return entities.AllTime(), nil
	case "7d", "week":
		return entities.Last7Days(now), nil
	case "30d", "month":
		return entities.Last30Days(now), nil
	case "90d", "quarter":
		return entities.LastQuarter(now), nil
	default:
		return entities.Window{}, fmt.Errorf("invalid window %q (expected: all, 7d, 30d, or quarter)", value)
	}
}
