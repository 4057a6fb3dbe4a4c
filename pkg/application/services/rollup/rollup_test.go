package rollup

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bundletrack/pkg/application/dto"
	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/infrastructure/repositories/memory"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

func testDirectory(names ...string) *memory.BranchDirectory {
	branches := make([]*entities.Branch, 0, len(names))
	for _, name := range names {
		branches = append(branches, &entities.Branch{Name: name})
	}
	return memory.NewBranchDirectory(branches)
}

func saleAt(t *testing.T, branch string, at time.Time, revenue int64, confidence float64) *entities.SaleEvent {
	t.Helper()
	bundle, err := entities.NewBundle(0, "47833556", "99112233")
	require.NoError(t, err)
	bundle.Revenue = decimal.NewFromInt(revenue)
	bundle.HasRevenue = true
	bundle.Confidence = confidence
	bundle.HasConfidence = true

	event, err := entities.NewSaleEvent(branch, bundle, at)
	require.NoError(t, err)
	return event
}

func TestRollup_OneRowPerDirectoryBranch(t *testing.T) {
	store := memory.NewLedgerStore()
	require.NoError(t, store.Append(saleAt(t, "Cambridge", testNow.Add(-time.Hour), 500, 90)))
	require.NoError(t, store.Append(saleAt(t, "Cambridge", testNow.Add(-2*time.Hour), 300, 80)))

	svc := NewService(store, testDirectory("Cambridge", "Marietta", "Holt"))

	rows, err := svc.Rollup(entities.Last7Days(testNow))
	require.NoError(t, err)
	require.Len(t, rows, 3, "every directory branch gets a row")

	assert.Equal(t, "Cambridge", rows[0].Branch)
	assert.Equal(t, dto.Active, rows[0].Status)
	assert.Equal(t, 2, rows[0].BundlesSold)
	assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(800)))
	require.NotNil(t, rows[0].LastActivity)
	assert.Equal(t, testNow.Add(-time.Hour), *rows[0].LastActivity)

	for _, row := range rows[1:] {
		assert.Equal(t, dto.Inactive, row.Status)
		assert.Zero(t, row.BundlesSold)
		assert.True(t, row.Revenue.IsZero())
		assert.Nil(t, row.LastActivity)
	}
}

func TestRollup_WindowExcludesOldActivity(t *testing.T) {
	store := memory.NewLedgerStore()
	require.NoError(t, store.Append(saleAt(t, "Cambridge", testNow.Add(-30*24*time.Hour), 500, 90)))

	svc := NewService(store, testDirectory("Cambridge"))

	rows, err := svc.Rollup(entities.Last7Days(testNow))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, dto.Inactive, rows[0].Status)
	assert.Zero(t, rows[0].BundlesSold)

	rows, err = svc.Rollup(entities.Last30Days(testNow))
	require.NoError(t, err)
	assert.Equal(t, dto.Active, rows[0].Status)
}

func TestRollup_OrphanBranchExcludedFromTable(t *testing.T) {
	store := memory.NewLedgerStore()
	require.NoError(t, store.Append(saleAt(t, "Ghost Branch", testNow.Add(-time.Hour), 999, 50)))

	svc := NewService(store, testDirectory("Cambridge"))

	rows, err := svc.Rollup(entities.AllTime())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cambridge", rows[0].Branch)

	// The orphan still counts toward raw-ledger totals
	totals, err := svc.Totals(entities.AllTime())
	require.NoError(t, err)
	assert.Equal(t, 1, totals.BundlesSold)
	assert.Equal(t, 1, totals.ActiveBranches)
}

func TestTotals(t *testing.T) {
	store := memory.NewLedgerStore()
	require.NoError(t, store.Append(saleAt(t, "Cambridge", testNow.Add(-time.Hour), 500, 90)))
	require.NoError(t, store.Append(saleAt(t, "Marietta", testNow.Add(-2*time.Hour), 300, 70)))
	require.NoError(t, store.Append(saleAt(t, "Cambridge", testNow.Add(-40*24*time.Hour), 999, 10)))

	svc := NewService(store, testDirectory("Cambridge", "Marietta"))

	totals, err := svc.Totals(entities.Last7Days(testNow))
	require.NoError(t, err)
	assert.Equal(t, 2, totals.BundlesSold)
	assert.True(t, totals.Revenue.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 2, totals.ActiveBranches)
	assert.InDelta(t, 80.0, totals.AvgConfidence, 0.001)
}

func TestTotals_EmptyLedger(t *testing.T) {
	svc := NewService(memory.NewLedgerStore(), testDirectory("Cambridge"))

	totals, err := svc.Totals(entities.AllTime())
	require.NoError(t, err)
	assert.Zero(t, totals.BundlesSold)
	assert.Zero(t, totals.ActiveBranches)
	assert.Zero(t, totals.AvgConfidence)
	assert.True(t, totals.Revenue.IsZero())
}

func TestLastActivityAge(t *testing.T) {
	twoHours := testNow.Add(-2 * time.Hour)
	threeDays := testNow.Add(-3 * 24 * time.Hour)

	testCases := []struct {
		name     string
		row      dto.RollupRow
		expected string
	}{
		{"never", dto.RollupRow{}, "Never"},
		{"hours", dto.RollupRow{LastActivity: &twoHours}, "2 hours ago"},
		{"days", dto.RollupRow{LastActivity: &threeDays}, "3 days ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LastActivityAge(tc.row, testNow))
		})
	}
}
