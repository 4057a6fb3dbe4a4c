package csv

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
)

func testEvent(t *testing.T, branch string, at time.Time) *entities.SaleEvent {
	t.Helper()
	bundle, err := entities.NewBundle(7, "47833556", "99112233")
	require.NoError(t, err)
	bundle.Customers = 42
	bundle.HasCustomers = true
	bundle.Confidence = 87.5
	bundle.HasConfidence = true
	bundle.Revenue = decimal.NewFromInt(12600)
	bundle.HasRevenue = true

	event, err := entities.NewSaleEvent(branch, bundle, at)
	require.NoError(t, err)
	return event
}

func TestLedgerStore_AppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bundle_sales_log.csv")
	store := NewLedgerStore(path)

	at := time.Date(2026, 8, 29, 14, 30, 5, 0, time.Local)
	require.NoError(t, store.Append(testEvent(t, "Cambridge", at)))

	events, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "Cambridge", event.Branch)
	assert.Equal(t, "BDL-00007", event.BundleID)
	assert.Equal(t, "47833556", string(event.PartA))
	assert.EqualValues(t, 42, event.Customers)
	assert.InDelta(t, 87.5, event.Confidence, 0.001)
	assert.True(t, event.Revenue.Equal(decimal.NewFromInt(12600)))
	assert.Equal(t, entities.Sold, event.Status)
	assert.True(t, event.TimeValid)
	assert.Equal(t, at, event.Timestamp)
}

func TestLedgerStore_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	store := NewLedgerStore(path)

	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	require.NoError(t, store.Append(testEvent(t, "Cambridge", at)))
	require.NoError(t, store.Append(testEvent(t, "Marietta", at)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	require.Len(t, lines, 3, "header plus two data rows")
	assert.Equal(t,
		"timestamp,branch_name,bundle_id,part1,part2,customers,confidence,revenue_estimate,status",
		lines[0])
	assert.Contains(t, lines[1], "2026-08-29 10:00:00")
	assert.Contains(t, lines[1], "Sold")
}

func TestLedgerStore_ReadMissingFile(t *testing.T) {
	store := NewLedgerStore(filepath.Join(t.TempDir(), "nope.csv"))

	events, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLedgerStore_MalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	content := "timestamp,branch_name,bundle_id,part1,part2,customers,confidence,revenue_estimate,status\n" +
		"2026-08-29 10:00:00,Cambridge,BDL-00001,A,B,5,80.0,1000,Sold\n" +
		"short,row\n" +
		"not-a-timestamp,Marietta,BDL-00002,C,D,9,70.0,2000,Sold\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewLedgerStore(path)
	events, err := store.ReadAll()
	require.NoError(t, err)

	require.Len(t, events, 2, "short row dropped, undated row kept")
	assert.True(t, events[0].TimeValid)
	assert.False(t, events[1].TimeValid)
	assert.Equal(t, "not-a-timestamp", events[1].RawTimestamp)
	assert.Equal(t, "Marietta", events[1].Branch)
}

func TestLedgerStore_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	store := NewLedgerStore(path)
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(testEvent(t, "Cambridge", at)))
		}()
	}
	wg.Wait()

	events, err := store.ReadAll()
	require.NoError(t, err)
	assert.Len(t, events, writers, "append-only path loses no concurrent writes")
}
