package csv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bundletrack/pkg/domain/repositories"
	"github.com/vsinha/bundletrack/pkg/domain/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBundles(t *testing.T) {
	path := writeFile(t, "bundles.csv",
		"Part_1,Part_2,Customer_Count,Confidence_Score,Revenue_Potential\n"+
			"47833556,99112233,42,87.5,12600\n"+
			"11112222,33334444,,91.0,\n"+
			",99990000,5,50.0,100\n")

	loader := NewLoader()
	bundles, fields, err := loader.LoadBundles(path)
	require.NoError(t, err)

	require.Len(t, bundles, 2, "row with empty part identifier is skipped")

	first := bundles[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "47833556", string(first.PartA))
	assert.EqualValues(t, 42, first.Customers)
	assert.True(t, first.HasCustomers)
	assert.InDelta(t, 87.5, first.Confidence, 0.001)
	assert.True(t, first.Revenue.Equal(decimal.NewFromInt(12600)))

	second := bundles[1]
	assert.False(t, second.HasCustomers, "blank cell loads as absent")
	assert.True(t, second.HasConfidence)
	assert.False(t, second.HasRevenue)

	col, ok := fields.Column(schema.FieldConfidence)
	require.True(t, ok)
	assert.Equal(t, "Confidence_Score", col)
}

func TestLoadBundles_FloatCountsAndCurrencyFormatting(t *testing.T) {
	path := writeFile(t, "bundles.csv",
		"part1,part2,customers,confidence,revenue\n"+
			"A100,B200,42.0,87.5,\"$12,600\"\n")

	loader := NewLoader()
	bundles, _, err := loader.LoadBundles(path)
	require.NoError(t, err)
	require.Len(t, bundles, 1)

	assert.EqualValues(t, 42, bundles[0].Customers)
	assert.True(t, bundles[0].Revenue.Equal(decimal.NewFromInt(12600)))
}

func TestLoadBundles_MissingOptionalColumns(t *testing.T) {
	path := writeFile(t, "bundles.csv",
		"part1,part2\nA100,B200\n")

	loader := NewLoader()
	bundles, fields, err := loader.LoadBundles(path)
	require.NoError(t, err, "missing optional columns must not fail the load")
	require.Len(t, bundles, 1)

	assert.False(t, fields.Has(schema.FieldCustomers))
	assert.False(t, bundles[0].HasCustomers)
	assert.False(t, bundles[0].HasConfidence)
	assert.False(t, bundles[0].HasRevenue)
}

func TestLoadBundles_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, _, err := loader.LoadBundles(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrDatasetUnavailable))
}

func TestLoadBundles_UnresolvablePartColumns(t *testing.T) {
	path := writeFile(t, "bundles.csv", "alpha,beta\nx,y\n")

	loader := NewLoader()
	_, _, err := loader.LoadBundles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part number columns")
}

func TestLoadBundles_SchemaOverride(t *testing.T) {
	path := writeFile(t, "bundles.csv",
		"part1,part2,confidence_delta,confidence\nA,B,1.5,90\n")

	// Alias matching alone binds confidence_delta (first declared column)
	plain := NewLoader()
	_, fields, err := plain.LoadBundles(path)
	require.NoError(t, err)
	col, _ := fields.Column(schema.FieldConfidence)
	assert.Equal(t, "confidence_delta", col)

	pinned := NewLoader(WithSchemaOverrides(map[schema.Field]string{
		schema.FieldConfidence: "confidence",
	}))
	bundles, fields, err := pinned.LoadBundles(path)
	require.NoError(t, err)
	col, _ = fields.Column(schema.FieldConfidence)
	assert.Equal(t, "confidence", col)
	assert.InDelta(t, 90.0, bundles[0].Confidence, 0.001)
}

func TestLoadBranches(t *testing.T) {
	path := writeFile(t, "branch_list.csv",
		"branch_name\nCambridge\nMarietta\nCambridge\n\n")

	loader := NewLoader()
	branches, err := loader.LoadBranches(path)
	require.NoError(t, err)

	require.Len(t, branches, 2, "duplicates and blanks are dropped")
	assert.Equal(t, "Cambridge", branches[0].Name)
	assert.Equal(t, "Marietta", branches[1].Name)
}

func TestLoadBranches_MissingFileFallsBack(t *testing.T) {
	loader := NewLoader()

	branches, err := loader.LoadBranches(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	require.Len(t, branches, 18)
	assert.Equal(t, "Cambridge", branches[0].Name)
	assert.Equal(t, "South Charleston", branches[17].Name)
}

func TestLoadBranches_MissingColumn(t *testing.T) {
	path := writeFile(t, "branch_list.csv", "site\nCambridge\n")

	loader := NewLoader()
	_, err := loader.LoadBranches(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch_name")
}
