package analysis

import (
	"testing"

	"datalens/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesDuplicatesThenImputes(t *testing.T) {
	tbl := mustTable(t,
		col("id", "1", "1", "2"),
		col("category", "A", "A", ""),
	)

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	// Duplicate row removed first, then the missing category imputed with
	// the mode of the de-duplicated table.
	require.Equal(t, 2, cleaned.Rows())
	assert.Equal(t, []string{"1", "A"}, cleaned.Row(0))
	assert.Equal(t, []string{"2", "A"}, cleaned.Row(1))
}

func TestCleanImputesNumericMedian(t *testing.T) {
	tbl := mustTable(t, col("x", "1", "2", "", "9"))

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	x, ok := cleaned.Column("x")
	require.True(t, ok)
	assert.Equal(t, "2", x.Values[2]) // median of 1,2,9
	assert.Equal(t, 0, x.Missing())
}

func TestCleanMedianComputedAfterDedup(t *testing.T) {
	// With the duplicate "10" rows collapsed, the median of 1,10,100 is
	// 10; without dedup it would be computed over five values.
	tbl := mustTable(t, col("x", "10", "10", "10", "1", "100", ""))

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	x, _ := cleaned.Column("x")
	assert.Equal(t, "10", x.Values[len(x.Values)-1])
}

func TestCleanImputesFromPaddedValues(t *testing.T) {
	// Values with surrounding whitespace still count toward the median.
	tbl := mustTable(t, col("x", " 1", "2 ", "", " 9 "))

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	x, ok := cleaned.Column("x")
	require.True(t, ok)
	assert.Equal(t, "2", x.Values[2])
}

func TestCleanLeavesAllMissingColumnAlone(t *testing.T) {
	tbl := mustTable(t,
		col("id", "1", "2"),
		col("void", "", ""),
	)

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	void, _ := cleaned.Column("void")
	assert.Equal(t, 2, void.Missing())
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	tbl := mustTable(t,
		col("id", "1", "1"),
		col("v", "x", ""),
	)

	_, err := Clean(tbl)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	v, _ := tbl.Column("v")
	assert.Equal(t, "", v.Values[1])
}

func TestCleanIdempotent(t *testing.T) {
	tbl := mustTable(t,
		col("num", "1", "1", "", "5"),
		col("cat", "a", "a", "b", ""),
	)

	once, err := Clean(tbl)
	require.NoError(t, err)
	twice, err := Clean(once)
	require.NoError(t, err)

	assert.Equal(t, once.Rows(), twice.Rows())
	for i := 0; i < once.Rows(); i++ {
		assert.Equal(t, once.Row(i), twice.Row(i))
	}
}

func TestCleanNoMissingLeftWhereObserved(t *testing.T) {
	tbl := mustTable(t,
		col("num", "3", "", "7"),
		col("cat", "", "x", "x"),
	)

	cleaned, err := Clean(tbl)
	require.NoError(t, err)

	for _, c := range cleaned.Columns() {
		if c.Kind != table.KindUnresolved {
			assert.Equal(t, 0, c.Missing(), "column %s", c.Name)
		}
	}
}
