package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDuplicates(t *testing.T) {
	tbl := mustTable(t,
		col("id", "1", "1", "2", "1"),
		col("name", "a", "a", "b", "a"),
	)

	r := DetectDuplicates(tbl, 5)
	assert.Equal(t, 2, r.TotalDuplicates)
	assert.InDelta(t, 50.0, r.DuplicatePercent, 1e-9)
	require.Len(t, r.SampleRows, 2)
	assert.Equal(t, map[string]string{"id": "1", "name": "a"}, r.SampleRows[0])
}

func TestDetectDuplicatesNone(t *testing.T) {
	tbl := mustTable(t, col("id", "1", "2", "3"))
	r := DetectDuplicates(tbl, 5)
	assert.Equal(t, 0, r.TotalDuplicates)
	assert.Equal(t, 0.0, r.DuplicatePercent)
	assert.Empty(t, r.SampleRows)
}

func TestDetectDuplicatesSampleCap(t *testing.T) {
	values := make([]string, 10)
	for i := range values {
		values[i] = "same"
	}
	tbl := mustTable(t, col("v", values...))

	r := DetectDuplicates(tbl, 3)
	assert.Equal(t, 9, r.TotalDuplicates)
	assert.Len(t, r.SampleRows, 3)
}

func TestDetectDuplicatesCountMatchesDistinct(t *testing.T) {
	tbl := mustTable(t,
		col("a", "x", "y", "x", "y", "x"),
		col("b", "1", "2", "1", "2", "3"),
	)

	distinct := map[string]bool{}
	for i := 0; i < tbl.Rows(); i++ {
		distinct[tbl.RowKey(i)] = true
	}

	r := DetectDuplicates(tbl, 5)
	assert.Equal(t, tbl.Rows()-len(distinct), r.TotalDuplicates)
}
