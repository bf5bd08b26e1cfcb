package analysis

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliersBoundsAndMembership(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5", "6", "7", "8", "100"}
	tbl := mustTable(t, col("x", values...))

	r := DetectOutliers(tbl, "x")

	q1 := percentile(tbl.Columns()[0].Floats(), 25)
	q3 := percentile(tbl.Columns()[0].Floats(), 75)
	iqr := q3 - q1
	assert.InDelta(t, q1-1.5*iqr, r.LowerBound, 1e-9)
	assert.InDelta(t, q3+1.5*iqr, r.UpperBound, 1e-9)

	require.Equal(t, 1, r.Count)
	assert.Equal(t, []float64{100}, r.Outliers)
	assert.InDelta(t, pct(1, 9), r.Percent, 1e-9)

	// Every flagged value is strictly outside the bounds; everything else
	// is inside.
	flagged := map[float64]bool{}
	for _, v := range r.Outliers {
		assert.True(t, v < r.LowerBound || v > r.UpperBound)
		flagged[v] = true
	}
	for _, v := range tbl.Columns()[0].Floats() {
		if !flagged[v] {
			assert.GreaterOrEqual(t, v, r.LowerBound)
			assert.LessOrEqual(t, v, r.UpperBound)
		}
	}
}

func TestDetectOutliersNoOutliers(t *testing.T) {
	tbl := mustTable(t, col("x", "1", "2", "3", "4", "5"))
	r := DetectOutliers(tbl, "x")
	assert.Equal(t, 0, r.Count)
	assert.Empty(t, r.Outliers)
	assert.Equal(t, 0.0, r.Percent)
}

func TestDetectOutliersNonNumericOrAbsentColumn(t *testing.T) {
	tbl := mustTable(t,
		col("x", "1", "2"),
		col("label", "a", "b"),
	)

	r := DetectOutliers(tbl, "label")
	assert.Equal(t, 0, r.Count)
	assert.Empty(t, r.Outliers)
	assert.Equal(t, 0.0, r.LowerBound)
	assert.Equal(t, 0.0, r.UpperBound)

	r = DetectOutliers(tbl, "nonexistent")
	assert.Equal(t, 0, r.Count)
	assert.Empty(t, r.Outliers)
}

func TestDetectOutliersExcludesNonFiniteValues(t *testing.T) {
	// "inf" parses as a float, so the column still infers as numeric.
	tbl := mustTable(t, col("x", "1", "2", "3", "4", "5", "6", "7", "8", "inf", "-inf"))

	r := DetectOutliers(tbl, "x")

	for _, v := range r.Outliers {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "non-finite outlier %v", v)
	}
	assert.False(t, math.IsInf(r.LowerBound, 0) || math.IsNaN(r.LowerBound))
	assert.False(t, math.IsInf(r.UpperBound, 0) || math.IsNaN(r.UpperBound))
	assert.Equal(t, 0, r.Count)

	_, err := json.Marshal(r)
	require.NoError(t, err)
}

func TestOutlierSummaryCoversNumericColumns(t *testing.T) {
	tbl := mustTable(t,
		col("a", "1", "2", "3"),
		col("b", "10", "20", "30"),
		col("label", "x", "y", "z"),
	)

	summary := OutlierSummary(tbl)
	require.Len(t, summary, 2)
	assert.Contains(t, summary, "a")
	assert.Contains(t, summary, "b")
	assert.NotContains(t, summary, "label")
}
