package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Kind
	}{
		{"all numeric", []string{"1", "2.5", "-3"}, KindNumeric},
		{"numeric with missing", []string{"1", "", "3"}, KindNumeric},
		{"scientific notation", []string{"1e3", "2.5E-2"}, KindNumeric},
		{"mixed", []string{"1", "two", "3"}, KindText},
		{"all text", []string{"a", "b"}, KindText},
		{"all missing", []string{"", "NA", "null"}, KindUnresolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New([]Column{{Name: "col", Values: tt.values}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.Columns()[0].Kind)
		})
	}
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(""))
	assert.True(t, IsMissing("  "))
	assert.True(t, IsMissing("NA"))
	assert.True(t, IsMissing("n/a"))
	assert.True(t, IsMissing("NaN"))
	assert.True(t, IsMissing("NULL"))
	assert.False(t, IsMissing("0"))
	assert.False(t, IsMissing("none at all"))
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]Column{
		{Name: "a", Values: []string{"1", "2"}},
		{Name: "b", Values: []string{"1"}},
	})
	assert.Error(t, err)
}

func TestRowAccess(t *testing.T) {
	tbl, err := New([]Column{
		{Name: "id", Values: []string{"1", "2"}},
		{Name: "name", Values: []string{"a", "b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())
	assert.Equal(t, []string{"2", "b"}, tbl.Row(1))
	assert.Equal(t, map[string]string{"id": "1", "name": "a"}, tbl.RowMap(0))
	assert.Equal(t, []string{"id", "name"}, tbl.Names())

	col, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, KindText, col.Kind)

	_, ok = tbl.Column("absent")
	assert.False(t, ok)
}

func TestColumnFloats(t *testing.T) {
	tbl, err := New([]Column{{Name: "x", Values: []string{"1.5", "", "3"}}})
	require.NoError(t, err)

	col := tbl.Columns()[0]
	assert.Equal(t, []float64{1.5, 3}, col.Floats())

	v, ok := col.FloatAt(0)
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	_, ok = col.FloatAt(1)
	assert.False(t, ok)

	assert.Equal(t, 1, col.Missing())
}

func TestNumericCategoricalSplit(t *testing.T) {
	tbl, err := New([]Column{
		{Name: "age", Values: []string{"30", "40"}},
		{Name: "city", Values: []string{"Oslo", "Lima"}},
		{Name: "blank", Values: []string{"", ""}},
	})
	require.NoError(t, err)

	numeric := tbl.NumericColumns()
	require.Len(t, numeric, 1)
	assert.Equal(t, "age", numeric[0].Name)

	categorical := tbl.CategoricalColumns()
	require.Len(t, categorical, 2)
	assert.Equal(t, "city", categorical[0].Name)
	assert.Equal(t, "blank", categorical[1].Name)
}

func TestJSONRoundTrip(t *testing.T) {
	tbl, err := New([]Column{
		{Name: "id", Values: []string{"1", "2"}},
		{Name: "label", Values: []string{"x", "y"}},
	})
	require.NoError(t, err)

	data, err := tbl.MarshalJSON()
	require.NoError(t, err)

	var rebuilt Table
	require.NoError(t, rebuilt.UnmarshalJSON(data))
	assert.Equal(t, tbl.Names(), rebuilt.Names())
	assert.Equal(t, tbl.Rows(), rebuilt.Rows())
	assert.Equal(t, KindNumeric, rebuilt.Columns()[0].Kind)
	assert.Equal(t, tbl.Row(1), rebuilt.Row(1))
}
