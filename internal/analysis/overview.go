package analysis

import (
	"datalens/domain/report"
	"datalens/domain/table"
)

// stringHeaderBytes approximates the fixed per-value overhead of a
// variable-length text cell (pointer + length header).
const stringHeaderBytes = 16

// numericValueBytes is the storage estimate for one numeric cell.
const numericValueBytes = 8

// missingValueBytes is the storage estimate for a missing cell of any kind.
const missingValueBytes = 8

// BuildOverview reports the shape, column types, and estimated memory
// footprint of a table. Pure function over a valid table.
func BuildOverview(t *table.Table) report.Overview {
	types := make(map[string]string, t.Cols())
	var memory int64
	for _, c := range t.Columns() {
		types[c.Name] = string(c.Kind)
		memory += columnFootprint(&c)
	}
	return report.Overview{
		Rows:        t.Rows(),
		Columns:     t.Cols(),
		ColumnNames: t.Names(),
		ColumnTypes: types,
		MemoryBytes: memory,
	}
}

func columnFootprint(c *table.Column) int64 {
	var total int64
	for _, v := range c.Values {
		switch {
		case table.IsMissing(v):
			total += missingValueBytes
		case c.Kind == table.KindNumeric:
			total += numericValueBytes
		default:
			total += stringHeaderBytes + int64(len(v))
		}
	}
	return total
}
