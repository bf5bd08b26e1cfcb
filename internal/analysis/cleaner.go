package analysis

import (
	"strconv"
	"strings"

	"datalens/domain/table"
)

// Clean produces a cleaned copy of the table: exact duplicate rows are
// removed first (keeping each first occurrence in row order), then missing
// values in the remaining rows are imputed per column - the column median
// for numeric columns, the most frequent value for categorical ones. A
// column with no non-missing values at all is left untouched. The input
// table is never mutated.
func Clean(t *table.Table) (*table.Table, error) {
	keep := dedupIndexes(t)

	source := t.Columns()
	columns := make([]table.Column, len(source))
	for j := range source {
		values := make([]string, len(keep))
		for i, row := range keep {
			values[i] = source[j].Values[row]
		}
		columns[j] = table.Column{Name: source[j].Name, Values: values}
	}

	for j := range columns {
		imputeColumn(&columns[j], source[j].Kind)
	}

	return table.New(columns)
}

// dedupIndexes returns the row indexes that survive duplicate removal, in
// their original order.
func dedupIndexes(t *table.Table) []int {
	seen := make(map[string]bool, t.Rows())
	keep := make([]int, 0, t.Rows())
	for i := 0; i < t.Rows(); i++ {
		key := t.RowKey(i)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	return keep
}

// imputeColumn replaces missing cells in place on the cleaned copy. The
// imputation statistic is computed from the column's non-missing values
// after deduplication, matching the report invariant that derived numbers
// always refer to the table they were computed from.
func imputeColumn(c *table.Column, kind table.Kind) {
	missing := false
	for _, v := range c.Values {
		if table.IsMissing(v) {
			missing = true
			break
		}
	}
	if !missing {
		return
	}

	var fill string
	if kind == table.KindNumeric {
		values := floatsOf(c.Values)
		if len(values) == 0 {
			return
		}
		fill = strconv.FormatFloat(median(values), 'g', -1, 64)
	} else {
		mode, count := mostCommon(c.Values)
		if count == 0 {
			// Nothing observed to impute from; leave the column as is.
			return
		}
		fill = mode
	}

	for i, v := range c.Values {
		if table.IsMissing(v) {
			c.Values[i] = fill
		}
	}
}

func floatsOf(values []string) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if table.IsMissing(v) {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}
