// Package table defines the in-memory representation of a loaded tabular
// dataset. A Table is created once by an ingest adapter, has a fixed shape,
// and is treated as read-only by every analysis component; the cleaner builds
// a new Table rather than mutating its input.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies the inferred type of a column.
type Kind string

const (
	// KindNumeric means every non-missing value parses as a float.
	KindNumeric Kind = "numeric"
	// KindText covers everything with at least one non-numeric value.
	KindText Kind = "text"
	// KindUnresolved means the column has no non-missing values at all.
	KindUnresolved Kind = "unresolved"
)

// missingTokens are the cell contents treated as missing values, compared
// case-insensitively after trimming. Mirrors the common NA markers emitted
// by spreadsheet tools.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// IsMissing reports whether a cell value counts as missing.
func IsMissing(value string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(value))]
}

// Column is a named, homogeneously typed sequence of cell values.
// Values hold the raw (trimmed) cell text; missing cells keep their
// original token so a Table can round-trip through export unchanged.
type Column struct {
	Name   string
	Kind   Kind
	Values []string
}

// Missing returns the number of missing cells in the column.
func (c *Column) Missing() int {
	count := 0
	for _, v := range c.Values {
		if IsMissing(v) {
			count++
		}
	}
	return count
}

// Floats returns the parsed non-missing values of a numeric column in row
// order. Non-numeric columns yield an empty slice.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if IsMissing(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FloatAt parses the value at row i. The second return is false for missing
// or unparseable cells.
func (c *Column) FloatAt(i int) (float64, bool) {
	if i < 0 || i >= len(c.Values) || IsMissing(c.Values[i]) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Values[i]), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NonMissing returns the non-missing raw values in row order.
func (c *Column) NonMissing() []string {
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}

// Table is an ordered collection of equally sized columns.
type Table struct {
	columns []Column
	rows    int
}

// New builds a Table from columns, validating rectangularity and inferring
// the Kind of any column whose Kind is left empty.
func New(columns []Column) (*Table, error) {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Values)
	}
	for i := range columns {
		if len(columns[i].Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", columns[i].Name, len(columns[i].Values), rows)
		}
		if columns[i].Kind == "" {
			columns[i].Kind = inferKind(columns[i].Values)
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

// inferKind classifies raw cell values: numeric if every non-missing value
// parses as a float, unresolved if nothing is present, text otherwise.
func inferKind(values []string) Kind {
	present := 0
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		present++
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return KindText
		}
	}
	if present == 0 {
		return KindUnresolved
	}
	return KindNumeric
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.columns) }

// Columns returns the ordered column slice. Callers must treat it as
// read-only.
func (t *Table) Columns() []Column { return t.columns }

// Names returns the ordered column names.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.columns {
		if t.columns[i].Name == name {
			return &t.columns[i], true
		}
	}
	return nil, false
}

// NumericColumns returns the numeric columns in table order.
func (t *Table) NumericColumns() []Column {
	var out []Column
	for _, c := range t.columns {
		if c.Kind == KindNumeric {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns every column that is not numeric, in table
// order. Unresolved columns are grouped with the categorical ones.
func (t *Table) CategoricalColumns() []Column {
	var out []Column
	for _, c := range t.columns {
		if c.Kind != KindNumeric {
			out = append(out, c)
		}
	}
	return out
}

// Row returns the cell values of row i across all columns in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.columns))
	for j := range t.columns {
		row[j] = t.columns[j].Values[i]
	}
	return row
}

// RowMap returns row i keyed by column name, for display and JSON payloads.
func (t *Table) RowMap(i int) map[string]string {
	row := make(map[string]string, len(t.columns))
	for j := range t.columns {
		row[t.columns[j].Name] = t.columns[j].Values[i]
	}
	return row
}

// RowKey builds an identity key for full-row duplicate detection by joining
// the cells with a unit separator. A cell that itself contains the separator
// byte could collide with a differently split row; tabular text sources do
// not produce that byte in practice.
func (t *Table) RowKey(i int) string {
	return strings.Join(t.Row(i), "\x1f")
}
