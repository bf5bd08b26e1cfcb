package table

import "encoding/json"

// tableJSON is the wire shape for a Table: flat column names plus row-major
// cell values, so callers can serialize a cleaned table without knowing the
// internal layout.
type tableJSON struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// MarshalJSON serializes the table as {"columns": [...], "rows": [[...], ...]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{Columns: t.Names(), Rows: make([][]string, t.rows)}
	for i := 0; i < t.rows; i++ {
		out.Rows[i] = t.Row(i)
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds a Table from its wire shape, re-inferring column
// kinds.
func (t *Table) UnmarshalJSON(data []byte) error {
	var in tableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	columns := make([]Column, len(in.Columns))
	for j, name := range in.Columns {
		values := make([]string, len(in.Rows))
		for i, row := range in.Rows {
			if j < len(row) {
				values[i] = row[j]
			}
		}
		columns[j] = Column{Name: name, Values: values}
	}
	rebuilt, err := New(columns)
	if err != nil {
		return err
	}
	*t = *rebuilt
	return nil
}
