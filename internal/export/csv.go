// Package export renders analysis results into the fixed artifact formats:
// cleaned-data CSV, missing-values-report CSV, correlation-matrix CSV, a
// spreadsheet workbook, and a Markdown/HTML summary.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"datalens/domain/report"
	"datalens/domain/table"
)

// WriteCleanedCSV writes the cleaned table with its header row.
func WriteCleanedCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	for i := 0; i < t.Rows(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMissingReportCSV writes one row per column: name, missing count,
// missing percentage, preserving the report's descending order.
func WriteMissingReportCSV(w io.Writer, r report.MissingReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"column", "missing_count", "missing_percent"}); err != nil {
		return err
	}
	for _, e := range r.Entries {
		row := []string{e.Column, strconv.Itoa(e.MissingCount), formatFloat(e.MissingPercent)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCorrelationCSV writes the square matrix with numeric column names as
// both row and column labels. A skipped or empty outcome writes only the
// header corner cell.
func WriteCorrelationCSV(w io.Writer, o report.CorrelationOutcome) error {
	cw := csv.NewWriter(w)
	header := append([]string{""}, o.Matrix.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rowName := range o.Matrix.Columns {
		row := make([]string, 0, len(o.Matrix.Columns)+1)
		row = append(row, rowName)
		for _, colName := range o.Matrix.Columns {
			row = append(row, formatFloat(o.Matrix.At(rowName, colName)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
