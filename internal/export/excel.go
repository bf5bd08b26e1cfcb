package export

import (
	"fmt"
	"sort"

	"datalens/domain/report"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the full analysis result as a multi-sheet workbook.
func WriteWorkbook(path string, result *report.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeOverviewSheet(f, result); err != nil {
		return err
	}
	if err := writeMissingSheet(f, result.Missing); err != nil {
		return err
	}
	if err := writeSummarySheets(f, result.Summaries); err != nil {
		return err
	}
	if err := writeCorrelationSheet(f, result.Correlation); err != nil {
		return err
	}
	if err := writeOutlierSheet(f, result.Outliers); err != nil {
		return err
	}
	if result.Cleaned != nil {
		if err := writeCleanedSheet(f, result); err != nil {
			return err
		}
	}

	// Drop the default sheet so Overview is the first thing a reader sees.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeOverviewSheet(f *excelize.File, result *report.AnalysisResult) error {
	sheet := "Overview"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"rows", result.Overview.Rows},
		{"columns", result.Overview.Columns},
		{"memory_bytes", result.Overview.MemoryBytes},
		{"total_duplicates", result.Duplicates.TotalDuplicates},
		{"duplicate_percent", result.Duplicates.DuplicatePercent},
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	start := len(rows) + 2
	if err := writeRows(f, sheet, start, [][]interface{}{{"column", "type"}}); err != nil {
		return err
	}
	typeRows := make([][]interface{}, 0, len(result.Overview.ColumnNames))
	for _, name := range result.Overview.ColumnNames {
		typeRows = append(typeRows, []interface{}{name, result.Overview.ColumnTypes[name]})
	}
	return writeRows(f, sheet, start+1, typeRows)
}

func writeMissingSheet(f *excelize.File, r report.MissingReport) error {
	sheet := "Missing Values"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{{"column", "missing_count", "missing_percent"}}
	for _, e := range r.Entries {
		rows = append(rows, []interface{}{e.Column, e.MissingCount, e.MissingPercent})
	}
	return writeRows(f, sheet, 1, rows)
}

func writeSummarySheets(f *excelize.File, s report.ColumnSummaries) error {
	sheet := "Numeric Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{{"column", "count", "mean", "std_dev", "min", "p25", "median", "p75", "max"}}
	for _, n := range s.Numeric {
		rows = append(rows, []interface{}{n.Column, n.Count, n.Mean, n.StdDev, n.Min, n.P25, n.Median, n.P75, n.Max})
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	sheet = "Categorical Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows = [][]interface{}{{"column", "unique_values", "most_common", "most_common_count", "most_common_percent"}}
	for _, c := range s.Categorical {
		rows = append(rows, []interface{}{c.Column, c.UniqueValues, c.MostCommon, c.MostCommonCount, c.MostCommonPercent})
	}
	return writeRows(f, sheet, 1, rows)
}

func writeCorrelationSheet(f *excelize.File, o report.CorrelationOutcome) error {
	sheet := "Correlation"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if o.Status == report.OutcomeSkipped {
		return writeRows(f, sheet, 1, [][]interface{}{{o.Reason}})
	}

	header := make([]interface{}, 0, len(o.Matrix.Columns)+1)
	header = append(header, "")
	for _, name := range o.Matrix.Columns {
		header = append(header, name)
	}
	rows := [][]interface{}{header}
	for _, rowName := range o.Matrix.Columns {
		row := make([]interface{}, 0, len(o.Matrix.Columns)+1)
		row = append(row, rowName)
		for _, colName := range o.Matrix.Columns {
			row = append(row, o.Matrix.At(rowName, colName))
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheet, 1, rows)
}

func writeOutlierSheet(f *excelize.File, o report.OutlierOutcome) error {
	sheet := "Outliers"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if o.Status == report.OutcomeSkipped {
		return writeRows(f, sheet, 1, [][]interface{}{{o.Reason}})
	}

	rows := [][]interface{}{{"column", "count", "percent", "lower_bound", "upper_bound"}}
	for _, name := range sortedKeys(o.Columns) {
		r := o.Columns[name]
		rows = append(rows, []interface{}{r.Column, r.Count, r.Percent, r.LowerBound, r.UpperBound})
	}
	return writeRows(f, sheet, 1, rows)
}

func writeCleanedSheet(f *excelize.File, result *report.AnalysisResult) error {
	sheet := "Cleaned Data"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	t := result.Cleaned
	header := make([]interface{}, t.Cols())
	for i, name := range t.Names() {
		header[i] = name
	}
	rows := make([][]interface{}, 0, t.Rows()+1)
	rows = append(rows, header)
	for i := 0; i < t.Rows(); i++ {
		row := make([]interface{}, t.Cols())
		for j, v := range t.Row(i) {
			row[j] = v
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheet, 1, rows)
}

// writeRows writes consecutive rows starting at startRow (1-based).
func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]report.OutlierReport) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
