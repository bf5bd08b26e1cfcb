// Package report defines the structured outputs of the analysis pipeline.
// Every field is a flat primitive, slice, or string-keyed map so a caller
// can hand a result straight to a JSON encoder or a tabular exporter.
package report

import (
	"datalens/domain/table"
)

// Overview captures the shape and footprint of a loaded table.
type Overview struct {
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	ColumnNames []string          `json:"column_names"`
	ColumnTypes map[string]string `json:"column_types"`
	// MemoryBytes is an estimate: 8 bytes per numeric value, string header
	// plus byte length for text values.
	MemoryBytes int64 `json:"memory_bytes"`
}

// MissingEntry reports missing cells for one column.
type MissingEntry struct {
	Column         string  `json:"column"`
	MissingCount   int     `json:"missing_count"`
	MissingPercent float64 `json:"missing_percent"`
}

// MissingReport lists per-column missing-value counts, ordered by count
// descending with the original column order as a stable tie-break.
type MissingReport struct {
	Entries []MissingEntry `json:"entries"`
}

// DuplicateReport describes fully duplicated rows.
type DuplicateReport struct {
	TotalDuplicates  int     `json:"total_duplicates"`
	DuplicatePercent float64 `json:"duplicate_percent"`
	// SampleRows holds at most the configured number of duplicate rows, in
	// table order, keyed by column name. Empty when TotalDuplicates is 0.
	SampleRows []map[string]string `json:"sample_rows"`
}

// NumericSummary holds descriptive statistics for one numeric column.
// Percentiles use linear interpolation between order statistics.
type NumericSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// CategoricalSummary holds distribution statistics for one categorical
// column.
type CategoricalSummary struct {
	Column            string  `json:"column"`
	UniqueValues      int     `json:"unique_values"`
	MostCommon        string  `json:"most_common"`
	MostCommonCount   int     `json:"most_common_count"`
	MostCommonPercent float64 `json:"most_common_percent"`
}

// ColumnSummaries groups per-column statistics by inferred type. Either
// slice may be empty; empty groups are not an error.
type ColumnSummaries struct {
	Numeric     []NumericSummary     `json:"numeric"`
	Categorical []CategoricalSummary `json:"categorical"`
}

// CorrelationMatrix is a symmetric Pearson coefficient grid over the numeric
// columns. Columns preserves table order for square tabular export.
type CorrelationMatrix struct {
	Columns      []string                      `json:"columns"`
	Coefficients map[string]map[string]float64 `json:"coefficients"`
}

// IsEmpty reports whether the matrix was computed over fewer than two
// numeric columns.
func (m CorrelationMatrix) IsEmpty() bool {
	return len(m.Columns) == 0
}

// At returns the coefficient for a column pair, or 0 if either column is
// absent.
func (m CorrelationMatrix) At(x, y string) float64 {
	if row, ok := m.Coefficients[x]; ok {
		return row[y]
	}
	return 0
}

// OutlierReport describes IQR-based outliers for one numeric column.
type OutlierReport struct {
	Column     string    `json:"column"`
	Outliers   []float64 `json:"outliers"`
	Count      int       `json:"count"`
	LowerBound float64   `json:"lower_bound"`
	UpperBound float64   `json:"upper_bound"`
	Percent    float64   `json:"percent"`
}

// OutcomeStatus tags a conditional pipeline step so callers can tell
// "computed but empty" apart from "skipped for size".
type OutcomeStatus string

const (
	OutcomeComputed OutcomeStatus = "computed"
	OutcomeSkipped  OutcomeStatus = "skipped"
)

// CorrelationOutcome wraps the correlation matrix with its computation
// status. Reason is set only when Status is OutcomeSkipped.
type CorrelationOutcome struct {
	Status OutcomeStatus     `json:"status"`
	Reason string            `json:"reason,omitempty"`
	Matrix CorrelationMatrix `json:"matrix"`
}

// OutlierOutcome wraps the per-column outlier reports with their
// computation status.
type OutlierOutcome struct {
	Status  OutcomeStatus            `json:"status"`
	Reason  string                   `json:"reason,omitempty"`
	Columns map[string]OutlierReport `json:"columns"`
}

// AnalysisResult is the aggregate produced by one pipeline run. It is built
// once per upload and lives only for the request/response cycle; it is never
// persisted as a durable entity.
type AnalysisResult struct {
	Overview    Overview           `json:"overview"`
	Missing     MissingReport      `json:"missing_analysis"`
	Duplicates  DuplicateReport    `json:"duplicates"`
	Summaries   ColumnSummaries    `json:"column_summaries"`
	Correlation CorrelationOutcome `json:"correlation_matrix"`
	Outliers    OutlierOutcome     `json:"outliers"`
	Cleaned     *table.Table       `json:"cleaned_data"`
}
