package analysis

import (
	"datalens/domain/report"
	"datalens/domain/table"

	"github.com/montanaflynn/stats"
)

// SummarizeColumns splits the table into numeric and categorical column
// groups and computes distribution statistics for each. Empty groups produce
// empty slices, never errors.
func SummarizeColumns(t *table.Table) report.ColumnSummaries {
	summaries := report.ColumnSummaries{
		Numeric:     []report.NumericSummary{},
		Categorical: []report.CategoricalSummary{},
	}

	for _, c := range t.NumericColumns() {
		col := c
		summaries.Numeric = append(summaries.Numeric, summarizeNumeric(&col))
	}
	for _, c := range t.CategoricalColumns() {
		col := c
		summaries.Categorical = append(summaries.Categorical, summarizeCategorical(&col, t.Rows()))
	}
	return summaries
}

func summarizeNumeric(c *table.Column) report.NumericSummary {
	values := c.Floats()
	if len(values) == 0 {
		return report.NumericSummary{Column: c.Name}
	}

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	// Sample standard deviation to match conventional describe() output;
	// a single observation has no dispersion estimate, so report 0.
	stdDev := 0.0
	if len(values) > 1 {
		stdDev, _ = stats.StandardDeviationSample(values)
	}

	return report.NumericSummary{
		Column: c.Name,
		Count:  len(values),
		Mean:   sanitize(mean),
		StdDev: sanitize(stdDev),
		Min:    sanitize(min),
		P25:    sanitize(percentile(values, 25)),
		Median: sanitize(percentile(values, 50)),
		P75:    sanitize(percentile(values, 75)),
		Max:    sanitize(max),
	}
}

func summarizeCategorical(c *table.Column, rows int) report.CategoricalSummary {
	mode, count := mostCommon(c.Values)
	unique := make(map[string]bool)
	for _, v := range c.NonMissing() {
		unique[v] = true
	}
	return report.CategoricalSummary{
		Column:            c.Name,
		UniqueValues:      len(unique),
		MostCommon:        mode,
		MostCommonCount:   count,
		MostCommonPercent: pct(count, rows),
	}
}

// mostCommon returns the most frequent non-missing value and its count.
// Frequency ties resolve to the value encountered first in row order. An
// all-missing column yields ("", 0).
func mostCommon(values []string) (string, int) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, v := range values {
		if table.IsMissing(v) {
			continue
		}
		if _, ok := counts[v]; !ok {
			firstSeen[v] = order
			order++
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && firstSeen[v] < firstSeen[best]) {
			best = v
			bestCount = n
		}
	}
	return best, bestCount
}
