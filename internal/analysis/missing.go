package analysis

import (
	"sort"

	"datalens/domain/report"
	"datalens/domain/table"
)

// AnalyzeMissing counts missing cells per column. Entries are ordered by
// missing count descending; ties keep the original column order (stable
// sort over table order).
func AnalyzeMissing(t *table.Table) report.MissingReport {
	entries := make([]report.MissingEntry, 0, t.Cols())
	for _, c := range t.Columns() {
		missing := c.Missing()
		entries = append(entries, report.MissingEntry{
			Column:         c.Name,
			MissingCount:   missing,
			MissingPercent: pct(missing, t.Rows()),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MissingCount > entries[j].MissingCount
	})
	return report.MissingReport{Entries: entries}
}
