package analysis

import (
	"datalens/domain/report"
	"datalens/domain/table"
)

// DetectDuplicates finds fully duplicated rows. A row is a duplicate when an
// earlier row holds identical values across every column, so the first
// occurrence is never counted. At most sampleLimit duplicate rows are kept
// for display, in table order.
func DetectDuplicates(t *table.Table, sampleLimit int) report.DuplicateReport {
	seen := make(map[string]bool, t.Rows())
	total := 0
	samples := []map[string]string{}

	for i := 0; i < t.Rows(); i++ {
		key := t.RowKey(i)
		if seen[key] {
			total++
			if len(samples) < sampleLimit {
				samples = append(samples, t.RowMap(i))
			}
			continue
		}
		seen[key] = true
	}

	return report.DuplicateReport{
		TotalDuplicates:  total,
		DuplicatePercent: pct(total, t.Rows()),
		SampleRows:       samples,
	}
}
