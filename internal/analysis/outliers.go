package analysis

import (
	"datalens/domain/report"
	"datalens/domain/table"
)

// iqrFence is the conventional Tukey multiplier for outlier bounds.
const iqrFence = 1.5

// DetectOutliers flags the values of one numeric column that fall strictly
// outside the IQR bounds: below Q1 - 1.5*IQR or above Q3 + 1.5*IQR. An
// absent or non-numeric column yields an empty zero-count report rather
// than an error. Non-finite observations (inf, -inf) are excluded so the
// report stays JSON-encodable. Percent is measured against all table rows.
func DetectOutliers(t *table.Table, column string) report.OutlierReport {
	c, ok := t.Column(column)
	if !ok || c.Kind != table.KindNumeric {
		return report.OutlierReport{Column: column, Outliers: []float64{}}
	}

	values := finite(c.Floats())
	if len(values) == 0 {
		return report.OutlierReport{Column: column, Outliers: []float64{}}
	}

	q1 := percentile(values, 25)
	q3 := percentile(values, 75)
	iqr := q3 - q1
	lower := q1 - iqrFence*iqr
	upper := q3 + iqrFence*iqr

	outliers := []float64{}
	for _, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}

	return report.OutlierReport{
		Column:     column,
		Outliers:   outliers,
		Count:      len(outliers),
		LowerBound: sanitize(lower),
		UpperBound: sanitize(upper),
		Percent:    pct(len(outliers), t.Rows()),
	}
}

// OutlierSummary aggregates DetectOutliers across every numeric column.
func OutlierSummary(t *table.Table) map[string]report.OutlierReport {
	summary := make(map[string]report.OutlierReport)
	for _, c := range t.NumericColumns() {
		summary[c.Name] = DetectOutliers(t, c.Name)
	}
	return summary
}
