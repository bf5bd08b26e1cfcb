package analysis

import (
	"datalens/domain/report"
	"datalens/domain/table"

	"gonum.org/v1/gonum/stat"
)

// Correlate computes the pairwise Pearson coefficient for every pair of
// numeric columns. Rows with a missing value in either column of a pair are
// excluded for that pair only. With fewer than two numeric columns the
// matrix is empty. The diagonal is exactly 1; degenerate pairs (fewer than
// two shared observations, or zero variance) report 0.
func Correlate(t *table.Table) report.CorrelationMatrix {
	numeric := t.NumericColumns()
	if len(numeric) < 2 {
		return report.CorrelationMatrix{}
	}

	names := make([]string, len(numeric))
	grid := make(map[string]map[string]float64, len(numeric))
	for i, c := range numeric {
		names[i] = c.Name
		grid[c.Name] = make(map[string]float64, len(numeric))
		grid[c.Name][c.Name] = 1
	}

	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			r := pairwisePearson(&numeric[i], &numeric[j], t.Rows())
			grid[numeric[i].Name][numeric[j].Name] = r
			grid[numeric[j].Name][numeric[i].Name] = r
		}
	}

	return report.CorrelationMatrix{Columns: names, Coefficients: grid}
}

func pairwisePearson(a, b *table.Column, rows int) float64 {
	x := make([]float64, 0, rows)
	y := make([]float64, 0, rows)
	for i := 0; i < rows; i++ {
		va, oka := a.FloatAt(i)
		vb, okb := b.FloatAt(i)
		if !oka || !okb {
			continue
		}
		x = append(x, va)
		y = append(y, vb)
	}
	if len(x) < 2 {
		return 0
	}
	return sanitize(stat.Correlation(x, y, nil))
}
