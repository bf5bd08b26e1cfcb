package analysis

import (
	"math"
	"sort"
)

// percentile computes the p-th percentile (0..100) of values using linear
// interpolation between the two nearest order statistics. This matches
// conventional descriptive-statistics semantics; the montanaflynn package's
// Percentile uses nearest-rank, which disagrees on small samples, so the
// interpolating variant is implemented here and used everywhere quartiles
// feed reports or bounds.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// median is the 50th percentile.
func median(values []float64) float64 {
	return percentile(values, 50)
}

// pct converts a count into a percentage of total. A zero total degrades to
// 0 rather than dividing by zero.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// sanitize maps NaN and infinities to 0 so every report field stays
// JSON-encodable.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// finite drops NaN and infinities, keeping the remaining values in order.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}
