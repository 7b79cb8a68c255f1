package dataprep

import (
	"math"
	"sort"
)

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value float64
	Count int
}

// ValueCounts tabulates the distinct non-NaN values, most frequent first.
// Equal counts are ordered by ascending value.
func ValueCounts(values []float64) []ValueCount {
	counts := map[float64]int{}
	for _, v := range values {
		if !math.IsNaN(v) {
			counts[v]++
		}
	}
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Unique counts distinct strings.
func Unique(data []string) int {
	seen := make(map[string]struct{}, len(data))
	for _, v := range data {
		seen[v] = struct{}{}
	}
	return len(seen)
}
