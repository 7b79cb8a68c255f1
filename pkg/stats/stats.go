package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned by operations that cannot produce a value from an empty sample.
var ErrEmpty = errors.New("stats: empty sample")

// Mean computes the average of a slice. NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// Variance computes the unbiased sample variance (n-1 denominator).
func Variance(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Variance(x, nil)
}

// Std computes the sample standard deviation.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// MeanVar returns the mean and the sample variance in one call.
func MeanVar(x []float64) (mean, variance float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.MeanVariance(x, nil)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(x), floats.Max(x)
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// interpolating linearly between the two closest ranks.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	cp := sorted(x)
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// Quartiles returns the 25th, 50th and 75th percentiles.
func Quartiles(x []float64) [3]float64 {
	return [3]float64{Percentile(x, 25), Percentile(x, 50), Percentile(x, 75)}
}

// NthValue returns sorted(x)[int(len(x)*q)], the nearest-rank value for fraction q.
func NthValue(x []float64, q float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	idx := int(float64(n) * q)
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted(x)[idx], nil
}

// CountInRange counts values v with lo <= v <= hi.
func CountInRange(x []float64, lo, hi float64) int {
	count := 0
	for _, v := range x {
		if v >= lo && v <= hi {
			count++
		}
	}
	return count
}

// Round rounds x to the given number of decimal places, half to even.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(x*pow) / pow
}

func sorted(x []float64) []float64 {
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	return cp
}
