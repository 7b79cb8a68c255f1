package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ECDF is the empirical cumulative distribution function of a sample.
type ECDF struct {
	xs []float64
}

// NewECDF copies and sorts x. NaN values are dropped.
func NewECDF(x []float64) *ECDF {
	xs := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	sort.Float64s(xs)
	return &ECDF{xs: xs}
}

// Len is the number of samples behind the step function.
func (e *ECDF) Len() int { return len(e.xs) }

// Eval returns the fraction of samples <= q.
func (e *ECDF) Eval(q float64) float64 {
	if len(e.xs) == 0 {
		return math.NaN()
	}
	return stat.CDF(q, stat.Empirical, e.xs, nil)
}

// Interval returns Eval(hi) - Eval(lo).
func (e *ECDF) Interval(lo, hi float64) float64 {
	return e.Eval(hi) - e.Eval(lo)
}

// Points returns the sorted sample and the step height at each of them.
func (e *ECDF) Points() (xs, ys []float64) {
	xs = make([]float64, len(e.xs))
	ys = make([]float64, len(e.xs))
	copy(xs, e.xs)
	n := float64(len(xs))
	// walk backwards so ties share the height of their last occurrence
	for i := len(xs) - 1; i >= 0; i-- {
		if i+1 < len(xs) && xs[i] == xs[i+1] {
			ys[i] = ys[i+1]
			continue
		}
		ys[i] = float64(i+1) / n
	}
	return xs, ys
}

// NormalQuantile is the inverse CDF of the standard normal distribution.
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
