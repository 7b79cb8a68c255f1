package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestECDF(t *testing.T) {
	e := NewECDF([]float64{3, 1, 2, 2, math.NaN(), 5})
	require.Equal(t, 5, e.Len())

	require.Equal(t, 0.0, e.Eval(0.5))
	require.Equal(t, 0.2, e.Eval(1))
	require.Equal(t, 0.6, e.Eval(2))
	require.Equal(t, 0.6, e.Eval(2.9))
	require.Equal(t, 0.8, e.Eval(3))
	require.Equal(t, 1.0, e.Eval(5))
	require.Equal(t, 1.0, e.Eval(100))
	require.InDelta(t, 0.6, e.Interval(1, 3), 1e-12)
}

func TestECDFMatchesBruteForce(t *testing.T) {
	x := []float64{0.3, -1.2, 4.4, 0.3, 2.2, -0.7, 1.1, 0.9, 3.3, -2.5}
	e := NewECDF(x)
	for _, q := range []float64{-3, -1.2, 0, 0.3, 1, 2.2, 5} {
		n := 0
		for _, v := range x {
			if v <= q {
				n++
			}
		}
		require.InDelta(t, float64(n)/float64(len(x)), e.Eval(q), 1e-12, "q=%v", q)
	}
}

func TestECDFPoints(t *testing.T) {
	xs, ys := NewECDF([]float64{2, 1, 2, 4}).Points()
	require.Equal(t, []float64{1, 2, 2, 4}, xs)
	require.Equal(t, []float64{0.25, 0.75, 0.75, 1}, ys)
}

func TestECDFEmpty(t *testing.T) {
	require.True(t, math.IsNaN(NewECDF(nil).Eval(0)))
}

func TestNormalQuantile(t *testing.T) {
	require.InDelta(t, 0, NormalQuantile(0.5), 1e-12)
	require.InDelta(t, 0.8416212335729143, NormalQuantile(0.80), 1e-9)
	require.InDelta(t, 1.2815515655446004, NormalQuantile(0.90), 1e-9)
	require.InDelta(t, 1.6448536269514722, NormalQuantile(0.95), 1e-9)
	require.InDelta(t, -0.6744897501960817, NormalQuantile(0.25), 1e-9)
}
