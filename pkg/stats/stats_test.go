package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoments(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	require.Equal(t, 2.5, Mean(x))
	require.InDelta(t, 5.0/3.0, Variance(x), 1e-12)
	require.InDelta(t, math.Sqrt(5.0/3.0), Std(x), 1e-12)

	m, v := MeanVar(x)
	require.Equal(t, 2.5, m)
	require.InDelta(t, 5.0/3.0, v, 1e-12)

	min, max := MinMax([]float64{3, -1, 7, 2})
	require.Equal(t, -1.0, min)
	require.Equal(t, 7.0, max)

	require.True(t, math.IsNaN(Mean(nil)))
	require.True(t, math.IsNaN(Variance(nil)))
}

func TestPercentile(t *testing.T) {
	x := []float64{4, 1, 3, 2, 5}
	require.Equal(t, 1.0, Percentile(x, 0))
	require.Equal(t, 5.0, Percentile(x, 100))
	require.Equal(t, 3.0, Percentile(x, 50))
	require.Equal(t, [3]float64{2, 3, 4}, Quartiles(x))

	// rank = 0.25 * 3 = 0.75 between 10 and 20
	require.InDelta(t, 17.5, Percentile([]float64{40, 10, 30, 20}, 25), 1e-12)
	require.Equal(t, 2.5, Percentile([]float64{1, 2, 3, 4}, 50))

	// input order is preserved
	require.Equal(t, []float64{4, 1, 3, 2, 5}, x)
}

func TestNthValue(t *testing.T) {
	x := []float64{9, 7, 5, 3, 1, 8, 6, 4, 2, 0}
	v, err := NthValue(x, 0.25)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = NthValue(x, 0.5)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = NthValue(x, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = NthValue(nil, 0.5)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestCountInRange(t *testing.T) {
	x := []float64{-1.5, -1, 0, 1, 1.0001}
	require.Equal(t, 3, CountInRange(x, -1, 1))
	require.Equal(t, 0, CountInRange(nil, -1, 1))
}

func TestRound(t *testing.T) {
	require.Equal(t, 0.683, Round(0.68269, 3))
	require.Equal(t, -1.234, Round(-1.2341, 3))
	require.Equal(t, 2.0, Round(2.5, 0))
	require.Equal(t, 4.0, Round(3.5, 0))
}

func TestStandardize(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	z := Standardize(x)
	require.Len(t, z, len(x))
	require.InDelta(t, 0, Mean(z), 1e-12)
	require.InDelta(t, 1, Variance(z), 1e-12)

	sd := Std(x)
	for i := range x {
		require.InDelta(t, (x[i]-5)/sd, z[i], 1e-12)
	}
	require.Equal(t, 2.0, x[0])

	constant := Standardize([]float64{3, 3, 3})
	require.True(t, math.IsNaN(constant[0]))
}

func TestMinMaxScale(t *testing.T) {
	out := MinMaxScale([]float64{10, 20, 15, 30})
	require.Equal(t, []float64{0, 0.5, 0.25, 1}, out)
}

func TestStandardScalerUnfitted(t *testing.T) {
	s := NewStandardScaler()
	require.Equal(t, []float64{1, 2}, s.Transform([]float64{1, 2}))
}
