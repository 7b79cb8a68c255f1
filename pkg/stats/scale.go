package stats

// StandardScaler rescales a series to zero mean and unit sample variance.
type StandardScaler struct {
	Mean float64
	Std  float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit records the mean and sample standard deviation of x.
// A constant series gives Std == 0 and Transform then yields NaN or ±Inf.
func (s *StandardScaler) Fit(x []float64) {
	s.Mean, s.Std = Mean(x), Std(x)
	s.fit = true
}

// Transform returns a new slice; x is left untouched.
func (s *StandardScaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	if !s.fit {
		copy(out, x)
		return out
	}
	for i, v := range x {
		out[i] = (v - s.Mean) / s.Std
	}
	return out
}

func (s *StandardScaler) FitTransform(x []float64) []float64 { s.Fit(x); return s.Transform(x) }

// Standardize computes (x - mean) / std with the sample standard deviation.
func Standardize(x []float64) []float64 {
	return NewStandardScaler().FitTransform(x)
}

// MinMaxScale scales a series to [0, 1] as (x - min) / (max - min).
func MinMaxScale(x []float64) []float64 {
	min, max := MinMax(x)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - min) / (max - min)
	}
	return out
}
