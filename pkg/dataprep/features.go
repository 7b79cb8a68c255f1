package dataprep

import "math"

// Bin is one histogram bucket covering [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// BinContinuous assigns each value to one of nBins equal-width bins. The
// maximum lands in the last bin; a constant series puts everything in bin 0.
func BinContinuous(X []float64, nBins int) []int {
	bins := make([]int, len(X))
	if len(X) == 0 || nBins <= 0 {
		return bins
	}
	min, max := X[0], X[0]
	for _, v := range X {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / float64(nBins)
	for i, v := range X {
		if width == 0 {
			continue
		}
		b := int((v - min) / width)
		if b >= nBins {
			b = nBins - 1
		}
		bins[i] = b
	}
	return bins
}

// Histogram counts values per equal-width bin. NaN values are ignored.
func Histogram(X []float64, nBins int) []Bin {
	clean := make([]float64, 0, len(X))
	for _, v := range X {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 || nBins <= 0 {
		return nil
	}
	min, max := clean[0], clean[0]
	for _, v := range clean {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	width := (max - min) / float64(nBins)
	out := make([]Bin, nBins)
	for i := range out {
		out[i].Lo = min + float64(i)*width
		out[i].Hi = min + float64(i+1)*width
	}
	for _, b := range BinContinuous(clean, nBins) {
		out[b].Count++
	}
	return out
}
