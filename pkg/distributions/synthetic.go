// Package distributions compares probability distributions through quantiles,
// moments and empirical CDFs: a synthetic normal sample against a synthetic
// binomial one, and a standardized pulsar feature against N(0, 1).
package distributions

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ranierepsa/codenation/pkg/data"
	"github.com/ranierepsa/codenation/pkg/stats"
)

const (
	ColNormal   = "normal"
	ColBinomial = "binomial"

	DefaultSeed = 42
	DefaultSize = 10000

	NormalMu    = 20
	NormalSigma = 4
	BinomialN   = 100
	BinomialP   = 0.2

	// Places is the rounding precision of every reported answer.
	Places = 3
)

// Synthetic holds a frame with a normal and a binomial column of equal length.
type Synthetic struct {
	Table *data.Table
}

// NewSynthetic draws size values from N(20, 4²) and Binomial(100, 0.2).
// The same seed always yields the same frame.
func NewSynthetic(seed uint64, size int) (*Synthetic, error) {
	if size <= 0 {
		return nil, fmt.Errorf("synthetic size %v: %w", size, data.ErrNoRows)
	}
	src := rand.NewSource(seed)
	normal := distuv.Normal{Mu: NormalMu, Sigma: NormalSigma, Src: src}
	binomial := distuv.Binomial{N: BinomialN, P: BinomialP, Src: src}

	norm := make([]float64, size)
	for i := range norm {
		norm[i] = normal.Rand()
	}
	binom := make([]int, size)
	for i := range binom {
		binom[i] = int(binomial.Rand())
	}

	t, err := data.NewTable(dataframe.New(
		series.New(norm, series.Float, ColNormal),
		series.New(binom, series.Int, ColBinomial),
	))
	if err != nil {
		return nil, err
	}
	return &Synthetic{Table: t}, nil
}

func (s *Synthetic) columns() (norm, binom []float64, err error) {
	if norm, err = s.Table.FloatsNonNull(ColNormal); err != nil {
		return nil, nil, err
	}
	if binom, err = s.Table.FloatsNonNull(ColBinomial); err != nil {
		return nil, nil, err
	}
	return norm, binom, nil
}

// QuartileDiff returns (q1_norm - q1_binom, q2_norm - q2_binom, q3_norm - q3_binom).
func (s *Synthetic) QuartileDiff() ([3]float64, error) {
	norm, binom, err := s.columns()
	if err != nil {
		return [3]float64{}, err
	}
	qn, qb := stats.Quartiles(norm), stats.Quartiles(binom)
	var out [3]float64
	for i := range out {
		out[i] = stats.Round(qn[i]-qb[i], Places)
	}
	return out, nil
}

// ECDFWithinStd is the empirical probability of the normal column falling in
// [mean - k*s, mean + k*s].
func (s *Synthetic) ECDFWithinStd(k float64) (float64, error) {
	norm, err := s.Table.FloatsNonNull(ColNormal)
	if err != nil {
		return 0, err
	}
	mean, sd := stats.Mean(norm), stats.Std(norm)
	ecdf := stats.NewECDF(norm)
	return stats.Round(ecdf.Interval(mean-k*sd, mean+k*sd), Places), nil
}

func (s *Synthetic) ECDFWithinOneStd() (float64, error) {
	return s.ECDFWithinStd(1)
}

// MeanVarDiff returns (m_binom - m_norm, v_binom - v_norm) with sample variances.
func (s *Synthetic) MeanVarDiff() ([2]float64, error) {
	norm, binom, err := s.columns()
	if err != nil {
		return [2]float64{}, err
	}
	mn, vn := stats.MeanVar(norm)
	mb, vb := stats.MeanVar(binom)
	return [2]float64{stats.Round(mb-mn, Places), stats.Round(vb-vn, Places)}, nil
}
