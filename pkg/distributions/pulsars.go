package distributions

import (
	"context"
	"fmt"

	"github.com/cyclopcam/logs"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ranierepsa/codenation/pkg/data"
	"github.com/ranierepsa/codenation/pkg/stats"
)

// PulsarFeatures are the eight candidate features, in file order. The ninth
// column of the file is the target class.
var PulsarFeatures = []string{
	"mean_profile", "sd_profile", "kurt_profile", "skew_profile",
	"mean_curve", "sd_curve", "kurt_curve", "skew_curve",
}

const (
	ColMeanProfile = "mean_profile"
	ColTarget      = "target"
)

// Pulsars holds the HTRU2 candidates with normalised column names and a
// boolean target.
type Pulsars struct {
	Table *data.Table

	standardized []float64
}

// LoadPulsars reads the pulsar CSV, whose header is replaced by PulsarFeatures
// plus "target". Blank cells are kept as missing values.
func LoadPulsars(ctx context.Context, log logs.Log, path string) (*Pulsars, error) {
	samples, err := data.ReadSamples(ctx, log, path, len(PulsarFeatures))
	if err != nil {
		return nil, err
	}
	t, err := data.SamplesTable(samples, PulsarFeatures, ColTarget, series.Bool)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return NewPulsars(t)
}

// NewPulsars precomputes the standardized mean_profile of non-pulsars.
func NewPulsars(t *data.Table) (*Pulsars, error) {
	p := &Pulsars{Table: t}
	negatives, err := t.Filter(dataframe.F{Colname: ColTarget, Comparator: series.Eq, Comparando: false})
	if err != nil {
		return nil, err
	}
	profile, err := negatives.FloatsNonNull(ColMeanProfile)
	if err != nil {
		return nil, err
	}
	if len(profile) == 0 {
		return nil, fmt.Errorf("no rows with %v == false: %w", ColTarget, stats.ErrEmpty)
	}
	p.standardized = stats.Standardize(profile)
	return p, nil
}

// FalsePulsarMeanProfileStandardized returns mean_profile where target is
// false, standardized to zero mean and unit variance. The slice is a copy.
func (p *Pulsars) FalsePulsarMeanProfileStandardized() []float64 {
	out := make([]float64, len(p.standardized))
	copy(out, p.standardized)
	return out
}

// ECDFAtNormalQuantiles evaluates the empirical CDF of the standardized
// non-pulsar mean_profile at the N(0, 1) quantiles of 0.80, 0.90 and 0.95.
func (p *Pulsars) ECDFAtNormalQuantiles() [3]float64 {
	ecdf := stats.NewECDF(p.standardized)
	var out [3]float64
	for i, q := range []float64{0.80, 0.90, 0.95} {
		out[i] = stats.Round(ecdf.Eval(stats.NormalQuantile(q)), Places)
	}
	return out
}

// QuartileDiffFromNormal subtracts the N(0, 1) quartiles from the nearest-rank
// quartiles of the standardized non-pulsar mean_profile.
func (p *Pulsars) QuartileDiffFromNormal() ([3]float64, error) {
	var out [3]float64
	for i, q := range []float64{0.25, 0.50, 0.75} {
		v, err := stats.NthValue(p.standardized, q)
		if err != nil {
			return out, err
		}
		out[i] = stats.Round(v-stats.NormalQuantile(q), Places)
	}
	return out, nil
}
