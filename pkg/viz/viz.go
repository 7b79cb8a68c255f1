package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ranierepsa/codenation/pkg/stats"
)

// DefaultBins is the histogram resolution of Distplot.
const DefaultBins = 50

var (
	width  = 12 * vg.Inch
	height = 8 * vg.Inch
)

// Distplot saves a density-normalised histogram of values overlaid with a
// kernel density estimate. The image format follows the file extension.
func Distplot(values []float64, title, path string) error {
	clean := dropNaN(values)
	if len(clean) < 2 {
		return errors.New("distplot needs at least two values")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Density"

	h, err := plotter.NewHist(plotter.Values(clean), DefaultBins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 76, G: 114, B: 176, A: 128}
	p.Add(h)

	kde := &mstats.KDE{Sample: mstats.Sample{Xs: clean}}
	curve := plotter.NewFunction(kde.PDF)
	curve.XMin, curve.XMax = kde.Bounds()
	curve.Samples = 200
	curve.Color = color.RGBA{R: 196, G: 78, B: 82, A: 255}
	curve.Width = vg.Points(2)
	p.Add(curve)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %v: %w", path, err)
	}
	return nil
}

// ECDFPlot saves the empirical CDF of values as a step line.
func ECDFPlot(values []float64, title, path string) error {
	xs, ys := stats.NewECDF(values).Points()
	if len(xs) == 0 {
		return errors.New("ecdf plot needs at least one value")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "F(x)"
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.StepStyle = plotter.PostStep
	l.Color = color.RGBA{B: 255, A: 255, R: 50, G: 50}
	p.Add(l)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %v: %w", path, err)
	}
	return nil
}

func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
