package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cyclopcam/logs"

	"github.com/ranierepsa/codenation/pkg/distributions"
	"github.com/ranierepsa/codenation/pkg/viz"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input : Path to the HTRU2 pulsar CSV (.csv or .csv.gz). Default = pulsar_stars.csv
// --seed  : Seed of the synthetic normal/binomial frame. Default = 42
// --size  : Rows of the synthetic frame. Default = 10000
// --plots : Directory for distribution plots (PNG). Empty disables plotting
//
// Example:
//   go run ./cmd/examples/Distributions --input pulsar_stars.csv --plots ./plots
//
// ---------------------------------------------------------------------
//

func tuple(v []float64) string {
	s := "("
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.3f", x)
	}
	return s + ")"
}

func runSynthetic(log logs.Log, seed uint64, size int, plots string) error {
	synth, err := distributions.NewSynthetic(seed, size)
	if err != nil {
		return err
	}
	log.Infof("Generated %v synthetic rows with seed %v", size, seed)

	qd, err := synth.QuartileDiff()
	if err != nil {
		return err
	}
	fmt.Printf("1. quartiles normal - binomial        %s\n", tuple(qd[:]))

	within, err := synth.ECDFWithinOneStd()
	if err != nil {
		return err
	}
	fmt.Printf("2. ecdf in [mean - s, mean + s]       %.3f\n", within)
	for _, k := range []float64{2, 3} {
		p, err := synth.ECDFWithinStd(k)
		if err != nil {
			return err
		}
		fmt.Printf("   ecdf in [mean - %gs, mean + %gs]     %.3f\n", k, k, p)
	}

	mv, err := synth.MeanVarDiff()
	if err != nil {
		return err
	}
	fmt.Printf("3. (mean, var) binomial - normal      %s\n", tuple(mv[:]))

	if plots == "" {
		return nil
	}
	for _, col := range []string{distributions.ColNormal, distributions.ColBinomial} {
		values, err := synth.Table.FloatsNonNull(col)
		if err != nil {
			return err
		}
		path := filepath.Join(plots, col+".png")
		if err := viz.Distplot(values, col, path); err != nil {
			return err
		}
		log.Infof("Wrote %v", path)
	}
	return nil
}

func runPulsars(ctx context.Context, log logs.Log, input, plots string) error {
	stars, err := distributions.LoadPulsars(ctx, log, input)
	if err != nil {
		return err
	}

	probs := stars.ECDFAtNormalQuantiles()
	fmt.Printf("4. ecdf at N(0,1) q80, q90, q95       %s\n", tuple(probs[:]))

	qd, err := stars.QuartileDiffFromNormal()
	if err != nil {
		return err
	}
	fmt.Printf("5. quartiles minus N(0,1) quartiles   %s\n", tuple(qd[:]))

	if plots == "" {
		return nil
	}
	z := stars.FalsePulsarMeanProfileStandardized()
	for name, plot := range map[string]func([]float64, string, string) error{
		"false_pulsar_mean_profile_standardized.png":      viz.Distplot,
		"false_pulsar_mean_profile_standardized_ecdf.png": viz.ECDFPlot,
	} {
		path := filepath.Join(plots, name)
		if err := plot(z, "false pulsar mean_profile (standardized)", path); err != nil {
			return err
		}
		log.Infof("Wrote %v", path)
	}
	return nil
}

func main() {
	input := flag.String("input", "pulsar_stars.csv", "Path to the pulsar stars CSV file")
	seed := flag.Uint64("seed", distributions.DefaultSeed, "Seed of the synthetic frame")
	size := flag.Int("size", distributions.DefaultSize, "Rows of the synthetic frame")
	plots := flag.String("plots", "", "Directory for plots (empty disables plotting)")
	flag.Parse()

	log, err := logs.NewLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if *plots != "" {
		if err := os.MkdirAll(*plots, 0755); err != nil {
			log.Errorf("Failed to create plot directory: %v", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runSynthetic(log, *seed, *size, *plots); err != nil {
		log.Errorf("Synthetic distributions: %v", err)
		os.Exit(1)
	}
	if err := runPulsars(ctx, log, *input, *plots); err != nil {
		log.Errorf("Pulsar stars: %v", err)
		os.Exit(1)
	}
}
