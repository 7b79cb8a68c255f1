package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cyclopcam/logs"
	"github.com/dustin/go-humanize"

	"github.com/ranierepsa/codenation/pkg/blackfriday"
	"github.com/ranierepsa/codenation/pkg/data"
	"github.com/ranierepsa/codenation/pkg/dataprep"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input     : Path to the Black Friday CSV (.csv or .csv.gz). Default = black_friday.csv
// --hist-bins : Number of bins of the Purchase text histogram. 0 disables it
//
// Example:
//   go run ./cmd/examples/BlackFriday --input black_friday.csv --hist-bins 20
//
// ---------------------------------------------------------------------
//

const barWidth = 50

func printHistogram(bins []dataprep.Bin) {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}
	for _, b := range bins {
		bar := 0
		if peak > 0 {
			bar = b.Count * barWidth / peak
		}
		fmt.Printf("%10.0f - %-10.0f %-*s %s\n", b.Lo, b.Hi, barWidth, strings.Repeat("#", bar), humanize.Comma(int64(b.Count)))
	}
}

func printNulls(report dataprep.NullReport) {
	names := make([]string, 0, len(report.PerColumn))
	for name := range report.PerColumn {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if n := report.PerColumn[name]; n > 0 {
			fmt.Printf("  %-28s %s\n", name, humanize.Comma(int64(n)))
		}
	}
}

func run(log logs.Log, input string, histBins int) error {
	table, err := data.ReadTable(log, input)
	if err != nil {
		return err
	}
	analysis := blackfriday.New(table)
	ans, err := analysis.Answers()
	if err != nil {
		return err
	}

	fmt.Printf("1.  shape                              (%s, %d)\n", humanize.Comma(int64(ans.Rows)), ans.Cols)
	fmt.Printf("2.  women aged 26-35                   %s\n", humanize.Comma(int64(ans.WomenAged26To35)))
	fmt.Printf("3.  unique users                       %s\n", humanize.Comma(int64(ans.UniqueUsers)))
	fmt.Printf("4.  distinct dtypes                    %d\n", ans.DistinctDTypes)
	fmt.Printf("5.  rows with a null                   %.6f\n", ans.NullRowFraction)
	fmt.Printf("6.  nulls in the worst column          %s\n", humanize.Comma(int64(ans.MaxNullCount)))
	fmt.Printf("7.  most frequent Product_Category_3   %g\n", ans.MostFrequentCategory3)
	fmt.Printf("8.  mean of normalized Purchase        %.6f\n", ans.NormalizedPurchaseMean)
	fmt.Printf("9.  standardized Purchase in [-1, 1]   %s\n", humanize.Comma(int64(ans.StandardizedPurchaseWithinOne)))
	fmt.Printf("10. null category 2 => null category 3 %v\n", ans.Category2NullImpliesCategory3)

	report, err := dataprep.NullProfile(table)
	if err != nil {
		return err
	}
	fmt.Println("\nMissing values per column:")
	printNulls(report)
	fmt.Printf("\nDuplicate rows: %s\n", humanize.Comma(int64(dataprep.DuplicateRows(table))))

	if histBins > 0 {
		purchase, err := table.FloatsNonNull(blackfriday.ColPurchase)
		if err != nil {
			return err
		}
		fmt.Println("\nPurchase histogram:")
		printHistogram(dataprep.Histogram(purchase, histBins))
	}
	return nil
}

func main() {
	input := flag.String("input", "black_friday.csv", "Path to the Black Friday CSV file")
	histBins := flag.Int("hist-bins", 20, "Bins of the Purchase text histogram (0 disables it)")
	flag.Parse()

	log, err := logs.NewLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	if err := run(log, *input, *histBins); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
