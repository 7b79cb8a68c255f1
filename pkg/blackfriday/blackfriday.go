// Package blackfriday answers descriptive questions about the Black Friday
// retail-transactions dataset: one row per purchase, with customer
// demographics, product categories and the purchase amount.
package blackfriday

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ranierepsa/codenation/pkg/data"
	"github.com/ranierepsa/codenation/pkg/dataprep"
	"github.com/ranierepsa/codenation/pkg/stats"
)

// Column names of the dataset.
const (
	ColUserID    = "User_ID"
	ColGender    = "Gender"
	ColAge       = "Age"
	ColCategory2 = "Product_Category_2"
	ColCategory3 = "Product_Category_3"
	ColPurchase  = "Purchase"
)

// Analysis holds the loaded table. It never modifies it.
type Analysis struct {
	Table *data.Table
}

func New(t *data.Table) *Analysis {
	return &Analysis{Table: t}
}

// Shape returns (observations, columns).
func (a *Analysis) Shape() (int, int) {
	return a.Table.Shape()
}

// WomenAged26To35 counts rows with Age "26-35" and Gender "F".
func (a *Analysis) WomenAged26To35() (int, error) {
	sub, err := a.Table.Filter(
		dataframe.F{Colname: ColAge, Comparator: series.Eq, Comparando: "26-35"},
		dataframe.F{Colname: ColGender, Comparator: series.Eq, Comparando: "F"},
	)
	if err != nil {
		return 0, err
	}
	rows, _ := sub.Shape()
	return rows, nil
}

// UniqueUsers counts distinct User_ID values.
func (a *Analysis) UniqueUsers() (int, error) {
	col, err := a.Table.Column(ColUserID)
	if err != nil {
		return 0, err
	}
	var ids []string
	for i, v := range col.Records() {
		if !col.Elem(i).IsNA() {
			ids = append(ids, v)
		}
	}
	return dataprep.Unique(ids), nil
}

// DistinctDTypes counts the distinct column kinds of the table.
func (a *Analysis) DistinctDTypes() int {
	seen := map[data.Kind]bool{}
	for _, k := range a.Table.Schema().Kinds {
		seen[k] = true
	}
	return len(seen)
}

// NullRowFraction is the share of rows with at least one missing value, in [0, 1].
func (a *Analysis) NullRowFraction() (float64, error) {
	report, err := dataprep.NullProfile(a.Table)
	if err != nil {
		return 0, err
	}
	return report.RowFraction(), nil
}

// MaxNullCount is the number of missing values in the column with the most of them.
func (a *Analysis) MaxNullCount() (int, error) {
	report, err := dataprep.NullProfile(a.Table)
	if err != nil {
		return 0, err
	}
	_, count := report.MaxColumn()
	return count, nil
}

// MostFrequentCategory3 is the most frequent non-null Product_Category_3 value.
func (a *Analysis) MostFrequentCategory3() (float64, error) {
	values, err := a.Table.Floats(ColCategory3)
	if err != nil {
		return 0, err
	}
	counts := dataprep.ValueCounts(values)
	if len(counts) == 0 {
		return 0, fmt.Errorf("%v: %w", ColCategory3, stats.ErrEmpty)
	}
	return counts[0].Value, nil
}

// NormalizedPurchaseMean is the mean of Purchase after min-max normalization.
func (a *Analysis) NormalizedPurchaseMean() (float64, error) {
	purchase, err := a.Table.FloatsNonNull(ColPurchase)
	if err != nil {
		return 0, err
	}
	return stats.Mean(stats.MinMaxScale(purchase)), nil
}

// StandardizedPurchaseWithinOne counts standardized Purchase values in [-1, 1].
func (a *Analysis) StandardizedPurchaseWithinOne() (int, error) {
	purchase, err := a.Table.FloatsNonNull(ColPurchase)
	if err != nil {
		return 0, err
	}
	return stats.CountInRange(stats.Standardize(purchase), -1, 1), nil
}

// Category2NullImpliesCategory3Null reports whether every row missing
// Product_Category_2 is also missing Product_Category_3.
func (a *Analysis) Category2NullImpliesCategory3Null() (bool, error) {
	null2, err := a.Table.IsNull(ColCategory2)
	if err != nil {
		return false, err
	}
	null3, err := a.Table.IsNull(ColCategory3)
	if err != nil {
		return false, err
	}
	for i := range null2 {
		if null2[i] && !null3[i] {
			return false, nil
		}
	}
	return true, nil
}

// Answers collects the result of every question.
type Answers struct {
	Rows, Cols                    int
	WomenAged26To35               int
	UniqueUsers                   int
	DistinctDTypes                int
	NullRowFraction               float64
	MaxNullCount                  int
	MostFrequentCategory3         float64
	NormalizedPurchaseMean        float64
	StandardizedPurchaseWithinOne int
	Category2NullImpliesCategory3 bool
}

// Answers runs every question in order and stops at the first error.
func (a *Analysis) Answers() (Answers, error) {
	var ans Answers
	var err error
	ans.Rows, ans.Cols = a.Shape()
	ans.DistinctDTypes = a.DistinctDTypes()
	if ans.WomenAged26To35, err = a.WomenAged26To35(); err != nil {
		return ans, err
	}
	if ans.UniqueUsers, err = a.UniqueUsers(); err != nil {
		return ans, err
	}
	if ans.NullRowFraction, err = a.NullRowFraction(); err != nil {
		return ans, err
	}
	if ans.MaxNullCount, err = a.MaxNullCount(); err != nil {
		return ans, err
	}
	if ans.MostFrequentCategory3, err = a.MostFrequentCategory3(); err != nil {
		return ans, err
	}
	if ans.NormalizedPurchaseMean, err = a.NormalizedPurchaseMean(); err != nil {
		return ans, err
	}
	if ans.StandardizedPurchaseWithinOne, err = a.StandardizedPurchaseWithinOne(); err != nil {
		return ans, err
	}
	if ans.Category2NullImpliesCategory3, err = a.Category2NullImpliesCategory3Null(); err != nil {
		return ans, err
	}
	return ans, nil
}
