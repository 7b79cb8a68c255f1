package blackfriday

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cyclopcam/logs"
	"github.com/stretchr/testify/require"

	"github.com/ranierepsa/codenation/pkg/data"
)

const header = "User_ID,Product_ID,Gender,Age,Occupation,City_Category,Stay_In_Current_City_Years,Marital_Status,Product_Category_1,Product_Category_2,Product_Category_3,Purchase\n"

const transactions = header + `1000001,P00069042,F,0-17,10,A,2,0,3,,,8370
1000001,P00248942,F,26-35,10,A,2,0,1,6,14,15200
1000002,P00087842,M,26-35,16,C,4+,0,12,,,1422
1000003,P00085442,F,26-35,15,A,3,0,12,14,16,1057
1000004,P00285442,M,46-50,7,B,2,1,8,,,7969
1000004,P00193542,F,26-35,7,B,2,1,1,2,16,15227
1000005,P00184942,M,26-35,20,A,1,1,5,8,16,19215
1000006,P00346142,F,51-55,9,A,1,0,8,15,14,15854
`

var purchases = []float64{8370, 15200, 1422, 1057, 7969, 15227, 19215, 15854}

func load(t *testing.T, content string) *Analysis {
	path := filepath.Join(t.TempDir(), "black_friday.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	tab, err := data.ReadTable(logs.NewTestingLog(t), path)
	require.NoError(t, err)
	return New(tab)
}

func TestShape(t *testing.T) {
	rows, cols := load(t, transactions).Shape()
	require.Equal(t, 8, rows)
	require.Equal(t, 12, cols)
}

func TestWomenAged26To35(t *testing.T) {
	n, err := load(t, transactions).WomenAged26To35()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestUniqueUsers(t *testing.T) {
	n, err := load(t, transactions).UniqueUsers()
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestDistinctDTypes(t *testing.T) {
	// int64 (ids, codes, purchase), object (strings), float64 (categories with nulls)
	require.Equal(t, 3, load(t, transactions).DistinctDTypes())
}

func TestNulls(t *testing.T) {
	a := load(t, transactions)
	frac, err := a.NullRowFraction()
	require.NoError(t, err)
	require.Equal(t, 3.0/8.0, frac)
	require.GreaterOrEqual(t, frac, 0.0)
	require.LessOrEqual(t, frac, 1.0)

	maxNull, err := a.MaxNullCount()
	require.NoError(t, err)
	require.Equal(t, 3, maxNull)
}

func TestMostFrequentCategory3(t *testing.T) {
	v, err := load(t, transactions).MostFrequentCategory3()
	require.NoError(t, err)
	require.Equal(t, 16.0, v)
}

func TestNormalizedPurchaseMean(t *testing.T) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, p := range purchases {
		min = math.Min(min, p)
		max = math.Max(max, p)
	}
	want := 0.0
	for _, p := range purchases {
		want += (p - min) / (max - min)
	}
	want /= float64(len(purchases))

	got, err := load(t, transactions).NormalizedPurchaseMean()
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func TestStandardizedPurchaseWithinOne(t *testing.T) {
	mean := 0.0
	for _, p := range purchases {
		mean += p
	}
	mean /= float64(len(purchases))
	ss := 0.0
	for _, p := range purchases {
		ss += (p - mean) * (p - mean)
	}
	sd := math.Sqrt(ss / float64(len(purchases)-1))
	want := 0
	for _, p := range purchases {
		if z := (p - mean) / sd; z >= -1 && z <= 1 {
			want++
		}
	}

	got, err := load(t, transactions).StandardizedPurchaseWithinOne()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 5, got)
}

func TestCategory2NullImpliesCategory3Null(t *testing.T) {
	ok, err := load(t, transactions).Category2NullImpliesCategory3Null()
	require.NoError(t, err)
	require.True(t, ok)

	violating := transactions + "1000007,P00000001,M,36-45,1,C,0,0,4,,5,2000\n"
	ok, err = load(t, violating).Category2NullImpliesCategory3Null()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAnswersIdempotent(t *testing.T) {
	a := load(t, transactions)
	first, err := a.Answers()
	require.NoError(t, err)
	second, err := a.Answers()
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, 8, first.Rows)
	require.Equal(t, 3, first.WomenAged26To35)
	require.LessOrEqual(t, first.StandardizedPurchaseWithinOne, first.Rows)
	require.True(t, first.Category2NullImpliesCategory3)
}

func TestMissingColumn(t *testing.T) {
	a := load(t, "User_ID,Gender\n1,F\n2,M\n")
	_, err := a.WomenAged26To35()
	require.ErrorIs(t, err, data.ErrColumnNotFound)
	_, err = a.MostFrequentCategory3()
	require.ErrorIs(t, err, data.ErrColumnNotFound)
	_, err = a.Answers()
	require.Error(t, err)
}
