package dataprep

import (
	"strings"

	"github.com/cespare/xxhash"

	"github.com/ranierepsa/codenation/pkg/data"
)

// NullReport summarises missing values of a table.
type NullReport struct {
	Rows        int
	PerColumn   map[string]int
	RowsAnyNull int
}

// RowFraction is the share of rows holding at least one missing cell.
func (r NullReport) RowFraction() float64 {
	if r.Rows == 0 {
		return 0
	}
	return float64(r.RowsAnyNull) / float64(r.Rows)
}

// MaxColumn returns the column with the most missing cells and its count.
// Ties go to the column that sorts first by name.
func (r NullReport) MaxColumn() (name string, count int) {
	count = -1
	for col, n := range r.PerColumn {
		if n > count || (n == count && col < name) {
			name, count = col, n
		}
	}
	if count < 0 {
		count = 0
	}
	return name, count
}

// NullProfile counts missing cells per column and rows with any missing cell.
func NullProfile(t *data.Table) (NullReport, error) {
	rows, _ := t.Shape()
	report := NullReport{Rows: rows, PerColumn: map[string]int{}}
	anyNull := make([]bool, rows)
	for _, name := range t.Names() {
		nulls, err := t.IsNull(name)
		if err != nil {
			return NullReport{}, err
		}
		n := 0
		for i, isNull := range nulls {
			if isNull {
				n++
				anyNull[i] = true
			}
		}
		report.PerColumn[name] = n
	}
	for _, isNull := range anyNull {
		if isNull {
			report.RowsAnyNull++
		}
	}
	return report, nil
}

// DuplicateRows counts rows whose full record repeats an earlier row.
func DuplicateRows(t *data.Table) int {
	seen := make(map[uint64][][]string)
	dups := 0
	for _, row := range t.Records() {
		key := xxhash.Sum64String(strings.Join(row, "\x1f"))
		found := false
		for _, prev := range seen[key] {
			if equalRecords(prev, row) {
				found = true
				break
			}
		}
		if found {
			dups++
			continue
		}
		seen[key] = append(seen[key], row)
	}
	return dups
}

func equalRecords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
