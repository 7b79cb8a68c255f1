package data

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cyclopcam/logs"
	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNoRows         = errors.New("no data rows")
)

// MissingValues are the cell spellings read as null.
var MissingValues = []string{"", "NA", "NaN", "<nil>"}

// Kind is the logical dtype of a column.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "object"
	}
}

// Schema describes the structure of a table.
type Schema struct {
	Names []string
	Kinds []Kind
}

// Table is a read-only view over a loaded dataset. Every method that derives
// data returns fresh slices or a new Table.
type Table struct {
	df     dataframe.DataFrame
	schema Schema
}

// ReadTable loads a CSV file with a header row. Files ending in .gz are
// decompressed on the fly.
func ReadTable(log logs.Log, path string, opts ...dataframe.LoadOption) (*Table, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	opts = append([]dataframe.LoadOption{dataframe.NaNValues(MissingValues)}, opts...)
	t, err := NewTable(dataframe.ReadCSV(in, opts...))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	rows, cols := t.Shape()
	log.Infof("Loaded %v rows, %v columns from %v", humanize.Comma(int64(rows)), cols, path)
	return t, nil
}

// NewTable wraps a dataframe and infers the kind of every column. Integer
// columns holding missing values are promoted to KindFloat.
func NewTable(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	if df.Nrow() == 0 {
		return nil, ErrNoRows
	}
	names := df.Names()
	kinds := make([]Kind, len(names))
	for i, name := range names {
		col := df.Col(name)
		switch col.Type() {
		case series.Int:
			kinds[i] = KindInt
			if slices.Contains(col.IsNaN(), true) {
				kinds[i] = KindFloat
			}
		case series.Float:
			kinds[i] = KindFloat
		case series.Bool:
			kinds[i] = KindBool
		default:
			kinds[i] = KindString
		}
	}
	return &Table{df: df, schema: Schema{Names: names, Kinds: kinds}}, nil
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() (rows, cols int) {
	return t.df.Dims()
}

func (t *Table) Schema() Schema {
	return Schema{Names: slices.Clone(t.schema.Names), Kinds: slices.Clone(t.schema.Kinds)}
}

func (t *Table) Names() []string {
	return slices.Clone(t.schema.Names)
}

// Column returns the named column.
func (t *Table) Column(name string) (series.Series, error) {
	if !slices.Contains(t.schema.Names, name) {
		return series.Series{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	col := t.df.Col(name)
	return col, col.Err
}

// Floats returns the column as float64 values. Missing cells are NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Type() == series.String {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return col.Float(), nil
}

// FloatsNonNull returns the numeric column with missing cells dropped.
func (t *Table) FloatsNonNull(name string) ([]float64, error) {
	all, err := t.Floats(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(all))
	for _, v := range all {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// IsNull reports, per row, whether the named column is missing.
func (t *Table) IsNull(name string) ([]bool, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return col.IsNaN(), nil
}

// Records returns every row as strings, without the header.
func (t *Table) Records() [][]string {
	return t.df.Records()[1:]
}

// Filter returns the rows satisfying every filter.
func (t *Table) Filter(filters ...dataframe.F) (*Table, error) {
	df := t.df
	for _, f := range filters {
		if f.Colname != "" && !slices.Contains(t.schema.Names, f.Colname) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, f.Colname)
		}
		df = df.Filter(f)
		if df.Err != nil {
			return nil, df.Err
		}
	}
	names := t.Names()
	kinds := make([]Kind, len(names))
	copy(kinds, t.schema.Kinds)
	return &Table{df: df, schema: Schema{Names: names, Kinds: kinds}}, nil
}
