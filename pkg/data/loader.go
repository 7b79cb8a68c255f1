package data

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cyclopcam/logs"
	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	gzip "github.com/klauspost/pgzip"
)

// Sample represents a single numeric record split into features and label.
type Sample struct {
	X []float64
	Y float64
}

// openInput opens path, decompressing it when it ends in .gz.
func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}
	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("gzip %v: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: file}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}

// StreamCSV streams CSV rows as Samples through a channel. The first record is
// treated as a header and skipped. labelCol is the index of the label.
// Missing cells (see MissingValues) are read as NaN; records that fail to
// parse are skipped with a warning. Any other read error stops the stream.
// Cancel ctx to stop early; out is closed when the producer exits, after which
// the returned channel yields the error that stopped it, or nil at EOF.
func StreamCSV(ctx context.Context, log logs.Log, path string, labelCol int, out chan<- Sample) (<-chan error, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bufio.NewReader(in))
	reader.ReuseRecord = true

	errc := make(chan error, 1)
	go func() {
		defer in.Close()
		defer close(out)
		errc <- produceSamples(ctx, log, path, reader, labelCol, out)
		close(errc)
	}()
	return errc, nil
}

func produceSamples(ctx context.Context, log logs.Log, path string, reader *csv.Reader, labelCol int, out chan<- Sample) error {
	headerDone := false
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			log.Warnf("%v: skipping record %v: %v", path, line, err)
			headerDone = true
			continue
		}
		if err != nil {
			return fmt.Errorf("%v: record %v: %w", path, line, err)
		}
		if !headerDone {
			headerDone = true
			continue
		}
		if labelCol < 0 || labelCol >= len(rec) {
			log.Warnf("%v: skipping record %v: label column %v out of bounds", path, line, labelCol)
			continue
		}

		x, y, err := parseRecord(rec, labelCol)
		if err != nil {
			log.Warnf("%v: skipping record %v: %v", path, line, err)
			continue
		}
		select {
		case out <- Sample{X: x, Y: y}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func parseRecord(rec []string, labelCol int) ([]float64, float64, error) {
	x := make([]float64, 0, len(rec)-1)
	var y float64
	for i, s := range rec {
		s = strings.TrimSpace(s)
		v := math.NaN()
		if !slices.Contains(MissingValues, s) {
			var err error
			if v, err = strconv.ParseFloat(s, 64); err != nil {
				return nil, 0, err
			}
		}
		if i == labelCol {
			y = v
		} else {
			x = append(x, v)
		}
	}
	return x, y, nil
}

// ReadSamples drains StreamCSV into a slice.
func ReadSamples(ctx context.Context, log logs.Log, path string, labelCol int) ([]Sample, error) {
	ch := make(chan Sample, 256)
	errc, err := StreamCSV(ctx, log, path, labelCol, ch)
	if err != nil {
		return nil, err
	}
	var samples []Sample
	for s := range ch {
		samples = append(samples, s)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%v: %w", path, ErrNoRows)
	}
	log.Infof("Streamed %v samples from %v", humanize.Comma(int64(len(samples))), path)
	return samples, nil
}

// SamplesTable lays samples out as a table with one column per feature and a
// trailing label column. A label of type series.Bool is true when non-zero.
func SamplesTable(samples []Sample, featureNames []string, labelName string, labelType series.Type) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrNoRows
	}
	for i, s := range samples {
		if len(s.X) != len(featureNames) {
			return nil, fmt.Errorf("sample %v has %v features, want %v", i, len(s.X), len(featureNames))
		}
	}
	cols := make([]series.Series, 0, len(featureNames)+1)
	for j, name := range featureNames {
		col := make([]float64, len(samples))
		for i, s := range samples {
			col[i] = s.X[j]
		}
		cols = append(cols, series.New(col, series.Float, name))
	}
	switch labelType {
	case series.Bool:
		labels := make([]bool, len(samples))
		for i, s := range samples {
			labels[i] = s.Y != 0
		}
		cols = append(cols, series.New(labels, series.Bool, labelName))
	case series.Int:
		labels := make([]int, len(samples))
		for i, s := range samples {
			labels[i] = int(s.Y)
		}
		cols = append(cols, series.New(labels, series.Int, labelName))
	default:
		labels := make([]float64, len(samples))
		for i, s := range samples {
			labels[i] = s.Y
		}
		cols = append(cols, series.New(labels, series.Float, labelName))
	}
	return NewTable(dataframe.New(cols...))
}
