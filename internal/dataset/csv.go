package dataset

import (
	"context"
	"encoding/csv"
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/report"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	logging "github.com/op/go-logging"
	"github.com/sourcegraph/conc/pool"
)

var log = logging.MustGetLogger("log")

// maxShardReaders bounds the files read at once by LoadFiles
const maxShardReaders = 4

// cells read as missing values
var nanValues = []string{"", "NA", "NaN", "nan", "<nil>"}

// ------------------- CSV Ingestion -------------------

// ReadCSV reads the export from r. Extra columns are ignored; every column of
// Schema must be present. A file holding only the header yields no orders.
func ReadCSV(r io.Reader) ([]model.Order, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: csv has no header", report.ErrSchema)
	}

	have := make(map[string]bool, len(records[0]))
	for _, name := range records[0] {
		have[name] = true
	}
	for _, name := range Columns() {
		if !have[name] {
			return nil, fmt.Errorf("%w: csv has no %q column", report.ErrMissingColumn, name)
		}
	}
	if len(records) == 1 {
		return []model.Order{}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	cols := make(map[string]column, len(Schema))
	for _, name := range Columns() {
		s := df.Col(name)
		cols[name] = column{records: s.Records(), nan: s.IsNaN()}
	}

	orders := make([]model.Order, df.Nrow())
	for i := range orders {
		o := &orders[i]
		var err error
		if o.PurchasedAt, err = cols[ColPurchasedAt].time(i); err != nil {
			return nil, rowError(i, ColPurchasedAt, err)
		}
		if o.ReviewScore, err = cols[ColReviewScore].number(i); err != nil {
			return nil, rowError(i, ColReviewScore, err)
		}
		if o.Payment, err = cols[ColPayment].number(i); err != nil {
			return nil, rowError(i, ColPayment, err)
		}
		o.City = cols[ColCity].str(i)
		o.Category = cols[ColCategory].str(i)
		o.ProductID = cols[ColProductID].str(i)
	}
	return orders, nil
}

// LoadFile reads one CSV file from disk
func LoadFile(path string) ([]model.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	start := time.Now()
	orders, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("📄 loaded %d rows from %s in %v", len(orders), path, time.Since(start))
	return orders, nil
}

// LoadFiles reads the shards concurrently and concatenates them in argument
// order. The first failing shard cancels the rest.
func LoadFiles(ctx context.Context, paths ...string) ([]model.Order, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("load dataset: no files given")
	}

	shards := make([][]model.Order, len(paths))
	p := pool.New().WithMaxGoroutines(maxShardReaders).WithErrors().WithContext(ctx).WithCancelOnError()
	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			orders, err := LoadFile(path)
			if err != nil {
				return err
			}
			shards[i] = orders
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range shards {
		total += len(s)
	}
	out := make([]model.Order, 0, total)
	for _, s := range shards {
		out = append(out, s...)
	}
	return out, nil
}

// Load reads the shards and builds the report table from them
func Load(ctx context.Context, paths ...string) (*report.Table, error) {
	orders, err := LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return NewTable(orders)
}

type column struct {
	records []string
	nan     []bool
}

func (c column) str(i int) string {
	if c.nan[i] {
		return ""
	}
	return strings.TrimSpace(c.records[i])
}

func (c column) number(i int) (float64, error) {
	s := c.str(i)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func (c column) time(i int) (time.Time, error) {
	s := c.str(i)
	if s == "" {
		return time.Time{}, nil
	}
	return ParseTimestamp(s)
}

// ParseTimestamp reads a purchase timestamp in any common layout and returns
// it in UTC. Layouts without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func rowError(i int, col string, err error) error {
	// +2 for the header and 1-based line numbers
	return fmt.Errorf("%w: line %d column %q: %v", report.ErrSchema, i+2, col, err)
}
