package pipeline

import (
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/report"
	"fmt"
	"slices"
	"time"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// DefaultTopN is the group count of the ranked charts
const DefaultTopN = 10

// Options tunes a pipeline run
type Options struct {
	TopN int // groups per ranked chart, DefaultTopN when <= 0
}

// ------------------- Pipeline Runner -------------------

// Run filters the dataset to the requested years and builds the selected
// report from it. The table is never modified, so concurrent runs over the
// same table are safe.
func Run(t *report.Table, req model.ReportRequest, opts Options) (*model.Report, error) {
	kind, err := report.ParseReportKind(req.Kind)
	if err != nil {
		return nil, err
	}

	years := NormalizeYears(req.Years)
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: no years selected", report.ErrInvalidFilter)
	}

	n := opts.TopN
	if n <= 0 {
		n = DefaultTopN
	}

	start := time.Now()
	filtered, err := report.FilterByYears(t, dataset.ColPurchasedAt, years)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %d of %d rows purchased in %v", kind, filtered.Len(), t.Len(), years)

	out := &model.Report{
		Kind:  kind.String(),
		Label: kind.Label(),
		Title: Title(kind, n, years),
		Years: years,
		Rows:  filtered.Len(),
	}

	var f report.Findings
	switch kind {
	case report.TrendReview:
		f, err = trendReview(filtered, out)
	case report.TopSpending:
		f, err = topSpending(filtered, n, out)
	case report.BestWorstSelling:
		f, err = bestWorstSelling(filtered, n, out)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	if out.Conclusion, err = report.FormatReport(kind, f, years); err != nil {
		return nil, err
	}

	log.Debugf("%s: report built in %v", kind, time.Since(start))
	return out, nil
}

// NormalizeYears returns the years sorted ascending without duplicates
func NormalizeYears(years []int) []int {
	out := slices.Clone(years)
	slices.Sort(out)
	return slices.Compact(out)
}

// Title is the heading shown above a report
func Title(kind report.ReportKind, n int, years []int) string {
	joined := report.JoinYears(years)
	switch kind {
	case report.TrendReview:
		return fmt.Sprintf("Tren Kepuasan Pelanggan Berdasarkan Skor Ulasan (%s)", joined)
	case report.BestWorstSelling:
		return fmt.Sprintf("%d Barang Paling dan Tidak Laris (%s)", n, joined)
	default:
		return fmt.Sprintf("%s (%s)", kind.Label(), joined)
	}
}

// ------------------- Stages -------------------

func trendReview(t *report.Table, out *model.Report) (report.Findings, error) {
	monthly, err := report.Aggregate(t, report.ByMonth(dataset.ColPurchasedAt), dataset.ColReviewScore, report.Mean)
	if err != nil {
		return report.Findings{}, err
	}

	x, err := report.Extreme(monthly)
	if err != nil {
		return report.Findings{}, err
	}

	entries := report.SortedByKey(monthly)
	var total float64
	for _, e := range entries {
		total += e.Value
	}
	avg := total / float64(len(entries))

	out.Series = []model.Series{{Name: "Rata-rata Skor Ulasan per Bulan", Points: points(entries, monthLabel)}}
	out.Reference = &avg
	return report.Findings{Extremes: x}, nil
}

func topSpending(t *report.Table, n int, out *model.Report) (report.Findings, error) {
	perCity, err := report.Aggregate(t, report.By(dataset.ColCity), dataset.ColPayment, report.Sum)
	if err != nil {
		return report.Findings{}, err
	}

	// the conclusion names the two best cities whatever the chart size
	top, err := report.TopN(perCity, max(n, 2))
	if err != nil {
		return report.Findings{}, err
	}

	shown := top.Entries[:min(n, top.Len())]
	out.Series = []model.Series{{
		Name:   fmt.Sprintf("%d Kota dengan Total Pengeluaran Tertinggi", n),
		Points: points(shown, keyLabel),
	}}
	return report.Findings{Top: top}, nil
}

func bestWorstSelling(t *report.Table, n int, out *model.Report) (report.Findings, error) {
	sold, err := report.Aggregate(t, report.By(dataset.ColCategory), dataset.ColProductID, report.Count)
	if err != nil {
		return report.Findings{}, err
	}

	top, err := report.TopN(sold, n)
	if err != nil {
		return report.Findings{}, err
	}
	bottom, err := report.BottomN(sold, n)
	if err != nil {
		return report.Findings{}, err
	}

	out.Series = []model.Series{
		{Name: fmt.Sprintf("%d Barang Terlaris", n), Points: points(top.Entries, keyLabel)},
		{Name: fmt.Sprintf("%d Barang Tidak Terlaris", n), Points: points(bottom.Entries, keyLabel)},
	}
	return report.Findings{Top: top, Bottom: bottom}, nil
}

func points(entries []report.Entry, label func(report.Value) string) []model.Point {
	out := make([]model.Point, len(entries))
	for i, e := range entries {
		out[i] = model.Point{Label: label(e.Key), Value: e.Value, Rows: e.Rows}
	}
	return out
}

func keyLabel(v report.Value) string { return v.String() }

func monthLabel(v report.Value) string { return v.Time().Format("2006-01") }
