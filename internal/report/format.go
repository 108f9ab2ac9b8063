package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportKind selects one of the canned reports.
type ReportKind int

const (
	TrendReview ReportKind = iota + 1
	TopSpending
	BestWorstSelling
)

var kindInfo = map[ReportKind]struct{ id, label string }{
	TrendReview:      {"trend-review", "Tren Kepuasan Pelanggan"},
	TopSpending:      {"top-spending", "Total Pengeluaran Tertinggi"},
	BestWorstSelling: {"best-worst-selling", "10 Barang Paling dan Tidak Laris"},
}

// Kinds lists every report kind in menu order.
func Kinds() []ReportKind {
	return []ReportKind{TrendReview, TopSpending, BestWorstSelling}
}

// String returns the stable id of k.
func (k ReportKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.id
	}
	return "report-kind(" + strconv.Itoa(int(k)) + ")"
}

// Label returns the dashboard menu label of k.
func (k ReportKind) Label() string { return kindInfo[k].label }

// ParseReportKind resolves a stable id or a dashboard label.
func ParseReportKind(s string) (ReportKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		info := kindInfo[k]
		if strings.EqualFold(s, info.id) || strings.EqualFold(s, info.label) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReportKind, s)
}

func (k ReportKind) MarshalText() ([]byte, error) {
	if _, ok := kindInfo[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReportKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *ReportKind) UnmarshalText(b []byte) error {
	v, err := ParseReportKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Findings carries the ranked values a conclusion is rendered from.
// TrendReview reads Extremes, TopSpending reads the first two Top entries,
// BestWorstSelling reads Top and Bottom.
type Findings struct {
	Extremes Extremes
	Top      RankedResult
	Bottom   RankedResult
}

const trendReviewText = `### Kesimpulan Tren Kepuasan Pelanggan ({{ join ", " .Years }}):
- Skor ulasan tertinggi tercatat pada {{ month .Extremes.MaxKey }} dengan nilai {{ decimal .Extremes.MaxValue }}.
- Sebaliknya, skor ulasan terendah tercatat pada {{ month .Extremes.MinKey }} dengan nilai {{ decimal .Extremes.MinValue }}.
`

const topSpendingText = `### Kesimpulan Pengeluaran Tertinggi oleh Wilayah ({{ join ", " .Years }}):
{{- $first := index .Top.Entries 0 }}{{ $second := index .Top.Entries 1 }}
- Wilayah **{{ $first.Key }}** menjadi kota dengan total pengeluaran tertinggi, mencapai sekitar **{{ decimal $first.Value }}**, diikuti oleh **{{ $second.Key }}** dengan pengeluaran sekitar **{{ decimal $second.Value }}**.
- Ini menunjukkan bahwa pelanggan di wilayah metropolitan besar memiliki daya beli yang lebih tinggi.`

const bestWorstSellingText = `### Kesimpulan Barang Paling dan Tidak Laris ({{ join ", " .Years }}):
- Produk terlaris didominasi oleh kategori kebutuhan sehari-hari, dengan total penjualan mencapai **{{ thousands .Top.Sum }}** unit.
- Sebaliknya, produk dengan penjualan terendah menunjukkan bahwa ada kategori yang kurang diminati, dengan penjualan di bawah **{{ thousands .Bottom.Min }}** unit.`

var templates = map[ReportKind]*template.Template{
	TrendReview:      mustTemplate(TrendReview, trendReviewText),
	TopSpending:      mustTemplate(TopSpending, topSpendingText),
	BestWorstSelling: mustTemplate(BestWorstSelling, bestWorstSellingText),
}

func mustTemplate(kind ReportKind, text string) *template.Template {
	return template.Must(template.New(kind.String()).Option("missingkey=error").Funcs(funcMap()).Parse(text))
}

func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()

	extra := map[string]any{
		"decimal":   FormatDecimal,
		"thousands": FormatThousands,
		"month":     FormatMonth,
	}

	for name, fn := range extra {
		fm[name] = fn
	}

	return fm
}

// FormatReport renders the conclusion of kind from f. years are rendered in
// the given order. The output depends on its arguments only.
func FormatReport(kind ReportKind, f Findings, years []int) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownReportKind, int(kind))
	}

	switch kind {
	case TopSpending:
		if f.Top.Len() < 2 {
			return "", fmt.Errorf("%s needs two ranked entries, got %d: %w", kind, f.Top.Len(), ErrEmptyResult)
		}
	case BestWorstSelling:
		if f.Top.Len() == 0 || f.Bottom.Len() == 0 {
			return "", fmt.Errorf("%s needs best and worst entries: %w", kind, ErrEmptyResult)
		}
	}

	data := struct {
		Findings
		Years []string
	}{Findings: f, Years: make([]string, len(years))}
	for i, y := range years {
		data.Years[i] = strconv.Itoa(y)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", kind, err)
	}
	return buf.String(), nil
}

// JoinYears renders years comma-separated, the way conclusions and titles show them.
func JoinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}

// FormatDecimal renders v with two decimals.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatThousands rounds v and groups its digits with commas.
func FormatThousands(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", int64(math.Round(v)))
}

// FormatMonth renders a timestamp key as "January 2006"; other keys render
// as their plain value.
func FormatMonth(v Value) string {
	if v.Kind() != KindTime || v.IsNull() {
		return v.String()
	}
	return v.Time().Format("January 2006")
}
