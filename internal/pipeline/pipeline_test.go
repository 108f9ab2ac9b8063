package pipeline

import (
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/report"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func fixture(t *testing.T) *report.Table {
	t.Helper()
	orders := []model.Order{
		{PurchasedAt: at(2017, 3, 2), ReviewScore: 5, City: "sao paulo", Payment: 100, Category: "toys", ProductID: "p1"},
		{PurchasedAt: at(2017, 3, 9), ReviewScore: 4, City: "rio de janeiro", Payment: 40, Category: "toys", ProductID: "p2"},
		{PurchasedAt: at(2017, 1, 4), ReviewScore: 2, City: "sao paulo", Payment: 20, Category: "books", ProductID: "p3"},
		{PurchasedAt: at(2018, 2, 1), ReviewScore: 3, City: "curitiba", Payment: 300, Category: "toys", ProductID: "p4"},
		{PurchasedAt: at(2018, 2, 3), ReviewScore: math.NaN(), City: "rio de janeiro", Payment: 10, Category: "garden", ProductID: "p5"},
		{PurchasedAt: at(2016, 10, 4), ReviewScore: 1, City: "belem", Payment: 5, Category: "", ProductID: "p6"},
	}
	tbl, err := dataset.NewTable(orders)
	require.NoError(t, err)
	return tbl
}

func labelsOf(s model.Series) []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Label
	}
	return out
}

func TestRunTrendReview(t *testing.T) {
	rep, err := Run(fixture(t), model.ReportRequest{Kind: "trend-review", Years: []int{2017}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "trend-review", rep.Kind)
	assert.Equal(t, "Tren Kepuasan Pelanggan Berdasarkan Skor Ulasan (2017)", rep.Title)
	assert.Equal(t, 3, rep.Rows)

	require.Len(t, rep.Series, 1)
	assert.Equal(t, []string{"2017-01", "2017-03"}, labelsOf(rep.Series[0]))
	assert.Equal(t, 4.5, rep.Series[0].Points[1].Value)
	assert.Equal(t, 2, rep.Series[0].Points[1].Rows)

	require.NotNil(t, rep.Reference)
	assert.InDelta(t, 3.25, *rep.Reference, 1e-12)

	assert.Contains(t, rep.Conclusion, "tertinggi tercatat pada March 2017 dengan nilai 4.50")
	assert.Contains(t, rep.Conclusion, "terendah tercatat pada January 2017 dengan nilai 2.00")
}

func TestRunTopSpending(t *testing.T) {
	rep, err := Run(fixture(t), model.ReportRequest{Kind: "Total Pengeluaran Tertinggi", Years: []int{2018, 2017}}, Options{TopN: 2})
	require.NoError(t, err)

	assert.Equal(t, []int{2017, 2018}, rep.Years)
	assert.Equal(t, "Total Pengeluaran Tertinggi (2017, 2018)", rep.Title)
	require.Len(t, rep.Series, 1)
	assert.Equal(t, []string{"curitiba", "sao paulo"}, labelsOf(rep.Series[0]))
	assert.Equal(t, 120.0, rep.Series[0].Points[1].Value)
	assert.Contains(t, rep.Conclusion, "**curitiba** menjadi kota dengan total pengeluaran tertinggi, mencapai sekitar **300.00**")
	assert.Contains(t, rep.Conclusion, "diikuti oleh **sao paulo** dengan pengeluaran sekitar **120.00**")
}

func TestRunTopSpendingChartOfOne(t *testing.T) {
	rep, err := Run(fixture(t), model.ReportRequest{Kind: "top-spending", Years: []int{2017}}, Options{TopN: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"sao paulo"}, labelsOf(rep.Series[0]))
	assert.Contains(t, rep.Conclusion, "**rio de janeiro**")
}

func TestRunBestWorstSelling(t *testing.T) {
	rep, err := Run(fixture(t), model.ReportRequest{Kind: "best-worst-selling", Years: []int{2016, 2017, 2018}}, Options{TopN: 2})
	require.NoError(t, err)

	assert.Equal(t, "2 Barang Paling dan Tidak Laris (2016, 2017, 2018)", rep.Title)
	require.Len(t, rep.Series, 2)
	assert.Equal(t, []string{"toys", "books"}, labelsOf(rep.Series[0]))
	assert.Equal(t, []string{"books", "garden"}, labelsOf(rep.Series[1]))
	assert.Contains(t, rep.Conclusion, "mencapai **4** unit")
	assert.Contains(t, rep.Conclusion, "di bawah **1** unit")
}

func TestRunIsDeterministic(t *testing.T) {
	tbl := fixture(t)
	req := model.ReportRequest{Kind: "best-worst-selling", Years: []int{2017, 2018}}

	a, err := Run(tbl, req, Options{})
	require.NoError(t, err)
	b, err := Run(tbl, req, Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 6, tbl.Len())
}

func TestRunErrors(t *testing.T) {
	tbl := fixture(t)

	tests := map[string]struct {
		req  model.ReportRequest
		want error
	}{
		"unknown kind":        {model.ReportRequest{Kind: "pie", Years: []int{2017}}, report.ErrUnknownReportKind},
		"no years":            {model.ReportRequest{Kind: "trend-review"}, report.ErrInvalidFilter},
		"no rows in year":     {model.ReportRequest{Kind: "trend-review", Years: []int{2019}}, report.ErrEmptyResult},
		"one city":            {model.ReportRequest{Kind: "top-spending", Years: []int{2016}}, report.ErrEmptyResult},
		"no category in year": {model.ReportRequest{Kind: "best-worst-selling", Years: []int{2016}}, report.ErrEmptyResult},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Run(tbl, test.req, Options{})
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestNormalizeYears(t *testing.T) {
	in := []int{2018, 2016, 2018, 2017}
	assert.Equal(t, []int{2016, 2017, 2018}, NormalizeYears(in))
	assert.Equal(t, []int{2018, 2016, 2018, 2017}, in)
	assert.Empty(t, NormalizeYears(nil))
}
