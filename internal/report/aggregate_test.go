package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key.String()
	}
	return out
}

func values(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

func TestAggregateSumByCity(t *testing.T) {
	tbl := newTestTable(t,
		order("2017-01-05 10:00:00", "A", 10, 5),
		order("2017-01-06 10:00:00", "B", 30, 4),
		order("2017-01-07 10:00:00", "A", 5, 3),
	)

	res, err := Aggregate(tbl, By("city"), "payment", Sum)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, labels(res.Entries()))
	assert.Equal(t, []float64{15, 30}, values(res.Entries()))
	assert.Equal(t, Sum, res.Reduction)

	a, ok := res.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 15.0, a)
	_, ok = res.Get("Z")
	assert.False(t, ok)
}

func TestAggregateMeanEqualsSumOverCount(t *testing.T) {
	tbl := newTestTable(t,
		order("2017-01-05 10:00:00", "A", 10, 5),
		order("2017-01-06 10:00:00", "B", 30, 4),
		order("2017-01-07 10:00:00", "A", 5, 2),
		order("2017-01-08 10:00:00", "A", 6, 4),
		order("2017-01-09 10:00:00", "B", 3, 1),
	)

	sum, err := Aggregate(tbl, By("city"), "score", Sum)
	require.NoError(t, err)
	count, err := Aggregate(tbl, By("city"), "score", Count)
	require.NoError(t, err)
	mean, err := Aggregate(tbl, By("city"), "score", Mean)
	require.NoError(t, err)

	for _, city := range []string{"A", "B"} {
		s, _ := sum.Get(city)
		c, _ := count.Get(city)
		m, _ := mean.Get(city)
		assert.InDelta(t, s/c, m, 1e-12, city)
	}

	a, _ := sum.Get("A")
	assert.Equal(t, 11.0, a)
	b, _ := count.Get("B")
	assert.Equal(t, 2.0, b)
}

func TestAggregateByMonth(t *testing.T) {
	tbl := newTestTable(t,
		order("2018-02-10 10:00:00", "A", 0, 3),
		order("2018-01-05 10:00:00", "A", 0, 4),
		order("2018-02-28 23:00:00", "B", 0, 5),
		order("2018-01-31 10:00:00", "C", 0, 5),
		order("2017-02-01 00:00:00", "C", 0, 1),
	)

	res, err := Aggregate(tbl, ByMonth("purchased_at"), "score", Mean)
	require.NoError(t, err)

	require.Equal(t, 3, res.Len())
	entries := res.Entries()
	assert.Equal(t, "2018-02-01 00:00:00", entries[0].Key.String())
	assert.Equal(t, 4.0, entries[0].Value)
	assert.Equal(t, 2, entries[0].Rows)
	assert.Equal(t, "2018-01-01 00:00:00", entries[1].Key.String())
	assert.Equal(t, 4.5, entries[1].Value)
	assert.Equal(t, "2017-02-01 00:00:00", entries[2].Key.String())

	sorted := SortedByKey(res)
	assert.Equal(t, []float64{1, 4.5, 4}, values(sorted))
}

func TestAggregateByMonthAcrossOffsets(t *testing.T) {
	saoPaulo := time.FixedZone("-03", -3*60*60)
	utc := order("2018-02-10 10:00:00", "A", 0, 5)
	local := order("2018-02-10 10:00:00", "B", 0, 1)
	local["purchased_at"] = Time(time.Date(2018, 2, 11, 10, 0, 0, 0, saoPaulo))

	res, err := Aggregate(newTestTable(t, utc, local), ByMonth("purchased_at"), "score", Mean)
	require.NoError(t, err)

	require.Equal(t, 1, res.Len())
	entry := res.Entries()[0]
	assert.Equal(t, "February 2018", FormatMonth(entry.Key))
	assert.Equal(t, 3.0, entry.Value)
	assert.Equal(t, 2, entry.Rows)
}

func TestAggregateCountUsesPresence(t *testing.T) {
	schema := Schema{
		{Name: "category", Kind: KindString},
		{Name: "product_id", Kind: KindString},
	}
	tbl, err := NewTable(schema, []Row{
		{"category": String("toys"), "product_id": String("p1")},
		{"category": String("toys"), "product_id": String("p2")},
		{"category": String("books"), "product_id": String("p3")},
		{"category": String("toys"), "product_id": Null(KindString)},
		{"category": Null(KindString), "product_id": String("p4")},
	})
	require.NoError(t, err)

	res, err := Aggregate(tbl, By("category"), "product_id", Count)
	require.NoError(t, err)

	assert.Equal(t, []string{"toys", "books"}, labels(res.Entries()))
	assert.Equal(t, []float64{2, 1}, values(res.Entries()))
}

func TestAggregateDropsPartitionsWithoutValues(t *testing.T) {
	row := order("2017-01-05 10:00:00", "A", 10, 5)
	row["score"] = Null(KindNumber)
	tbl := newTestTable(t, row, order("2017-01-06 10:00:00", "B", 30, 4))

	res, err := Aggregate(tbl, By("city"), "score", Mean)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, labels(res.Entries()))
}

func TestAggregateErrors(t *testing.T) {
	tbl := newTestTable(t, order("2017-01-05 10:00:00", "A", 10, 5))

	_, err := Aggregate(tbl, By("country"), "payment", Sum)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Aggregate(tbl, By("city"), "amount", Sum)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Aggregate(tbl, By("city"), "city", Mean)
	assert.ErrorIs(t, err, ErrSchema)

	_, err = Aggregate(tbl, ByMonth("city"), "payment", Mean)
	assert.ErrorIs(t, err, ErrSchema)

	_, err = Aggregate(tbl, By("city"), "payment", Reduction(42))
	assert.Error(t, err)
}

func TestAggregateEmptyTable(t *testing.T) {
	tbl := newTestTable(t)

	res, err := Aggregate(tbl, By("city"), "payment", Sum)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}
