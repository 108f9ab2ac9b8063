package report

import (
	"fmt"
	"time"
)

// Reduction is the function applied to the values of one partition.
type Reduction int

const (
	Mean Reduction = iota + 1
	Sum
	Count
)

func (r Reduction) String() string {
	switch r {
	case Mean:
		return "mean"
	case Sum:
		return "sum"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("reduction(%d)", int(r))
	}
}

// Period truncates timestamp keys before partitioning.
type Period int

const (
	PeriodNone Period = iota
	PeriodMonth
)

// GroupBy names the key column of a grouping.
type GroupBy struct {
	Column string
	Period Period
}

// By groups on the raw value of column.
func By(column string) GroupBy { return GroupBy{Column: column} }

// ByMonth groups a timestamp column on its year-month.
func ByMonth(column string) GroupBy { return GroupBy{Column: column, Period: PeriodMonth} }

// Entry is one partition of an AggregateResult.
type Entry struct {
	Key   Value
	Value float64
	Rows  int
}

// AggregateResult holds one entry per observed key, in the order the key
// first appeared in the aggregated Table.
type AggregateResult struct {
	By        GroupBy
	Reduction Reduction
	entries   []Entry
}

// Len returns the number of partitions.
func (r AggregateResult) Len() int { return len(r.entries) }

// Entries returns a copy of the partitions in first-appearance order.
func (r AggregateResult) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get returns the reduced value of the partition whose key renders as label.
func (r AggregateResult) Get(label string) (float64, bool) {
	for _, e := range r.entries {
		if e.Key.String() == label {
			return e.Value, true
		}
	}
	return 0, false
}

// Aggregate partitions t by group and reduces the reduce column of every
// partition with how. Rows with a null key are skipped, and null values do
// not contribute to a partition; a partition left without contributing
// values is not emitted.
func Aggregate(t *Table, group GroupBy, reduce string, how Reduction) (AggregateResult, error) {
	keyCol, err := t.column(group.Column)
	if err != nil {
		return AggregateResult{}, fmt.Errorf("aggregate group by: %w", err)
	}
	if group.Period == PeriodMonth {
		if keyCol, err = t.columnOfKind(group.Column, KindTime); err != nil {
			return AggregateResult{}, fmt.Errorf("aggregate group by month: %w", err)
		}
	}

	var valCol int
	switch how {
	case Mean, Sum:
		valCol, err = t.columnOfKind(reduce, KindNumber)
	case Count:
		valCol, err = t.column(reduce)
	default:
		return AggregateResult{}, fmt.Errorf("aggregate: unknown reduction %s", how)
	}
	if err != nil {
		return AggregateResult{}, fmt.Errorf("aggregate %s: %w", how, err)
	}

	type partition struct {
		key Value
		red reducer
	}
	parts := make(map[string]*partition)
	order := make([]string, 0)

	for _, row := range t.rows {
		k := row[keyCol]
		if k.IsNull() {
			continue
		}
		if group.Period == PeriodMonth {
			k = truncateMonth(k)
		}
		id := k.key()

		p, ok := parts[id]
		if !ok {
			p = &partition{key: k, red: newReducer(how)}
			parts[id] = p
			order = append(order, id)
		}

		v := row[valCol]
		if v.IsNull() {
			continue
		}
		p.red.add(v.num)
	}

	result := AggregateResult{By: group, Reduction: how, entries: make([]Entry, 0, len(order))}
	for _, id := range order {
		p := parts[id]
		if p.red.rows() == 0 {
			continue
		}
		value, err := p.red.result()
		if err != nil {
			return AggregateResult{}, fmt.Errorf("aggregate %s of %q: %w", how, p.key, err)
		}
		result.entries = append(result.entries, Entry{Key: p.key, Value: value, Rows: p.red.rows()})
	}

	return result, nil
}

// truncateMonth keys a timestamp by its calendar year and month. The result
// is in UTC so cells of one month share a key whatever their offset.
func truncateMonth(v Value) Value {
	t := v.ts
	return Time(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC))
}

// reducer accumulates the values of one partition.
type reducer interface {
	add(v float64)
	rows() int
	result() (float64, error)
}

func newReducer(how Reduction) reducer {
	switch how {
	case Sum:
		return &sumReducer{}
	case Count:
		return &countReducer{}
	default:
		return &meanReducer{}
	}
}

type sumReducer struct {
	sum float64
	n   int
}

func (s *sumReducer) add(v float64)            { s.sum += v; s.n++ }
func (s *sumReducer) rows() int                { return s.n }
func (s *sumReducer) result() (float64, error) { return s.sum, nil }

type countReducer struct {
	n int
}

func (c *countReducer) add(float64)              { c.n++ }
func (c *countReducer) rows() int                { return c.n }
func (c *countReducer) result() (float64, error) { return float64(c.n), nil }

type meanReducer struct {
	sumReducer
}

func (m *meanReducer) result() (float64, error) {
	if m.n == 0 {
		return 0, ErrEmptyPartition
	}
	return m.sum / float64(m.n), nil
}
