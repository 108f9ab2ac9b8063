package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RankedResult is an AggregateResult restricted to its n best or worst
// entries, ordered by value.
type RankedResult struct {
	By        GroupBy
	Reduction Reduction
	Entries   []Entry
}

// Len returns the number of ranked entries.
func (r RankedResult) Len() int { return len(r.Entries) }

// Sum adds up the ranked values.
func (r RankedResult) Sum() float64 {
	var total float64
	for _, e := range r.Entries {
		total += e.Value
	}
	return total
}

// Min returns the smallest ranked value, or 0 when the result is empty.
func (r RankedResult) Min() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	m := r.Entries[0].Value
	for _, e := range r.Entries[1:] {
		m = min(m, e.Value)
	}
	return m
}

// TopN returns the n entries with the largest values, largest first. Equal
// values keep their first-appearance order. n larger than the result returns
// every entry.
func TopN(r AggregateResult, n int) (RankedResult, error) {
	return rank(r, n, func(a, b Entry) int { return cmp.Compare(b.Value, a.Value) })
}

// BottomN returns the n entries with the smallest values, smallest first.
func BottomN(r AggregateResult, n int) (RankedResult, error) {
	return rank(r, n, func(a, b Entry) int { return cmp.Compare(a.Value, b.Value) })
}

func rank(r AggregateResult, n int, order func(a, b Entry) int) (RankedResult, error) {
	if n <= 0 {
		return RankedResult{}, fmt.Errorf("%w: got %d", ErrInvalidRank, n)
	}

	entries := r.Entries()
	slices.SortStableFunc(entries, order)
	if len(entries) > n {
		entries = entries[:n]
	}

	return RankedResult{By: r.By, Reduction: r.Reduction, Entries: entries}, nil
}

// Extremes names the highest and lowest partitions of a result.
type Extremes struct {
	MaxKey   Value
	MaxValue float64
	MinKey   Value
	MinValue float64
}

// Extreme returns the maximum and minimum entries of r. When several entries
// share the extreme value the first one to appear wins.
func Extreme(r AggregateResult) (Extremes, error) {
	if r.Len() == 0 {
		return Extremes{}, fmt.Errorf("extremes: %w", ErrEmptyResult)
	}

	first := r.entries[0]
	x := Extremes{MaxKey: first.Key, MaxValue: first.Value, MinKey: first.Key, MinValue: first.Value}
	for _, e := range r.entries[1:] {
		if e.Value > x.MaxValue {
			x.MaxKey, x.MaxValue = e.Key, e.Value
		}
		if e.Value < x.MinValue {
			x.MinKey, x.MinValue = e.Key, e.Value
		}
	}
	return x, nil
}

// SortedByKey returns the entries of r ordered by key: chronologically for
// timestamp keys, numerically for numbers and lexically for strings.
func SortedByKey(r AggregateResult) []Entry {
	entries := r.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int { return compareValues(a.Key, b.Key) })
	return entries
}

func compareValues(a, b Value) int {
	switch a.kind {
	case KindTime:
		return a.ts.Compare(b.ts)
	case KindNumber:
		return cmp.Compare(a.num, b.num)
	default:
		return strings.Compare(a.str, b.str)
	}
}
