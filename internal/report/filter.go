package report

import "fmt"

// FilterByYears returns the rows of t whose timestamp column falls in one of
// years, in their original order. Rows with a null timestamp never match.
// t itself is left untouched.
func FilterByYears(t *Table, column string, years []int) (*Table, error) {
	if len(years) == 0 {
		return nil, ErrInvalidFilter
	}

	col, err := t.columnOfKind(column, KindTime)
	if err != nil {
		return nil, fmt.Errorf("filter by years: %w", err)
	}

	wanted := make(map[int]bool, len(years))
	for _, y := range years {
		wanted[y] = true
	}

	indices := make([]int, 0, len(t.rows))
	for i, row := range t.rows {
		v := row[col]
		if v.IsNull() {
			continue
		}
		if wanted[v.ts.Year()] {
			indices = append(indices, i)
		}
	}

	return t.subset(indices), nil
}
