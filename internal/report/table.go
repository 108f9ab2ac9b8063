package report

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the declared type of a column.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Column declares one named, typed column of a Table.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Schema is the ordered column set shared by every row of a Table.
type Schema []Column

// Value is a single typed cell. The zero Value is a null of unknown kind.
type Value struct {
	kind Kind
	null bool
	str  string
	num  float64
	ts   time.Time
}

// String returns a non-null string cell.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a non-null numeric cell.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Time returns a non-null timestamp cell.
func Time(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// Null returns an absent cell of the given kind.
func Null(kind Kind) Value { return Value{kind: kind, null: true} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNull() bool    { return v.null || v.kind == 0 }
func (v Value) Str() string     { return v.str }
func (v Value) Num() float64    { return v.num }
func (v Value) Time() time.Time { return v.ts }

// String renders the cell for display and for error messages.
func (v Value) String() string {
	if v.IsNull() {
		return ""
	}
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return v.ts.Format("2006-01-02 15:04:05")
	default:
		return v.str
	}
}

// key is the partition identity of a non-null cell within one column.
func (v Value) key() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindTime:
		return v.ts.UTC().Format(time.RFC3339Nano)
	default:
		return v.str
	}
}

// Row maps column names to cells. It is the construction input of a Table.
type Row map[string]Value

// Table is an immutable, schema-checked set of rows. Row order is the
// insertion order of the source and is kept by every derived Table.
type Table struct {
	schema Schema
	index  map[string]int
	rows   [][]Value
}

// NewTable validates rows against schema once and returns the Table. Every
// row must carry exactly the schema columns; a cell is either null or of the
// declared kind.
func NewTable(schema Schema, rows []Row) (*Table, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: empty schema", ErrSchema)
	}

	index := make(map[string]int, len(schema))
	for i, col := range schema {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrSchema, i)
		}
		if col.Kind < KindString || col.Kind > KindTime {
			return nil, fmt.Errorf("%w: column %q has invalid kind %s", ErrSchema, col.Name, col.Kind)
		}
		if _, dup := index[col.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSchema, col.Name)
		}
		index[col.Name] = i
	}

	data := make([][]Value, 0, len(rows))
	for n, row := range rows {
		cells := make([]Value, len(schema))
		for name, v := range row {
			i, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("%w: row %d has undeclared column %q", ErrSchema, n, name)
			}
			if v.kind == 0 {
				v = Null(schema[i].Kind)
			}
			if v.kind != schema[i].Kind {
				return nil, fmt.Errorf("%w: row %d column %q is %s, want %s", ErrSchema, n, name, v.kind, schema[i].Kind)
			}
			cells[i] = v
		}
		if len(row) != len(schema) {
			for _, col := range schema {
				if _, ok := row[col.Name]; !ok {
					return nil, fmt.Errorf("%w: row %d is missing column %q", ErrSchema, n, col.Name)
				}
			}
		}
		data = append(data, cells)
	}

	s := make(Schema, len(schema))
	copy(s, schema)
	return &Table{schema: s, index: index, rows: data}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Schema returns a copy of the declared columns.
func (t *Table) Schema() Schema {
	s := make(Schema, len(t.schema))
	copy(s, t.schema)
	return s
}

// HasColumn reports whether name is declared.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.schema))
	for j, col := range t.schema {
		row[col.Name] = t.rows[i][j]
	}
	return row
}

// Value returns the cell of row i in column name.
func (t *Table) Value(i int, name string) (Value, error) {
	j, err := t.column(name)
	if err != nil {
		return Value{}, err
	}
	return t.rows[i][j], nil
}

func (t *Table) column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return i, nil
}

func (t *Table) columnOfKind(name string, kinds ...Kind) (int, error) {
	i, err := t.column(name)
	if err != nil {
		return 0, err
	}
	for _, k := range kinds {
		if t.schema[i].Kind == k {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q is %s", ErrSchema, name, t.schema[i].Kind)
}

// subset shares the row storage of t, which is never written after NewTable.
func (t *Table) subset(indices []int) *Table {
	rows := make([][]Value, len(indices))
	for n, i := range indices {
		rows[n] = t.rows[i]
	}
	return &Table{schema: t.schema, index: t.index, rows: rows}
}
