// Package frame provides a minimal row-indexed table of named columns: just
// enough tabular structure to pull one categorical column out for encoding
// and merge the encoder's output back in by row position.
//
// The table is deliberately not a dataframe. It has no expression language,
// no grouping, no missing-value handling; those belong to whatever loaded
// the data. Columns are typed (string, int, float64) and share one row
// count.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/catenc/catenc/errs"
)

// Column is one named, typed column of a table.
type Column interface {
	Name() string
	Len() int
}

// StringColumn holds raw categorical labels.
type StringColumn struct {
	name   string
	values []string
}

// NewStringColumn creates a string column over a copy of values.
func NewStringColumn(name string, values []string) StringColumn {
	return StringColumn{name: name, values: append([]string(nil), values...)}
}

func (c StringColumn) Name() string { return c.name }
func (c StringColumn) Len() int     { return len(c.values) }

// Values returns a copy of the column values.
func (c StringColumn) Values() []string {
	return append([]string(nil), c.values...)
}

// IntColumn holds integer codes (label, indicator and bit columns).
type IntColumn struct {
	name   string
	values []int
}

// NewIntColumn creates an int column over a copy of values.
func NewIntColumn(name string, values []int) IntColumn {
	return IntColumn{name: name, values: append([]int(nil), values...)}
}

func (c IntColumn) Name() string { return c.name }
func (c IntColumn) Len() int     { return len(c.values) }

// Values returns a copy of the column values.
func (c IntColumn) Values() []int {
	return append([]int(nil), c.values...)
}

// FloatColumn holds numeric codes (replace, one-hot and contrast columns).
type FloatColumn struct {
	name   string
	values []float64
}

// NewFloatColumn creates a float column over a copy of values.
func NewFloatColumn(name string, values []float64) FloatColumn {
	return FloatColumn{name: name, values: append([]float64(nil), values...)}
}

func (c FloatColumn) Name() string { return c.name }
func (c FloatColumn) Len() int     { return len(c.values) }

// Values returns a copy of the column values.
func (c FloatColumn) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Table is an ordered collection of named columns sharing one row count.
// Row position is the join key: attached columns line up with existing rows
// by index.
type Table struct {
	rows  int
	cols  []Column
	index map[string]int
}

// NewTable creates an empty table with a fixed row count.
func NewTable(rows int) *Table {
	return &Table{rows: rows, index: make(map[string]int)}
}

// FromCSV reads a headered CSV stream into a table of string columns.
//
// Every record must have the same number of fields as the header; the csv
// reader enforces that. Values are kept as raw strings, ready for encoding
// or range splitting.
func FromCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make([][]string, len(header))
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		for i, value := range record {
			columns[i] = append(columns[i], value)
		}
		rows++
	}

	t := NewTable(rows)
	for i, name := range header {
		if err := t.attach(StringColumn{name: name, values: columns[i]}); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Rows returns the table's row count.
func (t *Table) Rows() int {
	return t.rows
}

// Names returns the column names in attachment order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}

	return names
}

// Strings returns the values of a string column.
//
// Returns:
//   - []string: A copy of the column values
//   - error: errs.ErrUnknownColumn if absent, errs.ErrColumnType if the
//     column is not a string column
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}

	sc, ok := c.(StringColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", errs.ErrColumnType, name, c)
	}

	return sc.Values(), nil
}

// Ints returns the values of an int column.
func (t *Table) Ints(name string) ([]int, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}

	ic, ok := c.(IntColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", errs.ErrColumnType, name, c)
	}

	return ic.Values(), nil
}

// Floats returns the values of a float column.
func (t *Table) Floats(name string) ([]float64, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}

	fc, ok := c.(FloatColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", errs.ErrColumnType, name, c)
	}

	return fc.Values(), nil
}

// AttachStrings adds a string column aligned by row position.
func (t *Table) AttachStrings(name string, values []string) error {
	return t.attach(NewStringColumn(name, values))
}

// AttachInts adds an int column aligned by row position.
func (t *Table) AttachInts(name string, values []int) error {
	return t.attach(NewIntColumn(name, values))
}

// AttachFloats adds a float column aligned by row position.
func (t *Table) AttachFloats(name string, values []float64) error {
	return t.attach(NewFloatColumn(name, values))
}

// AttachFloatMatrix adds one float column per name from row-major vectors,
// as produced by the one-hot and backward-difference encoders. Every row
// vector must have exactly len(names) entries.
func (t *Table) AttachFloatMatrix(names []string, rows [][]float64) error {
	if len(rows) != t.rows {
		return fmt.Errorf("%w: %d rows, table has %d", errs.ErrRowCountMismatch, len(rows), t.rows)
	}

	columns := make([][]float64, len(names))
	for j := range columns {
		columns[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return fmt.Errorf("%w: row %d has %d values, want %d", errs.ErrRowCountMismatch, i, len(row), len(names))
		}
		for j, v := range row {
			columns[j][i] = v
		}
	}

	for j, name := range names {
		if err := t.attach(FloatColumn{name: name, values: columns[j]}); err != nil {
			return err
		}
	}

	return nil
}

// AttachBitMatrix adds one int column per name from row-major bit vectors,
// as produced by the binary encoder.
func (t *Table) AttachBitMatrix(names []string, rows [][]uint8) error {
	if len(rows) != t.rows {
		return fmt.Errorf("%w: %d rows, table has %d", errs.ErrRowCountMismatch, len(rows), t.rows)
	}

	columns := make([][]int, len(names))
	for j := range columns {
		columns[j] = make([]int, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return fmt.Errorf("%w: row %d has %d bits, want %d", errs.ErrRowCountMismatch, i, len(row), len(names))
		}
		for j, v := range row {
			columns[j][i] = int(v)
		}
	}

	for j, name := range names {
		if err := t.attach(IntColumn{name: name, values: columns[j]}); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) attach(c Column) error {
	if c.Len() != t.rows {
		return fmt.Errorf("%w: column %q has %d rows, table has %d", errs.ErrRowCountMismatch, c.Name(), c.Len(), t.rows)
	}
	if _, dup := t.index[c.Name()]; dup {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, c.Name())
	}

	t.index[c.Name()] = len(t.cols)
	t.cols = append(t.cols, c)

	return nil
}

func (t *Table) column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
	}

	return t.cols[i], nil
}
