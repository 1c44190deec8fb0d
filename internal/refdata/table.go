// Package refdata reads the reference tables (facts and assumptions) the
// BISKO computation takes emission factors from.
package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Table is a CSV table indexed by one key column.
type Table struct {
	Dataset   string
	KeyColumn string

	header map[string]int
	rows   map[string][]string
}

// ReadTable parses CSV from r. The first record is the header; keyColumn
// must be one of its columns. Later rows with a duplicate key replace
// earlier ones.
func ReadTable(r io.Reader, dataset, keyColumn string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", dataset, ErrEmptyTable)
		}
		return nil, fmt.Errorf("reading %s header: %w", dataset, err)
	}

	t := &Table{
		Dataset:   dataset,
		KeyColumn: keyColumn,
		header:    make(map[string]int, len(head)),
		rows:      make(map[string][]string),
	}
	keyIdx := -1
	for i, name := range head {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == keyColumn {
			keyIdx = i
		}
		t.header[name] = i
	}
	if keyIdx < 0 {
		return nil, fmt.Errorf("%s: %w: %q", dataset, ErrMissingKeyColumn, keyColumn)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dataset, err)
		}
		if keyIdx >= len(record) {
			continue
		}
		t.rows[record[keyIdx]] = record
	}
	return t, nil
}

// LoadTable reads the CSV file at path.
func LoadTable(path, dataset, keyColumn string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s table: %w", dataset, err)
	}
	defer f.Close()
	return ReadTable(f, dataset, keyColumn)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Keys returns the row keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Row returns the row with the given key.
func (t *Table) Row(key string) (*Row, error) {
	data, ok := t.rows[key]
	if !ok {
		return nil, &RowNotFound{LookupFailure: t.failure(key)}
	}
	return &Row{table: t, key: key, data: data}, nil
}

func (t *Table) failure(key string) LookupFailure {
	return LookupFailure{Dataset: t.Dataset, KeyColumn: t.KeyColumn, KeyValue: key}
}

// Row is one row of a Table with typed accessors.
type Row struct {
	table *Table
	key   string
	data  []string
}

// Str returns the raw cell of column.
func (r *Row) Str(column string) (string, error) {
	idx, ok := r.table.header[column]
	if !ok {
		return "", &ColumnNotFound{LookupFailure: r.table.failure(r.key), DataColumn: column}
	}
	if idx >= len(r.data) {
		return "", nil
	}
	return r.data[idx], nil
}

// Float parses column as a float. Empty cells are FieldNotPopulated, NaN
// and infinities are NonFiniteValue.
func (r *Row) Float(column string) (float64, error) {
	raw, err := r.Str(column)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldNotPopulated{LookupFailure: r.table.failure(r.key), DataColumn: column}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s column %q: %w", r.table.failure(r.key), column, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &NonFiniteValue{LookupFailure: r.table.failure(r.key), DataColumn: column, Value: v}
	}
	return v, nil
}

// Int parses column as an integer. Values with a fractional part are
// ExpectedIntGotFloat.
func (r *Row) Int(column string) (int, error) {
	v, err := r.Float(column)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, &ExpectedIntGotFloat{LookupFailure: r.table.failure(r.key), DataColumn: column, Value: v}
	}
	return int(v), nil
}
