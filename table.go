package bursar

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
)

// Table is a parsed tabular input with a named-column header. Column names are
// part of each import format's contract: a renamed or missing column fails
// loudly instead of silently defaulting.
type Table struct {
	columns map[string]int
	records [][]string
}

// ReadTable parses CSV-like input. The first record is the header; every data
// record must have the same number of fields (enforced by encoding/csv).
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read input header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read input records: %w", err)
	}
	return &Table{columns: columns, records: records}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.records) }

// Rows yields each data row with its zero-based entry number.
func (t *Table) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, rec := range t.records {
			if !yield(i, Row{columns: t.columns, record: rec}) {
				return
			}
		}
	}
}

// Row is a single data row addressed by column name.
type Row struct {
	columns map[string]int
	record  []string
}

// Get returns the value of the named column, or an error when the input header
// does not carry that column.
func (r Row) Get(column string) (string, error) {
	i, ok := r.columns[column]
	if !ok {
		return "", fmt.Errorf("column %q not found in input header", column)
	}
	return r.record[i], nil
}
