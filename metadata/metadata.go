// Package metadata loads tab-delimited metadata tables keyed by a leading
// identifier column, the table shape shared by differential-abundance and
// per-feature annotation files.
//
// The loader owns parsing and column typing only. Judging whether a loaded
// table satisfies a particular format's contract is the job of the
// validators in the formats package; they translate this package's failures
// into their own error surface.
package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ColumnType classifies the values of a column.
type ColumnType string

const (
	// Numeric means every non-empty value in the column parses as a float.
	Numeric ColumnType = "numeric"
	// Categorical is every column that is not Numeric.
	Categorical ColumnType = "categorical"
)

// ErrEmpty reports a file with no header line at all (empty, or nothing but
// blank lines and comments).
var ErrEmpty = errors.New("metadata file is empty")

// FileError records a structural problem in a metadata file.
type FileError struct {
	Line int
	Msg  string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("metadata file error on line %d: %s", e.Line, e.Msg)
}

// Column is one non-identifier column of a loaded table.
type Column struct {
	Name   string
	Type   ColumnType
	Values []string
}

// Table is an immutable loaded metadata table: an ordered identifier column
// plus zero or more typed value columns.
type Table struct {
	idHeader string
	ids      []string
	columns  []Column
}

// IDHeader returns the name of the identifier column.
func (t *Table) IDHeader() string { return t.idHeader }

// IDs returns the row identifiers in file order.
func (t *Table) IDs() []string { return t.ids }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.ids) }

// ColumnCount returns the number of columns beyond the identifier column.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Columns returns the non-identifier columns in file order.
func (t *Table) Columns() []Column { return t.columns }

// Column returns the named column, if present.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// FilterNumeric returns a view of the table keeping only numeric columns.
func (t *Table) FilterNumeric() *Table {
	filtered := &Table{idHeader: t.idHeader, ids: t.ids}
	for _, c := range t.columns {
		if c.Type == Numeric {
			filtered.columns = append(filtered.columns, c)
		}
	}
	return filtered
}

// Load reads a tab-delimited table from r. The first non-blank, non-comment
// line is the header; its first cell names the identifier column. Every
// later non-blank, non-comment line is a data row whose first cell is the
// row identifier. Rows must have exactly as many cells as the header; a
// mismatch is reported as a *FileError with the offending line number.
// Column types are inferred after the scan.
func Load(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		header     []string
		lineNumber int
		t          = &Table{}
		values     [][]string
	)
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}

		cells := strings.Split(line, "\t")
		if header == nil {
			if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
				return nil, &FileError{Line: lineNumber, Msg: "header is missing an identifier column name"}
			}
			header = cells
			t.idHeader = cells[0]
			values = make([][]string, len(cells)-1)
			continue
		}

		if len(cells) != len(header) {
			return nil, &FileError{Line: lineNumber, Msg: fmt.Sprintf(
				"expected %d tab-separated values, found %d", len(header), len(cells))}
		}
		t.ids = append(t.ids, cells[0])
		for i, cell := range cells[1:] {
			values[i] = append(values[i], cell)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Line: lineNumber, Msg: err.Error()}
	}
	if header == nil {
		return nil, ErrEmpty
	}

	for i, name := range header[1:] {
		t.columns = append(t.columns, Column{
			Name:   name,
			Type:   inferType(values[i]),
			Values: values[i],
		})
	}
	return t, nil
}

// inferType reports Numeric iff every non-empty value parses as a float.
// A column with no values at all is Numeric by convention (vacuously typed).
func inferType(values []string) ColumnType {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return Categorical
		}
	}
	return Numeric
}
