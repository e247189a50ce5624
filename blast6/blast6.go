// Package blast6 parses tabular pairwise-alignment search results in the
// BLAST -outfmt 6 layout: one hit per line, twelve tab-separated fields in
// the default column order, no header. '#' comment lines (written by some
// BLAST+ invocations) and blank lines are skipped.
package blast6

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultColumns are the twelve fields BLAST emits for -outfmt 6 when no
// explicit field list is given, in order.
var DefaultColumns = []string{
	"qseqid", "sseqid", "pident", "length", "mismatch", "gapopen",
	"qstart", "qend", "sstart", "send", "evalue", "bitscore",
}

// ErrEmpty reports a source with no hit records at all.
var ErrEmpty = errors.New("blast6: no records")

// ParseError records a value-level failure with enough context to locate it.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("blast6: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("blast6: line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Record is one parsed hit.
type Record struct {
	QueryID         string
	SubjectID       string
	PercentIdentity float64
	AlignmentLength int
	Mismatches      int
	GapOpens        int
	QueryStart      int
	QueryEnd        int
	SubjectStart    int
	SubjectEnd      int
	EValue          float64
	BitScore        float64
}

// Reader streams records from a source one at a time.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader creates a streaming reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

// Read returns the next record, or io.EOF when the source is exhausted.
func (r *Reader) Read() (*Record, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return r.parseLine(line)
	}
	if err := r.sc.Err(); err != nil {
		return nil, &ParseError{Line: r.line, Err: err}
	}
	return nil, io.EOF
}

func (r *Reader) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != len(DefaultColumns) {
		return nil, &ParseError{Line: r.line, Err: fmt.Errorf(
			"expected %d tab-separated fields, found %d", len(DefaultColumns), len(fields))}
	}

	rec := &Record{QueryID: fields[0], SubjectID: fields[1]}

	var err error
	parseFloat := func(i int, dst *float64) {
		if err != nil {
			return
		}
		var v float64
		if v, err = strconv.ParseFloat(fields[i], 64); err != nil {
			err = &ParseError{Line: r.line, Column: DefaultColumns[i], Value: fields[i], Err: err}
			return
		}
		*dst = v
	}
	parseInt := func(i int, dst *int) {
		if err != nil {
			return
		}
		var v int
		if v, err = strconv.Atoi(fields[i]); err != nil {
			err = &ParseError{Line: r.line, Column: DefaultColumns[i], Value: fields[i], Err: err}
			return
		}
		*dst = v
	}

	parseFloat(2, &rec.PercentIdentity)
	parseInt(3, &rec.AlignmentLength)
	parseInt(4, &rec.Mismatches)
	parseInt(5, &rec.GapOpens)
	parseInt(6, &rec.QueryStart)
	parseInt(7, &rec.QueryEnd)
	parseInt(8, &rec.SubjectStart)
	parseInt(9, &rec.SubjectEnd)
	parseFloat(10, &rec.EValue)
	parseFloat(11, &rec.BitScore)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Read parses every record from r. It returns ErrEmpty if the source holds
// no records (empty, or nothing but blanks and comments).
func Read(r io.Reader) ([]Record, error) {
	rd := NewReader(r)
	var records []Record
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return records, nil
}
