package blast6

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const hit = "query1\tsubject1\t99.5\t100\t1\t0\t1\t100\t5\t104\t1e-50\t200.0\n"

func TestReaderRead(t *testing.T) {
	r := NewReader(strings.NewReader("# comment\n\n" + hit))

	rec, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.QueryID != "query1" || rec.SubjectID != "subject1" {
		t.Errorf("ids = %q/%q", rec.QueryID, rec.SubjectID)
	}
	if rec.PercentIdentity != 99.5 {
		t.Errorf("PercentIdentity = %v, want 99.5", rec.PercentIdentity)
	}
	if rec.AlignmentLength != 100 || rec.Mismatches != 1 || rec.GapOpens != 0 {
		t.Errorf("alignment stats = %d/%d/%d", rec.AlignmentLength, rec.Mismatches, rec.GapOpens)
	}
	if rec.QueryStart != 1 || rec.QueryEnd != 100 || rec.SubjectStart != 5 || rec.SubjectEnd != 104 {
		t.Errorf("coordinates = %d-%d / %d-%d", rec.QueryStart, rec.QueryEnd, rec.SubjectStart, rec.SubjectEnd)
	}
	if rec.EValue != 1e-50 || rec.BitScore != 200.0 {
		t.Errorf("scores = %v/%v", rec.EValue, rec.BitScore)
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last record, got: %v", err)
	}
}

func TestReaderParseErrors(t *testing.T) {
	testCases := []struct {
		name       string
		content    string
		wantColumn string
	}{
		{"too few fields", "query1\tsubject1\t99.5\n", ""},
		{"bad pident", strings.Replace(hit, "99.5", "high", 1), "pident"},
		{"bad length", strings.Replace(hit, "\t100\t1\t", "\tlong\t1\t", 1), "length"},
		{"bad evalue", strings.Replace(hit, "1e-50", "tiny", 1), "evalue"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tc.content)).Read()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %T: %v", err, err)
			}
			if perr.Line != 1 {
				t.Errorf("ParseError.Line = %d, want 1", perr.Line)
			}
			if perr.Column != tc.wantColumn {
				t.Errorf("ParseError.Column = %q, want %q", perr.Column, tc.wantColumn)
			}
		})
	}
}

func TestRead(t *testing.T) {
	t.Run("multiple records", func(t *testing.T) {
		records, err := Read(strings.NewReader(hit + hit + hit))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Errorf("len(records) = %d, want 3", len(records))
		}
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("comments only", func(t *testing.T) {
		_, err := Read(strings.NewReader("# a\n# b\n"))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("error carries the physical line", func(t *testing.T) {
		_, err := Read(strings.NewReader(hit + "# note\nbroken\trow\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %T: %v", err, err)
		}
		if perr.Line != 3 {
			t.Errorf("ParseError.Line = %d, want 3", perr.Line)
		}
	})
}
