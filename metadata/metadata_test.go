package metadata

import (
	"errors"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		content := "id\tlfc\tgroup\nOTU1\t0.5\ttreatment\nOTU2\t-1.0\tcontrol\n"
		table, err := Load(strings.NewReader(content))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if table.IDHeader() != "id" {
			t.Errorf("IDHeader() = %q, want %q", table.IDHeader(), "id")
		}
		if table.RowCount() != 2 {
			t.Errorf("RowCount() = %d, want 2", table.RowCount())
		}
		if table.ColumnCount() != 2 {
			t.Errorf("ColumnCount() = %d, want 2", table.ColumnCount())
		}

		ids := table.IDs()
		if len(ids) != 2 || ids[0] != "OTU1" || ids[1] != "OTU2" {
			t.Errorf("IDs() = %v", ids)
		}
	})

	t.Run("blank lines and comments skipped", func(t *testing.T) {
		content := "# provenance\n\nid\tlfc\n# mid-file comment\nOTU1\t0.5\n\n"
		table, err := Load(strings.NewReader(content))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.RowCount() != 1 {
			t.Errorf("RowCount() = %d, want 1", table.RowCount())
		}
	})

	t.Run("header only is a valid empty table", func(t *testing.T) {
		table, err := Load(strings.NewReader("id\tlfc\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.RowCount() != 0 {
			t.Errorf("RowCount() = %d, want 0", table.RowCount())
		}
		if table.ColumnCount() != 1 {
			t.Errorf("ColumnCount() = %d, want 1", table.ColumnCount())
		}
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("comments only", func(t *testing.T) {
		_, err := Load(strings.NewReader("# one\n# two\n"))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := Load(strings.NewReader("id\tlfc\nOTU1\t0.5\textra\n"))
		var ferr *FileError
		if !errors.As(err, &ferr) {
			t.Fatalf("expected FileError, got %T: %v", err, err)
		}
		if ferr.Line != 2 {
			t.Errorf("FileError.Line = %d, want 2", ferr.Line)
		}
	})
}

func TestColumnTyping(t *testing.T) {
	content := "id\tlfc\tgroup\tsparse\nOTU1\t0.5\ttreatment\t\nOTU2\t1e-3\tcontrol\t7\n"
	table, err := Load(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testCases := []struct {
		column string
		want   ColumnType
	}{
		{"lfc", Numeric},
		{"group", Categorical},
		{"sparse", Numeric}, // empty cells do not affect typing
	}
	for _, tc := range testCases {
		t.Run(tc.column, func(t *testing.T) {
			col, ok := table.Column(tc.column)
			if !ok {
				t.Fatalf("column %q not found", tc.column)
			}
			if col.Type != tc.want {
				t.Errorf("column %q typed %s, want %s", tc.column, col.Type, tc.want)
			}
		})
	}

	if _, ok := table.Column("missing"); ok {
		t.Error("did not expect to find a missing column")
	}
}

func TestFilterNumeric(t *testing.T) {
	content := "id\tlfc\tgroup\tse\nOTU1\t0.5\ta\t0.1\n"
	table, err := Load(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := table.FilterNumeric()
	if filtered.ColumnCount() != 2 {
		t.Fatalf("ColumnCount() = %d, want 2", filtered.ColumnCount())
	}
	for _, c := range filtered.Columns() {
		if c.Type != Numeric {
			t.Errorf("column %q survived the filter with type %s", c.Name, c.Type)
		}
	}
	if filtered.RowCount() != table.RowCount() {
		t.Error("filtering must keep the identifier column intact")
	}
}
