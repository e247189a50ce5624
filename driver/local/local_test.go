package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gobeaver/bioformat"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating adapter: %v", err)
	}
	return a
}

func TestWriteAndRead(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	content := "Feature ID\tTaxon\nOTU1\tBacteria\n"
	if err := a.Write(ctx, "data/taxonomy.tsv", strings.NewReader(content)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rc, err := a.Read(ctx, "data/taxonomy.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != content {
		t.Errorf("read %q, want %q", data, content)
	}
}

func TestWriteRejectsEscape(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	err := a.Write(ctx, "../escape.tsv", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for path escaping the root")
	}
	var perr *bioformat.PathError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PathError, got %T: %v", err, err)
	}
}

func TestOverwriteGuard(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	if err := a.Write(ctx, "f.tsv", strings.NewReader("one")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.Write(ctx, "f.tsv", strings.NewReader("two")); !bioformat.IsExist(err) {
		t.Errorf("expected exist error, got: %v", err)
	}

	if err := a.Write(ctx, "f.tsv", strings.NewReader("two"), bioformat.WithOverwrite(true)); err != nil {
		t.Errorf("unexpected error with overwrite: %v", err)
	}

	data, err := a.ReadAll(ctx, "f.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

func TestExistsAndStat(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	if err := a.Write(ctx, "d/f.tsv", strings.NewReader("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := a.FileExists(ctx, "d/f.tsv")
	if err != nil || !exists {
		t.Errorf("FileExists = %v, %v", exists, err)
	}

	// A directory is not a file
	exists, err = a.FileExists(ctx, "d")
	if err != nil || exists {
		t.Errorf("FileExists(dir) = %v, %v", exists, err)
	}

	exists, err = a.DirExists(ctx, "d")
	if err != nil || !exists {
		t.Errorf("DirExists = %v, %v", exists, err)
	}

	info, err := a.Stat(ctx, "d/f.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.IsDir || info.Size != 1 || info.Name != "f.tsv" {
		t.Errorf("Stat = %+v", info)
	}

	if _, err := a.Stat(ctx, "missing"); !bioformat.IsNotExist(err) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
}

func TestListContents(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	for _, path := range []string{"d/a.tsv", "d/b.tsv", "d/sub/c.tsv"} {
		if err := a.Write(ctx, path, strings.NewReader("x")); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}

	infos, err := a.ListContents(ctx, "d", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 3 {
		t.Errorf("expected 3 entries, got %d", len(infos))
	}

	infos, err = a.ListContents(ctx, "d", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// three files plus the sub directory entry
	if len(infos) != 4 {
		t.Errorf("expected 4 entries, got %d", len(infos))
	}

	if _, err := a.ListContents(ctx, "d/a.tsv", false); err == nil {
		t.Error("expected error listing a file")
	}
}

func TestDeleteOperations(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	if err := a.Write(ctx, "d/f.tsv", strings.NewReader("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.Delete(ctx, "d/f.tsv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Delete(ctx, "d/f.tsv"); !bioformat.IsNotExist(err) {
		t.Errorf("expected not-exist error, got: %v", err)
	}

	if err := a.CreateDir(ctx, "made/nested"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exists, _ := a.DirExists(ctx, "made/nested")
	if !exists {
		t.Error("expected created directory to exist")
	}

	if err := a.DeleteDir(ctx, "made"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exists, _ = a.DirExists(ctx, "made")
	if exists {
		t.Error("expected directory to be gone")
	}
}

func TestLocalChecksum(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	if err := a.Write(ctx, "f.tsv", strings.NewReader("checksum me")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum, err := a.Checksum(ctx, "f.tsv", bioformat.ChecksumXXHash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := bioformat.CalculateChecksum(strings.NewReader("checksum me"), bioformat.ChecksumXXHash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != want {
		t.Errorf("Checksum = %s, want %s", sum, want)
	}
}

func TestMatchesFilter(t *testing.T) {
	testCases := []struct {
		path   string
		filter string
		want   bool
	}{
		{"taxonomy.tsv", "*.tsv", true},
		{"data/taxonomy.tsv", "*.tsv", true}, // filename fallback
		{"taxonomy.tsv", "*.fasta", false},
		{"data/deep/f.tsv", "data/**", true},
		{"data/deep/f.tsv", "data/**/*.tsv", true},
		{"other/f.tsv", "data/**", false},
		{"left-dna-sequences.fasta", "left-*.fasta", true},
	}

	for _, tc := range testCases {
		if got := matchesFilter(tc.path, tc.filter); got != tc.want {
			t.Errorf("matchesFilter(%q, %q) = %v, want %v", tc.path, tc.filter, got, tc.want)
		}
	}
}
