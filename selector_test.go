package bioformat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gobeaver/bioformat"
	"github.com/gobeaver/bioformat/driver/memory"
)

func newSelectorFixture(t *testing.T) bioformat.FileSystem {
	t.Helper()
	ctx := context.Background()
	fs := memory.New()

	files := []string{
		"data/taxonomy.tsv",
		"data/dna-sequences.fasta",
		"data/aligned-dna-sequences.fasta",
		"data/provenance.log",
		"data/nested/blast6.tsv",
	}
	for _, path := range files {
		if err := fs.Write(ctx, path, strings.NewReader("x")); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return fs
}

func names(infos []bioformat.FileInfo) []string {
	var out []string
	for _, info := range infos {
		out = append(out, info.Name)
	}
	return out
}

func TestListWithSelector(t *testing.T) {
	ctx := context.Background()
	fs := newSelectorFixture(t)

	t.Run("glob", func(t *testing.T) {
		files, err := bioformat.ListWithSelector(ctx, fs, "data", bioformat.Glob("*.fasta"), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("expected 2 fasta files, got %v", names(files))
		}
	})

	t.Run("nil selector matches everything shallow", func(t *testing.T) {
		files, err := bioformat.ListWithSelector(ctx, fs, "data", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 4 {
			t.Errorf("expected 4 immediate files, got %v", names(files))
		}
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := bioformat.ListWithSelector(ctx, fs, "data", bioformat.Glob("*.tsv"), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("expected 2 tsv files, got %v", names(files))
		}
	})

	t.Run("not", func(t *testing.T) {
		selector := bioformat.Not(bioformat.Glob("aligned-*"))
		files, err := bioformat.ListWithSelector(ctx, fs, "data", bioformat.And(bioformat.Glob("*.fasta"), selector), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].Name != "dna-sequences.fasta" {
			t.Errorf("expected only the unaligned file, got %v", names(files))
		}
	})

	t.Run("or", func(t *testing.T) {
		selector := bioformat.Or(bioformat.Glob("*.log"), bioformat.Glob("taxonomy.*"))
		files, err := bioformat.ListWithSelector(ctx, fs, "data", selector, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("expected 2 files, got %v", names(files))
		}
	})

	t.Run("func selector", func(t *testing.T) {
		selector := bioformat.FuncSelector(func(f *bioformat.FileInfo) bool {
			return strings.HasPrefix(f.Name, "dna-")
		})
		files, err := bioformat.ListWithSelector(ctx, fs, "data", selector, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 {
			t.Errorf("expected 1 file, got %v", names(files))
		}
	})

	t.Run("depth limits traversal", func(t *testing.T) {
		selector := bioformat.And(bioformat.Glob("*.tsv"), bioformat.Depth(1, "data"))
		files, err := bioformat.ListWithSelector(ctx, fs, "data", selector, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].Name != "taxonomy.tsv" {
			t.Errorf("expected only the shallow tsv, got %v", names(files))
		}
	})
}
