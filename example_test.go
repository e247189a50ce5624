package bioformat_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobeaver/bioformat"
	"github.com/gobeaver/bioformat/driver/memory"
	"github.com/gobeaver/bioformat/formats"
)

// Validate a directory of taxonomy assignments against the canonical format.
func Example_validateDirectory() {
	ctx := context.Background()

	fs := memory.New()
	fs.Write(ctx, "data/taxonomy.tsv", strings.NewReader(
		"Feature ID\tTaxon\nOTU1\tk__Bacteria; p__Firmicutes\nOTU2\tk__Archaea\n"))

	reg := formats.DefaultRegistry()
	format, _ := reg.Lookup("TSVTaxonomy")

	if err := format.Validate(ctx, fs, "data", formats.LevelMax); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

// Sniff an unknown directory against every registered format.
func Example_guessFormat() {
	ctx := context.Background()

	fs := memory.New()
	fs.Write(ctx, "data/dna-sequences.fasta", strings.NewReader(">seq1\nACGT\n"))

	candidates := formats.Guess(ctx, fs, "data", formats.DefaultRegistry())
	for _, name := range candidates {
		fmt.Println(name)
	}
	// Output:
	// DNASequences
	// MixedCaseDNASequences
}

// Classify validation failures by type instead of string matching.
func Example_errorHandling() {
	v := &formats.TSVTaxonomyValidator{}

	err := v.Validate(strings.NewReader("Feature ID\tTaxon\n"), formats.LevelMax)
	if formats.IsErrorOfType(err, formats.ErrorTypeEmpty) {
		fmt.Println("table has no records")
	}
	// Output: table has no records
}

// Pick canonical data files out of a mixed directory with selectors.
func ExampleListWithSelector() {
	ctx := context.Background()

	fs := memory.New()
	fs.Write(ctx, "data/dna-sequences.fasta", strings.NewReader(">a\nACGT\n"))
	fs.Write(ctx, "data/aligned-dna-sequences.fasta", strings.NewReader(">a\nACGT\n"))
	fs.Write(ctx, "data/run.log", strings.NewReader("..."))

	selector := bioformat.And(
		bioformat.Glob("*.fasta"),
		bioformat.Not(bioformat.Glob("aligned-*")),
	)
	files, _ := bioformat.ListWithSelector(ctx, fs, "data", selector, false)
	for _, f := range files {
		fmt.Println(f.Name)
	}
	// Output: dna-sequences.fasta
}

// Enforce that validation never mutates its source.
func ExampleNewReadOnly() {
	ctx := context.Background()

	fs := memory.New()
	fs.Write(ctx, "data/taxonomy.tsv", strings.NewReader("Feature ID\tTaxon\nOTU1\tBacteria\n"))

	src := bioformat.NewReadOnly(fs)
	err := src.Delete(ctx, "data/taxonomy.tsv")
	fmt.Println(bioformat.IsReadOnly(err))
	// Output: true
}

// Record a checksum for a file that just validated.
func ExampleFileChecksum() {
	ctx := context.Background()

	fs := memory.New()
	fs.Write(ctx, "data/taxonomy.tsv", strings.NewReader("Feature ID\tTaxon\nOTU1\tBacteria\n"))

	sum, _ := bioformat.FileChecksum(ctx, fs, "data/taxonomy.tsv", bioformat.ChecksumXXHash)
	ok, _ := bioformat.VerifyChecksum(ctx, fs, "data/taxonomy.tsv", sum, bioformat.ChecksumXXHash)
	fmt.Println(ok)
	// Output: true
}
