package formats

import (
	"fmt"
)

// Registry is an explicit, host-owned collection of directory formats.
// Registration is a plain method call on a value the host constructs and
// passes around; this package keeps no process-wide registry and mutates no
// global state.
type Registry struct {
	formats map[string]DirectoryFormat
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]DirectoryFormat)}
}

// Register adds a directory format. Names must be unique.
func (r *Registry) Register(f DirectoryFormat) error {
	if f.Name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if _, exists := r.formats[f.Name]; exists {
		return fmt.Errorf("format %s already registered", f.Name)
	}
	r.formats[f.Name] = f
	r.order = append(r.order, f.Name)
	return nil
}

// MustRegister adds a directory format and panics on a duplicate name.
// Intended for building static format tables at startup.
func (r *Registry) MustRegister(f DirectoryFormat) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Lookup returns the named format.
func (r *Registry) Lookup(name string) (DirectoryFormat, bool) {
	f, ok := r.formats[name]
	return f, ok
}

// Names returns the registered format names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Formats returns the registered formats in registration order.
func (r *Registry) Formats() []DirectoryFormat {
	out := make([]DirectoryFormat, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.formats[name])
	}
	return out
}

// Count returns the number of registered formats.
func (r *Registry) Count() int {
	return len(r.order)
}

// DefaultRegistry builds the standard format table: the taxonomy family,
// every sequence-collection variant (three base alphabets crossed with the
// mixed-case and aligned extensions), the paired sequence containers, and
// the delegated tabular formats. Each call returns a fresh registry the
// caller owns.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	dna, rna, protein := DNA(), RNA(), Protein()

	// Taxonomy family. All three bind the same canonical filename; sniffing
	// decides which variant a given file is treated as.
	r.MustRegister(SingleFileFormat("TSVTaxonomy", "taxonomy.tsv", &TSVTaxonomyValidator{}))
	r.MustRegister(SingleFileFormat("HeaderlessTSVTaxonomy", "taxonomy.tsv", &HeaderlessTSVTaxonomyValidator{}))
	r.MustRegister(SingleFileFormat("Taxonomy", "taxonomy.tsv", &LegacyTaxonomyValidator{}))

	// Sequence collections: every composition of the two alphabet
	// extensions per base alphabet.
	r.MustRegister(SingleFileFormat("DNASequences", "dna-sequences.fasta", NewFASTAValidator(dna)))
	r.MustRegister(SingleFileFormat("MixedCaseDNASequences", "dna-sequences.fasta", NewFASTAValidator(dna.WithMixedCase())))
	r.MustRegister(SingleFileFormat("AlignedDNASequences", "aligned-dna-sequences.fasta", NewAlignedFASTAValidator(dna)))
	r.MustRegister(SingleFileFormat("MixedCaseAlignedDNASequences", "aligned-dna-sequences.fasta", NewAlignedFASTAValidator(dna.WithMixedCase())))

	r.MustRegister(SingleFileFormat("RNASequences", "rna-sequences.fasta", NewFASTAValidator(rna)))
	r.MustRegister(SingleFileFormat("MixedCaseRNASequences", "rna-sequences.fasta", NewFASTAValidator(rna.WithMixedCase())))
	r.MustRegister(SingleFileFormat("AlignedRNASequences", "aligned-rna-sequences.fasta", NewAlignedFASTAValidator(rna)))
	r.MustRegister(SingleFileFormat("MixedCaseAlignedRNASequences", "aligned-rna-sequences.fasta", NewAlignedFASTAValidator(rna.WithMixedCase())))

	r.MustRegister(SingleFileFormat("ProteinSequences", "protein-sequences.fasta", NewFASTAValidator(protein)))
	r.MustRegister(SingleFileFormat("MixedCaseProteinSequences", "protein-sequences.fasta", NewFASTAValidator(protein.WithMixedCase())))
	r.MustRegister(SingleFileFormat("AlignedProteinSequences", "aligned-protein-sequences.fasta", NewAlignedFASTAValidator(protein)))
	r.MustRegister(SingleFileFormat("MixedCaseAlignedProteinSequences", "aligned-protein-sequences.fasta", NewAlignedFASTAValidator(protein.WithMixedCase())))

	// Paired containers: two independent single-direction files, no
	// cross-file invariant.
	r.MustRegister(PairedFileFormat("PairedDNASequences", "left-dna-sequences.fasta", "right-dna-sequences.fasta", NewFASTAValidator(dna)))
	r.MustRegister(PairedFileFormat("PairedRNASequences", "left-rna-sequences.fasta", "right-rna-sequences.fasta", NewFASTAValidator(rna)))

	// Delegated tabular formats.
	r.MustRegister(SingleFileFormat("Differential", "differentials.tsv", &DifferentialValidator{}))
	r.MustRegister(SingleFileFormat("BLAST6", "blast6.tsv", &BLAST6Validator{}))
	r.MustRegister(SingleFileFormat("SequenceCharacteristics", "sequence_characteristics.tsv", &SequenceCharacteristicsValidator{
		Checks: map[string]ColumnCheck{"length": NumericColumnCheck()},
	}))

	return r
}
