// Package formats provides structural validation for the text-based file
// formats a biological data pipeline accepts: FASTA sequence collections and
// alignments, taxonomy tables, numeric differential tables, per-feature
// scalar annotations, and BLAST outfmt-6 search results.
//
// Every format implements the same two-call contract:
//
//   - Sniff is a cheap, non-raising plausibility check used to disambiguate
//     candidate formats during import. It never returns an error; an
//     implausible file is reported as false so the host can try the next
//     candidate.
//   - Validate is the authoritative check run before a file is accepted into
//     the typed pipeline. It fails fast: the first violation is returned as a
//     structured [ValidationError] carrying enough context (line number,
//     observed vs. expected values) to locate and fix the offending line.
//
// Validation depth is controlled by [Level]: [LevelMin] samples a bounded
// number of records for a fast plausibility pass, [LevelMax] scans the whole
// file.
//
// Validators operate on a plain io.Reader. The binding of a validator to its
// canonical filename is a [DirectoryFormat], which opens files through the
// bioformat file abstraction and is the unit a host registers in a
// [Registry]:
//
//	reg := formats.DefaultRegistry()
//	f, _ := reg.Lookup("TSVTaxonomy")
//	if err := f.Validate(ctx, fs, ".", formats.LevelMax); err != nil {
//	    var verr *formats.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Type, verr.Message)
//	    }
//	}
//
// Errors are categorized by [ValidationErrorType] for programmatic handling;
// use [IsErrorOfType] to branch on a category without string matching.
package formats
