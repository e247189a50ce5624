// Package bioformat provides a filesystem abstraction and supporting
// infrastructure for validating biological data files before they are
// accepted into a typed pipeline.
//
// The structural validators themselves live in the formats subpackage
// (github.com/gobeaver/bioformat/formats). This root package supplies what
// the validators consume: a read-only view of file sources, structured path
// errors, checksums, change notification tokens, and driver configuration.
//
// BioFormat follows interface segregation principles, providing separate
// interfaces for read-only ([FileReader]) and write ([FileWriter])
// operations, combined in the full [FileSystem] interface. Validation only
// ever needs a [FileReader]; wrap any backend with [NewReadOnly] to enforce
// that at compile time and at runtime.
//
// # Storage Backends
//
//   - Local filesystem (github.com/gobeaver/bioformat/driver/local)
//   - In-memory (github.com/gobeaver/bioformat/driver/memory)
//
// The in-memory driver doubles as the test fixture backend for validator
// tests.
//
// # Basic Usage
//
//	import (
//	    "github.com/gobeaver/bioformat/driver/local"
//	    "github.com/gobeaver/bioformat/formats"
//	)
//
//	fs, err := local.New("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	reg := formats.DefaultRegistry()
//
//	// Which registered formats does this directory plausibly match?
//	names := formats.Guess(ctx, fs, ".", reg)
//
//	// Authoritative check before import.
//	f, _ := reg.Lookup("TSVTaxonomy")
//	err = f.Validate(ctx, fs, ".", formats.LevelMax)
//
// # Optional Capabilities
//
// Drivers may implement optional capability interfaces. Use type assertions
// to check for support:
//
//	// Calculate checksums
//	if cs, ok := fs.(bioformat.CanChecksum); ok {
//	    hash, err := cs.Checksum(ctx, "dna-sequences.fasta", bioformat.ChecksumXXHash)
//	}
//
//	// Watch for file changes (revalidate on edit)
//	if watcher, ok := fs.(bioformat.CanWatch); ok {
//	    token, err := watcher.Watch(ctx, "*.tsv")
//	    if token.HasChanged() {
//	        // Handle change
//	    }
//	}
package bioformat
