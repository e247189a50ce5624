package formats

import (
	"bufio"
	"io"
	"strings"
)

// Level selects how deep a validation pass scans its source.
type Level string

const (
	// LevelMin samples a bounded number of records: a fast "is this even
	// plausible" check before committing to a full import.
	LevelMin Level = "min"

	// LevelMax scans the entire source.
	LevelMax Level = "max"
)

// Sampling bounds applied at LevelMin.
const (
	// minDataRows caps the number of data rows read from tabular formats.
	minDataRows = 10

	// minSequenceLines caps the number of physical lines read from
	// sequence formats.
	minSequenceLines = 100
)

// Validator is the contract every format validator implements.
//
// Both methods perform a single forward pass over the reader and never seek;
// callers own the reader and its lifetime. Validators hold no mutable state,
// so one value may be shared across any number of concurrent calls.
type Validator interface {
	// Sniff reports whether the content is plausibly in this format.
	// It is best-effort and never raises: read errors and malformed
	// content both report false.
	Sniff(r io.Reader) bool

	// Validate checks the content against the format's structural contract
	// and returns a *ValidationError describing the first violation found,
	// or nil if the content is valid at the given level.
	Validate(r io.Reader, level Level) error
}

// maxLineLength bounds a single physical line. Sequence files routinely put
// a whole chromosome on one line.
const maxLineLength = 64 * 1024 * 1024

// newLineScanner returns a line scanner sized for long single-line records.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineLength)
	return sc
}

// isBlank reports whether a physical line is all-whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isComment reports whether a line is a '#' comment, ignoring leading spaces.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}
