package formats

import (
	"fmt"
	"io"
	"strings"
)

// TaxonomyHeader is the exact two leading cells required by the canonical
// taxonomy format's header row.
var TaxonomyHeader = []string{"Feature ID", "Taxon"}

// ============================================================================
// Legacy taxonomy (sniff-only)
// ============================================================================

// LegacyTaxonomyValidator recognizes the historical taxonomy layout: any
// 2+ column TSV file, with or without a header, supporting '#' comment lines
// and blank lines.
//
// The layout has been superseded by the explicit headered and headerless
// variants. It remains registered so data archived in the old shape stays
// readable, but it is deliberately never promoted into the canonical
// format: recognition keeps old files loadable without re-endorsing the
// loose shape for new imports.
type LegacyTaxonomyValidator struct{}

// Sniff reads up to the first 10 qualifying lines (blank lines and comments
// skipped) and reports true iff at least one was found and every one split
// into 2+ tab-separated cells. A file that is empty after filtering reports
// false; "all comments" and "genuinely empty" are intentionally not
// distinguished.
func (v *LegacyTaxonomyValidator) Sniff(r io.Reader) bool {
	sc := newLineScanner(r)
	count := 0
	for count < minDataRows && sc.Scan() {
		line := sc.Text()
		if isBlank(line) || isComment(line) {
			continue
		}
		if len(strings.Split(line, "\t")) < 2 {
			return false
		}
		count++
	}
	if sc.Err() != nil {
		return false
	}
	return count > 0
}

// Validate re-runs the sniff shape check only. There is nothing stricter to
// enforce for the legacy layout.
func (v *LegacyTaxonomyValidator) Validate(r io.Reader, level Level) error {
	if !v.Sniff(r) {
		return NewValidationError(ErrorTypeRecord,
			"file does not look like tab-separated taxonomy data: expected at least one line with 2 or more tab-separated values")
	}
	return nil
}

// ============================================================================
// Headerless taxonomy
// ============================================================================

// HeaderlessTSVTaxonomyValidator validates a 2+ column TSV file without a
// header. Record-shape rules match the headered variant; there is simply no
// header line to check. '#' comment lines and blank lines are ignored.
type HeaderlessTSVTaxonomyValidator struct {
	LegacyTaxonomyValidator
}

// Validate scans data rows: the first row fixes the column count (2 or
// more), every later row must match it, and at least one row must exist.
// At LevelMin the scan stops after 10 data rows.
func (v *HeaderlessTSVTaxonomyValidator) Validate(r io.Reader, level Level) error {
	sc := newLineScanner(r)

	var lineNumber, dataRows, arity int
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if isBlank(line) || isComment(line) {
			continue
		}

		cells := strings.Split(line, "\t")
		if arity == 0 {
			if len(cells) < 2 {
				return NewValidationError(ErrorTypeColumns, fmt.Sprintf(
					"expected at least 2 tab-separated values on line %d, found %d (%v)",
					lineNumber, len(cells), cells))
			}
			arity = len(cells)
		} else if len(cells) != arity {
			return NewValidationError(ErrorTypeArity, fmt.Sprintf(
				"number of values on line %d is not the same as in previous rows: found %d values (%v), expected %d",
				lineNumber, len(cells), cells, arity))
		}

		dataRows++
		if level == LevelMin && dataRows >= minDataRows {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return NewValidationError(ErrorTypeRecord, fmt.Sprintf("reading taxonomy file: %v", err))
	}

	if dataRows == 0 {
		return NewValidationError(ErrorTypeEmpty,
			"no taxonomy records found, only blank lines and/or comments")
	}
	return nil
}

// ============================================================================
// Headered (canonical) taxonomy
// ============================================================================

// TSVTaxonomyValidator validates the canonical taxonomy format: a TSV file
// whose first non-blank line is a header beginning with the exact cells
// "Feature ID" and "Taxon" (arbitrary further columns allowed), followed by
// at least one data row of matching arity. Blank lines are ignored; line
// numbers in errors count every physical line read, 1-based.
type TSVTaxonomyValidator struct{}

// Sniff reports whether the first non-blank line carries the expected
// header cells.
func (v *TSVTaxonomyValidator) Sniff(r io.Reader) bool {
	sc := newLineScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if isBlank(line) {
			continue
		}
		cells := strings.Split(line, "\t")
		return len(cells) >= 2 && cells[0] == TaxonomyHeader[0] && cells[1] == TaxonomyHeader[1]
	}
	return false
}

// Validate scans the file: header first, then data rows. At LevelMin the
// scan stops after 10 data rows; at LevelMax it runs to EOF. Zero data rows
// fail regardless of level.
func (v *TSVTaxonomyValidator) Validate(r io.Reader, level Level) error {
	sc := newLineScanner(r)

	var (
		header     []string
		lineNumber int
		dataRows   int
	)
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if isBlank(line) {
			continue
		}

		cells := strings.Split(line, "\t")
		if header == nil {
			got := cells
			if len(got) > 2 {
				got = got[:2]
			}
			if len(cells) < 2 || cells[0] != TaxonomyHeader[0] || cells[1] != TaxonomyHeader[1] {
				return NewValidationError(ErrorTypeHeader, fmt.Sprintf(
					"%v must be the first two header values; the first two header values provided are %v (on line %d)",
					TaxonomyHeader, got, lineNumber))
			}
			header = cells
			continue
		}

		if len(cells) != len(header) {
			return NewValidationError(ErrorTypeArity, fmt.Sprintf(
				"number of values on line %d is not the same as the number of header values: found %d values (%v), expected %d",
				lineNumber, len(cells), cells, len(header)))
		}

		dataRows++
		if level == LevelMin && dataRows >= minDataRows {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return NewValidationError(ErrorTypeRecord, fmt.Sprintf("reading taxonomy file: %v", err))
	}

	if dataRows == 0 {
		return NewValidationError(ErrorTypeEmpty,
			"no taxonomy records found, only blank lines and/or a header row")
	}
	return nil
}
